package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-space-booking/internal/booking"
    "github.com/iliyamo/coworking-space-booking/internal/catalog"
)

// bookableDays is how far ahead the date picker reaches, today included.
const bookableDays = 7

// CatalogHandler serves the static data the booking pages render from.
type CatalogHandler struct {
    Now func() time.Time
}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{Now: time.Now} }

type planResp struct {
    catalog.Plan
    Amount int64 `json:"amount"`
}

// Plans lists the membership plans with their parsed VND amounts.
func (h *CatalogHandler) Plans(c echo.Context) error {
    plans := catalog.Plans()
    out := make([]planResp, 0, len(plans))
    for _, p := range plans {
        out = append(out, planResp{Plan: p, Amount: p.Amount()})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": out})
}

func (h *CatalogHandler) TimeSlots(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"data": catalog.TimeSlots()})
}

type dateResp struct {
    Value string `json:"value"`
    Label string `json:"label"`
}

// Dates lists the days a booking may be made for.
func (h *CatalogHandler) Dates(c echo.Context) error {
    days := catalog.BookableDates(h.Now(), bookableDays)
    out := make([]dateResp, 0, len(days))
    for _, d := range days {
        out = append(out, dateResp{Value: d.Format(dateLayout), Label: booking.FormatDate(d)})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": out})
}
