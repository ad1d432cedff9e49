package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-space-booking/internal/booking"
    "github.com/iliyamo/coworking-space-booking/internal/catalog"
    "github.com/iliyamo/coworking-space-booking/internal/logger"
    "github.com/iliyamo/coworking-space-booking/internal/middleware"
    "github.com/iliyamo/coworking-space-booking/internal/queue"
    "github.com/iliyamo/coworking-space-booking/internal/repository"
    "github.com/iliyamo/coworking-space-booking/internal/service"
)

const dateLayout = "2006-01-02"

// BookingHandler hosts one booking wizard per session.  Each request restores
// the wizard from the draft store, applies one operation and saves the result.
type BookingHandler struct {
    Catalog   *catalog.SeatCatalog
    Drafts    repository.DraftStore
    Publisher service.BookingPublisher
    Log       *logger.Logger
    Now       func() time.Time
}

func NewBookingHandler(seats *catalog.SeatCatalog, drafts repository.DraftStore, pub service.BookingPublisher, log *logger.Logger) *BookingHandler {
    return &BookingHandler{Catalog: seats, Drafts: drafts, Publisher: pub, Log: log, Now: time.Now}
}

// ----- DTOs -----

type planReq struct {
    Plan string `json:"plan" validate:"required"`
}
type dateReq struct {
    Date string `json:"date" validate:"required"`
}
type timeSlotReq struct {
    TimeSlot string `json:"timeSlot" validate:"required"`
}

type draftView struct {
    Draft          booking.Draft `json:"draft"`
    Active         bool          `json:"active"`
    StepTitle      string        `json:"stepTitle"`
    CanAdvance     bool          `json:"canAdvance"`
    UnitPrice      int64         `json:"unitPrice"`
    Total          int64         `json:"total"`
    UnitPriceLabel string        `json:"unitPriceLabel"`
    TotalLabel     string        `json:"totalLabel"`
    DateLabel      string        `json:"dateLabel"`
    SeatsLabel     string        `json:"seatsLabel"`
}

type confirmationView struct {
    Reference  string   `json:"reference"`
    Plan       string   `json:"plan"`
    Seats      []string `json:"seats"`
    Date       string   `json:"date"`
    DateLabel  string   `json:"dateLabel"`
    TimeSlot   string   `json:"timeSlot"`
    UnitPrice  int64    `json:"unitPrice"`
    Total      int64    `json:"total"`
    TotalLabel string   `json:"totalLabel"`
}

func viewOf(w *booking.Wizard) draftView {
    d := w.Draft()
    return draftView{
        Draft:          d,
        Active:         d.Active,
        StepTitle:      booking.StepTitle(d.Step),
        CanAdvance:     w.CanAdvance(),
        UnitPrice:      w.UnitPrice(),
        Total:          w.Total(),
        UnitPriceLabel: booking.FormatVND(w.UnitPrice()),
        TotalLabel:     booking.FormatVND(w.Total()),
        DateLabel:      booking.FormatDate(d.Date),
        SeatsLabel:     booking.SeatsLabel(d.Seats),
    }
}

// ----- persistence helpers -----

// load restores the caller's wizard; a session without a stored draft gets
// a fresh, inactive one.
func (h *BookingHandler) load(c echo.Context) (*booking.Wizard, string, error) {
    sc, ok := middleware.SessionFrom(c)
    if !ok {
        return nil, "", echo.ErrUnauthorized
    }
    d, err := h.Drafts.Load(c.Request().Context(), sc.ID)
    switch {
    case errors.Is(err, repository.ErrDraftNotFound):
        return booking.NewWizard(h.Catalog, booking.WithClock(h.Now)), sc.ID, nil
    case err != nil:
        return nil, sc.ID, err
    }
    return booking.Restore(h.Catalog, d, booking.WithClock(h.Now)), sc.ID, nil
}

// mutate runs op against the caller's wizard and persists the result.
func (h *BookingHandler) mutate(c echo.Context, op func(w *booking.Wizard) error) error {
    w, sid, err := h.load(c)
    if err != nil {
        return h.fail(c, "load draft", err)
    }
    if err := op(w); err != nil {
        return err
    }
    if c.Response().Committed {
        return nil
    }
    if err := h.Drafts.Save(c.Request().Context(), sid, w.Draft()); err != nil {
        return h.fail(c, "save draft", err)
    }
    return c.JSON(http.StatusOK, echo.Map{"data": viewOf(w)})
}

func (h *BookingHandler) fail(c echo.Context, what string, err error) error {
    if errors.Is(err, echo.ErrUnauthorized) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session required"})
    }
    h.Log.Error("booking: "+what+" failed", "err", err)
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "draft store unavailable"})
}

// ----- endpoints -----

// Get: GET /api/booking.
func (h *BookingHandler) Get(c echo.Context) error {
    w, _, err := h.load(c)
    if err != nil {
        return h.fail(c, "load draft", err)
    }
    return c.JSON(http.StatusOK, echo.Map{"data": viewOf(w)})
}

// Reset: DELETE /api/booking.  Returns the fresh inactive draft.
func (h *BookingHandler) Reset(c echo.Context) error {
    w, sid, err := h.load(c)
    if err != nil {
        return h.fail(c, "load draft", err)
    }
    w.Reset()
    if err := h.Drafts.Delete(c.Request().Context(), sid); err != nil {
        return h.fail(c, "delete draft", err)
    }
    return c.JSON(http.StatusOK, echo.Map{"data": viewOf(w)})
}

// SelectPlan: PUT /api/booking/plan {plan}.
func (h *BookingHandler) SelectPlan(c echo.Context) error {
    var req planReq
    if !bindValid(c, &req, "plan is required") {
        return nil
    }
    if _, ok := catalog.FindPlan(req.Plan); !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown plan"})
    }
    return h.mutate(c, func(w *booking.Wizard) error {
        w.SelectPlan(req.Plan)
        return nil
    })
}

// SelectDate: PUT /api/booking/date {date: "YYYY-MM-DD"}.  Only the days
// offered by GET /api/dates are accepted.
func (h *BookingHandler) SelectDate(c echo.Context) error {
    var req dateReq
    if !bindValid(c, &req, "date is required") {
        return nil
    }
    now := h.Now()
    day, err := time.ParseInLocation(dateLayout, req.Date, now.Location())
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }
    if !bookable(day, now) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is outside the booking window"})
    }
    return h.mutate(c, func(w *booking.Wizard) error {
        w.SelectDate(day)
        return nil
    })
}

func bookable(day, now time.Time) bool {
    for _, d := range catalog.BookableDates(now, bookableDays) {
        if d.Equal(day) {
            return true
        }
    }
    return false
}

// SelectTimeSlot: PUT /api/booking/time-slot {timeSlot}.
func (h *BookingHandler) SelectTimeSlot(c echo.Context) error {
    var req timeSlotReq
    if !bindValid(c, &req, "timeSlot is required") {
        return nil
    }
    if !catalog.IsTimeSlot(req.TimeSlot) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown time slot"})
    }
    return h.mutate(c, func(w *booking.Wizard) error {
        w.SelectTimeSlot(req.TimeSlot)
        return nil
    })
}

// ToggleSeat: POST /api/booking/seats/:seat.  Toggling an occupied seat
// succeeds without changing the selection.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
    id := catalog.NormalizeSeatID(c.Param("seat"))
    if !h.Catalog.Contains(id) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat"})
    }
    return h.mutate(c, func(w *booking.Wizard) error {
        w.ToggleSeat(id)
        return nil
    })
}

// Seats: GET /api/booking/seats.  The floor plan classified against the
// caller's selection.
func (h *BookingHandler) Seats(c echo.Context) error {
    w, _, err := h.load(c)
    if err != nil {
        return h.fail(c, "load draft", err)
    }
    inv := w.Inventory()
    return c.JSON(http.StatusOK, echo.Map{"data": echo.Map{
        "rows":   inv.Grid(),
        "counts": inv.Counts(),
    }})
}

// Advance: POST /api/booking/advance.  409 while the current step is incomplete.
func (h *BookingHandler) Advance(c echo.Context) error {
    return h.mutate(c, func(w *booking.Wizard) error {
        if !w.CanAdvance() {
            return c.JSON(http.StatusConflict, echo.Map{"error": "current step is incomplete", "step": w.Step()})
        }
        w.AdvanceStep()
        return nil
    })
}

// Retreat: POST /api/booking/retreat.  Leaving the first step resets the
// draft and answers exit=true.
func (h *BookingHandler) Retreat(c echo.Context) error {
    w, sid, err := h.load(c)
    if err != nil {
        return h.fail(c, "load draft", err)
    }
    _, exit := w.RetreatStep()
    ctx := c.Request().Context()
    if exit {
        err = h.Drafts.Delete(ctx, sid)
    } else {
        err = h.Drafts.Save(ctx, sid, w.Draft())
    }
    if err != nil {
        return h.fail(c, "save draft", err)
    }
    return c.JSON(http.StatusOK, echo.Map{"data": viewOf(w), "exit": exit})
}

// Confirm: POST /api/booking/confirm.  Requires the seat step with a time
// slot and at least one seat.  The confirmation is announced on the message
// broker and the stored draft is cleared.
func (h *BookingHandler) Confirm(c echo.Context) error {
    w, sid, err := h.load(c)
    if err != nil {
        return h.fail(c, "load draft", err)
    }
    d := w.Draft()
    if d.Step != booking.StepSeats || len(d.Seats) == 0 || d.TimeSlot == "" {
        return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not complete"})
    }

    conf := w.Confirm()
    view := confirmationView{
        Reference:  uuid.NewString(),
        Plan:       conf.Plan,
        Seats:      conf.Seats,
        Date:       conf.Date.Format(dateLayout),
        DateLabel:  booking.FormatDate(conf.Date),
        TimeSlot:   conf.TimeSlot,
        UnitPrice:  conf.UnitPrice,
        Total:      conf.Total,
        TotalLabel: booking.FormatVND(conf.Total),
    }

    sc, _ := middleware.SessionFrom(c)
    ev := queue.BookingConfirmedEvent{
        Reference:   view.Reference,
        SessionID:   sid,
        Email:       sc.User.Email,
        Plan:        view.Plan,
        SeatLabels:  view.Seats,
        Date:        view.Date,
        TimeSlot:    view.TimeSlot,
        UnitPrice:   view.UnitPrice,
        Total:       view.Total,
        ConfirmedAt: h.Now().UTC().Format(time.RFC3339),
    }
    if h.Publisher != nil {
        pubCtx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 5*time.Second)
        if err := h.Publisher.PublishBookingConfirmed(pubCtx, ev); err != nil {
            h.Log.Warn("booking: confirmation not published", "err", err, "reference", view.Reference)
        }
        cancel()
    }

    w.Reset()
    if err := h.Drafts.Delete(c.Request().Context(), sid); err != nil {
        h.Log.Warn("booking: clear draft after confirm failed", "err", err, "session_id", sid)
    }
    h.Log.Info("booking confirmed", "reference", view.Reference, "plan", view.Plan, "seats", len(view.Seats), "total", view.Total)
    return c.JSON(http.StatusOK, echo.Map{"data": view})
}
