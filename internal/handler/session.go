package handler

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-space-booking/internal/booking"
    "github.com/iliyamo/coworking-space-booking/internal/catalog"
    "github.com/iliyamo/coworking-space-booking/internal/logger"
    "github.com/iliyamo/coworking-space-booking/internal/middleware"
    "github.com/iliyamo/coworking-space-booking/internal/repository"
    "github.com/iliyamo/coworking-space-booking/internal/session"
)

// SessionHandler signs visitors up and out.
type SessionHandler struct {
    Sessions *session.Manager
    Drafts   repository.DraftStore
    Seats    *catalog.SeatCatalog
    Log      *logger.Logger
    Now      func() time.Time
}

func NewSessionHandler(m *session.Manager, drafts repository.DraftStore, seats *catalog.SeatCatalog, log *logger.Logger) *SessionHandler {
    return &SessionHandler{Sessions: m, Drafts: drafts, Seats: seats, Log: log, Now: time.Now}
}

type signupReq struct {
    FirstName    string `json:"firstName"`
    LastName     string `json:"lastName"`
    Email        string `json:"email" validate:"required,email"`
    Phone        string `json:"phone"`
    SelectedPlan string `json:"selectedPlan"`
}

// Signup: POST /api/session.  Issues the session cookie; when a plan was
// picked on the signup form the booking draft starts with it selected.
func (h *SessionHandler) Signup(c echo.Context) error {
    var req signupReq
    if !bindValid(c, &req, "a valid email is required") {
        return nil
    }
    plan := strings.TrimSpace(req.SelectedPlan)
    if plan != "" {
        if _, ok := catalog.FindPlan(plan); !ok {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown plan"})
        }
    }

    info := session.NewUserInfo(req.FirstName, req.LastName, req.Email, req.Phone, plan, h.Now())
    sc, err := h.Sessions.Login(c.Response(), info)
    if err != nil {
        h.Log.Error("session: login failed", "err", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not start session"})
    }

    if plan != "" {
        w := booking.NewWizard(h.Seats, booking.WithClock(h.Now))
        if err := h.Drafts.Save(c.Request().Context(), sc.ID, w.SelectPlan(plan)); err != nil {
            h.Log.Warn("session: seed draft failed", "err", err, "session_id", sc.ID)
        }
    }
    h.Log.Info("session started", "session_id", sc.ID, "plan", plan)
    return c.JSON(http.StatusCreated, echo.Map{"data": sc})
}

// Current: GET /api/session.
func (h *SessionHandler) Current(c echo.Context) error {
    sc, ok := middleware.SessionFrom(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no active session"})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": sc})
}

// Logout: DELETE /api/session.  Drops the draft and clears the cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
    if sc, ok := middleware.SessionFrom(c); ok {
        if err := h.Drafts.Delete(c.Request().Context(), sc.ID); err != nil {
            h.Log.Warn("session: delete draft failed", "err", err, "session_id", sc.ID)
        }
    }
    h.Sessions.Logout(c.Response())
    return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}
