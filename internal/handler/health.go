package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
)

// Pinger reports whether the database answers.
type Pinger interface {
    Ping(ctx context.Context) (bool, error)
}

// HealthHandler serves the liveness endpoints.
type HealthHandler struct {
    DB Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler { return &HealthHandler{DB: db} }

// Root confirms the process is up without touching the database.
func (h *HealthHandler) Root(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"message": "Backend server is running!"})
}

func (h *HealthHandler) Hello(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"message": "Hello from the coworking API!"})
}

// Health runs SELECT 1 against the database: {ok:true} or 500 {ok:false,error}.
func (h *HealthHandler) Health(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
    defer cancel()

    ok, err := h.DB.Ping(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"ok": ok})
}
