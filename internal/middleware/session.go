package middleware

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-space-booking/internal/logger"
    "github.com/iliyamo/coworking-space-booking/internal/session"
)

const sessionKey = "session"

// LoadSession reloads the visitor's session cookie on every request and, when
// it verifies, stores the session in the Echo context.  Requests without a
// session continue anonymously; a tampered or expired cookie is cleared.
func LoadSession(m *session.Manager, log *logger.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            sc, err := m.Reload(c.Response(), c.Request())
            if err == nil {
                c.Set(sessionKey, sc)
            } else if errors.Is(err, session.ErrInvalidSession) {
                log.Debug("session cookie rejected", "err", err, "path", c.Path())
            }
            return next(c)
        }
    }
}

// RequireSession rejects requests that LoadSession did not authenticate.
func RequireSession() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if _, ok := SessionFrom(c); !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session required"})
            }
            return next(c)
        }
    }
}

// SessionFrom returns the session loaded for this request, if any.
func SessionFrom(c echo.Context) (session.Context, bool) {
    sc, ok := c.Get(sessionKey).(session.Context)
    return sc, ok && sc.Authenticated
}

// sessionID is the bucket identifier used by the rate limiter.
func sessionID(c echo.Context) string {
    if sc, ok := SessionFrom(c); ok {
        return sc.ID
    }
    return "anon"
}
