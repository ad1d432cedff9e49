package middleware

import (
    "log/slog"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"

    "github.com/iliyamo/coworking-space-booking/internal/logger"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
    return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
        LogMethod:    true,
        LogURI:       true,
        LogStatus:    true,
        LogLatency:   true,
        LogRemoteIP:  true,
        LogRequestID: true,
        LogError:     true,
        HandleError:  true,
        LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
            attrs := []any{
                "method", v.Method,
                "uri", v.URI,
                "status", v.Status,
                "latency", v.Latency.String(),
                "remote_ip", v.RemoteIP,
            }
            if v.RequestID != "" {
                attrs = append(attrs, "request_id", v.RequestID)
            }
            if v.Error != nil {
                attrs = append(attrs, "err", v.Error.Error())
                log.Log(c.Request().Context(), slog.LevelError, "request failed", attrs...)
                return nil
            }
            log.Info("request", attrs...)
            return nil
        },
    })
}
