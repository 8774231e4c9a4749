package api

import (
	"errors"
	"net/http"

	"github.com/cristianbgp/peruvian-holidays/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// NewRouter builds the Echo instance with middleware and routes registered.
func NewRouter(h *Handlers, allowedOrigins []string, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		middleware.Recover(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		}),
		requestLogger(log),
	)

	e.GET("/", h.Index)
	e.GET("/holidays", h.Holidays)
	e.GET("/holidays.ics", h.Calendar)
	e.GET("/is-it-holiday", h.IsItHoliday)
	e.GET("/status", h.Status)

	return e
}

// requestLogger writes one log line per request, at a level chosen by status.
func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	zl := log.Zerolog()

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// Handler errors are written after this runs; take the status from the error.
			status := v.Status
			var he *echo.HTTPError
			if v.Error != nil && errors.As(v.Error, &he) {
				status = he.Code
			}

			var e *zerolog.Event
			switch {
			case status >= 500:
				e = zl.Error().Err(v.Error)
			case status >= 400:
				e = zl.Warn()
			default:
				e = zl.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}
