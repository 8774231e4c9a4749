package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cristianbgp/peruvian-holidays/internal/calendar"
	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
	"github.com/cristianbgp/peruvian-holidays/internal/logger"
	"github.com/labstack/echo/v4"
)

const (
	Banner = "peruvian-holiday-api by @cristianbgp\n\n" +
		"GET /holidays (Query Parameter: public-sector: boolean)\n" +
		"GET /is-it-holiday (Query Parameter: public-sector: boolean)"

	// CacheControl is advisory for CDNs; the service itself keeps nothing.
	CacheControl = "public, s-maxage=120, stale-while-revalidate=60"

	publicSectorParam = "public-sector"
	calendarName      = "Feriados del Perú"
)

// Extractor produces the current holiday list. Implementations must not fail;
// an unavailable source yields an empty list.
type Extractor interface {
	Extract(ctx context.Context) []holiday.Holiday
}

// IsHolidayResponse is the body of GET /is-it-holiday.
type IsHolidayResponse struct {
	IsHoliday bool `json:"isHoliday"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source,omitempty"`
	Metrics   logger.Snapshot `json:"metrics"`
}

// Handlers serves the holiday routes.
type Handlers struct {
	extractor Extractor
	source    string
	now       func() time.Time
	loc       *time.Location
}

// HandlerOption configures Handlers.
type HandlerOption func(*Handlers)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handlers) {
		h.now = now
	}
}

// WithLocation sets the time zone that defines "today".
func WithLocation(loc *time.Location) HandlerOption {
	return func(h *Handlers) {
		if loc != nil {
			h.loc = loc
		}
	}
}

// WithSource records the upstream URL reported by /status.
func WithSource(url string) HandlerOption {
	return func(h *Handlers) {
		h.source = url
	}
}

// NewHandlers creates the route handlers around an extractor.
func NewHandlers(extractor Extractor, opts ...HandlerOption) *Handlers {
	h := &Handlers{
		extractor: extractor,
		now:       time.Now,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Index returns the usage banner.
func (h *Handlers) Index(c echo.Context) error {
	return c.String(http.StatusOK, Banner)
}

// Holidays returns the holiday list as JSON.
func (h *Handlers) Holidays(c echo.Context) error {
	holidays := h.holidays(c)

	c.Response().Header().Set("Cache-Control", CacheControl)
	return c.JSON(http.StatusOK, holidays)
}

// Calendar returns the holiday list as an iCalendar document.
func (h *Handlers) Calendar(c echo.Context) error {
	holidays := h.holidays(c)

	c.Response().Header().Set("Cache-Control", CacheControl)
	ics := calendar.GenerateICS(holidays, calendarName, h.now())
	return c.Blob(http.StatusOK, calendar.ContentType, []byte(ics))
}

// IsItHoliday reports whether today matches any holiday, at day granularity.
func (h *Handlers) IsItHoliday(c echo.Context) error {
	today := h.now().In(h.loc)
	holidays := h.holidays(c)

	return c.JSON(http.StatusOK, IsHolidayResponse{
		IsHoliday: holiday.AnyOn(holidays, today),
	})
}

// Status reports liveness and the in-process metrics.
func (h *Handlers) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
		Source:    h.source,
		Metrics:   logger.GetMetricsSnapshot(),
	})
}

func (h *Handlers) holidays(c echo.Context) []holiday.Holiday {
	all := h.extractor.Extract(c.Request().Context())
	return holiday.Select(all, includePublicSector(c))
}

// includePublicSector is true only for the literal value "true".
func includePublicSector(c echo.Context) bool {
	return c.QueryParam(publicSectorParam) == "true"
}
