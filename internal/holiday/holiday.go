package holiday

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// PublicSectorMarker flags holidays observed only by public-sector employees.
const PublicSectorMarker = "sector público"

// DateLayout is the day-granularity format used to compare dates.
const DateLayout = "2006-01-02"

// Holiday represents a Peruvian holiday as published on gob.pe
type Holiday struct {
	DateString string    `json:"dateString"` // Raw text from the page, e.g. "23 de julio"
	Date       time.Time `json:"date"`
	Name       string    `json:"name"`
}

// New creates a Holiday from its raw date text, resolved date and name.
func New(dateString, name string, date time.Time) Holiday {
	return Holiday{
		DateString: dateString,
		Date:       date,
		Name:       name,
	}
}

// Key returns a deterministic identifier derived from the raw date text and name.
func (h Holiday) Key() string {
	sum := sha1.Sum([]byte(h.DateString + "|" + h.Name))
	return fmt.Sprintf("%x", sum)
}

// IsPublicSector reports whether the holiday is restricted to the public sector.
// The page writes the marker in the name or next to the date, so both are checked.
func (h Holiday) IsPublicSector() bool {
	return containsMarker(h.Name) || containsMarker(h.DateString)
}

func containsMarker(s string) bool {
	return strings.Contains(strings.ToLower(s), PublicSectorMarker)
}

// FormattedDate returns the holiday date as YYYY-MM-DD.
func (h Holiday) FormattedDate() string {
	return FormatDate(h.Date)
}

// IsOn reports whether the holiday falls on the same calendar day as t,
// evaluated in the holiday's time zone.
func (h Holiday) IsOn(t time.Time) bool {
	return FormatDate(h.Date) == FormatDate(t.In(h.Date.Location()))
}

// FormatDate formats t as a zero-padded YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Select returns the holidays to report. Public-sector holidays are kept only
// when includePublicSector is true. The result is never nil.
func Select(holidays []Holiday, includePublicSector bool) []Holiday {
	selected := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if !includePublicSector && h.IsPublicSector() {
			continue
		}
		selected = append(selected, h)
	}
	return selected
}

// AnyOn reports whether at least one holiday falls on the calendar day of t.
func AnyOn(holidays []Holiday, t time.Time) bool {
	for _, h := range holidays {
		if h.IsOn(t) {
			return true
		}
	}
	return false
}
