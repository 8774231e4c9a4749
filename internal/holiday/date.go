package holiday

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cristianbgp/peruvian-holidays/internal/logger"
)

var (
	// ErrNoDate means the text has no "<day> de <month>" sequence.
	ErrNoDate = errors.New("no day/month pattern")
	// ErrUnknownMonth means the month word is not one of the twelve Spanish month names.
	ErrUnknownMonth = errors.New("unknown month")
)

// dayMonthPattern matches "23 de julio" anywhere in the text, e.g. "Miércoles 23 de julio".
var dayMonthPattern = regexp.MustCompile(`(?i)(\d+)\s+de\s+(\w+)`)

var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// ParsedDate is the outcome of parsing a Spanish date string.
// When Fallback is true, Date holds the parse-time clock reading and Err says why.
type ParsedDate struct {
	Date     time.Time
	Fallback bool
	Err      error
}

// Parser resolves Spanish partial dates against a clock.
type Parser struct {
	now func() time.Time
	loc *time.Location
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithClock overrides the clock used for year inference and fallbacks.
func WithClock(now func() time.Time) ParserOption {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLocation sets the time zone resolved dates are expressed in.
func WithLocation(loc *time.Location) ParserOption {
	return func(p *Parser) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// NewParser creates a Parser using time.Now in the local time zone unless overridden.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the time zone of resolved dates.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// Now returns the parser's clock reading in its location.
func (p *Parser) Now() time.Time {
	return p.now().In(p.loc)
}

// Parse converts text such as "Miércoles 23 de julio" into a calendar date.
//
// The year is the current one unless the month is earlier than the current
// month, in which case it is next year. A holiday earlier in the current month
// therefore resolves to a past date.
//
// Parse never fails: unmatched text or an unknown month yields the current
// time with Fallback set.
func (p *Parser) Parse(text string) ParsedDate {
	now := p.Now()

	match := dayMonthPattern.FindStringSubmatch(text)
	if match == nil {
		return p.fallback(text, now, ErrNoDate)
	}

	day, err := strconv.Atoi(match[1])
	if err != nil {
		return p.fallback(text, now, fmt.Errorf("%w: day %q", ErrNoDate, match[1]))
	}

	month, ok := spanishMonths[strings.ToLower(match[2])]
	if !ok {
		return p.fallback(text, now, fmt.Errorf("%w: %q", ErrUnknownMonth, match[2]))
	}

	year := now.Year()
	if month < now.Month() {
		year++
	}

	return ParsedDate{
		Date: time.Date(year, month, day, 0, 0, 0, 0, p.loc),
	}
}

func (p *Parser) fallback(text string, now time.Time, err error) ParsedDate {
	logger.Warn("Could not parse date string", logger.Fields{
		"date_string": text,
		"reason":      err.Error(),
	})
	logger.IncrCounter("holiday.date_fallbacks")

	return ParsedDate{
		Date:     now,
		Fallback: true,
		Err:      err,
	}
}

var defaultParser = NewParser()

// ParseDate parses text with the default parser and returns only the date.
func ParseDate(text string) time.Time {
	return defaultParser.Parse(text).Date
}
