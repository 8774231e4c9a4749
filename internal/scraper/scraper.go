package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
	"github.com/cristianbgp/peruvian-holidays/internal/logger"
)

const (
	FeriadosURL = "https://www.gob.pe/feriados"

	// Browser-like headers; gob.pe rejects obvious bots.
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	Accept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	AcceptLanguage = "es-PE,es;q=0.9,en;q=0.8"

	// Timeout is the default client timeout. WithHTTPClient replaces it.
	Timeout = 30 * time.Second
)

// Scraper handles fetching and parsing the gob.pe holiday page
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
	parser    *holiday.Parser
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithURL points the scraper at a different page.
func WithURL(url string) Option {
	return func(s *Scraper) {
		s.url = url
	}
}

// WithHTTPClient replaces the HTTP client, e.g. to change the timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		s.userAgent = ua
	}
}

// WithParser sets the date parser used to resolve holiday dates.
func WithParser(p *holiday.Parser) Option {
	return func(s *Scraper) {
		s.parser = p
	}
}

// New creates a new Scraper instance. Fetches are bounded by the client's
// Timeout and by the context passed to Extract or FetchHolidays.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:       FeriadosURL,
		userAgent: UserAgent,
		parser:    holiday.NewParser(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the page the scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// Extract fetches and parses the holiday page. It never fails: on any error it
// logs a diagnostic and returns an empty, non-nil slice.
func (s *Scraper) Extract(ctx context.Context) []holiday.Holiday {
	start := time.Now()
	logger.IncrCounter("scraper.fetches")

	holidays, err := s.FetchHolidays(ctx)
	logger.RecordTiming("scraper.fetch", time.Since(start))

	if err != nil {
		logger.IncrCounter("scraper.failures")
		logger.Error("Error extracting holidays", logger.Fields{
			"url": s.url,
		}, err)
		return []holiday.Holiday{}
	}

	logger.SetGauge("scraper.last_holiday_count", float64(len(holidays)))
	logger.Debug("Extracted holidays", logger.Fields{
		"url":      s.url,
		"count":    len(holidays),
		"duration": time.Since(start).String(),
	})

	return holidays
}

// FetchHolidays fetches and parses the holiday page, returning any error.
func (s *Scraper) FetchHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", Accept)
	req.Header.Set("Accept-Language", AcceptLanguage)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.ParseHolidays(resp.Body)
}

// ParseHolidays extracts holidays from an HTML document. Entries missing a
// name or a date are skipped. The result is never nil.
func (s *Scraper) ParseHolidays(r io.Reader) ([]holiday.Holiday, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	holidays := make([]holiday.Holiday, 0)
	for _, rl := range rules {
		for _, e := range rl.scan(doc) {
			if !e.complete() {
				logger.Debug("Skipping incomplete holiday entry", logger.Fields{
					"rule": rl.name,
					"date": e.dateText,
					"name": e.name,
				})
				continue
			}

			parsed := s.parser.Parse(e.dateText)
			holidays = append(holidays, holiday.New(e.dateText, e.name, parsed.Date))
		}
	}

	return holidays, nil
}
