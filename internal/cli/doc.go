// Package cli implements the command-line interface for peruvian-holidays.
//
// The cli package provides the Cobra-based command tree: serve runs the HTTP
// API, list prints the scraped holidays (text/JSON/iCalendar, sorted by date,
// name or page order) and today reports whether the current day is a holiday
// through its exit code. It coordinates the config, scraper and api packages.
package cli
