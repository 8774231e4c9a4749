package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cristianbgp/peruvian-holidays/internal/calendar"
	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

const calendarName = "Feriados del Perú"

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time         `json:"checked_at"`
	Source    string            `json:"source"`
	Holidays  []holiday.Holiday `json:"holidays"`
	Count     int               `json:"count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(result.Holidays, calendarName, result.CheckedAt))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs one holiday per line: date, name, and the page's own wording.
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.Count == 0 {
		fmt.Fprintln(w, "No holidays found.")
		return nil
	}

	for _, h := range result.Holidays {
		line := fmt.Sprintf("%s  %s", h.FormattedDate(), h.Name)
		if h.IsPublicSector() {
			line += " (sector público)"
		}
		fmt.Fprintln(w, line)

		if verbose {
			fmt.Fprintf(w, "    Text: %s\n", h.DateString)
			fmt.Fprintf(w, "    ID:   %s\n", h.Key())
		}
	}
	fmt.Fprintf(w, "\nTotal: %d holidays\n", result.Count)
	if verbose && result.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", result.Source)
	}

	return nil
}
