// Package calendar renders holidays as an iCalendar (RFC 5545) document.
package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
)

const (
	ProdID      = "-//peruvian-holidays//feriados//ES"
	UIDDomain   = "feriados.gob.pe"
	ContentType = "text/calendar; charset=utf-8"
)

// GenerateICS generates an iCalendar document with one all-day event per holiday.
// An empty list yields a calendar without events.
func GenerateICS(holidays []holiday.Holiday, name string, stamp time.Time) string {
	var ics strings.Builder

	writeLine(&ics, "BEGIN:VCALENDAR")
	writeLine(&ics, "VERSION:2.0")
	writeLine(&ics, fmt.Sprintf("PRODID:%s", ProdID))
	writeLine(&ics, "CALSCALE:GREGORIAN")
	writeLine(&ics, "METHOD:PUBLISH")
	if name != "" {
		writeLine(&ics, fmt.Sprintf("X-WR-CALNAME:%s", escapeICS(name)))
	}

	for _, h := range holidays {
		writeEvent(&ics, h, stamp)
	}

	writeLine(&ics, "END:VCALENDAR")
	return ics.String()
}

func writeEvent(ics *strings.Builder, h holiday.Holiday, stamp time.Time) {
	writeLine(ics, "BEGIN:VEVENT")
	writeLine(ics, fmt.Sprintf("UID:%s@%s", h.Key(), UIDDomain))
	writeLine(ics, fmt.Sprintf("DTSTAMP:%s", formatICSTime(stamp)))

	// All-day event: DTEND is exclusive.
	writeLine(ics, fmt.Sprintf("DTSTART;VALUE=DATE:%s", formatICSDate(h.Date)))
	writeLine(ics, fmt.Sprintf("DTEND;VALUE=DATE:%s", formatICSDate(h.Date.AddDate(0, 0, 1))))

	writeLine(ics, fmt.Sprintf("SUMMARY:%s", escapeICS(h.Name)))
	writeLine(ics, fmt.Sprintf("DESCRIPTION:%s", escapeICS(h.DateString)))
	if h.IsPublicSector() {
		writeLine(ics, "CATEGORIES:SECTOR PUBLICO")
	}
	writeLine(ics, "STATUS:CONFIRMED")
	writeLine(ics, "TRANSP:TRANSPARENT")
	writeLine(ics, "END:VEVENT")
}

// maxLineOctets is the RFC 5545 content line limit, excluding CRLF.
const maxLineOctets = 75

// writeLine writes one content line, folding it into 75-octet chunks.
// Continuation lines start with a space, and UTF-8 sequences are never split.
func writeLine(ics *strings.Builder, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		ics.WriteString(line[:cut])
		ics.WriteString("\r\n ")
		line = line[cut:]
		// The leading space counts toward the limit.
		limit = maxLineOctets - 1
	}
	ics.WriteString(line)
	ics.WriteString("\r\n")
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats the calendar day of t, in t's own time zone.
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar text values
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
