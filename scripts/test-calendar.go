package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cristianbgp/peruvian-holidays/internal/calendar"
	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
	"github.com/cristianbgp/peruvian-holidays/internal/scraper"
)

func main() {
	page := "testdata/fixtures/feriados.html"
	if len(os.Args) > 1 {
		page = os.Args[1]
	}

	f, err := os.Open(page)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening page: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	holidays, err := scraper.New().ParseHolidays(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing page: %v\n", err)
		os.Exit(1)
	}

	icsContent := calendar.GenerateICS(holiday.Select(holidays, true), "Feriados del Perú", time.Now())

	// Write to file (owner read/write only)
	filename := "feriados-test.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file with %d holidays: %s\n\n", len(holidays), filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
}
