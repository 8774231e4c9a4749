package cli

import (
	"sort"
	"strings"

	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByName   SortOrder = "name"
	SortBySource SortOrder = "source"
)

// sortHolidays sorts holidays in place. SortBySource keeps page order.
func sortHolidays(holidays []holiday.Holiday, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.SliceStable(holidays, func(i, j int) bool {
			return compareByDate(holidays[i], holidays[j])
		})
	case SortByName:
		sort.SliceStable(holidays, func(i, j int) bool {
			ni, nj := strings.ToLower(holidays[i].Name), strings.ToLower(holidays[j].Name)
			if ni != nj {
				return ni < nj
			}
			// If names are equal, sort by date
			return holidays[i].Date.Before(holidays[j].Date)
		})
	}
}

// compareByDate reports whether i falls before j, breaking ties by name.
func compareByDate(i, j holiday.Holiday) bool {
	if !i.Date.Equal(j.Date) {
		return i.Date.Before(j.Date)
	}
	return strings.ToLower(i.Name) < strings.ToLower(j.Name)
}
