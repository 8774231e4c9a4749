package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
	"github.com/spf13/cobra"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Report whether today is a holiday",
		Long: `Report whether today is a holiday in the configured time zone.
Exits 2 when it is, 0 when it is not and 1 on error.`,
		Args: cobra.NoArgs,
		RunE: runToday,
	}

	cmd.Flags().BoolVar(&flagPublicSector, "public-sector", false, "Count public-sector-only days")
	cmd.Flags().StringVar(&flagURL, "url", "", "Holiday page URL (overrides PERU_HOLIDAYS_SCRAPER_SOURCE_URL)")

	return cmd
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := setupLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	sc, err := newScraper(cfg)
	if err != nil {
		return err
	}

	all, err := sc.FetchHolidays(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching holidays: %w", err)
	}

	today := time.Now().In(loc)
	match, ok := holidayOn(holiday.Select(all, flagPublicSector), today)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not a holiday.\n", holiday.FormatDate(today))
		os.Exit(ExitSuccess)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is a holiday: %s\n", holiday.FormatDate(today), match.Name)
	os.Exit(ExitHoliday)
	return nil
}

// holidayOn returns the first holiday falling on t's calendar day.
func holidayOn(holidays []holiday.Holiday, t time.Time) (holiday.Holiday, bool) {
	for _, h := range holidays {
		if h.IsOn(t) {
			return h, true
		}
	}
	return holiday.Holiday{}, false
}
