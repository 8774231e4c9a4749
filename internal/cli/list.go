package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagSort   string
	flagFile   string
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the holidays published on gob.pe",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().BoolVar(&flagPublicSector, "public-sector", false, "Include public-sector-only days")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, json or ics")
	cmd.Flags().StringVar(&flagSort, "sort", "source", "Sort order: date, name or source")
	cmd.Flags().StringVar(&flagURL, "url", "", "Holiday page URL (overrides PERU_HOLIDAYS_SCRAPER_SOURCE_URL)")
	cmd.Flags().StringVar(&flagFile, "file", "", "Parse a saved copy of the holiday page instead of fetching it")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON && format != FormatICS {
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'ics')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByDate && order != SortByName && order != SortBySource {
		return fmt.Errorf("invalid sort order: %s (must be 'date', 'name' or 'source')", flagSort)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := setupLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	sc, err := newScraper(cfg)
	if err != nil {
		return err
	}

	var (
		all    []holiday.Holiday
		source string
	)
	if flagFile != "" {
		source = flagFile
		f, err := os.Open(flagFile)
		if err != nil {
			return fmt.Errorf("opening page: %w", err)
		}
		defer f.Close()

		all, err = sc.ParseHolidays(f)
		if err != nil {
			return err
		}
	} else {
		source = sc.URL()
		all, err = sc.FetchHolidays(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching holidays: %w", err)
		}
	}

	holidays := holiday.Select(all, flagPublicSector)
	sortHolidays(holidays, order)

	result := &OutputResult{
		CheckedAt: time.Now().UTC(),
		Source:    source,
		Holidays:  holidays,
		Count:     len(holidays),
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
