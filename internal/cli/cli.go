package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cristianbgp/peruvian-holidays/internal/config"
	"github.com/cristianbgp/peruvian-holidays/internal/holiday"
	"github.com/cristianbgp/peruvian-holidays/internal/logger"
	"github.com/cristianbgp/peruvian-holidays/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitHoliday = 2
)

var (
	flagVerbose      bool
	flagURL          string
	flagPublicSector bool
)

// NewRootCmd creates the root command. Without a subcommand it serves the API.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peruvian-holidays",
		Short: "Peruvian public holidays scraped from gob.pe",
		Long: `Scrapes the official holiday page at https://www.gob.pe/feriados and
serves it as a small JSON API, or prints it from the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newServeCmd(), newListCmd(), newTodayCmd())

	return cmd
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagURL != "" {
		cfg.Scraper.SourceURL = flagURL
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// setupLogger installs the process-wide logger described by cfg.
func setupLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithFormat(level, logger.Format(cfg.Log.Format), w)
	logger.SetDefault(log)
	return log, nil
}

// newScraper builds a scraper honoring the configured source, timeout,
// user agent and time zone.
func newScraper(cfg *config.Config) (*scraper.Scraper, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return scraper.New(
		scraper.WithURL(cfg.Scraper.SourceURL),
		scraper.WithHTTPClient(&http.Client{Timeout: cfg.Scraper.Timeout}),
		scraper.WithUserAgent(cfg.Scraper.UserAgent),
		scraper.WithParser(holiday.NewParser(holiday.WithLocation(loc))),
	), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
