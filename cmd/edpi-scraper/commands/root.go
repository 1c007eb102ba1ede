package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/jd499/valorant-pro-settings-scraper/internal/config"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/models"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/parser"
	"github.com/jd499/valorant-pro-settings-scraper/pkg/scraper"
)

type globalFlags struct {
	configPath      string
	verbose         bool
	input           string
	url             string
	excludeInactive bool
}

// NewRootCmd builds the edpi-scraper command tree. Running it without a
// subcommand prints the eDPI report.
func NewRootCmd(version string) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "edpi-scraper",
		Short:        "edpi-scraper reports the mouse sensitivity settings of Valorant pros.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetHandler(cli.New(cmd.ErrOrStderr()))
			log.SetLevel(log.InfoLevel)
			if flags.verbose {
				log.SetLevel(log.DebugLevel)
				log.Debugf("edpi-scraper version %s", version)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "Config file (json5), merged with <name>.local.json5.")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose log output.")
	pf.StringVar(&flags.input, "input", "", "Read a saved copy of the list page instead of fetching it.")
	pf.StringVar(&flags.url, "url", "", "Override the list page URL.")
	pf.BoolVar(&flags.excludeInactive, "exclude-inactive", false, "Drop free agents, retired players and content creators.")

	rootCmd.AddCommand(
		newReportCmd(flags),
		newRandomCmd(flags),
		newSearchCmd(flags),
		newSimilarCmd(flags),
		newConvertCmd(flags),
	)
	return rootCmd
}

// ExecuteContext runs the command line and exits non-zero on error
func ExecuteContext(ctx context.Context, version string) {
	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if f := cmd.Flag("exclude-inactive"); f != nil && f.Changed {
		cfg.ExcludeInactive = flags.excludeInactive
	}
	if flags.url != "" {
		cfg.URL = flags.url
	}
	return cfg, nil
}

// loadPlayers fetches the list page and extracts its players. ok is false
// when the page could not be downloaded; callers then print nothing.
// Extraction problems are logged and whatever was extracted is returned.
func loadPlayers(cmd *cobra.Command, flags *globalFlags) (players []models.PlayerRecord, ok bool, err error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, false, err
	}

	var content []byte
	if flags.input != "" {
		content, err = scraper.ReadFile(flags.input)
		if err != nil {
			return nil, false, err
		}
	} else {
		client := scraper.NewClient(scraper.Options{UserAgent: cfg.UserAgent, Timeout: cfg.Timeout()})
		content, err = client.FetchURL(cmd.Context(), cfg.URL)
		if err != nil {
			log.WithError(err).Debug("page not available, skipping")
			return nil, false, nil
		}
	}

	result, err := parser.Extract(cmd.Context(), content, parser.Options{
		TableID:         cfg.TableID,
		ExcludeInactive: cfg.ExcludeInactive,
	})
	if err != nil {
		log.WithError(err).Error("An error occurred while extracting players")
	}
	for _, skipped := range result.Skipped {
		log.WithFields(log.Fields{"row": skipped.Index, "reason": skipped.Reason}).Debug("row skipped")
	}
	return result.Players, true, nil
}
