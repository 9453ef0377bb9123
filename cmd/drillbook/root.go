// ABOUTME: Root command wiring config, logging, and the default conversion.
// ABOUTME: Running drillbook with no arguments converts the CSV into the HTML page.

package main

import (
	"fmt"
	"os"

	"github.com/harper/drillbook/internal/config"
	"github.com/harper/drillbook/internal/extract"
	"github.com/harper/drillbook/internal/logger"
	"github.com/harper/drillbook/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "drillbook",
	Short: "Turn a drill spreadsheet into a searchable HTML page",
	Long: `drillbook reads a CSV export of drills (name, coach, theme, sub-category, link)
and writes a single self-contained HTML page for browsing, searching, and
filtering the drills by category. The page needs no server.

Run without arguments to convert the configured input file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(verbose)
		if err != nil {
			return err
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log.Debug("config loaded",
			zap.String("input", cfg.Input),
			zap.String("output", cfg.Output),
			zap.String("title", cfg.Title))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	RunE: runBuild,
}

// Execute runs the command tree and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

// loadRecords reads the configured input and logs every skipped row.
func loadRecords() (*extract.Result, error) {
	res, err := extract.ReadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	for _, s := range res.Skipped {
		log.Debug("skipped row", zap.Int("line", s.Line), zap.String("reason", s.Reason))
	}
	return res, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./drillbook.yaml or $XDG_CONFIG_HOME/drillbook/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}
