// ABOUTME: Inspect command for reading back a generated page.
// ABOUTME: Decodes the embedded drill data and renders a markdown summary.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harper/drillbook/internal/page"
	"github.com/harper/drillbook/internal/ui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <page.html>",
	Short: "Show the drills embedded in a generated page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		raw, _ := cmd.Flags().GetBool("raw")

		f, err := os.Open(path) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return fmt.Errorf("failed to open page: %w", err)
		}
		defer func() { _ = f.Close() }()

		payload, err := page.DecodePayload(f)
		if err != nil {
			return fmt.Errorf("failed to read page: %w", err)
		}

		md := ui.ReportMarkdown(filepath.Base(path), payload.Records, payload.Tags)
		if raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		out, _ := ui.RenderMarkdown(md)
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("raw", false, "print markdown without terminal rendering")
	rootCmd.AddCommand(inspectCmd)
}
