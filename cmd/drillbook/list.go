// ABOUTME: List command for browsing drills in the terminal.
// ABOUTME: Applies the same search and tag filters as the generated page.

package main

import (
	"fmt"

	"github.com/harper/drillbook/internal/filter"
	"github.com/harper/drillbook/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List drills",
	Long: `List drills from the configured input, optionally filtered.

--search matches drill names and categories, ignoring case. Every --tag must
be present on a drill for it to be shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		searchFlag, _ := cmd.Flags().GetString("search")
		tagFlags, _ := cmd.Flags().GetStringArray("tag")

		res, err := loadRecords()
		if err != nil {
			return fmt.Errorf("failed to read drills: %w", err)
		}

		state := filter.New(searchFlag, tagFlags...)
		shown := state.Apply(res.Records)

		out := cmd.OutOrStdout()
		if len(shown) == 0 {
			fmt.Fprintln(out, "No drills found.")
		}
		for _, r := range shown {
			fmt.Fprint(out, ui.FormatRecordListItem(r))
		}
		fmt.Fprint(out, ui.FormatFilterStatus(filter.CountLabel(len(shown)), state.Summary()))
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "search drill names and categories")
	listCmd.Flags().StringArrayP("tag", "t", nil, "only drills with this category (repeatable)")
	rootCmd.AddCommand(listCmd)
}
