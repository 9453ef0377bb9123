// ABOUTME: Tags command for listing the category vocabulary.
// ABOUTME: Shows every category with the number of drills carrying it.

package main

import (
	"fmt"

	"github.com/harper/drillbook/internal/models"
	"github.com/harper/drillbook/internal/ui"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := loadRecords()
		if err != nil {
			return fmt.Errorf("failed to read drills: %w", err)
		}

		counts := models.CountTags(res.Records)
		if len(counts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tags found.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTagList(counts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
