// ABOUTME: Export command for the drill data behind the page.
// ABOUTME: Supports JSON and YAML export formats.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/harper/drillbook/internal/models"
	"github.com/harper/drillbook/internal/page"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ExportData struct {
	ExportedAt   time.Time `json:"exported_at" yaml:"exported_at"`
	Version      string    `json:"version" yaml:"version"`
	page.Payload `yaml:",inline"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export drills",
	Long:  `Export the drills and category list to JSON or YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		var marshal func(any) ([]byte, error)
		switch format {
		case "json":
			marshal = marshalJSON
		case "yaml":
			marshal = yaml.Marshal
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		res, err := loadRecords()
		if err != nil {
			return fmt.Errorf("failed to read drills: %w", err)
		}

		export := ExportData{
			ExportedAt: time.Now().UTC(),
			Version:    "1.0",
			Payload: page.Payload{
				Records: res.Records,
				Tags:    models.Vocabulary(res.Records),
			},
		}

		data, err := marshal(export)
		if err != nil {
			return err
		}

		if outputPath == "" || outputPath == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		return writeFileAtomic(outputPath, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
	},
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|yaml)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
}
