// ABOUTME: Conversion of the drill CSV into the searchable HTML page.
// ABOUTME: Prints progress lines and writes the page atomically.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harper/drillbook/internal/extract"
	"github.com/harper/drillbook/internal/page"
	"github.com/harper/drillbook/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runBuild(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.Step(fmt.Sprintf("Reading drills from %s...", cfg.Input)))
	res, err := loadRecords()
	if errors.Is(err, extract.ErrInputNotFound) {
		return fmt.Errorf("CSV file '%s' not found!", cfg.Input) //nolint:staticcheck // Message is shown to the user as-is
	}
	if err != nil {
		return fmt.Errorf("failed to read drills: %w", err)
	}
	fmt.Fprintf(out, "Found %d drills\n", len(res.Records))
	if n := len(res.Skipped); n > 0 {
		fmt.Fprintln(out, ui.Warning(fmt.Sprintf("Skipped %d malformed rows", n)))
	}

	fmt.Fprintln(out, ui.Step("Extracting tags..."))
	doc := page.NewDocument(cfg.Title, res.Records)
	fmt.Fprintf(out, "Found %d unique tags\n", len(doc.Tags))

	fmt.Fprintln(out, ui.Step("Generating HTML..."))
	fmt.Fprintln(out, ui.Step(fmt.Sprintf("Writing HTML to %s...", cfg.Output)))
	if err := writeFileAtomic(cfg.Output, func(w io.Writer) error {
		return page.Render(w, doc)
	}); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	log.Debug("page written", zap.String("path", cfg.Output), zap.Int("drills", len(doc.Records)))

	fmt.Fprintln(out, ui.Success(fmt.Sprintf("Successfully created %s", cfg.Output)))
	fmt.Fprintf(out, "Processed %d drills with %d unique tags\n", len(doc.Records), len(doc.Tags))
	fmt.Fprintf(out, "Open %s in your browser to view the searchable drill database\n", cfg.Output)
	return nil
}

// writeFileAtomic writes through a temp file in the destination directory and
// renames it over path once write succeeds.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".drillbook-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // No-op after a successful rename
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil { //nolint:gosec // Generated page is meant to be world-readable
		return err
	}
	return os.Rename(tmp.Name(), path)
}
