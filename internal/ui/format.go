// ABOUTME: Terminal UI formatting for drillbook output.
// ABOUTME: Uses glamour for markdown reports and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/drillbook/internal/models"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func FormatRecordListItem(r *models.Record) string {
	var sb strings.Builder

	// ID prefix and name
	idPrefix := r.ID.String()[:6]
	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(idPrefix), bold(r.Name)))

	if len(r.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("         %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(r.Tags, ", "))))
	}

	if r.Link != "" {
		sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Link:"), faint(r.Link)))
	}

	return sb.String()
}

func FormatTagList(tags []models.TagCount) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			cyan(t.Name),
			faint(fmt.Sprintf("(%d)", t.Count))))
	}

	return sb.String()
}

// FormatFilterStatus prints the result count and active-filter summary lines.
func FormatFilterStatus(countLabel, summary string) string {
	return Separator() + fmt.Sprintf("%s  %s\n", bold(countLabel), faint(summary))
}

// ReportMarkdown builds a markdown summary of a drill collection.
func ReportMarkdown(title string, records []*models.Record, tags []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("%d drills, %d categories\n\n", len(records), len(tags)))

	if len(tags) > 0 {
		sb.WriteString("## Categories\n\n")
		quoted := make([]string, len(tags))
		for i, t := range tags {
			quoted[i] = "`" + strings.ReplaceAll(t, "`", "'") + "`"
		}
		sb.WriteString(strings.Join(quoted, " "))
		sb.WriteString("\n\n")
	}

	if len(records) > 0 {
		sb.WriteString("## Drills\n\n")
		sb.WriteString("| Drill | Categories | Link |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, r := range records {
			link := "-"
			if r.Link != "" {
				link = escapeMarkdown(r.Link)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				escapeMarkdown(r.Name),
				escapeMarkdown(strings.Join(r.Tags, ", ")),
				link))
		}
	}

	return sb.String()
}

func escapeMarkdown(s string) string {
	return strings.NewReplacer("|", "\\|", "\n", " ").Replace(s)
}

func RenderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Warning(msg string) string {
	return yellow("! ") + msg
}

// Step formats a progress line of the conversion.
func Step(msg string) string {
	return faint("→ ") + msg
}
