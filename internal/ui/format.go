// ABOUTME: Terminal UI formatting for catalog output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/catalog/internal/models"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Notice(msg string) string {
	return yellow("! ") + msg
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// FormatWarnings lists warnings in row order under a heading. It returns ""
// when there is nothing to report.
func FormatWarnings(warnings []models.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n%s\n", yellow("Warnings:")))
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint(fmt.Sprintf("Row %d:", w.Row)), w.Message))
	}
	return sb.String()
}

func FormatDataRows(n int) string {
	return faint(fmt.Sprintf("Found %s", plural(n, "data row")))
}

func FormatImportSummary(cards, warnings, duplicates int) string {
	return fmt.Sprintf("\nSummary: %s converted, %s, %s skipped\n",
		plural(cards, "card"), plural(warnings, "warning"), plural(duplicates, "duplicate"))
}

func FormatItemCount(shown, total int) string {
	return faint(fmt.Sprintf("Showing %d of %d items", shown, total)) + "\n"
}

func labels(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = models.Label(v)
	}
	return strings.Join(out, ", ")
}

func FormatCardListItem(card models.Card) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s\n", bold(card.Title)))
	if card.Description != "" {
		sb.WriteString(fmt.Sprintf("    %s\n", card.Description))
	}
	if len(card.Categories) > 0 {
		sb.WriteString(fmt.Sprintf("    %s %s\n", faint("Categories:"), cyan(labels(card.Categories))))
	}
	if len(card.Types) > 0 {
		sb.WriteString(fmt.Sprintf("    %s %s\n", faint("Types:"), cyan(labels(card.Types))))
	}
	if card.Visibility != "" {
		sb.WriteString(fmt.Sprintf("    %s %s\n", faint("Visibility:"), card.Visibility))
	}
	if card.Link != "" {
		sb.WriteString(fmt.Sprintf("    %s %s\n", faint("Link:"), card.Link))
	}

	return sb.String()
}

// CardsMarkdown renders cards as a markdown document, one section per card.
func CardsMarkdown(cards []models.Card) string {
	var sb strings.Builder

	for _, c := range cards {
		title := c.Title
		if c.Link != "" {
			title = fmt.Sprintf("[%s](%s)", c.Title, c.Link)
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", title))
		if c.Description != "" {
			sb.WriteString(c.Description + "\n\n")
		}
		if len(c.Categories) > 0 {
			sb.WriteString(fmt.Sprintf("- **Categories:** %s\n", labels(c.Categories)))
		}
		if len(c.Types) > 0 {
			sb.WriteString(fmt.Sprintf("- **Types:** %s\n", labels(c.Types)))
		}
		if c.Visibility != "" {
			sb.WriteString(fmt.Sprintf("- **Visibility:** %s\n", c.Visibility))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func RenderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
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
