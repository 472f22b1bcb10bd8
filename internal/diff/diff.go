// Package diff computes and renders unified line diffs between the
// original and repaired content of a file.
package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
)

var (
	hunkStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
)

// Unified computes a unified diff between the original and fixed content,
// labeled "Original" and "Fixed", with three lines of context. An empty
// result means the two are textually identical.
func Unified(original, fixed string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(fixed),
		FromFile: "Original",
		ToFile:   "Fixed",
		Context:  3,
	})
}

// Colorize renders a unified diff with added lines in green, removed lines
// in red and hunk headers highlighted. Styling degrades to plain text when
// the terminal does not support color.
func Colorize(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			b.WriteString(hunkStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
