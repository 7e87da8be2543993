// Package render provides lipgloss themes and line styling for harness
// report output.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sj99642/minicheck/pkg/harness"
)

// Styler returns a harness.StyleFunc that colors report lines with the
// given theme and prefixes verdict lines with the theme's icons. When
// width > 0, lines wider than width display columns are truncated with an
// ellipsis; display width is measured with go-runewidth so East Asian Wide
// characters count correctly.
func Styler(theme Theme, width int) harness.StyleFunc {
	return func(kind harness.LineKind, text string) string {
		text = clip(text, width)
		icon, style := kindStyle(theme, kind)
		if icon != "" {
			text = icon + " " + text
		}
		return style.Render(text)
	}
}

func kindStyle(theme Theme, kind harness.LineKind) (string, lipgloss.Style) {
	switch kind {
	case harness.KindStart:
		return "", theme.Bold
	case harness.KindPass, harness.KindSubPass:
		return theme.Icons.Pass, theme.Success
	case harness.KindFail, harness.KindSubFail:
		return theme.Icons.Fail, theme.Error
	case harness.KindRollup:
		return "", theme.Muted
	case harness.KindSummary:
		return "", theme.Primary
	default:
		return "", theme.Primary
	}
}

// clip truncates s to at most width display columns, leaving room for the
// icon prefix added afterwards.
func clip(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	const iconCols = 2
	return runewidth.Truncate(s, width-iconCols, "...")
}
