package views

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

// ResultRow is the display data for one result
type ResultRow struct {
	ID       string
	Title    string // may embed markup, rendered as plain text
	Subtitle string
	Badge    string
	Avatar   string
	Icon     string
	Copied   bool
}

// RowRenderer handles result and placeholder row rendering
type RowRenderer struct {
	styles *Styles
	policy *bluemonday.Policy
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{
		styles: styles,
		policy: bluemonday.StrictPolicy(),
	}
}

// PlainTitle strips markup from a title and decodes its entities
func (rr *RowRenderer) PlainTitle(title string) string {
	return html.UnescapeString(rr.policy.Sanitize(title))
}

// RenderRow renders a two-line result row truncated to width
func (rr *RowRenderer) RenderRow(row ResultRow, selected bool, width int) string {
	title := rr.PlainTitle(row.Title)

	marker := "  "
	if selected {
		marker = "› "
	}

	var glyph string
	if row.Avatar != "" {
		glyph = rr.styles.Avatar.Render(initials(title))
	} else {
		glyph = rr.styles.Glyph.Render(GetGlyph(row.Icon))
	}

	left := marker + glyph + rr.styles.Title.Render(title)
	if row.Badge != "" {
		left += " " + rr.styles.Badge.Render(row.Badge)
	}

	var right string
	if row.Copied {
		right = rr.styles.Copied.Render("Copied!")
	} else {
		right = rr.styles.CopyHint.Render("⧉")
	}

	first := joinEdges(left, right, width)
	second := strings.Repeat(" ", 2+lipgloss.Width(glyph)) + rr.styles.Subtitle.Render(row.Subtitle)
	second = ansi.Truncate(second, width, "…")

	if selected {
		first = rr.styles.SelectionBg.Render(first)
		second = rr.styles.SelectionBg.Render(second)
	}
	return first + "\n" + second
}

// RenderPlaceholder renders one skeleton row shown while results load
func (rr *RowRenderer) RenderPlaceholder(width int) string {
	bar := func(n int) string {
		if n > width-5 {
			n = width - 5
		}
		if n < 1 {
			n = 1
		}
		return strings.Repeat("▒", n)
	}
	first := "  " + rr.styles.Skeleton.Render("██ "+bar(24))
	second := "     " + rr.styles.Skeleton.Render(bar(16))
	return first + "\n" + second
}

// joinEdges places left and right on one line, truncating left to make room
func joinEdges(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	room := width - rightWidth - 1
	if room < 1 {
		return ansi.Truncate(left, width, "…")
	}
	left = ansi.Truncate(left, room, "…")
	gap := width - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// initials returns up to two uppercase initials for an avatar
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			out = append(out, []rune(strings.ToUpper(string(r)))...)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
