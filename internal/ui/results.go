package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookfinder/internal/search"
)

// renderResults renders up to height rows of result cards, scrolled so the
// cursor stays visible.
func (m Model) renderResults(height int) string {
	bg := NewBgStyle(m.theme.Background)
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	results := m.snapshot.Results

	if len(results) == 0 {
		return bg.FillLine(bg.Render("  No results yet.", styles.FaintText), m.width) +
			strings.Repeat("\n"+bg.FillLine("", m.width), max(height-1, 0))
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(results))

	compact := m.width < LayoutCompactWidth
	focused := m.focus == focusResults && m.overlay == overlayNone

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		card := search.CardFor(results[i], m.covers)
		lines = append(lines, m.renderCard(card, i == m.cursor && focused, compact))
	}
	for len(lines) < height {
		lines = append(lines, bg.FillLine("", m.width))
	}
	return strings.Join(lines, "\n")
}

// renderCard renders one result row: title, authors, and (when wide) the cover link.
func (m Model) renderCard(card search.Card, selected, compact bool) string {
	bgColor := m.theme.Background
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	marker := "  "
	titleStyle := styles.Text.Bold(true)
	if selected {
		marker = "> "
		titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText)).Bold(true)
	}

	titleWidth := max(m.width/2, 20)
	line := bg.Render(marker, styles.AccentText) +
		bg.Render(truncate(card.Title, titleWidth), titleStyle) +
		bg.Spaces(2) +
		bg.Render(truncate(card.Authors, max(m.width/3, 10)), styles.MutedText)
	if !compact {
		line += bg.Spaces(2) + bg.Render(truncateMiddle(card.CoverURL, 48), styles.FaintText)
	}
	return bg.FillLine(line, m.width)
}
