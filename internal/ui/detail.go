package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookfinder/internal/search"
)

// openDetail selects the row under the cursor and shows the detail overlay.
func (m *Model) openDetail() {
	if _, err := m.session.Select(m.cursor); err != nil {
		return
	}
	m.refresh()
	m.overlay = overlayDetail
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
}

// handleDetailKey processes keyboard input while the detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeOverlay()
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfViewUp()
	}
	return m, nil
}

// overlaySize returns the inner width and height of a centered overlay.
func (m Model) overlaySize() (int, int) {
	width := clamp(m.width-8, 20, OverlayMaxWidth)
	height := max(m.height-10, 3) // border, padding, and hint rows
	return width, height
}

// updateDetailViewport sizes the detail viewport and renders the selection into it.
func (m *Model) updateDetailViewport() {
	width, height := m.overlaySize()
	if m.detailViewport.Width == 0 {
		m.detailViewport = viewport.New(width, height)
	}
	m.detailViewport.Width = width
	m.detailViewport.Height = height

	doc, ok := m.session.Selected()
	if !ok {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(search.DetailFor(doc, m.covers), width))
}

// renderDetailContent lays out one book's details.
func (m Model) renderDetailContent(d search.Detail, width int) string {
	styles := m.theme.Styles()
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(18)
	value := styles.Text.Width(max(width-18, 10))

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Width(width).Render(d.Title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 40))))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Author(s)", d.Authors},
		{"First published", d.Year},
		{"Publisher(s)", d.Publishers},
		{"Subjects", d.Subjects},
		{"Cover", d.CoverURL},
	}
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row[0]), value.Render(row[1])))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the detail overlay.
func (m Model) renderDetail() string {
	hint := m.theme.Styles().FaintText.Render("esc close • j/k scroll")
	return m.renderModal(m.detailViewport.View() + "\n\n" + hint)
}

// renderModal draws content in a bordered box centered on the screen.
func (m Model) renderModal(content string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
