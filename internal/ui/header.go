package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookfinder/internal/state"
)

const (
	appTitle    = "Book Finder"
	loadingText = "Loading books..."
)

// renderHeader renders the title bar with the search status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	parts := []string{bg.Render(appTitle, styles.Logo)}
	if status := m.renderStatus(styles, bg); status != "" {
		parts = append(parts, status)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderStatus describes the session status in one line.
func (m Model) renderStatus(styles Styles, bg BgStyle) string {
	status := m.snapshot.Status
	switch status.Phase() {
	case state.PhaseLoading:
		return bg.Render(m.spinner.View(), styles.AccentText) + bg.Space() +
			bg.Render(loadingText, styles.WarningText.Bold(true))

	case state.PhaseFailed:
		return bg.Render(status.Message(), styles.DangerText)

	case state.PhaseSucceeded:
		count := len(m.snapshot.Results)
		noun := "results"
		if count == 1 {
			noun = "result"
		}
		return bg.Render(fmt.Sprintf("%d %s for", count, noun), styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%q", truncate(m.snapshot.LastQuery, 40)), styles.Text)

	default:
		return bg.Render("Type a title and press Enter", styles.FaintText)
	}
}

// renderInput renders the query input inside a border that lights up when focused.
func (m Model) renderInput() string {
	borderColor := m.theme.Border
	if m.focus == focusInput && m.overlay == overlayNone {
		borderColor = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(max(m.width-2, 1)).
		Render(m.input.View())
}

// renderCommandBar renders the key hints for the focused pane.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints [][2]string
	if m.focus == focusInput {
		hints = [][2]string{{"enter", "search"}, {"tab", "results"}}
	} else {
		hints = [][2]string{{"j/k", "move"}, {"enter", "details"}, {"/", "edit query"}}
	}
	hints = append(hints, [][2]string{{"ctrl+t", "theme"}, {"ctrl+l", "log"}, {"F1", "help"}, {"ctrl+c", "quit"}}...)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render(h[0], styles.AccentText)+bg.Space()+bg.Render(h[1], styles.MutedText))
	}
	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return styles.Footer.Width(m.width).Render(strings.Join(parts, sep))
}
