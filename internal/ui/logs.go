package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookfinder/internal/logtail"
)

// logState holds the log overlay contents.
type logState struct {
	lines  []string
	err    error
	loaded bool
}

type logTailMsg struct {
	lines []string
	err   error
}

// loadLogs reads the tail of the log file off the update loop.
func (m *Model) loadLogs() tea.Cmd {
	path := m.logPath
	if path == "" {
		m.logState = logState{loaded: true}
		m.updateLogViewport()
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogOverlayLines)
		return logTailMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogTail(msg logTailMsg) {
	m.logState = logState{lines: msg.lines, err: msg.err, loaded: true}
	m.updateLogViewport()
	m.logViewport.GotoBottom()
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeOverlay()
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.loadLogs()
		return m, cmd
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logViewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.ViewUp()
	}
	return m, nil
}

// updateLogViewport sizes the log viewport and renders the loaded lines.
func (m *Model) updateLogViewport() {
	width, height := m.overlaySize()
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	m.logViewport.SetContent(m.renderLogContent(width))
}

// renderLogContent colorizes the loaded log lines.
func (m Model) renderLogContent(width int) string {
	styles := m.theme.Styles()

	switch {
	case m.logPath == "":
		return styles.MutedText.Render("Logging to a file is disabled.")
	case !m.logState.loaded:
		return styles.MutedText.Render("Loading log...")
	case m.logState.err != nil:
		return styles.DangerText.Render("Read log failed: " + m.logState.err.Error())
	case len(m.logState.lines) == 0:
		return styles.MutedText.Render("No log entries")
	}

	out := make([]string, 0, len(m.logState.lines))
	for i, line := range m.logState.lines {
		num := styles.FaintText.Render(fmt.Sprintf("%4d │ ", i+1))
		out = append(out, num+m.formatLogLine(line, max(width-7, 10)))
	}
	return strings.Join(out, "\n")
}

// formatLogLine renders one JSON log entry as "time LEVEL [logger] msg
// fields". Lines that are not JSON objects are shown as-is.
func (m Model) formatLogLine(line string, width int) string {
	styles := m.theme.Styles()
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return styles.Text.Render(truncate(line, width))
	}

	ts := logField(entry, "ts")
	if len(ts) >= 19 && strings.Contains(ts, "T") {
		ts = ts[11:19]
	}
	level := strings.ToUpper(logField(entry, "level"))

	parts := []string{styles.FaintText.Render(ts), m.levelStyle(level).Render(fmt.Sprintf("%-5s", level))}
	if name := logField(entry, "logger"); name != "" {
		parts = append(parts, styles.AccentText.Render("["+name+"]"))
	}
	parts = append(parts, styles.Text.Render(logField(entry, "msg")))
	if extra := logExtras(entry); extra != "" {
		parts = append(parts, styles.MutedText.Render(extra))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, " "))
}

func logField(entry map[string]any, name string) string {
	switch v := entry[name].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// logExtras renders the structured fields other than the standard keys, sorted by name.
func logExtras(entry map[string]any) string {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case "ts", "level", "logger", "msg", "caller", "stacktrace":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	extras := make([]string, 0, len(keys))
	for _, k := range keys {
		extras = append(extras, k+"="+logField(entry, k))
	}
	return strings.Join(extras, " ")
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN":
		return styles.WarningText
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText
	case "DEBUG":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.Text.Bold(true).Render("Log")
	if m.logPath != "" {
		title += "  " + styles.FaintText.Render(truncateMiddle(m.logPath, 60))
	}
	hint := styles.FaintText.Render("esc close • r reload • j/k scroll • g/G top/bottom")
	return m.renderModal(title + "\n\n" + m.logViewport.View() + "\n\n" + hint)
}
