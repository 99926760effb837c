package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/bookfinder/internal/openlibrary"
	"github.com/five82/bookfinder/internal/prefs"
	"github.com/five82/bookfinder/internal/search"
	"github.com/five82/bookfinder/internal/state"
)

// focus is the pane receiving keys when no overlay is open.
type focus int

const (
	focusInput focus = iota
	focusResults
)

// overlay is the modal currently drawn over the main view.
type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlayHelp
	overlayLogs
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Workflow  *search.Workflow
	Covers    openlibrary.Covers
	ThemeName string
	PrefsPath string
	LogPath   string
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	workflow  *search.Workflow
	session   *state.Session
	queries   *search.QueryStore
	covers    openlibrary.Covers
	prefsPath string
	logPath   string
	logger    *zap.Logger
	keys      keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	focus   focus
	overlay overlay

	// Search state
	input    textinput.Model
	spinner  spinner.Model
	pending  int // fetches in flight
	snapshot state.Snapshot
	cursor   int
	replay   string // remembered query to submit from Init

	// Overlays
	detailViewport viewport.Model
	logViewport    viewport.Model
	logState       logState
}

// New creates a new Bubble Tea model. When a query was remembered from a
// previous run it is placed in the input and submitted by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a book title..."
	ti.CharLimit = QueryCharLimit
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:       ctx,
		workflow:  opts.Workflow,
		session:   opts.Workflow.Session(),
		queries:   opts.Workflow.Queries(),
		covers:    opts.Covers,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		logger:    logger.Named("ui"),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		focus:     focusInput,
		input:     ti,
		spinner:   sp,
	}

	if query, ok := m.queries.LoadRemembered(); ok {
		m.input.SetValue(query)
		m.input.CursorEnd()
		m.replay = query
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.replay != "" {
		cmds = append(cmds, replayCmd(m.replay))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(m.width-8, 10)
		m.resizeOverlays()
		return m, nil

	case replayMsg:
		cmd := m.submit(msg.query, search.OriginReplay)
		return m, cmd

	case searchResultMsg:
		m.workflow.Apply(search.Result(msg))
		if m.pending > 0 {
			m.pending--
		}
		m.cursor = 0
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logTailMsg:
		m.handleLogTail(msg)
		return m, nil
	}

	if m.focus == focusInput && m.overlay == overlayNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayDetail:
		return m.renderDetail()
	case overlayLogs:
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		if m.overlay == overlayHelp {
			m.overlay = overlayNone
		} else {
			m.closeOverlay()
			m.overlay = overlayHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.ShowLogs):
		if m.overlay == overlayLogs {
			m.overlay = overlayNone
			return m, nil
		}
		m.closeOverlay()
		m.overlay = overlayLogs
		cmd := m.loadLogs()
		return m, cmd
	}

	switch m.overlay {
	case overlayHelp:
		// Any key closes help
		m.overlay = overlayNone
		return m, nil
	case overlayDetail:
		return m.handleDetailKey(msg)
	case overlayLogs:
		return m.handleLogsKey(msg)
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleResultsKey(msg)
}

// handleInputKey routes keys while the query input has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.submit(m.input.Value(), search.OriginUser)
		return m, cmd

	case key.Matches(msg, m.keys.Tab):
		m.focusResults()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.queries.SetQuery(m.input.Value())
	return m, cmd
}

// handleResultsKey routes keys while the results list has focus.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Results)

	switch {
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.FocusSearch):
		cmd := m.focusInput()
		return m, cmd

	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(count-1, 0)

	case key.Matches(msg, m.keys.Open):
		m.openDetail()
	}
	return m, nil
}

// submit starts a search for query. Validation failures update the session
// synchronously and return no command.
func (m *Model) submit(query string, origin search.Origin) tea.Cmd {
	attempt, ok := m.workflow.Begin(query, origin)
	m.refresh()
	if !ok {
		return nil
	}

	m.pending++
	cmds := []tea.Cmd{fetchCmd(m.ctx, m.workflow, attempt)}
	if m.pending == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// refresh re-reads the session after a mutation.
func (m *Model) refresh() {
	m.snapshot = m.session.Snapshot()
	m.cursor = clamp(m.cursor, 0, len(m.snapshot.Results)-1)
}

func (m *Model) focusResults() {
	m.focus = focusResults
	m.input.Blur()
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

// closeOverlay closes whatever overlay is open. Closing the detail overlay
// clears the selection.
func (m *Model) closeOverlay() {
	if m.overlay == overlayDetail {
		m.session.Dismiss()
		m.refresh()
	}
	m.overlay = overlayNone
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	name := m.theme.Name
	if err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.Theme = name }); err != nil {
		m.logger.Warn("save theme preference failed", zap.String("theme", name), zap.Error(err))
	}
	if m.overlay == overlayDetail {
		m.updateDetailViewport()
	}
	if m.overlay == overlayLogs {
		m.updateLogViewport()
	}
}

func (m *Model) resizeOverlays() {
	m.updateDetailViewport()
	m.updateLogViewport()
}

// renderMain renders the header, query input, results, and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderResults(max(m.height-chromeRows, 1)))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// Messages

type searchResultMsg search.Result

type replayMsg struct {
	query string
}

// Commands

func fetchCmd(ctx context.Context, w *search.Workflow, a search.Attempt) tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg(w.Fetch(ctx, a))
	}
}

func replayCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return replayMsg{query: query}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	_, err := p.Run()
	return err
}
