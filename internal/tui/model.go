package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"finder4/internal/browse"
	"finder4/internal/config"
	"finder4/internal/tui/styles"
	"finder4/internal/watch"
	"finder4/pkg/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const columnWidth = 22

// refreshMsg arrives when a watched directory changed externally.
type refreshMsg struct {
	dir string
}

// Model is the terminal host for the column browser. It owns nothing but
// presentation state; every selection change is delegated to the engine.
type Model struct {
	engine  *browse.Engine
	cfg     *config.Config
	watcher *watch.Watcher

	// Path entry state
	pathInput textinput.Model
	editing   bool

	// Column focus state
	focusCol int
	cursor   int

	width     int
	height    int
	statusMsg string
	showHelp  bool
}

// New creates the TUI model. The watcher is optional; pass nil to disable
// live refresh.
func New(cfg *config.Config, engine *browse.Engine, watcher *watch.Watcher) *Model {
	ti := textinput.New()
	ti.Prompt = "path: "
	ti.Placeholder = "/"
	ti.CharLimit = 512

	m := &Model{
		engine:    engine,
		cfg:       cfg,
		watcher:   watcher,
		pathInput: ti,
	}
	m.focusLast()
	m.syncWatcher()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.waitForRefresh()
	}
	return nil
}

// waitForRefresh blocks on the watcher channel and converts events into
// messages.
func (m *Model) waitForRefresh() tea.Cmd {
	return func() tea.Msg {
		refresh, ok := <-m.watcher.Events()
		if !ok {
			return nil
		}
		return refreshMsg{dir: refresh.Dir}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshMsg:
		// A shown directory changed externally; regenerate every column.
		m.engine.Rebuild()
		m.clamp()
		m.statusMsg = "refreshed"
		return m, m.waitForRefresh()
	case tea.KeyMsg:
		if m.editing {
			return m.handlePathKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}
	return m, nil
}

func (m *Model) handlePathKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.pathInput.Blur()
		return m, nil
	case "enter":
		m.editing = false
		m.pathInput.Blur()
		m.engine.SetSelectionFromPath(m.pathInput.Value())
		m.focusLast()
		m.syncWatcher()
		m.statusMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.engine.Columns()

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case ":", "/":
		m.editing = true
		m.pathInput.SetValue(m.engine.Path())
		m.pathInput.CursorEnd()
		return m, m.pathInput.Focus()
	case "left", "h":
		if m.focusCol > 0 {
			m.focusCol--
			m.cursor = columnCursor(columns[m.focusCol])
		}
	case "right", "l":
		if m.focusCol < len(columns)-1 {
			m.focusCol++
			m.cursor = columnCursor(columns[m.focusCol])
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.focusCol < len(columns) && m.cursor < len(columns[m.focusCol].Entries)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		if m.focusCol < len(columns) && len(columns[m.focusCol].Entries) > 0 {
			m.cursor = len(columns[m.focusCol].Entries) - 1
		}
	case "enter", " ":
		m.selectCurrent(columns)
	case "r":
		m.engine.Rebuild()
		m.clamp()
		m.statusMsg = "refreshed"
	case "?":
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// selectCurrent applies the cursor entry of the focused column as the new
// deepest choice.
func (m *Model) selectCurrent(columns []types.Column) {
	if m.focusCol >= len(columns) {
		return
	}
	column := columns[m.focusCol]
	if m.cursor < 0 || m.cursor >= len(column.Entries) {
		return
	}
	entry := column.Entries[m.cursor]
	if !entry.Navigable() {
		m.statusMsg = fmt.Sprintf("%q is not navigable", entry.Name)
		return
	}
	m.engine.Select(m.focusCol, entry.Name)
	m.focusLast()
	m.syncWatcher()
	m.statusMsg = ""
}

// focusLast moves focus to the deepest column with the cursor on its
// selection, if it has one.
func (m *Model) focusLast() {
	columns := m.engine.Columns()
	m.focusCol = len(columns) - 1
	if m.focusCol < 0 {
		m.focusCol = 0
		m.cursor = 0
		return
	}
	m.cursor = columnCursor(columns[m.focusCol])
}

// clamp keeps focus and cursor inside the current column set after a
// rebuild shrank it.
func (m *Model) clamp() {
	columns := m.engine.Columns()
	if m.focusCol >= len(columns) {
		m.focusCol = len(columns) - 1
	}
	if m.focusCol < 0 {
		m.focusCol = 0
		m.cursor = 0
		return
	}
	if max := len(columns[m.focusCol].Entries) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncWatcher points the watcher at the directories the columns currently
// show. Only filesystem-backed browsing has anything to watch.
func (m *Model) syncWatcher() {
	if m.watcher == nil || m.cfg == nil || m.cfg.Browser.Source != "filesystem" {
		return
	}
	selection := m.engine.Selection()
	dirs := make([]string, 0, len(selection)+1)
	for i := 0; i <= len(selection); i++ {
		parts := append([]string{m.cfg.Browser.Root}, selection[:i]...)
		dirs = append(dirs, filepath.Join(parts...))
	}
	m.watcher.SetDirectories(dirs)
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	if m.editing {
		sb.WriteString(m.pathInput.View())
		sb.WriteString("\n")
	} else {
		sb.WriteString(styles.Theme.Title.Render(m.engine.Path()))
		sb.WriteString("\n")
	}

	columns := m.engine.Columns()
	rendered := make([]string, 0, len(columns))
	for i, column := range columns {
		rendered = append(rendered, m.renderColumn(column, i == m.focusCol))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	if m.statusMsg != "" {
		sb.WriteString("\n" + styles.Theme.Help.Render(m.statusMsg))
	}
	if m.showHelp {
		sb.WriteString("\n" + renderHelp())
	}
	sb.WriteString("\n" + renderKeyCommands())

	return styles.Theme.App.Render(sb.String())
}

func (m *Model) renderColumn(column types.Column, focused bool) string {
	var sb strings.Builder

	for i, entry := range column.Entries {
		cursor := " "
		if focused && i == m.cursor {
			cursor = ">"
		}

		name := entry.Name
		if entry.Dir && !entry.Parent {
			name += "/"
		}
		name = truncate(name, columnWidth-2)

		style := styles.Theme.Unselected
		switch {
		case entry.Sentinel:
			style = styles.Theme.Sentinel
		case i == column.Selected:
			style = styles.Theme.Selected
		}

		sb.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(name)))
	}

	if len(column.Entries) == 0 {
		sb.WriteString(styles.Theme.Unselected.Render("(empty)"))
	}

	frame := styles.Theme.Column
	if focused {
		frame = styles.Theme.Focused
	}
	return frame.Width(columnWidth).Render(strings.TrimRight(sb.String(), "\n"))
}

func renderKeyCommands() string {
	return styles.Theme.Help.Render(
		"[h/l] Column  [j/k] Move  [Enter] Select  [:] Path  [r] Refresh  [?] Help  [q] Quit")
}

func renderHelp() string {
	return styles.Theme.Help.Render(`
Navigate the hierarchy column by column. Selecting an entry fills the next
column; selecting ".." steps back up. Type a path after pressing ":" to
jump anywhere. Columns regenerate from scratch on every change, so external
filesystem changes show up on refresh.`)
}

// Path returns the engine's current path for persistence on exit.
func (m *Model) Path() string {
	return m.engine.Path()
}

// columnCursor is where the cursor lands when a column gains focus: its
// current selection, or the top.
func columnCursor(c types.Column) int {
	if c.HasSelection() {
		return c.Selected
	}
	return 0
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
