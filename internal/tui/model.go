// Package tui implements the interactive repository browser: a fuzzy
// filter over a scanned tree that shows the editor mode of the selection.
package tui

import (
	"fmt"
	"strings"

	"modemap/internal/analysis"
	"modemap/internal/filter"
	"modemap/pkg/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	engine *analysis.Engine
	root   string
	limit  int

	infos  map[string]*types.FileInfo
	nodes  []types.Node
	result filter.Result

	input    textinput.Model
	status   *StatusBar
	cursor   int
	selected string
	err      error
	quitting bool
}

// New creates a browser over root. Results are capped at limit.
func New(engine *analysis.Engine, root string, limit int) *Model {
	if engine == nil {
		engine = analysis.New()
	}
	if limit < 1 {
		limit = filter.DefaultLimit
	}

	input := textinput.New()
	input.Placeholder = "filter files"
	input.Prompt = "> "
	input.Focus()

	status := NewStatusBar()
	status.SetLoading(true)
	status.SetText("Scanning " + root)

	return &Model{
		engine: engine,
		root:   root,
		limit:  limit,
		infos:  make(map[string]*types.FileInfo),
		input:  input,
		status: status,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.status.Tick(), m.scan())
}

func (m *Model) scan() tea.Cmd {
	engine, root := m.engine, m.root
	return func() tea.Msg {
		infos, err := engine.ScanTree(root)
		return ScanDoneMsg{Infos: infos, Err: err}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScanDoneMsg:
		m.setInfos(msg.Infos, msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, m.status.Update(msg)
}

func (m *Model) setInfos(infos []*types.FileInfo, err error) {
	m.status.SetLoading(false)
	if err != nil {
		m.err = err
		m.status.SetError(err.Error())
		return
	}

	m.infos = make(map[string]*types.FileInfo, len(infos))
	for _, info := range infos {
		m.infos[info.Path] = info
	}
	m.nodes = analysis.Nodes(infos)
	m.refilter()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		m.updateStatus()
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.result.Matches)-1 {
			m.cursor++
		}
		m.updateStatus()
		return m, nil
	case "enter":
		if match, ok := m.current(); ok {
			m.selected = match.Path
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) refilter() {
	m.result = filter.Filter(m.nodes, m.input.Value(), m.limit)
	m.cursor = 0
	m.updateStatus()
}

func (m *Model) current() (filter.Match, bool) {
	if m.cursor < 0 || m.cursor >= len(m.result.Matches) {
		return filter.Match{}, false
	}
	return m.result.Matches[m.cursor], true
}

func (m *Model) updateStatus() {
	if m.err != nil || m.status.Loading() {
		return
	}

	match, ok := m.current()
	if !ok {
		m.status.SetText(fmt.Sprintf("%d entries", len(m.nodes)))
		return
	}
	info := m.infos[match.Path]
	if info == nil || info.IsDir() {
		m.status.SetText(match.Path + ": directory")
		return
	}

	preview := "no"
	if m.engine.Resolver().PreviewSupported(info.Mode) {
		preview = "yes"
	}
	m.status.SetText(fmt.Sprintf("%s: mode %s, type %s, preview %s", match.Path, info.DisplayMode(), info.ContentType, preview))
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("modemap " + m.root))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	wrap := func(s string) string { return MatchStyle.Render(s) }
	for i, match := range m.result.Matches {
		line := filter.Highlight(match.Path, match.Highlight, wrap)
		if match.Type == types.DirNode {
			line = DirectoryStyle.Render(line + "/")
		} else {
			line = FileStyle.Render(line)
		}
		if i == m.cursor {
			line = SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.result.Truncated > 0 {
		b.WriteString(StatusStyle.Render(fmt.Sprintf("  ... and %d more", m.result.Truncated)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("up/down move, enter select, esc quit"))
	return b.String()
}

// Cursor returns the index of the highlighted result
func (m *Model) Cursor() int {
	return m.cursor
}

// Matches returns the current filter results
func (m *Model) Matches() []filter.Match {
	return m.result.Matches
}

// Truncated returns how many matches were cut by the result limit
func (m *Model) Truncated() int {
	return m.result.Truncated
}

// Selected returns the scan result chosen with enter
func (m *Model) Selected() (*types.FileInfo, bool) {
	if m.selected == "" {
		return nil, false
	}
	info, ok := m.infos[m.selected]
	return info, ok
}

// Err returns the scan error, if any
func (m *Model) Err() error {
	return m.err
}

// Run starts the browser and blocks until it exits
func Run(engine *analysis.Engine, root string, limit int) (*types.FileInfo, bool, error) {
	m := New(engine, root, limit)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, false, err
	}
	fm := final.(*Model)
	if fm.Err() != nil {
		return nil, false, fm.Err()
	}
	info, ok := fm.Selected()
	return info, ok, nil
}
