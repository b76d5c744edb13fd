// Package historyview is an interactive browser for journaled command statuses.
package historyview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/format"
	"github.com/footprint-tools/cmdr/internal/ui/style"
)

type keyMap struct {
	Quit   key.Binding
	Failed key.Binding
	Detail key.Binding
	Close  key.Binding
	Nav    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Nav, k.Detail, k.Failed}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Failed: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "failed only")),
	Detail: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "detail")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close")),
	Nav:    key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("jk", "navigate")),
}

// model is the Bubble Tea model for the history browser.
type model struct {
	entries    []domain.HistoryEntry
	visible    []domain.HistoryEntry
	table      table.Model
	help       help.Model
	failedOnly bool
	detail     *domain.HistoryEntry
	width      int
	height     int
	colors     style.ColorConfig
	format     format.Formatter
}

const (
	// chromeLines is the space left for the title, status line and help.
	chromeLines = 6
	// headerLines is the column titles and their bottom border. The table
	// reserves them out of the height it is given.
	headerLines = 2
)

func newModel(entries []domain.HistoryEntry, f format.Formatter) model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	m := model{
		entries: entries,
		table:   t,
		help:    help.New(),
		colors:  style.GetColors(),
		format:  f,
	}
	m.applyStyles()
	m.refresh()
	return m
}

func columns(width int) []table.Column {
	msgWidth := width - 4 - 22 - 16 - 8 - 10
	if msgWidth < 10 {
		msgWidth = 10
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 22},
		{Title: "Command", Width: 16},
		{Title: "Status", Width: 8},
		{Title: "Message", Width: msgWidth},
	}
}

func (m *model) applyStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	if m.colors.Info != "" {
		s.Selected = s.Selected.Foreground(lipgloss.Color(m.colors.Info))
	}
	m.table.SetStyles(s)
}

// refresh recomputes the visible rows from the current filter.
func (m *model) refresh() {
	m.visible = m.visible[:0]
	for _, e := range m.entries {
		if m.failedOnly && e.OK {
			continue
		}
		m.visible = append(m.visible, e)
	}

	rows := make([]table.Row, 0, len(m.visible))
	for _, e := range m.visible {
		status := "ok"
		if !e.OK {
			status = "error"
		}
		rows = append(rows, table.Row{
			fmt.Sprint(e.Seq),
			m.format.Full(e.Timestamp.Local()),
			e.Command,
			status,
			e.Message,
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// selected returns the entry under the cursor, if any.
func (m model) selected() (domain.HistoryEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return domain.HistoryEntry{}, false
	}
	return m.visible[i], true
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.table.SetHeight(max(msg.Height-chromeLines, 3))
		return m, nil

	case tea.KeyMsg:
		if m.detail != nil {
			if key.Matches(msg, keys.Close, keys.Detail) {
				m.detail = nil
			} else if key.Matches(msg, keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Failed):
			m.failedOnly = !m.failedOnly
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Detail):
			if e, ok := m.selected(); ok {
				m.detail = &e
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("cmdr history")
	counts := fmt.Sprintf("%d of %d entries", len(m.visible), len(m.entries))
	if m.failedOnly {
		counts += " (failed only)"
	}
	header := title + "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).Render(counts)

	base := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.table.View(),
		"",
		m.help.View(keys),
	)

	if m.detail != nil {
		return overlay.Composite(m.renderDetail(*m.detail), base, overlay.Center, overlay.Center, 0, 0)
	}
	return base
}

func (m model) renderDetail(e domain.HistoryEntry) string {
	status := "ok"
	if !e.OK {
		status = "error"
	}
	lines := []string{
		"Run:     " + e.RunID,
		fmt.Sprintf("Seq:     %d", e.Seq),
		"Time:    " + m.format.Full(e.Timestamp.Local()),
		"Command: " + e.Command,
		"Status:  " + status,
	}
	if e.Message != "" {
		lines = append(lines, "", e.Message)
	}

	width := 60
	if m.width > 0 && m.width-4 < width {
		width = max(m.width-4, 20)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
