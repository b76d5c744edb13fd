package historyview

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/format"
)

var sample = []domain.HistoryEntry{
	{ID: 3, RunID: "r1", Seq: 2, Command: "sum", OK: true, Timestamp: time.Now()},
	{ID: 2, RunID: "r1", Seq: 1, Command: "frob", OK: false, Message: "not a command", Timestamp: time.Now()},
	{ID: 1, RunID: "r1", Seq: 0, Command: "greet", OK: true, Timestamp: time.Now()},
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModel_ShowsAllEntries(t *testing.T) {
	m := newModel(sample, format.New("", ""))

	require.Len(t, m.visible, 3)
	require.Len(t, m.table.Rows(), 3)
	require.Equal(t, "greet", m.table.Rows()[2][2])
	require.Contains(t, m.View(), "3 of 3 entries")
}

func TestModel_ToggleFailedOnly(t *testing.T) {
	m := press(newModel(sample, format.New("", "")), "f")

	require.True(t, m.failedOnly)
	require.Len(t, m.visible, 1)
	require.Equal(t, "frob", m.visible[0].Command)
	require.Equal(t, "error", m.table.Rows()[0][3])
	require.Contains(t, m.View(), "(failed only)")

	m = press(m, "f")
	require.Len(t, m.visible, 3)
}

func TestModel_DetailOpensAndCloses(t *testing.T) {
	m := press(newModel(sample, format.New("", "")), "down", "enter")

	require.NotNil(t, m.detail)
	require.Equal(t, "frob", m.detail.Command)
	require.Contains(t, m.View(), "not a command")

	m = press(m, "esc")
	require.Nil(t, m.detail)
}

func TestModel_QuitKey(t *testing.T) {
	_, cmd := newModel(sample, format.New("", "")).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestModel_EmptyHistory(t *testing.T) {
	m := press(newModel(nil, format.New("", "")), "enter", "f")

	require.Nil(t, m.detail)
	require.Contains(t, m.View(), "0 of 0 entries")
}

func TestModel_WindowResize(t *testing.T) {
	next, _ := newModel(sample, format.New("", "")).Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m := next.(model)

	require.Equal(t, 120, m.width)
	require.Equal(t, 30-chromeLines-headerLines, m.table.Height(), "rows left after the header")
}

func TestRun_RequiresTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.ErrorIs(t, Run(sample, format.New("", ""), f, f), ErrNotTerminal)
}
