package historyview

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/format"
)

// ErrNotTerminal is returned when the browser cannot take over the terminal.
var ErrNotTerminal = errors.New("interactive history requires an interactive terminal")

// Run opens the browser over entries on the given terminal.
func Run(entries []domain.HistoryEntry, f format.Formatter, in *os.File, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}
	return run(entries, f, in, out, tea.WithAltScreen())
}

func run(entries []domain.HistoryEntry, f format.Formatter, in io.Reader, out io.Writer, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithInput(in), tea.WithOutput(out))
	_, err := tea.NewProgram(newModel(entries, f), opts...).Run()
	return err
}
