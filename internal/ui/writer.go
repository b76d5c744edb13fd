// Package ui provides terminal output helpers shared by the command handlers.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/cmdr/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out io.Writer
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer) *Writer {
	if out == nil {
		out = io.Discard
	}
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// IsTerminal reports whether the output is an interactive terminal.
// Non-file outputs (like bytes.Buffer) never are.
func (w *Writer) IsTerminal() bool {
	f, ok := w.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Fd returns the file descriptor of the output, or ^uintptr(0) when the
// output is not a file.
func (w *Writer) Fd() uintptr {
	if f, ok := w.out.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
