// Package report turns command statuses into terminal output and history rows.
package report

import (
	"strings"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/usage"
)

const (
	okMark   = "✓"
	failMark = "✗"
	maxHints = 3
)

// Suggester returns registered command names close to name.
type Suggester func(name string, maxResults int) []string

// Printer is a dispatchers.StatusHandler that prints one line per status.
type Printer struct {
	out         domain.OutputWriter
	styler      domain.Styler
	suggest     Suggester
	haltOnError bool
	quiet       bool
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithHaltOnError makes the printer stop the run after the first failure.
func WithHaltOnError(halt bool) PrinterOption {
	return func(p *Printer) {
		p.haltOnError = halt
	}
}

// WithSuggester enables "did you mean" hints for unknown commands.
func WithSuggester(s Suggester) PrinterOption {
	return func(p *Printer) {
		p.suggest = s
	}
}

// WithQuiet suppresses lines for successful statuses.
func WithQuiet(quiet bool) PrinterOption {
	return func(p *Printer) {
		p.quiet = quiet
	}
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out domain.OutputWriter, styler domain.Styler, opts ...PrinterOption) *Printer {
	p := &Printer{out: out, styler: styler}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle implements dispatchers.StatusHandler.
func (p *Printer) Handle(status dispatchers.CommandStatus) int {
	if status.IsOK() {
		if !p.quiet {
			_, _ = p.out.Println(p.styler.Success(okMark) + " " + status.Name)
		}
		return dispatchers.Continue
	}

	line := p.styler.Error(failMark) + " " + p.styler.Header(status.Name)
	if status.Msg != "" {
		line += ": " + status.Msg
	}
	_, _ = p.out.Println(line)

	if hints := p.hints(status); hints != "" {
		_, _ = p.out.Println("  " + p.styler.Muted("did you mean: "+hints+"?"))
	}

	if p.haltOnError {
		_, _ = p.out.Println(p.styler.Warning("halting: halt_on_error is set"))
		return dispatchers.Halt
	}
	return dispatchers.Continue
}

func (p *Printer) hints(status dispatchers.CommandStatus) string {
	if p.suggest == nil || status.Msg != usage.NotACommand {
		return ""
	}
	similar := p.suggest(status.Name, maxHints)
	if len(similar) == 0 {
		return ""
	}
	return strings.Join(similar, ", ")
}

var _ dispatchers.StatusHandler = (*Printer)(nil)
