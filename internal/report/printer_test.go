package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/ui"
	"github.com/footprint-tools/cmdr/internal/ui/style"
)

func newPrinter(buf *bytes.Buffer, opts ...PrinterOption) *Printer {
	return NewPrinter(ui.NewWriterTo(buf), style.NopStyler{}, opts...)
}

func TestPrinter_Success(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)

	code := p.Handle(dispatchers.OK("greet"))

	require.Equal(t, dispatchers.Continue, code)
	require.Equal(t, "✓ greet\n", buf.String())
}

func TestPrinter_QuietSkipsSuccess(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, WithQuiet(true))

	p.Handle(dispatchers.OK("greet"))
	p.Handle(dispatchers.Fail("sum", `not enough arguments "values"`))

	require.Equal(t, "✗ sum: not enough arguments \"values\"\n", buf.String())
}

func TestPrinter_FailureContinuesByDefault(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)

	code := p.Handle(dispatchers.Fail("sum", "boom"))

	require.Equal(t, dispatchers.Continue, code)
	require.Equal(t, "✗ sum: boom\n", buf.String())
}

func TestPrinter_HaltOnError(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, WithHaltOnError(true))

	require.Equal(t, dispatchers.Continue, p.Handle(dispatchers.OK("greet")))
	require.Equal(t, dispatchers.Halt, p.Handle(dispatchers.Fail("sum", "boom")))
	require.Contains(t, buf.String(), "halting")
}

func TestPrinter_SuggestsForUnknownCommands(t *testing.T) {
	var asked []string
	suggest := func(name string, maxResults int) []string {
		asked = append(asked, name)
		require.Equal(t, maxHints, maxResults)
		return []string{"greet"}
	}

	var buf bytes.Buffer
	p := newPrinter(&buf, WithSuggester(suggest))

	p.Handle(dispatchers.Fail("gret", "not a command"))
	p.Handle(dispatchers.Fail("sum", "boom"))

	require.Equal(t, []string{"gret"}, asked, "only unknown commands get hints")
	require.Equal(t, "✗ gret: not a command\n  did you mean: greet?\n✗ sum: boom\n", buf.String())
}

func TestPrinter_NoSuggestionsFound(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, WithSuggester(func(string, int) []string { return nil }))

	p.Handle(dispatchers.Fail("zzzzzz", "not a command"))

	require.Equal(t, "✗ zzzzzz: not a command\n", buf.String())
}

func TestPrinter_WithCommander(t *testing.T) {
	greet := dispatchers.NewCaller(
		dispatchers.NewCommandConfig("greet"),
		func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
			return dispatchers.OK("greet")
		},
	)

	var buf bytes.Buffer
	c := dispatchers.NewCommander()
	c.AppendCommand(greet)
	c.SetHandler(newPrinter(&buf, WithSuggester(c.Suggest)))

	sum := c.RunTokens([]string{"gret", "greet"})

	require.Equal(t, 2, sum.Dispatched)
	require.Equal(t, 1, sum.Failed)
	require.Equal(t, "✗ gret: not a command\n  did you mean: greet?\n✓ greet\n", buf.String())
}
