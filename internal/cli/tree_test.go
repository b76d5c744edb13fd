package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/app"
	"github.com/footprint-tools/cmdr/internal/config"
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/paths"
)

func newTestApp(t *testing.T) (*domain.Application, *bytes.Buffer) {
	t.Helper()
	t.Setenv(paths.HomeEnv, t.TempDir())

	var buf bytes.Buffer
	a, err := app.NewForTesting(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(a) })
	return a, &buf
}

func defaultSettings() config.Settings {
	return config.SettingsFrom(config.Defaults)
}

type collector struct {
	statuses []dispatchers.CommandStatus
}

func (c *collector) Handle(s dispatchers.CommandStatus) int {
	c.statuses = append(c.statuses, s)
	return dispatchers.Continue
}

func TestBuildCommander_RegistersCommands(t *testing.T) {
	a, _ := newTestApp(t)

	c := BuildCommander(a, defaultSettings())

	require.Equal(t,
		[]string{"completions", "config", "echo", "greet", "help", "history", "logs", "sum", "theme", "version"},
		c.Commands())
}

func TestBuildCommander_RunsSeveralCommands(t *testing.T) {
	a, out := newTestApp(t)
	rec := &collector{}
	c := BuildCommander(a, defaultSettings(), dispatchers.WithHandler(rec))

	sum := c.RunTokens([]string{
		"greet", "name", "ada",
		"sum", "values", "1", "2", "3",
		"echo", "hi", "there",
	})

	require.Equal(t, dispatchers.Summary{Dispatched: 3}, sum)
	require.Equal(t, "hello, ada\n6\nhi there\n", out.String())
}

func TestBuildCommander_ErrorsDoNotStopLaterCommands(t *testing.T) {
	a, out := newTestApp(t)
	rec := &collector{}
	c := BuildCommander(a, defaultSettings(), dispatchers.WithHandler(rec))

	sum := c.RunTokens([]string{"frob", "greet", "name", "sum", "values", "x", "echo", "ok"})

	require.Equal(t, 4, sum.Dispatched)
	require.Equal(t, 3, sum.Failed)
	require.Equal(t, []dispatchers.CommandStatus{
		dispatchers.Fail("frob", "not a command"),
		dispatchers.Fail("greet", `not enough arguments "name"`),
		dispatchers.Fail("sum", `value "x" of "values" is not an unsigned integer`),
		dispatchers.OK("echo"),
	}, rec.statuses)
	require.Equal(t, "ok\n", out.String())
}

func TestBuildCommander_StrictPolicyFromSettings(t *testing.T) {
	a, _ := newTestApp(t)
	settings := defaultSettings()
	settings.ArityPolicy = "strict"
	rec := &collector{}
	c := BuildCommander(a, settings, dispatchers.WithHandler(rec))

	c.RunTokens([]string{"greet", "name", "ada", "lovelace"})

	require.Equal(t, []dispatchers.CommandStatus{
		dispatchers.Fail("greet", `unexpected value "lovelace"`),
	}, rec.statuses)
}

func TestBuildCommander_StopAtCapKeepsExtras(t *testing.T) {
	a, out := newTestApp(t)
	c := BuildCommander(a, defaultSettings())

	sum := c.RunTokens([]string{"greet", "name", "ada", "lovelace"})

	require.Zero(t, sum.Failed)
	require.Equal(t, "hello, ada\n", out.String())
}

func TestBuildCommander_ConfigRoundTrip(t *testing.T) {
	a, out := newTestApp(t)
	c := BuildCommander(a, defaultSettings())

	sum := c.RunTokens([]string{"config", "set", "history_limit", "5", "config", "get", "history_limit"})

	require.Zero(t, sum.Failed)
	require.Equal(t, "history_limit=5\n5\n", out.String())
}

func TestBuildCommander_Version(t *testing.T) {
	a, out := newTestApp(t)
	c := BuildCommander(a, defaultSettings())

	c.RunTokens([]string{"version"})

	require.Equal(t, "cmdr version "+app.Version+"\n", out.String())
}

func TestHelp_ListsEveryCommand(t *testing.T) {
	a, out := newTestApp(t)
	c := BuildCommander(a, defaultSettings())

	c.RunTokens([]string{"help"})

	for _, name := range c.Commands() {
		require.Contains(t, out.String(), "  "+name+" ")
	}
	require.Contains(t, out.String(), "--no-color")
}

func TestCompletionCommands_SkipsLeadingOption(t *testing.T) {
	a, _ := newTestApp(t)

	infos := CompletionCommands(Commands(a, defaultSettings()))

	byName := map[string][]string{}
	for _, info := range infos {
		byName[info.Name] = info.Options
	}
	require.Equal(t, []string{"name"}, byName["greet"])
	require.Empty(t, byName["echo"])
	require.Equal(t, []string{"script"}, byName["completions"])
	require.Len(t, CompletionFlags(), len(RootFlags))
}

func TestBuildCommander_CompletionScript(t *testing.T) {
	a, out := newTestApp(t)
	c := BuildCommander(a, defaultSettings())

	sum := c.RunTokens([]string{"completions", "fish", "script"})

	require.Zero(t, sum.Failed)
	require.Contains(t, out.String(), "complete -c cmdr -a history")
}

func TestBuildCommander_SumNeedsAValue(t *testing.T) {
	a, out := newTestApp(t)
	rec := &collector{}
	c := BuildCommander(a, defaultSettings(), dispatchers.WithHandler(rec))

	sum := c.RunTokens([]string{"sum", "values"})

	require.Equal(t, dispatchers.Summary{Dispatched: 1, Failed: 1}, sum)
	require.Equal(t, []dispatchers.CommandStatus{
		dispatchers.Fail("sum", `not enough arguments "values"`),
	}, rec.statuses)
	require.Empty(t, out.String())
}
