package cli

import (
	"strings"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

// Every command name starts a new segment, so help cannot take command
// names as values and always prints the full overview.
const CmdHelp = "help"

// Help returns the handler of the help command over cmds.
func Help(app *domain.Application, cmds []Command) dispatchers.HandlerFunc {
	return func(_ dispatchers.CommandArgs) dispatchers.CommandStatus {
		PrintUsage(app.Output, app.Styler, cmds)
		return dispatchers.OK(CmdHelp)
	}
}

// PrintUsage writes the overview of every command and global flag.
func PrintUsage(out domain.OutputWriter, styler domain.Styler, cmds []Command) {
	_, _ = out.Println(styler.Header("usage: cmdr [flags] <command> [<option> <value>...] [<command> ...]"))
	_, _ = out.Println()
	_, _ = out.Println(styler.Header("Commands"))
	for _, cmd := range cmds {
		_, _ = out.Printf("  %-10s %s\n", cmd.Name, styler.Muted(cmd.Summary))
		_, _ = out.Printf("  %-10s cmdr %s\n", "", cmd.Usage)
	}
	_, _ = out.Println()
	_, _ = out.Println(styler.Header("Flags"))
	for _, f := range RootFlags {
		_, _ = out.Printf("  %-18s %s\n", strings.Join(f.Names, ", "), styler.Muted(f.Description))
	}
}
