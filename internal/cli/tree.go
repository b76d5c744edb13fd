// Package cli assembles the cmdr command set on a Commander.
package cli

import (
	"github.com/footprint-tools/cmdr/internal/actions"
	completionactions "github.com/footprint-tools/cmdr/internal/actions/completions"
	configactions "github.com/footprint-tools/cmdr/internal/actions/config"
	"github.com/footprint-tools/cmdr/internal/actions/history"
	"github.com/footprint-tools/cmdr/internal/actions/logs"
	"github.com/footprint-tools/cmdr/internal/actions/theme"
	"github.com/footprint-tools/cmdr/internal/completions"
	"github.com/footprint-tools/cmdr/internal/config"
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

// Command describes one registered command.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Options []dispatchers.Option
	Handler dispatchers.HandlerFunc
}

// Caller returns the dispatchers.Caller for c.
func (c Command) Caller() *dispatchers.Caller {
	return dispatchers.NewCaller(dispatchers.NewCommandConfig(c.Name, c.Options...), c.Handler)
}

// Commands returns the cmdr command set bound to app.
func Commands(app *domain.Application, settings config.Settings) []Command {
	cmds := []Command{
		{
			Name:    actions.CmdGreet,
			Summary: "Greet someone",
			Usage:   "greet name <who>",
			Options: GreetOptions,
			Handler: actions.Greet(app.Output),
		},
		{
			Name:    actions.CmdSum,
			Summary: "Add unsigned integers",
			Usage:   "sum values <n> [<n>...]",
			Options: SumOptions,
			Handler: actions.Sum(app.Output),
		},
		{
			Name:    actions.CmdEcho,
			Summary: "Print the given words",
			Usage:   "echo [<word>...]",
			Options: EchoOptions,
			Handler: actions.Echo(app.Output),
		},
		{
			Name:    configactions.Command,
			Summary: "Read and write settings",
			Usage:   "config [get <key> | set <key> <value> | unset <key> | list]",
			Options: configactions.Options(),
			Handler: configactions.Handler(configactions.NewDeps(app)),
		},
		{
			Name:    history.Command,
			Summary: "Show recorded command statuses",
			Usage:   "history [limit <n>] [run <id>] [failed] [runs] [interactive]",
			Options: history.Options(),
			Handler: history.Handler(history.NewDeps(app, settings.Format, settings.HistoryLimit)),
		},
		{
			Name:    logs.Command,
			Summary: "Show or follow the cmdr log file",
			Usage:   "logs [limit <n>] [json] [follow] [clear]",
			Options: logs.Options(),
			Handler: logs.Handler(logs.NewDeps(app)),
		},
		{
			Name:    theme.Command,
			Summary: "List, set or pick the color theme",
			Usage:   "theme [list | set <name> | pick]",
			Options: theme.Options(),
			Handler: theme.Handler(theme.NewDeps(app)),
		},
		{
			Name:    actions.CmdVersion,
			Summary: "Show cmdr version",
			Usage:   "version",
			Handler: actions.ShowVersion(app.Output),
		},
	}

	cmds = append(cmds, Command{
		Name:    completionactions.Command,
		Summary: "Print shell completion setup or script",
		Usage:   "completions [bash|zsh|fish] [script]",
		Options: completionactions.Options(),
	}, Command{
		Name:    CmdHelp,
		Summary: "Show commands and flags",
		Usage:   "help",
	})
	cmds[len(cmds)-2].Handler = completionactions.Handler(completionactions.NewDeps(app,
		func() []completions.CommandInfo { return CompletionCommands(cmds) },
		CompletionFlags()))
	cmds[len(cmds)-1].Handler = Help(app, cmds)

	return cmds
}

// BuildCommander registers the command set on a new Commander.
func BuildCommander(app *domain.Application, settings config.Settings, opts ...dispatchers.CommanderOption) *dispatchers.Commander {
	opts = append([]dispatchers.CommanderOption{
		dispatchers.WithLogger(app.Logger),
		dispatchers.WithPolicy(dispatchers.ParseArityPolicy(settings.ArityPolicy)),
	}, opts...)

	c := dispatchers.NewCommander(opts...)
	for _, cmd := range Commands(app, settings) {
		c.AppendCommand(cmd.Caller())
	}
	return c
}

// CompletionCommands describes cmds for the completion generators.
func CompletionCommands(cmds []Command) []completions.CommandInfo {
	infos := make([]completions.CommandInfo, 0, len(cmds))
	for _, cmd := range cmds {
		info := completions.CommandInfo{Name: cmd.Name, Summary: cmd.Summary}
		for _, opt := range cmd.Options {
			// the option named like the command only takes leading values
			if opt.Name() == cmd.Name {
				continue
			}
			info.Options = append(info.Options, opt.Name())
		}
		infos = append(infos, info)
	}
	return infos
}

// CompletionFlags describes RootFlags for the completion generators.
func CompletionFlags() []completions.FlagInfo {
	flags := make([]completions.FlagInfo, 0, len(RootFlags))
	for _, f := range RootFlags {
		flags = append(flags, completions.FlagInfo{Names: f.Names, Description: f.Description})
	}
	return flags
}
