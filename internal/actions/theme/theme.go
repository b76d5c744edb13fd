// Package theme implements the `theme` command: list, set and pick the color
// theme stored under the color_theme config key.
package theme

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
)

const (
	Command = "theme"
	OptList = "list"
	OptSet  = "set"
	OptPick = "pick"

	configKey = "color_theme"
)

// Options is the schema of `theme [list | set <name> | pick]`.
func Options() []dispatchers.Option {
	return []dispatchers.Option{
		dispatchers.NewOption(OptList),
		dispatchers.NewOption(OptSet).WithArgSize(1),
		dispatchers.NewOption(OptPick),
	}
}

func Handler(deps Deps) dispatchers.HandlerFunc {
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		switch {
		case args.Has(OptSet):
			name, _ := args.String(OptSet)
			return dispatchers.FromError(Command, setTheme(name, deps))
		case args.Has(OptPick):
			return dispatchers.FromError(Command, pick(deps))
		default:
			list(deps)
			return dispatchers.OK(Command)
		}
	}
}

// current returns the configured theme, "auto" when unset.
func current(deps Deps) string {
	name, ok := deps.Get(configKey)
	if !ok || name == "" {
		return "auto"
	}
	return name
}
