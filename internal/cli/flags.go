package cli

import (
	"strings"

	"github.com/footprint-tools/cmdr/internal/usage"
)

// FlagDescriptor documents one global flag.
type FlagDescriptor struct {
	Names       []string
	Description string
}

var RootFlags = []FlagDescriptor{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--version", "-v"},
		Description: "Show version",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
	{
		Names:       []string{"--halt"},
		Description: "Stop after the first failing command (overrides halt_on_error)",
	},
	{
		Names:       []string{"--strict"},
		Description: "Reject values no option can take (overrides arity_policy)",
	},
	{
		Names:       []string{"--quiet", "-q"},
		Description: "Only report failing commands",
	},
	{
		Names:       []string{"--no-history"},
		Description: "Do not record this run (overrides record_history)",
	},
}

// GlobalFlags holds the parsed global flags.
type GlobalFlags struct {
	Help      bool
	Version   bool
	NoColor   bool
	Halt      bool
	Strict    bool
	Quiet     bool
	NoHistory bool
}

// SplitFlags consumes the flags leading args and returns the remaining tokens.
// Flag parsing stops at the first token that does not start with "-", or
// after a "--" separator, so command values may look like flags.
func SplitFlags(args []string) (GlobalFlags, []string, error) {
	var flags GlobalFlags

	for i, a := range args {
		if a == "--" {
			return flags, args[i+1:], nil
		}
		if !strings.HasPrefix(a, "-") {
			return flags, args[i:], nil
		}

		switch a {
		case "--help", "-h":
			flags.Help = true
		case "--version", "-v":
			flags.Version = true
		case "--no-color":
			flags.NoColor = true
		case "--halt":
			flags.Halt = true
		case "--strict":
			flags.Strict = true
		case "--quiet", "-q":
			flags.Quiet = true
		case "--no-history":
			flags.NoHistory = true
		default:
			return flags, nil, usage.InvalidFlag(a)
		}
	}

	return flags, nil, nil
}
