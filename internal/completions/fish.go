package completions

import (
	"fmt"
	"strings"
)

// GenerateFish returns a fish completion script.
func GenerateFish(commands []CommandInfo, flags []FlagInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n", Program)
	fmt.Fprintf(&b, "complete -c %s -f\n", Program)

	for _, f := range flags {
		var spec []string
		for _, name := range f.Names {
			switch {
			case strings.HasPrefix(name, "--"):
				spec = append(spec, "-l "+strings.TrimPrefix(name, "--"))
			case strings.HasPrefix(name, "-"):
				spec = append(spec, "-s "+strings.TrimPrefix(name, "-"))
			}
		}
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' %s -d %s\n",
			Program, strings.Join(spec, " "), fishQuote(f.Description))
	}

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c %s -a %s -d %s\n", Program, c.Name, fishQuote(c.Summary))
		for _, opt := range c.Options {
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a %s\n", Program, c.Name, opt)
		}
	}

	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`) + "'"
}
