package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash completion script.
func GenerateBash(commands []CommandInfo, flags []FlagInfo) string {
	var b strings.Builder
	fn := "_" + Program + "_completions"

	fmt.Fprintf(&b, "# %s bash completion script\n", Program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    local commands=%q\n", strings.Join(commandNames(commands), " "))
	fmt.Fprintf(&b, "    local flags=%q\n", strings.Join(flagNames(flags), " "))
	b.WriteString("    local last=\"\" opts=\"\" i w\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        w=\"${COMP_WORDS[i]}\"\n")
	b.WriteString("        case \" $commands \" in *\" $w \"*) last=\"$w\" ;; esac\n")
	b.WriteString("    done\n")
	b.WriteString("    case \"$last\" in\n")
	for _, c := range commands {
		if len(c.Options) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s) opts=%q ;;\n", c.Name, strings.Join(c.Options, " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("    if [[ -z \"$last\" && \"$cur\" == -* ]]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"$flags\" -- \"$cur\"))\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$commands $opts\" -- \"$cur\"))\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, Program)

	return b.String()
}
