package completions

import (
	"fmt"
	"strings"
)

// GenerateZsh returns a zsh completion script.
func GenerateZsh(commands []CommandInfo, flags []FlagInfo) string {
	var b strings.Builder
	fn := "_" + Program

	fmt.Fprintf(&b, "#compdef %s\n\n", Program)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s\n", zshQuote(c.Name+":"+c.Summary))
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a opts flags\n")
	b.WriteString("    local last w\n")
	fmt.Fprintf(&b, "    flags=(%s)\n", strings.Join(flagNames(flags), " "))
	b.WriteString("    for w in ${words[2,CURRENT-1]}; do\n")
	b.WriteString("        case $w in\n")
	if names := commandNames(commands); len(names) > 0 {
		fmt.Fprintf(&b, "            (%s) last=$w ;;\n", strings.Join(names, "|"))
	}
	b.WriteString("        esac\n")
	b.WriteString("    done\n")
	b.WriteString("    case $last in\n")
	for _, c := range commands {
		if len(c.Options) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        (%s) opts=(%s) ;;\n", c.Name, strings.Join(c.Options, " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("    if [[ -z $last && $PREFIX == -* ]]; then\n")
	b.WriteString("        compadd -a flags\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    %s_commands\n", fn)
	b.WriteString("    (( ${#opts} )) && compadd -a opts\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

func zshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
