package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdr/internal/ui/style"
)

func list(deps Deps) {
	active := current(deps)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, name := range append([]string{"auto"}, deps.ThemeNames...) {
		marker := "  "
		if name == active {
			marker = deps.Styler.Success("* ")
		}

		preview := "follows the terminal background"
		if cfg, ok := deps.Themes[name]; ok {
			preview = renderColorPreview(cfg)
		}

		_, _ = deps.Printf("%s%-8s  %s\n", marker, name, preview)
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'cmdr theme set <name>' or 'cmdr theme pick' to change")
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("header", cfg.Header)
}

func colorize(text, color string) string {
	switch color {
	case "":
		return text
	case "bold":
		return lipgloss.NewStyle().Bold(true).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}
}
