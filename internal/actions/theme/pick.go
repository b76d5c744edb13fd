package theme

import (
	"errors"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdr/internal/ui/style"
)

var errNotTerminal = errors.New("theme picker requires an interactive terminal")

func pick(deps Deps) error {
	active := current(deps)
	names := append([]string{"auto"}, deps.ThemeNames...)

	chosen, err := deps.Pick(names, deps.Themes, active)
	if err != nil {
		return err
	}

	switch chosen {
	case "":
		_, _ = deps.Println("cancelled")
		return nil
	case active:
		_, _ = deps.Printf("theme %s is already active\n", deps.Styler.Info(chosen))
		return nil
	}

	return setTheme(chosen, deps)
}

// runPicker opens the picker and returns the chosen theme, "" when cancelled.
func runPicker(themes []string, configs map[string]style.ColorConfig, active string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", errNotTerminal
	}

	final, err := tea.NewProgram(newModel(themes, configs, active), tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	return final.(model).chosen, nil
}

type model struct {
	themes   []string
	configs  map[string]style.ColorConfig
	cursor   int
	selected string
	chosen   string
}

func newModel(themes []string, configs map[string]style.ColorConfig, active string) model {
	m := model{themes: themes, configs: configs, selected: active}
	for i, name := range themes {
		if name == active {
			m.cursor = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.themes) - 1

	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = last
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = last
	case "enter", " ":
		m.chosen = m.themes[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("Select a theme:\n\n")

	left := make([]string, len(m.themes))
	for i, name := range m.themes {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}

		selected := "  "
		if name == m.selected {
			selected = "✓ "
		}

		nameStyle := lipgloss.NewStyle().Width(8)
		if i == m.cursor {
			nameStyle = nameStyle.Bold(true).Background(lipgloss.Color("237"))
		}

		left[i] = cursor + selected + nameStyle.Render(name)
	}

	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		strings.Join(left, "\n"),
		"    ",
		renderPreviewCard(m.themes[m.cursor], m.configs),
	))

	b.WriteString("\n\n")
	b.WriteString(renderFooter())

	return b.String()
}

func renderFooter() string {
	key := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Render(" │ ")

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	return key.Render("↑↓") + label.Render(" move") + sep +
		key.Render("enter") + label.Render(" select") + sep +
		key.Render("q") + label.Render(" cancel")
}

func renderPreviewCard(name string, configs map[string]style.ColorConfig) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	body := "follows the terminal background\n(" + style.ResolveThemeName(name) + " here)"
	if cfg, ok := configs[name]; ok {
		body = renderColorPreview(cfg)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(muted.Render("Preview: ") + name + "\n" + body)
}
