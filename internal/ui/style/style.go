// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported for status
// output. All styling is semantic (Success, Warning, Error, etc.) rather
// than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by the "color" config key.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the style package with the given enabled state and config.
// NO_COLOR and CMDR_NO_COLOR (any non-empty value) disable styling
// regardless of the enabled parameter.
//
// If cfg is nil, the auto-detected theme is used.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDR_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// ShouldColor resolves a color mode against the file descriptor output goes to.
// Unknown modes behave like auto.
func ShouldColor(mode string, fd uintptr) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return term.IsTerminal(int(fd))
	}
}

// GetColors returns the current color configuration.
func GetColors() ColorConfig {
	return colors
}

func initStyles(colors ColorConfig) {
	// Force ANSI256 regardless of TTY detection; ShouldColor already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
