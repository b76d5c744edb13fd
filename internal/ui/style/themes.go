package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
	},
	"light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "242", // gray
		Header:  "bold",
	},
}

// ThemeNames lists the built-in themes in display order.
var ThemeNames = []string{"dark", "light"}

// colorConfigKeys maps config keys to ColorConfig fields.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
}

// ResolveThemeName returns "dark" or "light". Anything else is resolved
// from the terminal background.
func ResolveThemeName(name string) string {
	switch name {
	case "dark", "light":
		return name
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (CMDR_COLOR_*)
// 2. Config file value
// 3. Theme value (from color_theme config or CMDR_COLOR_THEME)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := cfg["color_theme"]
	if envTheme := os.Getenv("CMDR_COLOR_THEME"); envTheme != "" {
		themeName = envTheme
	}

	result := Themes[ResolveThemeName(themeName)]

	for configKey, fieldName := range colorConfigKeys {
		if envVal := os.Getenv("CMDR_" + strings.ToUpper(configKey)); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}
		if cfgVal := cfg[configKey]; cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	}
}
