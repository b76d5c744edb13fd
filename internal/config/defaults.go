package config

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/format"
)

// Defaults maps every known key to its built-in value (in code, not persisted).
var Defaults = func() map[string]string {
	d := make(map[string]string, len(domain.ConfigKeys))
	for _, k := range domain.ConfigKeys {
		d[k.Name] = k.Default
	}
	return d
}()

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	all, _ := GetAll()
	value, ok := all[key]
	return value, ok
}

// GetAll returns all config values (user overrides merged with defaults).
// Read or parse failures of the file yield the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		result[key] = value
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// Bool interprets the value of key as a boolean. Unparsable values yield false.
func Bool(values map[string]string, key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(values[key]))
	return err == nil && b
}

// Int interprets the value of key as an integer, or returns fallback.
func Int(values map[string]string, key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(values[key]))
	if err != nil {
		return fallback
	}
	return n
}

// Settings is the typed view of the configuration the application consumes.
type Settings struct {
	HaltOnError   bool
	ArityPolicy   string
	EnableLog     bool
	LogLevel      string
	RecordHistory bool
	HistoryLimit  int
	Color         string
	Format        format.Formatter
}

// Load reads the merged configuration into Settings.
func Load() Settings {
	values, _ := GetAll()
	return SettingsFrom(values)
}

// SettingsFrom builds Settings from already merged values.
func SettingsFrom(values map[string]string) Settings {
	return Settings{
		HaltOnError:   Bool(values, "halt_on_error"),
		ArityPolicy:   values["arity_policy"],
		EnableLog:     Bool(values, "enable_log"),
		LogLevel:      values["log_level"],
		RecordHistory: Bool(values, "record_history"),
		HistoryLimit:  Int(values, "history_limit", 20),
		Color:         values["color"],
		Format:        format.FromConfig(values),
	}
}
