package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in config list output
	Hidden      bool   // Hidden keys are left out of `cmdr config list`
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `cmdr config list`.
var ConfigKeys = []ConfigKey{
	// Dispatch
	{
		Name:        "halt_on_error",
		Default:     "false",
		Description: "Stop running commands after the first failure (true/false)",
		Section:     "Dispatch",
	},
	{
		Name:        "arity_policy",
		Default:     "stop",
		Description: "Excess values: stop (collect under 'unknown') or strict (fail)",
		Section:     "Dispatch",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// History
	{
		Name:        "record_history",
		Default:     "true",
		Description: "Journal every command status to the history database (true/false)",
		Section:     "History",
	},
	{
		Name:        "history_limit",
		Default:     "20",
		Description: "Default number of entries shown by `cmdr history`",
		Section:     "History",
	},
	// Display
	{
		Name:        "display_date",
		Default:     "yyyy-mm-dd",
		Description: "Date format: yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy, or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 24h or 12h",
		Section:     "Display",
	},
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored output: auto, always, never",
		Section:     "Display",
		Hidden:      true,
	},
	{
		Name:        "color_theme",
		Default:     "auto",
		Description: "Color theme: auto, dark, light",
		Section:     "Display",
		Hidden:      true,
	},
}

// LookupConfigKey returns the metadata for name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}

// VisibleConfigKeys returns the keys shown by `cmdr config list`.
func VisibleConfigKeys() []ConfigKey {
	var keys []ConfigKey
	for _, k := range ConfigKeys {
		if !k.Hidden {
			keys = append(keys, k)
		}
	}
	return keys
}
