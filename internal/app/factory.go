package app

import (
	"io"

	"github.com/footprint-tools/cmdr/internal/config"
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/log"
	"github.com/footprint-tools/cmdr/internal/paths"
	"github.com/footprint-tools/cmdr/internal/store"
	"github.com/footprint-tools/cmdr/internal/ui"
	"github.com/footprint-tools/cmdr/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   string

	StyleEnabled bool

	// Config holds the merged configuration values.
	Config map[string]string

	// DBPath overrides the history database location.
	DBPath string

	// Output defaults to stdout.
	Output io.Writer
}

// DefaultOptions returns the application options derived from the config file.
// Whether styling is enabled still depends on the output, see style.ShouldColor.
func DefaultOptions() Options {
	values, _ := config.GetAll()
	settings := config.SettingsFrom(values)

	return Options{
		LogEnabled:   settings.EnableLog,
		LogLevel:     settings.LogLevel,
		StyleEnabled: true,
		Config:       values,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		l, err := log.New(paths.LogFilePath(), log.ParseLevel(opts.LogLevel))
		if err == nil {
			logger = l
		}
		// On error keep the NopLogger: logging must not prevent commands from running
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBPath()
	}
	historyStore, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.Config)

	output := ui.NewWriter()
	if opts.Output != nil {
		output = ui.NewWriterTo(opts.Output)
	}

	return &domain.Application{
		Store:  historyStore,
		Config: config.NewProvider(),
		Logger: logger,
		Output: output,
		Styler: style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses an in-memory store, NopLogger, and no styling.
func NewForTesting(out io.Writer) (*domain.Application, error) {
	historyStore, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}

	return &domain.Application{
		Store:  historyStore,
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out),
		Styler: style.NopStyler{},
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
