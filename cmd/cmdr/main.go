package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/cmdr/internal/app"
	"github.com/footprint-tools/cmdr/internal/cli"
	"github.com/footprint-tools/cmdr/internal/config"
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/report"
	"github.com/footprint-tools/cmdr/internal/ui"
	"github.com/footprint-tools/cmdr/internal/ui/style"
	"github.com/footprint-tools/cmdr/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, app.DefaultOptions()))
}

// run executes one cmdr invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, opts app.Options) int {
	flags, tokens, err := cli.SplitFlags(args)
	if err != nil {
		return fail(stderr, err)
	}

	settings := config.SettingsFrom(opts.Config)
	if flags.Halt {
		settings.HaltOnError = true
	}
	if flags.Strict {
		settings.ArityPolicy = dispatchers.Strict.String()
	}
	if flags.NoHistory {
		settings.RecordHistory = false
	}

	out := ui.NewWriterTo(stdout)
	opts.Output = out
	opts.StyleEnabled = opts.StyleEnabled && !flags.NoColor && style.ShouldColor(settings.Color, out.Fd())

	application, err := app.New(opts)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	if flags.Version {
		_, _ = fmt.Fprintf(stdout, "cmdr version %s\n", app.Version)
		return 0
	}

	commander := cli.BuildCommander(application, settings)

	if flags.Help || len(tokens) == 0 {
		cli.PrintUsage(application.Output, application.Styler, cli.Commands(application, settings))
		if flags.Help {
			return 0
		}
		return 1
	}

	printer := report.NewPrinter(application.Output, application.Styler,
		report.WithHaltOnError(settings.HaltOnError),
		report.WithSuggester(commander.Suggest),
		report.WithQuiet(flags.Quiet),
	)

	// The recorder goes first so a halting status is still journaled
	handler := dispatchers.StatusHandler(printer)
	if settings.RecordHistory {
		handler = dispatchers.Chain(report.NewRecorder(application.Store, application.Logger), printer)
	}
	commander.SetHandler(handler)

	summary := commander.RunTokens(tokens)
	application.Logger.Debug("run: dispatched=%d failed=%d halted=%t",
		summary.Dispatched, summary.Failed, summary.Halted)

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, "cmdr: "+err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
