// Package history implements the `history` command over journaled statuses.
package history

import (
	"strconv"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

const (
	Command = "history"

	OptLimit       = "limit"
	OptRun         = "run"
	OptFailed      = "failed"
	OptRuns        = "runs"
	OptInteractive = "interactive"

	shortRunID = 8
)

// Options returns the option schema of the history command.
func Options() []dispatchers.Option {
	return []dispatchers.Option{
		dispatchers.NewOption(OptLimit).WithArgSize(1),
		dispatchers.NewOption(OptRun).WithArgSize(1),
		dispatchers.NewOption(OptFailed),
		dispatchers.NewOption(OptRuns),
		dispatchers.NewOption(OptInteractive),
	}
}

// Handler returns the handler of the history command.
func Handler(deps Deps) dispatchers.HandlerFunc {
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return dispatchers.FromError(Command, run(args, deps))
	}
}

func run(args dispatchers.CommandArgs, deps Deps) error {
	limit, err := args.UIntOr(OptLimit, uint32(max(deps.DefaultLimit, 0)))
	if err != nil {
		return err
	}

	if args.Has(OptRuns) {
		return listRuns(int(limit), deps)
	}

	filter := domain.HistoryFilter{
		RunID:      args.StringOr(OptRun, ""),
		FailedOnly: args.Has(OptFailed),
		Limit:      int(limit),
	}

	entries, err := deps.List(filter)
	if err != nil {
		return err
	}

	if args.Has(OptInteractive) {
		return deps.Browse(entries)
	}

	if len(entries) == 0 {
		_, _ = deps.Printf("%s\n", deps.Styler.Muted("no history"))
		return nil
	}

	// Oldest first reads like the original session
	for i := len(entries) - 1; i >= 0; i-- {
		printEntry(entries[i], deps)
	}
	return nil
}

func printEntry(e domain.HistoryEntry, deps Deps) {
	status := deps.Styler.Success("ok   ")
	if !e.OK {
		status = deps.Styler.Error("error")
	}

	line := deps.Styler.Muted(deps.Format.Full(e.Timestamp.Local())+" "+short(e.RunID)) +
		" " + status + " " + e.Command
	if e.Message != "" {
		line += ": " + e.Message
	}
	_, _ = deps.Printf("%s\n", line)
}

func listRuns(limit int, deps Deps) error {
	runs, err := deps.Runs(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		_, _ = deps.Printf("%s\n", deps.Styler.Muted("no history"))
		return nil
	}

	_, _ = deps.Printf("%s\n", deps.Styler.Header("RUN       COMMANDS  FAILED  STARTED"))
	for _, r := range runs {
		failed := deps.Styler.Success("0")
		if r.Failed > 0 {
			failed = deps.Styler.Error(strconv.Itoa(r.Failed))
		}
		_, _ = deps.Printf("%-8s  %8d  %6s  %s\n",
			short(r.RunID), r.Commands, failed, deps.Format.Full(r.Started.Local()))
	}
	return nil
}

func short(runID string) string {
	if len(runID) > shortRunID {
		return runID[:shortRunID]
	}
	return runID
}
