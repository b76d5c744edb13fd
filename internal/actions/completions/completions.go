package completions

import (
	"os"

	"github.com/footprint-tools/cmdr/internal/completions"
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

const (
	Command   = "completions"
	OptScript = "script"
)

type Deps struct {
	Commands   func() []completions.CommandInfo
	Flags      []completions.FlagInfo
	Getenv     func(string) string
	BinaryPath func() string
	Write      func([]byte) (int, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

// NewDeps binds the handler to the application's output. commands is called
// at dispatch time so the list may include commands registered later.
func NewDeps(app *domain.Application, commands func() []completions.CommandInfo, flags []completions.FlagInfo) Deps {
	return Deps{
		Commands:   commands,
		Flags:      flags,
		Getenv:     os.Getenv,
		BinaryPath: completions.BinaryPath,
		Write:      app.Output.Write,
		Printf:     app.Output.Printf,
		Println:    app.Output.Println,
	}
}

// Options is the schema of `completions [<shell>] [script]`.
func Options() []dispatchers.Option {
	return []dispatchers.Option{
		dispatchers.NewOption(Command).WithArgSize(1),
		dispatchers.NewOption(OptScript),
	}
}

// Handler prints the completion script with `script`, installation
// instructions otherwise.
func Handler(deps Deps) dispatchers.HandlerFunc {
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return run(args, deps)
	}
}

func run(args dispatchers.CommandArgs, deps Deps) dispatchers.CommandStatus {
	var shell completions.Shell

	if name, err := args.String(Command); err == nil {
		shell, err = completions.ParseShell(name)
		if err != nil {
			return dispatchers.FromError(Command, err)
		}
	} else {
		shell = completions.RunningShell(deps.Getenv)
		if shell == "" {
			return dispatchers.Fail(Command, "could not detect shell, specify one: cmdr completions <bash|zsh|fish>")
		}
	}

	if args.Has(OptScript) {
		script, err := completions.Generate(shell, deps.Commands(), deps.Flags)
		if err != nil {
			return dispatchers.FromError(Command, err)
		}
		if _, err := deps.Write([]byte(script)); err != nil {
			return dispatchers.FromError(Command, err)
		}
		return dispatchers.OK(Command)
	}

	printInstructions(shell, deps)
	return dispatchers.OK(Command)
}

func printInstructions(shell completions.Shell, deps Deps) {
	_, _ = deps.Printf("To enable completions, add to %s:\n", completions.RcFile(shell))
	_, _ = deps.Printf("   %s\n", completions.SourceInstructions(shell, deps.BinaryPath()))
	_, _ = deps.Println()
	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
