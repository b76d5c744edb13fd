package cli

import (
	"github.com/footprint-tools/cmdr/internal/actions"
	"github.com/footprint-tools/cmdr/internal/dispatchers"
)

var (
	GreetOptions = []dispatchers.Option{
		dispatchers.NewOption(actions.OptName).WithArgSize(1),
	}

	SumOptions = []dispatchers.Option{
		dispatchers.NewOption(actions.OptValues).WithArgSize(1).WithVariadic(true),
	}

	// Leading values of echo land here since the option is named like the command.
	EchoOptions = []dispatchers.Option{
		dispatchers.NewOption(actions.CmdEcho).WithVariadic(true),
	}
)
