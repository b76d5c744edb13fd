package actions

import (
	"github.com/footprint-tools/cmdr/internal/app"
	"github.com/footprint-tools/cmdr/internal/domain"
)

type actionDependencies struct {
	Printf  func(format string, a ...any) (n int, err error)
	Println func(a ...any) (n int, err error)
	Version func() string
}

func depsFor(out domain.OutputWriter) actionDependencies {
	return actionDependencies{
		Printf:  out.Printf,
		Println: out.Println,
		Version: func() string { return app.Version },
	}
}
