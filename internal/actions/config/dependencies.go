package config

import (
	"github.com/footprint-tools/cmdr/internal/domain"
)

type Deps struct {
	Get     func(string) (string, bool)
	GetAll  func() (map[string]string, error)
	Set     func(string, string) error
	Unset   func(string) error
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

// NewDeps binds the handlers to the application's config provider and output.
func NewDeps(app *domain.Application) Deps {
	return Deps{
		Get:     app.Config.Get,
		GetAll:  app.Config.GetAll,
		Set:     app.Config.Set,
		Unset:   app.Config.Unset,
		Printf:  app.Output.Printf,
		Println: app.Output.Println,
	}
}
