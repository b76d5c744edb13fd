package theme

import (
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	Set        func(string, string) error
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	Styler     domain.Styler
	ThemeNames []string
	Themes     map[string]style.ColorConfig
	Pick       func(themes []string, configs map[string]style.ColorConfig, current string) (string, error)
}

// NewDeps binds the theme handlers to the application's config and output.
func NewDeps(app *domain.Application) Deps {
	return Deps{
		Get:        app.Config.Get,
		Set:        app.Config.Set,
		Printf:     app.Output.Printf,
		Println:    app.Output.Println,
		Styler:     app.Styler,
		ThemeNames: style.ThemeNames,
		Themes:     style.Themes,
		Pick:       runPicker,
	}
}
