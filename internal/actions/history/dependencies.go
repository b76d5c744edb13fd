package history

import (
	"os"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/format"
	"github.com/footprint-tools/cmdr/internal/ui/historyview"
)

type Deps struct {
	List         func(domain.HistoryFilter) ([]domain.HistoryEntry, error)
	Runs         func(int) ([]domain.RunSummary, error)
	Browse       func([]domain.HistoryEntry) error
	Printf       func(string, ...any) (int, error)
	Styler       domain.Styler
	Format       format.Formatter
	DefaultLimit int
}

// NewDeps binds the handler to the application's history store and output.
func NewDeps(app *domain.Application, f format.Formatter, defaultLimit int) Deps {
	return Deps{
		List: app.Store.List,
		Runs: app.Store.Runs,
		Browse: func(entries []domain.HistoryEntry) error {
			return historyview.Run(entries, f, os.Stdin, os.Stdout)
		},
		Printf:       app.Output.Printf,
		Styler:       app.Styler,
		Format:       f,
		DefaultLimit: defaultLimit,
	}
}
