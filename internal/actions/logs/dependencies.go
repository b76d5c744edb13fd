package logs

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/paths"
)

type Deps struct {
	LogFilePath  func() string
	Printf       func(string, ...any) (int, error)
	Println      func(...any) (int, error)
	Styler       domain.Styler
	ReadFile     func(string) ([]byte, error)
	WriteFile    func(string, []byte, os.FileMode) error
	Stat         func(string) (os.FileInfo, error)
	OpenFile     func(string, int, os.FileMode) (*os.File, error)
	Context      func() (context.Context, context.CancelFunc)
	PollInterval time.Duration
}

// NewDeps binds the log handlers to the application's output.
func NewDeps(app *domain.Application) Deps {
	return Deps{
		LogFilePath: paths.LogFilePath,
		Printf:      app.Output.Printf,
		Println:     app.Output.Println,
		Styler:      app.Styler,
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
		Stat:        os.Stat,
		OpenFile:    os.OpenFile,
		Context: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		},
		PollInterval: 500 * time.Millisecond,
	}
}
