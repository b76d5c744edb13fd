package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/paths"
	"github.com/footprint-tools/cmdr/internal/ui/style"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv(paths.HomeEnv, t.TempDir())

	opts := DefaultOptions()

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.Equal(t, "warn", opts.LogLevel)
	require.Equal(t, "auto", opts.Config["color"])
}

func TestNewForTesting(t *testing.T) {
	var buf bytes.Buffer
	app, err := NewForTesting(&buf)
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.NotNil(t, app.Store)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.IsType(t, style.NopStyler{}, app.Styler)

	_, err = app.Output.Println("hi")
	require.NoError(t, err)
	require.Equal(t, "hi\n", buf.String())
}

func TestClose_NilComponents(t *testing.T) {
	require.NoError(t, Close(&domain.Application{}))
}

func TestNew_WithOptions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.HomeEnv, dir)
	t.Setenv("NO_COLOR", "")
	t.Setenv("CMDR_NO_COLOR", "")

	app, err := New(Options{
		LogEnabled:   false,
		StyleEnabled: false,
		Config:       map[string]string{"color_theme": "dark"},
	})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.NotNil(t, app.Store)
	require.False(t, app.Styler.Enabled())

	_, err = os.Stat(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
}

func TestNew_WithLogEnabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.HomeEnv, dir)

	app, err := New(Options{LogEnabled: true, LogLevel: "debug", DBPath: ":memory:"})
	require.NoError(t, err)

	app.Logger.Info("hello from test")
	require.NoError(t, Close(app))

	data, err := os.ReadFile(filepath.Join(dir, "cmdr.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "hello from test")
}

func TestNew_BadDBPath(t *testing.T) {
	t.Setenv(paths.HomeEnv, t.TempDir())

	_, err := New(Options{DBPath: filepath.Join(t.TempDir(), "missing", "dir", "history.db")})
	require.Error(t, err)
}
