package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/paths"
)

// setupTempHome points the application data directory at a temporary directory.
func setupTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(paths.HomeEnv, home)
	return home
}

func writeConfig(t *testing.T, home string, lines ...string) {
	t.Helper()
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(home, "cmdrrc"), []byte(content), 0600))
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name         string
		setupContent string
		wantLines    []string
	}{
		{name: "empty file", setupContent: "", wantLines: nil},
		{name: "single line", setupContent: "key=value\n", wantLines: []string{"key=value"}},
		{name: "lines with comments", setupContent: "# Comment\nkey=value\n", wantLines: []string{"# Comment", "key=value"}},
		{name: "Windows CRLF line endings", setupContent: "key1=value1\r\nkey2=value2\r\n", wantLines: []string{"key1=value1", "key2=value2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			configPath := filepath.Join(home, "cmdrrc")
			if tt.setupContent != "" {
				require.NoError(t, os.WriteFile(configPath, []byte(tt.setupContent), 0644))
			}

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestWriteLines_Overwrites(t *testing.T) {
	home := setupTempHome(t)

	require.NoError(t, WriteLines([]string{"key1=value1", "key2=value2"}))
	require.NoError(t, WriteLines([]string{"# header", "key3=value3"}))

	content, err := os.ReadFile(filepath.Join(home, "cmdrrc"))
	require.NoError(t, err)
	require.Equal(t, "# header\nkey3=value3\n", string(content))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "halt_on_error",
			value:        "true",
			wantLines:    []string{"halt_on_error=true"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"log_level=warn", "enable_log=true"},
			key:          "log_level",
			value:        "debug",
			wantLines:    []string{"log_level=debug", "enable_log=true"},
			wantUpdated:  true,
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Comment", "", "a=1"},
			key:          "b",
			value:        "2",
			wantLines:    []string{"# Comment", "", "a=1", "b=2"},
		},
		{
			name:         "handles whitespace in existing line",
			initialLines: []string{"  a  =  1  "},
			key:          "a",
			value:        "2",
			wantLines:    []string{"a=2"},
			wantUpdated:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	got, removed := Unset([]string{"# Comment", "", "a=1", "b=2", " a = 3"}, "a")
	require.True(t, removed)
	require.Equal(t, []string{"# Comment", "", "b=2"}, got)

	got, removed = Unset([]string{"a=1"}, "b")
	require.False(t, removed)
	require.Equal(t, []string{"a=1"}, got)

	got, removed = Unset(nil, "a")
	require.False(t, removed)
	require.Nil(t, got)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{name: "default value", key: "arity_policy", wantValue: "stop", wantFound: true},
		{name: "config overrides default", configLines: []string{"arity_policy=strict"}, key: "arity_policy", wantValue: "strict", wantFound: true},
		{name: "custom key in config", configLines: []string{"custom=value"}, key: "custom", wantValue: "value", wantFound: true},
		{name: "unknown key", key: "nonexistent_key", wantFound: false},
		{name: "malformed file falls back to defaults", configLines: []string{"garbage"}, key: "log_level", wantValue: "warn", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			if len(tt.configLines) > 0 {
				writeConfig(t, home, tt.configLines...)
			}

			got, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, got)
		})
	}
}

func TestProvider_SetUnset(t *testing.T) {
	setupTempHome(t)
	p := NewProvider()

	require.NoError(t, p.Set("halt_on_error", "true"))
	got, ok := p.Get("halt_on_error")
	require.True(t, ok)
	require.Equal(t, "true", got)

	require.NoError(t, p.Unset("halt_on_error"))
	got, _ = p.Get("halt_on_error")
	require.Equal(t, "false", got, "unset falls back to the default")

	all, err := p.GetAll()
	require.NoError(t, err)
	require.Contains(t, all, "record_history")
}

func TestWithLock_ReleasesLock(t *testing.T) {
	home := setupTempHome(t)

	called := false
	require.NoError(t, WithLock(func() error {
		called = true
		_, err := os.Stat(filepath.Join(home, lockFileName))
		require.NoError(t, err, "lock file exists while held")
		return nil
	}))
	require.True(t, called)

	_, err := os.Stat(filepath.Join(home, lockFileName))
	require.True(t, os.IsNotExist(err))
}

func TestLock_TimesOutWhileHeld(t *testing.T) {
	setupTempHome(t)

	held, err := newLock()
	require.NoError(t, err)
	require.NoError(t, held.acquire())
	defer held.release()

	other, err := newLock()
	require.NoError(t, err)
	other.timeout = 20 * time.Millisecond
	other.poll = 5 * time.Millisecond

	require.ErrorIs(t, other.acquire(), ErrLockTimeout)
}

func TestLock_BreaksStaleLock(t *testing.T) {
	home := setupTempHome(t)
	path := filepath.Join(home, lockFileName)
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	l, err := newLock()
	require.NoError(t, err)
	require.NoError(t, l.acquire())
	l.release()

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
