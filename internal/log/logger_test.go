package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		min     Level
		present []string
		absent  []string
	}{
		{
			name:    "debug logs everything",
			min:     LevelDebug,
			present: []string{"DEBUG: d", "INFO: i", "WARN: w", "ERROR: e"},
		},
		{
			name:    "warn drops debug and info",
			min:     LevelWarn,
			present: []string{"WARN: w", "ERROR: e"},
			absent:  []string{"DEBUG", "INFO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "cmdr.log")
			logger, err := New(logPath, tt.min)
			require.NoError(t, err)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")
			require.NoError(t, logger.Close())

			content := readLog(t, logPath)
			for _, s := range tt.present {
				require.Contains(t, content, s)
			}
			for _, s := range tt.absent {
				require.NotContains(t, content, s)
			}
		})
	}
}

func TestLogger_Permissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logPath := filepath.Join(logDir, "cmdr.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cmdr.log")

	for _, msg := range []string{"first run", "second run"} {
		logger, err := New(logPath, LevelInfo)
		require.NoError(t, err)
		logger.Info("%s", msg)
		require.NoError(t, logger.Close())
	}

	content := readLog(t, logPath)
	require.Contains(t, content, "first run")
	require.Contains(t, content, "second run")
}

func TestLogger_SetEnabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cmdr.log")
	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)

	logger.Info("before")
	logger.SetEnabled(false)
	logger.Info("muted")
	logger.SetEnabled(true)
	logger.Info("after")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "before")
	require.NotContains(t, content, "muted")
	require.Contains(t, content, "after")
}

func TestLogger_WriteAfterCloseIsIgnored(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cmdr.log")
	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	require.NotPanics(t, func() { logger.Error("late") })
	require.NoError(t, logger.Close())
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger

	require.NotPanics(t, func() {
		logger.SetEnabled(true)
		logger.Debug("x")
		logger.Error("x")
	})
	require.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestGlobalLogger(t *testing.T) {
	saved := defaultLogger
	t.Cleanup(func() { defaultLogger = saved })

	defaultLogger = nil
	require.NotPanics(t, func() { Warn("nobody listens") })
	require.Nil(t, GetLogger())
	require.IsType(t, NopLogger{}, Default())
	require.NoError(t, Close())

	logPath := filepath.Join(t.TempDir(), "cmdr.log")
	require.NoError(t, Init(logPath, LevelDebug))
	require.NotNil(t, GetLogger())
	require.Same(t, GetLogger(), Default())

	Debug("global %d", 1)
	Info("global %d", 2)
	require.NoError(t, Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: global 1")
	require.Contains(t, content, "INFO: global 2")
}
