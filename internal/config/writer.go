package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/cmdr/internal/paths"
)

// WriteLines replaces the config file with lines. The content goes to a
// 0600 temp file in the same directory first and is renamed into place.
func WriteLines(lines []string) (err error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(configPath), ".cmdrrc.tmp.*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var content strings.Builder
	for _, line := range lines {
		content.WriteString(line)
		content.WriteByte('\n')
	}

	if err = tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err = tmp.WriteString(content.String()); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), configPath)
}
