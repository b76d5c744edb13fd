package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/cmdr/internal/log"
	"github.com/footprint-tools/cmdr/internal/paths"
)

// ReadLines returns the raw lines of the config file, creating an empty file
// if none exists.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	// Ensure correct permissions if file already existed
	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
