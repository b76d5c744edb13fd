package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns key=value lines into a map. Blank lines and lines starting
// with '#' are skipped; the last occurrence of a key wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '=' in %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = strings.TrimSpace(value)
	}

	return cfg, nil
}
