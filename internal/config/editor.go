package config

import "strings"

// lineKey returns the key of a key=value line, or "" for comments, blanks and malformed lines.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

// Set replaces the first line defining key, or appends one. The boolean
// reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		if lineKey(line) == key {
			lines[i] = key + "=" + value
			return lines, true
		}
	}
	return append(lines, key+"="+value), false
}

// Unset drops every line defining key. The boolean reports whether any line was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey(line) == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
