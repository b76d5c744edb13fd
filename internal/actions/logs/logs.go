// Package logs implements the `logs` command over the cmdr log file.
package logs

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
)

const (
	Command   = "logs"
	OptLimit  = "limit"
	OptJSON   = "json"
	OptFollow = "follow"
	OptClear  = "clear"

	defaultLogLimit = 50
)

// Options is the schema of `logs [limit <n>] [json] [follow] [clear]`.
func Options() []dispatchers.Option {
	return []dispatchers.Option{
		dispatchers.NewOption(OptLimit).WithArgSize(1),
		dispatchers.NewOption(OptJSON),
		dispatchers.NewOption(OptFollow),
		dispatchers.NewOption(OptClear),
	}
}

func Handler(deps Deps) dispatchers.HandlerFunc {
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		switch {
		case args.Has(OptClear):
			return dispatchers.FromError(Command, clearLog(deps))
		case args.Has(OptFollow):
			return dispatchers.FromError(Command, follow(deps))
		}

		limit, err := args.UIntOr(OptLimit, defaultLogLimit)
		if err != nil {
			return dispatchers.FromError(Command, err)
		}
		return dispatchers.FromError(Command, view(int(limit), args.Has(OptJSON), deps))
	}
}

func view(limit int, jsonOutput bool, deps Deps) error {
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(deps.Styler.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(deps.Styler.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")

	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if jsonOutput {
		return viewJSON(lines, deps)
	}

	for _, line := range lines {
		_, _ = deps.Println(colorizeLogLine(line, deps))
	}
	return nil
}

// logEntryRegex matches log lines like: [2026-01-29 10:30:45] INFO: message
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

type logEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Raw       bool   `json:"raw,omitempty"`
}

func parseLine(line string) logEntry {
	m := logEntryRegex.FindStringSubmatch(line)
	if m == nil {
		return logEntry{Message: line, Raw: true}
	}
	return logEntry{Timestamp: m[1], Level: m[2], Message: m[3]}
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// follow prints lines appended to the log file until the context from
// deps.Context is done.
func follow(deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(deps.Styler.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println()

	ctx, cancel := deps.Context()
	defer cancel()

	reader := bufio.NewReader(file)
	ticker := time.NewTicker(deps.PollInterval)
	defer ticker.Stop()

	var partial string
	for {
		line, err := reader.ReadString('\n')
		if err == nil {
			_, _ = deps.Println(colorizeLogLine(strings.TrimSuffix(partial+line, "\n"), deps))
			partial = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		partial += line

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func clearLog(deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(deps.Styler.Success("Log file cleared"))
	return nil
}

// colorizeLogLine styles a log line by its level.
func colorizeLogLine(line string, deps Deps) string {
	switch parseLine(line).Level {
	case "ERROR":
		return deps.Styler.Error(line)
	case "WARN":
		return deps.Styler.Warning(line)
	case "INFO":
		return deps.Styler.Info(line)
	case "DEBUG":
		return deps.Styler.Muted(line)
	default:
		return line
	}
}
