// Package completions generates shell completion scripts for cmdr.
//
// Any word may start a new command, so every script offers all command
// names everywhere, plus the options of the last command typed.
package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Shell is a supported shell name.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Program is the command name the scripts complete.
const Program = "cmdr"

// CommandInfo describes one command for completion
type CommandInfo struct {
	Name    string
	Summary string
	Options []string
}

// FlagInfo describes one global flag for completion
type FlagInfo struct {
	Names       []string
	Description string
}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	switch s := Shell(strings.ToLower(strings.TrimSpace(name))); s {
	case ShellBash, ShellZsh, ShellFish:
		return s, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", name)
	}
}

// RunningShell guesses the user's shell from $SHELL. Returns "" when unknown.
func RunningShell(getenv func(string) string) Shell {
	s, err := ParseShell(filepath.Base(getenv("SHELL")))
	if err != nil {
		return ""
	}
	return s
}

// Generate returns the completion script for shell.
func Generate(shell Shell, commands []CommandInfo, flags []FlagInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(commands, flags), nil
	case ShellZsh:
		return GenerateZsh(commands, flags), nil
	case ShellFish:
		return GenerateFish(commands, flags), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// PrintCompletions writes the completion script for the given shell to w
func PrintCompletions(w io.Writer, shell Shell, commands []CommandInfo, flags []FlagInfo) error {
	script, err := Generate(shell, commands, flags)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// BinaryPath returns the resolved path of the running executable.
func BinaryPath() string {
	exe, err := os.Executable()
	if err != nil {
		return Program
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}

// SourceInstructions returns shell-specific instructions for loading completions
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s -q completions %s script)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s -q completions fish script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

func commandNames(commands []CommandInfo) []string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	return names
}

func flagNames(flags []FlagInfo) []string {
	var names []string
	for _, f := range flags {
		names = append(names, f.Names...)
	}
	return names
}
