package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/usage"
)

func TestSplitFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags GlobalFlags
		wantRest  []string
	}{
		{
			name:     "no flags",
			args:     []string{"greet", "name", "ada"},
			wantRest: []string{"greet", "name", "ada"},
		},
		{
			name:      "leading flags",
			args:      []string{"--no-color", "-q", "--halt", "greet"},
			wantFlags: GlobalFlags{NoColor: true, Quiet: true, Halt: true},
			wantRest:  []string{"greet"},
		},
		{
			name:      "flags after the first command are values",
			args:      []string{"--strict", "echo", "--halt"},
			wantFlags: GlobalFlags{Strict: true},
			wantRest:  []string{"echo", "--halt"},
		},
		{
			name:     "separator",
			args:     []string{"--", "-x", "echo"},
			wantRest: []string{"-x", "echo"},
		},
		{
			name:      "only flags",
			args:      []string{"--version", "--help", "--no-history"},
			wantFlags: GlobalFlags{Version: true, Help: true, NoHistory: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, rest, err := SplitFlags(tt.args)
			require.NoError(t, err)
			require.Equal(t, tt.wantFlags, flags)
			require.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestSplitFlags_Unknown(t *testing.T) {
	_, _, err := SplitFlags([]string{"--bogus", "greet"})

	require.True(t, usage.Is(err, usage.ErrInvalidFlag))
	require.Equal(t, 2, err.(*usage.Error).GetExitCode())
}
