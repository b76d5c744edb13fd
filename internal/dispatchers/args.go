package dispatchers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdr/internal/usage"
)

// valueSep joins the values of one option into a single stored string.
const valueSep = " "

// CommandArgs is the parsed form of one command: its name and a table from
// option name to the option's values joined by single spaces.
//
// Copying a CommandArgs shares its table; use Clone for an independent copy.
// Parser hands out clones, so handlers never alias its results.
type CommandArgs struct {
	command string
	table   map[string]string
}

// NewCommandArgs creates an empty argument table for command.
func NewCommandArgs(command string) CommandArgs {
	return CommandArgs{
		command: command,
		table:   make(map[string]string),
	}
}

// Command returns the resolved command name.
func (a CommandArgs) Command() string {
	return a.command
}

// Insert stores value under key, replacing any previous value.
func (a *CommandArgs) Insert(key, value string) {
	if a.table == nil {
		a.table = make(map[string]string)
	}
	a.table[key] = value
}

// InsertValues stores values under key joined by single spaces.
func (a *CommandArgs) InsertValues(key string, values ...string) {
	a.Insert(key, strings.Join(values, valueSep))
}

// Remove deletes key. Removing an absent key is a no-op.
func (a *CommandArgs) Remove(key string) {
	delete(a.table, key)
}

// Has returns true if key is present, even with an empty value.
func (a CommandArgs) Has(key string) bool {
	_, ok := a.table[key]
	return ok
}

// Keys returns the stored option names in sorted order.
func (a CommandArgs) Keys() []string {
	keys := make([]string, 0, len(a.table))
	for k := range a.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (a CommandArgs) Len() int {
	return len(a.table)
}

// Clone returns a deep copy.
func (a CommandArgs) Clone() CommandArgs {
	c := NewCommandArgs(a.command)
	for k, v := range a.table {
		c.table[k] = v
	}
	return c
}

// String returns the raw value of key.
func (a CommandArgs) String(key string) (string, error) {
	v, ok := a.table[key]
	if !ok {
		return "", usage.NotFound(key)
	}
	return v, nil
}

// StringOr returns the raw value of key, or defaultVal if not present.
func (a CommandArgs) StringOr(key, defaultVal string) string {
	v, ok := a.table[key]
	if !ok {
		return defaultVal
	}
	return v
}

// UInt parses the value of key as an unsigned 32-bit integer.
func (a CommandArgs) UInt(key string) (uint32, error) {
	v, ok := a.table[key]
	if !ok {
		return 0, usage.NotFound(key)
	}
	return parseUInt(key, v)
}

// UIntOr parses the value of key, or returns defaultVal if key is not present.
// A present but malformed value is still an error.
func (a CommandArgs) UIntOr(key string, defaultVal uint32) (uint32, error) {
	v, ok := a.table[key]
	if !ok {
		return defaultVal, nil
	}
	return parseUInt(key, v)
}

// StrVec splits the value of key back into the ordered list of values.
// A missing key yields an empty slice, or a NotFound error when required is set.
func (a CommandArgs) StrVec(key string, required bool) ([]string, error) {
	v, ok := a.table[key]
	if !ok {
		if required {
			return nil, usage.NotFound(key)
		}
		return []string{}, nil
	}
	if v == "" {
		return []string{}, nil
	}
	return strings.Split(v, valueSep), nil
}

// UIntVec parses every value of key as an unsigned 32-bit integer.
// A missing key behaves as in StrVec.
func (a CommandArgs) UIntVec(key string, required bool) ([]uint32, error) {
	raw, err := a.StrVec(key, required)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, len(raw))
	for _, v := range raw {
		n, err := parseUInt(key, v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseUInt(key, raw string) (uint32, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, usage.InvalidUInt(key, raw)
	}
	return uint32(n), nil
}
