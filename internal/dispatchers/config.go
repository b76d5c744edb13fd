package dispatchers

import (
	"sort"

	"github.com/footprint-tools/cmdr/internal/usage"
)

// CommandConfig is the schema of one command: its name and the options it accepts.
type CommandConfig struct {
	name    string
	options map[string]Option
}

// NewCommandConfig creates a schema named name holding opts.
func NewCommandConfig(name string, opts ...Option) *CommandConfig {
	cfg := &CommandConfig{
		name:    name,
		options: make(map[string]Option, len(opts)),
	}
	for _, opt := range opts {
		cfg.Append(opt)
	}
	return cfg
}

func (c *CommandConfig) Name() string {
	return c.name
}

// Append stores opt under its own name, replacing any previous option with that name.
func (c *CommandConfig) Append(opt Option) {
	c.options[opt.Name()] = opt
}

// Has reports whether the schema declares an option called name.
func (c *CommandConfig) Has(name string) bool {
	_, ok := c.options[name]
	return ok
}

// Option returns the declared option called name.
func (c *CommandConfig) Option(name string) (Option, error) {
	opt, ok := c.options[name]
	if !ok {
		return Option{}, usage.NotFound(name)
	}
	return opt, nil
}

// Options returns the declared options sorted by name.
func (c *CommandConfig) Options() []Option {
	out := make([]Option, 0, len(c.options))
	for _, opt := range c.options {
		out = append(out, opt)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func (c *CommandConfig) Len() int {
	return len(c.options)
}

// catchAllConfig is the implicit schema applied to unrecognized commands.
func catchAllConfig() *CommandConfig {
	return NewCommandConfig(Unknown, CatchAll())
}
