package dispatchers

import (
	"fmt"
	"sort"

	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/log"
	"github.com/footprint-tools/cmdr/internal/usage"
)

// State is the phase of a Commander's dispatch cycle.
type State int

const (
	StateIdle State = iota
	StateParsed
	StateDispatching
)

func (s State) String() string {
	switch s {
	case StateParsed:
		return "parsed"
	case StateDispatching:
		return "dispatching"
	default:
		return "idle"
	}
}

// Summary describes one completed run.
type Summary struct {
	// Dispatched counts the statuses handed to the status handler.
	Dispatched int
	// Failed counts the error statuses among them.
	Failed int
	// Halted is set when the status handler stopped the run early.
	Halted bool
}

// CommanderOption configures a Commander.
type CommanderOption func(*Commander)

// WithHandler sets the status handler. A nil handler restores the no-op default.
func WithHandler(h StatusHandler) CommanderOption {
	return func(c *Commander) {
		c.SetHandler(h)
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l domain.Logger) CommanderOption {
	return func(c *Commander) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolicy sets the tokenizer's excess-value policy.
func WithPolicy(policy ArityPolicy) CommanderOption {
	return func(c *Commander) {
		c.parser.policy = policy
	}
}

// WithTokens sets the initial token sequence.
func WithTokens(tokens []string) CommanderOption {
	return func(c *Commander) {
		c.SetTokens(tokens)
	}
}

// Commander parses a token sequence into commands and dispatches each one to
// its registered Caller, reporting every outcome to a StatusHandler.
//
// A Commander is not safe for concurrent use.
type Commander struct {
	registry *Registry
	parser   *Parser
	callers  map[string]*Caller
	handler  StatusHandler
	logger   domain.Logger
	state    State
}

// NewCommander creates a Commander with no commands, no tokens and a no-op handler.
func NewCommander(opts ...CommanderOption) *Commander {
	registry := NewRegistry()
	c := &Commander{
		registry: registry,
		parser:   NewParser(registry),
		callers:  make(map[string]*Caller),
		handler:  NopHandler{},
		logger:   log.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Commander) SetTokens(tokens []string) {
	c.parser.SetTokens(tokens)
}

func (c *Commander) Tokens() []string {
	return c.parser.Tokens()
}

// SetHandler replaces the status handler. A nil handler restores the no-op default.
func (c *Commander) SetHandler(h StatusHandler) {
	if h == nil {
		h = NopHandler{}
	}
	c.handler = h
}

func (c *Commander) State() State {
	return c.state
}

// Registry returns the schema registry shared with the internal parser.
func (c *Commander) Registry() *Registry {
	return c.registry
}

// AppendCommand registers caller under its schema name for both tokenizing
// and dispatch, replacing any earlier command with that name.
func (c *Commander) AppendCommand(caller *Caller) {
	name := caller.Name()
	c.callers[name] = caller
	c.registry.Register(caller.Config())
	c.logger.Debug("commander: registered %q", name)
}

// RemoveCommand undoes AppendCommand. Removing an absent name is a no-op.
func (c *Commander) RemoveCommand(name string) {
	delete(c.callers, name)
	c.registry.Remove(name)
}

func (c *Commander) HasCommand(name string) bool {
	_, ok := c.callers[name]
	return ok
}

// Commands returns the registered command names in sorted order.
func (c *Commander) Commands() []string {
	names := make([]string, 0, len(c.callers))
	for name := range c.callers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Caller returns the caller registered under name.
func (c *Commander) Caller(name string) (*Caller, error) {
	caller, ok := c.callers[name]
	if !ok {
		return nil, usage.NotFound(name)
	}
	return caller, nil
}

// InvokeCommand parses tokens against the schema of name and runs its handler
// directly, bypassing the status handler.
func (c *Commander) InvokeCommand(name string, tokens []string) (CommandStatus, error) {
	caller, err := c.Caller(name)
	if err != nil {
		return CommandStatus{}, err
	}
	return caller.Invoke(tokens, WithArityPolicy(c.parser.policy))
}

// RunTokens replaces the token sequence and runs it.
func (c *Commander) RunTokens(tokens []string) Summary {
	c.SetTokens(tokens)
	return c.Run()
}

// Run parses the current token sequence and dispatches every command in order.
// Each outcome, including parse failures, unknown commands and handler panics,
// is reported to the status handler; a non-zero reply stops the run.
func (c *Commander) Run() Summary {
	var sum Summary

	commands := c.parser.parseEach(c.parser.Tokens())
	c.state = StateParsed
	c.logger.Debug("commander: parsed %d command(s) from %d token(s)", len(commands), len(c.parser.Tokens()))

	c.state = StateDispatching
	defer func() { c.state = StateIdle }()

	for _, cmd := range commands {
		status := c.dispatch(cmd)

		sum.Dispatched++
		if !status.IsOK() {
			sum.Failed++
			c.logger.Warn("commander: %s failed: %s", status.Name, status.Msg)
		}

		if code := c.handler.Handle(status); code != Continue {
			c.logger.Debug("commander: handler stopped the run with code %d", code)
			sum.Halted = true
			break
		}
	}

	return sum
}

func (c *Commander) dispatch(cmd parsed) (status CommandStatus) {
	if cmd.err != nil {
		return Fail(cmd.name, cmd.err.Error())
	}

	caller, ok := c.callers[cmd.name]
	if !cmd.known || !ok {
		return Fail(cmd.name, usage.UnknownCommand(cmd.name).Error())
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("commander: %s panicked: %v", cmd.name, r)
			status = Fail(cmd.name, panicMessage(r))
		}
	}()

	c.logger.Debug("commander: dispatching %s", cmd.name)
	return caller.Call(cmd.args)
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}
