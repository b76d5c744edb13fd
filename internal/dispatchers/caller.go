package dispatchers

import "github.com/footprint-tools/cmdr/internal/usage"

// HandlerFunc executes a parsed command.
type HandlerFunc func(args CommandArgs) CommandStatus

// Handler is implemented by objects that execute a parsed command.
type Handler interface {
	Execute(args CommandArgs) CommandStatus
}

// Caller binds a command schema to the code that executes it.
type Caller struct {
	config *CommandConfig
	invoke HandlerFunc
}

// NewCaller binds fn to cfg.
func NewCaller(cfg *CommandConfig, fn HandlerFunc) *Caller {
	return &Caller{config: cfg, invoke: fn}
}

// NewHandlerCaller binds h's Execute method to cfg.
func NewHandlerCaller(cfg *CommandConfig, h Handler) *Caller {
	return &Caller{config: cfg, invoke: h.Execute}
}

func (c *Caller) Config() *CommandConfig {
	return c.config
}

func (c *Caller) Name() string {
	return c.config.Name()
}

// Call executes the handler with already parsed arguments.
func (c *Caller) Call(args CommandArgs) CommandStatus {
	return c.invoke(args)
}

// Invoke parses tokens against this caller's schema alone and executes the
// handler with the first parsed command. The command name is prepended when
// tokens do not already start with it. Arity errors are returned unhandled.
func (c *Caller) Invoke(tokens []string, opts ...ParserOption) (CommandStatus, error) {
	name := c.config.Name()
	if len(tokens) == 0 || tokens[0] != name {
		tokens = append([]string{name}, tokens...)
	}

	p := NewParser(NewRegistry(), opts...)
	p.AppendConfig(c.config)
	p.SetTokens(tokens)

	if _, err := p.Parse(); err != nil {
		return CommandStatus{}, err
	}

	args, err := p.At(0)
	if err != nil {
		return CommandStatus{}, usage.NotFound(name)
	}

	return c.invoke(args), nil
}
