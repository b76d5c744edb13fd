package dispatchers

import (
	"errors"
	"strings"

	"github.com/footprint-tools/cmdr/internal/usage"
)

// ArityPolicy selects how the tokenizer treats values beyond a full
// non-variadic option.
type ArityPolicy int

const (
	// StopAtCap ends the option's group once it holds ArgSize values; the
	// excess values are collected under Unknown.
	StopAtCap ArityPolicy = iota
	// Strict rejects excess values with an arity error.
	Strict
)

func (p ArityPolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	default:
		return "stop"
	}
}

// ParseArityPolicy converts "strict" or "stop" (case insensitive) to a policy.
// Anything else yields StopAtCap.
func ParseArityPolicy(s string) ArityPolicy {
	if strings.EqualFold(strings.TrimSpace(s), "strict") {
		return Strict
	}
	return StopAtCap
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithArityPolicy sets the excess-value policy.
func WithArityPolicy(policy ArityPolicy) ParserOption {
	return func(p *Parser) {
		p.policy = policy
	}
}

// Parser splits a flat token sequence into per-command argument tables using
// the schemas of a Registry.
type Parser struct {
	registry *Registry
	policy   ArityPolicy
	tokens   []string
	results  []CommandArgs
}

// NewParser creates a parser over registry. A nil registry starts empty.
func NewParser(registry *Registry, opts ...ParserOption) *Parser {
	if registry == nil {
		registry = NewRegistry()
	}
	p := &Parser{registry: registry}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the schema registry the parser reads from.
func (p *Parser) Registry() *Registry {
	return p.registry
}

func (p *Parser) Policy() ArityPolicy {
	return p.policy
}

// AppendConfig registers cfg, replacing any schema with the same name.
func (p *Parser) AppendConfig(cfg *CommandConfig) {
	p.registry.Register(cfg)
}

// RemoveConfig stops name from being recognized by later parses.
func (p *Parser) RemoveConfig(name string) {
	p.registry.Remove(name)
}

func (p *Parser) SetTokens(tokens []string) {
	p.tokens = tokens
}

func (p *Parser) Tokens() []string {
	return p.tokens
}

// Parse tokenizes the current token sequence. It stops at the first arity
// error and returns the commands parsed before it along with the error.
func (p *Parser) Parse() ([]CommandArgs, error) {
	p.results = nil
	for _, seg := range p.split(p.tokens) {
		args, err := p.parseSegment(seg)
		if err != nil {
			return p.Results(), err
		}
		p.results = append(p.results, args)
	}
	return p.Results(), nil
}

// Results returns copies of the commands produced by the last Parse.
func (p *Parser) Results() []CommandArgs {
	if p.results == nil {
		return nil
	}
	out := make([]CommandArgs, len(p.results))
	for i, args := range p.results {
		out[i] = args.Clone()
	}
	return out
}

func (p *Parser) Len() int {
	return len(p.results)
}

// At returns the i-th command produced by the last Parse.
func (p *Parser) At(i int) (CommandArgs, error) {
	if i < 0 || i >= len(p.results) {
		return CommandArgs{}, usage.OutOfRange(i, len(p.results))
	}
	return p.results[i].Clone(), nil
}

// segment is the run of tokens belonging to one command.
type segment struct {
	command string
	known   bool
	tokens  []string
}

// name is the command a failure in this segment is reported under. For an
// unrecognized command that is the offending token itself.
func (s segment) name() string {
	if s.known || len(s.tokens) == 0 {
		return s.command
	}
	return s.tokens[0]
}

// split cuts tokens at every registered command name. Tokens not preceded by
// a registered name form an Unknown segment.
func (p *Parser) split(tokens []string) []segment {
	var out []segment

	for i := 0; i < len(tokens); {
		seg := segment{command: Unknown}
		if p.registry.Has(tokens[i]) {
			seg.command = tokens[i]
			seg.known = true
			i++
		}

		start := i
		for i < len(tokens) && !p.registry.Has(tokens[i]) {
			i++
		}
		seg.tokens = tokens[start:i]
		out = append(out, seg)
	}

	return out
}

// group is one option and the values collected for it so far.
type group struct {
	opt    Option
	values []string
	// explicit is set when the option name itself appeared in the input.
	explicit bool
}

func (p *Parser) parseSegment(seg segment) (CommandArgs, error) {
	cfg := catchAllConfig()
	if seg.known {
		cfg, _ = p.registry.Lookup(seg.command)
	}

	args := NewCommandArgs(seg.command)
	cur := group{opt: leadingOption(cfg, seg.command)}

	for _, tok := range seg.tokens {
		if seg.known && cfg.Has(tok) {
			if err := flush(&args, cur); err != nil {
				return CommandArgs{}, tag(err, seg.name())
			}
			opt, _ := cfg.Option(tok)
			cur = group{opt: opt, explicit: true}
			continue
		}

		if cur.opt.full(len(cur.values)) {
			if p.policy == Strict {
				return CommandArgs{}, tag(usage.UnexpectedValue(tok), seg.name())
			}
			if err := flush(&args, cur); err != nil {
				return CommandArgs{}, tag(err, seg.name())
			}
			cur = group{opt: CatchAll()}
		}

		cur.values = append(cur.values, tok)
	}

	if err := flush(&args, cur); err != nil {
		return CommandArgs{}, tag(err, seg.name())
	}

	return args, nil
}

// leadingOption is the option that receives values appearing before any
// option name: the option named like the command when the schema declares
// one, the catch-all otherwise.
func leadingOption(cfg *CommandConfig, command string) Option {
	if opt, err := cfg.Option(command); err == nil {
		return opt
	}
	return CatchAll()
}

// flush validates g and stores its values in args. Unknown values accumulate
// across groups; a declared option keeps its last group.
func flush(args *CommandArgs, g group) error {
	if !g.explicit && len(g.values) == 0 {
		return nil
	}

	if !g.opt.satisfied(len(g.values)) {
		return usage.NotEnoughArguments(g.opt.Name())
	}

	name := g.opt.Name()
	value := strings.Join(g.values, valueSep)

	if name == Unknown {
		if prev, ok := args.table[Unknown]; ok && prev != "" {
			if value == "" {
				value = prev
			} else {
				value = prev + valueSep + value
			}
		}
	}

	args.Insert(name, value)
	return nil
}

func tag(err error, command string) error {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.WithCommand(command)
	}
	return err
}

// parsed is the outcome of tokenizing one segment.
type parsed struct {
	name  string
	known bool
	args  CommandArgs
	err   error
}

// parseEach tokenizes every segment independently so one malformed command
// does not hide the ones after it.
func (p *Parser) parseEach(tokens []string) []parsed {
	segs := p.split(tokens)
	out := make([]parsed, 0, len(segs))

	for _, seg := range segs {
		args, err := p.parseSegment(seg)
		out = append(out, parsed{
			name:  seg.name(),
			known: seg.known,
			args:  args,
			err:   err,
		})
	}

	return out
}
