package dispatchers

// Unknown is the reserved name of the catch-all option and of the catch-all
// command. Tokens that match no declared name are collected under it.
const Unknown = "unknown"

// Option declares one named argument and how many value tokens it takes.
//
// When variadic is false the option requires exactly argSize values. When it
// is true argSize is a minimum and the option absorbs every following value.
type Option struct {
	name     string
	argSize  int
	variadic bool
}

// NewOption returns an option that takes no values.
func NewOption(name string) Option {
	return Option{name: name}
}

// CatchAll returns the implicit unbounded option that collects unmatched tokens.
func CatchAll() Option {
	return Option{name: Unknown, variadic: true}
}

func (o Option) Name() string {
	return o.name
}

func (o Option) ArgSize() int {
	return o.argSize
}

func (o Option) Variadic() bool {
	return o.variadic
}

// WithName returns a copy of o renamed to name.
func (o Option) WithName(name string) Option {
	o.name = name
	return o
}

// WithArgSize returns a copy of o taking n values. Negative sizes are clamped to zero.
func (o Option) WithArgSize(n int) Option {
	if n < 0 {
		n = 0
	}
	o.argSize = n
	return o
}

// WithVariadic returns a copy of o whose arg size is a floor rather than an exact count.
func (o Option) WithVariadic(variadic bool) Option {
	o.variadic = variadic
	return o
}

// full reports whether a group holding count values can take no more.
func (o Option) full(count int) bool {
	return !o.variadic && count >= o.argSize
}

// satisfied reports whether count values meet the declared arity. For a
// variadic option argSize is the minimum.
func (o Option) satisfied(count int) bool {
	return count >= o.argSize
}
