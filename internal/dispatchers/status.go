package dispatchers

import "fmt"

// Status is the outcome of one command invocation.
type Status int

const (
	StatusError Status = iota
	StatusOK
)

func (s Status) String() string {
	if s == StatusOK {
		return "ok"
	}
	return "error"
}

// CommandStatus reports the result of invoking one command.
type CommandStatus struct {
	Name   string
	Status Status
	Msg    string // empty on success
}

// OK returns a successful status for name.
func OK(name string) CommandStatus {
	return CommandStatus{Name: name, Status: StatusOK}
}

// Fail returns an error status for name carrying msg.
func Fail(name, msg string) CommandStatus {
	return CommandStatus{Name: name, Status: StatusError, Msg: msg}
}

// Failf is Fail with a formatted message.
func Failf(name, format string, args ...any) CommandStatus {
	return Fail(name, fmt.Sprintf(format, args...))
}

// FromError returns OK for a nil err and an error status carrying err's message otherwise.
func FromError(name string, err error) CommandStatus {
	if err == nil {
		return OK(name)
	}
	return Fail(name, err.Error())
}

func (s CommandStatus) IsOK() bool {
	return s.Status == StatusOK
}

func (s CommandStatus) String() string {
	if s.Msg == "" {
		return fmt.Sprintf("%s: %s", s.Name, s.Status)
	}
	return fmt.Sprintf("%s: %s: %s", s.Name, s.Status, s.Msg)
}

// Continuation codes returned by a StatusHandler.
const (
	Continue = 0
	Halt     = 1
)

// StatusHandler receives every status produced by a Commander run. A zero
// return continues with the next command; any other value stops the run.
type StatusHandler interface {
	Handle(status CommandStatus) int
}

// StatusHandlerFunc adapts a function to StatusHandler.
type StatusHandlerFunc func(status CommandStatus) int

func (f StatusHandlerFunc) Handle(status CommandStatus) int {
	return f(status)
}

// NopHandler ignores every status and always continues.
type NopHandler struct{}

func (NopHandler) Handle(CommandStatus) int { return Continue }

// Chain hands each status to every handler in order and returns the first
// non-zero code. Later handlers still see the status.
func Chain(handlers ...StatusHandler) StatusHandler {
	return StatusHandlerFunc(func(status CommandStatus) int {
		code := Continue
		for _, h := range handlers {
			if h == nil {
				continue
			}
			if c := h.Handle(status); c != Continue && code == Continue {
				code = c
			}
		}
		return code
	})
}

var (
	_ StatusHandler = NopHandler{}
	_ StatusHandler = StatusHandlerFunc(nil)
)
