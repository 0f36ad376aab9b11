package bus

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
)

// Dispatch errors
var (
	ErrUndeclaredCommand = errors.New("command was not declared")
	ErrNilHost           = errors.New("host cannot be nil")
	ErrNoResult          = errors.New("host returned no future")
	ErrUnknownCommand    = errors.New("no handler for command")
	ErrDuplicateHandler  = errors.New("handler already registered")
	ErrResultType        = errors.New("host result does not match declared type")
	ErrArgumentType      = errors.New("argument does not match declared type")
	ErrArity             = errors.New("wrong number of arguments")
	ErrTypeNameClash     = errors.New("distinct Go types share a declared type name")
)

// ResultTypeError reports a host value that cannot be read as the declared
// result type. It surfaces when the caller awaits, never at dispatch.
type ResultTypeError struct {
	Command string
	Want    reflect.Type
	Got     reflect.Type
	Err     error // decode error for raw JSON results, if any
}

func (e *ResultTypeError) Error() string {
	msg := fmt.Sprintf("command %s: host result of type %v is not %v", e.Command, e.Got, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches ErrResultType.
func (e *ResultTypeError) Is(target error) bool {
	return target == ErrResultType
}

func (e *ResultTypeError) Unwrap() error {
	return e.Err
}

// PanicError is the failure of an invocation whose handler panicked.
type PanicError struct {
	Command string
	Value   any
	Stack   []byte
}

func newPanicError(command string, v any) *PanicError {
	return &PanicError{Command: command, Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("command %s panicked: %v", e.Command, e.Value)
}
