package testutil

import (
	"errors"
	"fmt"
)

// ErrStubFailure is the failure WithStandardCommands scripts for "x.fail".
var ErrStubFailure = errors.New("stub host failure")

// WithStandardCommands configures the standard test commands:
//
//	x.test  sums its numeric arguments (x.test(1, 2) resolves to 3)
//	x.fail  rejects with ErrStubFailure
//	x.echo  resolves with its argument list
//	x.void  resolves with nil
func (h *StubHost) WithStandardCommands() *StubHost {
	return h.
		On("x.test", Computes(sum)).
		On("x.fail", Fails(ErrStubFailure)).
		On("x.echo", Computes(func(args []any) (any, error) { return args, nil })).
		On("x.void")
}

// sum adds int and float64 arguments. The result is an int when every
// argument is an int.
func sum(args []any) (any, error) {
	total := 0.0
	allInts := true
	for i, a := range args {
		switch v := a.(type) {
		case int:
			total += float64(v)
		case float64:
			total += v
			allInts = false
		default:
			return nil, fmt.Errorf("argument %d: %T is not a number", i+1, a)
		}
	}
	if allInts {
		return int(total), nil
	}
	return total, nil
}
