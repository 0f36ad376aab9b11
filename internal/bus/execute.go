package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Execute dispatches cmd with args through h and returns the deferred result.
//
// Execute never blocks. The arguments are flattened (see Opt and Rest) and
// passed to the host unchanged. The host value is not validated against the
// declaration; it is read as R when the future settles:
//   - nil becomes the zero R
//   - a value assignable to R is returned as is
//   - a json.RawMessage is decoded into R
//   - numbers convert between numeric kinds when no precision is lost
//   - for Void commands any value is discarded
//
// Anything else fails the future with a *ResultTypeError. A host failure
// fails the future with the exact error the host produced.
func Execute[A Arguments, R any](ctx context.Context, h Host, cmd Command[A, R], args A) *Future[R] {
	if cmd.id == "" {
		return Failed[R](ErrUndeclaredCommand)
	}
	if h == nil {
		return Failed[R](ErrNilHost)
	}

	raw := h.Invoke(ensureInvocationID(ctx), cmd.id, flatten(args))
	if raw == nil {
		return Failed[R](fmt.Errorf("command %s: %w", cmd.id, ErrNoResult))
	}

	return Then(raw, func(v any, err error) (R, error) {
		if err != nil {
			var zero R
			return zero, err
		}
		return reinterpret[R](cmd.id, v)
	})
}

func reinterpret[R any](command string, v any) (R, error) {
	var zero R
	if v == nil {
		return zero, nil
	}
	if r, ok := v.(R); ok {
		return r, nil
	}
	if _, ok := any(zero).(Void); ok {
		return zero, nil
	}

	want := reflect.TypeFor[R]()
	if raw, ok := v.(json.RawMessage); ok {
		var out R
		if err := json.Unmarshal(raw, &out); err != nil {
			return zero, &ResultTypeError{Command: command, Want: want, Got: rawMessageType, Err: err}
		}
		return out, nil
	}

	if rv, ok := convertNumber(reflect.ValueOf(v), want); ok {
		return rv.Interface().(R), nil
	}
	return zero, &ResultTypeError{Command: command, Want: want, Got: reflect.TypeOf(v)}
}

// convertValue converts a host argument to t, accepting nil for nillable
// types and lossless numeric conversions.
func convertValue(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	return convertNumber(rv, t)
}

func convertNumber(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !isNumeric(rv.Kind()) || !isNumeric(t.Kind()) || !rv.CanConvert(t) {
		return reflect.Value{}, false
	}
	out := rv.Convert(t)

	// round trip to detect truncation and overflow
	back := out.Convert(rv.Type())
	if isFloat(rv.Kind()) {
		f := rv.Float()
		if math.IsNaN(f) || back.Float() != f {
			return reflect.Value{}, false
		}
		return out, true
	}
	if !back.Equal(rv) {
		return reflect.Value{}, false
	}
	if isSigned(rv.Kind()) && isUnsigned(t.Kind()) && rv.Int() < 0 {
		return reflect.Value{}, false
	}
	if isUnsigned(rv.Kind()) && isSigned(t.Kind()) && out.Int() < 0 {
		return reflect.Value{}, false
	}
	return out, true
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
