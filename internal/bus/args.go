package bus

import "reflect"

// Opaque marks a parameter or result whose payload the declaration does not
// describe. It is declared as "unknown" in signatures; the parameter doc
// names what the payload means.
type Opaque = any

// Void is the result type of commands that produce no value.
// Any host value is accepted and discarded.
type Void struct{}

// Arguments is the constraint satisfied by the argument tuples Args0..Args6.
type Arguments interface {
	values() []any
}

// Args0 is the empty argument tuple.
type Args0 struct{}

// Args1 is a one-element argument tuple.
type Args1[T1 any] struct {
	P1 T1
}

// Args2 is a two-element argument tuple.
type Args2[T1, T2 any] struct {
	P1 T1
	P2 T2
}

// Args3 is a three-element argument tuple.
type Args3[T1, T2, T3 any] struct {
	P1 T1
	P2 T2
	P3 T3
}

// Args4 is a four-element argument tuple.
type Args4[T1, T2, T3, T4 any] struct {
	P1 T1
	P2 T2
	P3 T3
	P4 T4
}

// Args5 is a five-element argument tuple.
type Args5[T1, T2, T3, T4, T5 any] struct {
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
}

// Args6 is a six-element argument tuple.
type Args6[T1, T2, T3, T4, T5, T6 any] struct {
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
}

func (Args0) values() []any { return nil }

func (a Args1[T1]) values() []any { return []any{a.P1} }

func (a Args2[T1, T2]) values() []any { return []any{a.P1, a.P2} }

func (a Args3[T1, T2, T3]) values() []any { return []any{a.P1, a.P2, a.P3} }

func (a Args4[T1, T2, T3, T4]) values() []any {
	return []any{a.P1, a.P2, a.P3, a.P4}
}

func (a Args5[T1, T2, T3, T4, T5]) values() []any {
	return []any{a.P1, a.P2, a.P3, a.P4, a.P5}
}

func (a Args6[T1, T2, T3, T4, T5, T6]) values() []any {
	return []any{a.P1, a.P2, a.P3, a.P4, a.P5, a.P6}
}

// With0 builds the empty tuple.
func With0() Args0 { return Args0{} }

// With1 builds a one-element tuple.
func With1[T1 any](p1 T1) Args1[T1] { return Args1[T1]{p1} }

// With2 builds a two-element tuple.
func With2[T1, T2 any](p1 T1, p2 T2) Args2[T1, T2] {
	return Args2[T1, T2]{p1, p2}
}

// With3 builds a three-element tuple.
func With3[T1, T2, T3 any](p1 T1, p2 T2, p3 T3) Args3[T1, T2, T3] {
	return Args3[T1, T2, T3]{p1, p2, p3}
}

// With4 builds a four-element tuple.
func With4[T1, T2, T3, T4 any](p1 T1, p2 T2, p3 T3, p4 T4) Args4[T1, T2, T3, T4] {
	return Args4[T1, T2, T3, T4]{p1, p2, p3, p4}
}

// With5 builds a five-element tuple.
func With5[T1, T2, T3, T4, T5 any](p1 T1, p2 T2, p3 T3, p4 T4, p5 T5) Args5[T1, T2, T3, T4, T5] {
	return Args5[T1, T2, T3, T4, T5]{p1, p2, p3, p4, p5}
}

// With6 builds a six-element tuple.
func With6[T1, T2, T3, T4, T5, T6 any](p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6) Args6[T1, T2, T3, T4, T5, T6] {
	return Args6[T1, T2, T3, T4, T5, T6]{p1, p2, p3, p4, p5, p6}
}

// Opt is an optional trailing argument slot.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some returns a present optional argument.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// None returns an absent optional argument.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSome reports whether the value is present.
func (o Opt[T]) IsSome() bool {
	return o.ok
}

func (o Opt[T]) slot() (any, bool) { return o.v, o.ok }

func (Opt[T]) elemType() reflect.Type { return reflect.TypeFor[T]() }

func (Opt[T]) wrap(v reflect.Value) reflect.Value {
	var x T
	reflect.ValueOf(&x).Elem().Set(v)
	return reflect.ValueOf(Some(x))
}

// Rest is a final variadic slot. Each element is sent as its own argument.
type Rest[T any] []T

func (r Rest[T]) items() []any {
	out := make([]any, len(r))
	for i, v := range r {
		out[i] = v
	}
	return out
}

func (Rest[T]) elemType() reflect.Type { return reflect.TypeFor[T]() }

func (Rest[T]) wrap(vs []reflect.Value) reflect.Value {
	out := make(Rest[T], len(vs))
	for i, v := range vs {
		reflect.ValueOf(&out[i]).Elem().Set(v)
	}
	return reflect.ValueOf(out)
}

// optionalSlot is implemented by Opt.
type optionalSlot interface {
	slot() (any, bool)
	elemType() reflect.Type
	wrap(v reflect.Value) reflect.Value
}

// restSlot is implemented by Rest.
type restSlot interface {
	items() []any
	elemType() reflect.Type
	wrap(vs []reflect.Value) reflect.Value
}

// flatten erases a tuple to the host argument list. Absent trailing optional
// slots are dropped; an absent slot followed by a present one is sent as nil.
// Rest elements are expanded in place.
func flatten(a Arguments) []any {
	vals := a.values()
	out := make([]any, 0, len(vals))
	keep := 0
	for _, v := range vals {
		switch s := v.(type) {
		case optionalSlot:
			x, ok := s.slot()
			if !ok {
				out = append(out, nil)
				continue
			}
			out = append(out, x)
		case restSlot:
			items := s.items()
			if len(items) == 0 {
				continue
			}
			out = append(out, items...)
		default:
			out = append(out, v)
		}
		keep = len(out)
	}
	return out[:keep]
}
