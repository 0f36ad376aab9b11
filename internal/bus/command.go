package bus

import (
	"context"
	"reflect"
)

// Command is a declared command identifier carrying its argument tuple type A
// and result type R. The zero Command is undeclared and fails every dispatch.
type Command[A Arguments, R any] struct {
	id string
}

// ID returns the command identifier.
func (c Command[A, R]) ID() string {
	return c.id
}

// Declared reports whether c came from a Declare function.
func (c Command[A, R]) Declared() bool {
	return c.id != ""
}

// ParamDoc names and documents one parameter of a declaration.
type ParamDoc struct {
	Name string
	Doc  string
}

// Param describes a parameter for Declare.
func Param(name, doc string) ParamDoc {
	return ParamDoc{Name: name, Doc: doc}
}

// Declare adds a command with argument tuple A and result R to s.
// The signature is derived from A and R when the set is built.
func Declare[A Arguments, R any](s *Set, id, doc string, params ...ParamDoc) Command[A, R] {
	s.add(declaration{
		id:     id,
		doc:    doc,
		args:   reflect.TypeFor[A](),
		result: reflect.TypeFor[R](),
		params: params,
	})
	return Command[A, R]{id: id}
}

// Command0 is a declared command taking no arguments.
type Command0[R any] struct {
	Command[Args0, R]
}

// Command1 is a declared command taking one argument.
type Command1[T1, R any] struct {
	Command[Args1[T1], R]
}

// Command2 is a declared command taking two arguments.
type Command2[T1, T2, R any] struct {
	Command[Args2[T1, T2], R]
}

// Command3 is a declared command taking three arguments.
type Command3[T1, T2, T3, R any] struct {
	Command[Args3[T1, T2, T3], R]
}

// Command4 is a declared command taking four arguments.
type Command4[T1, T2, T3, T4, R any] struct {
	Command[Args4[T1, T2, T3, T4], R]
}

// Command5 is a declared command taking five arguments.
type Command5[T1, T2, T3, T4, T5, R any] struct {
	Command[Args5[T1, T2, T3, T4, T5], R]
}

// Command6 is a declared command taking six arguments.
type Command6[T1, T2, T3, T4, T5, T6, R any] struct {
	Command[Args6[T1, T2, T3, T4, T5, T6], R]
}

// Declare0 declares a command taking no arguments.
func Declare0[R any](s *Set, id, doc string) Command0[R] {
	return Command0[R]{Declare[Args0, R](s, id, doc)}
}

// Declare1 declares a command taking one argument.
func Declare1[T1, R any](s *Set, id, doc string, params ...ParamDoc) Command1[T1, R] {
	return Command1[T1, R]{Declare[Args1[T1], R](s, id, doc, params...)}
}

// Declare2 declares a command taking two arguments.
func Declare2[T1, T2, R any](s *Set, id, doc string, params ...ParamDoc) Command2[T1, T2, R] {
	return Command2[T1, T2, R]{Declare[Args2[T1, T2], R](s, id, doc, params...)}
}

// Declare3 declares a command taking three arguments.
func Declare3[T1, T2, T3, R any](s *Set, id, doc string, params ...ParamDoc) Command3[T1, T2, T3, R] {
	return Command3[T1, T2, T3, R]{Declare[Args3[T1, T2, T3], R](s, id, doc, params...)}
}

// Declare4 declares a command taking four arguments.
func Declare4[T1, T2, T3, T4, R any](s *Set, id, doc string, params ...ParamDoc) Command4[T1, T2, T3, T4, R] {
	return Command4[T1, T2, T3, T4, R]{Declare[Args4[T1, T2, T3, T4], R](s, id, doc, params...)}
}

// Declare5 declares a command taking five arguments.
func Declare5[T1, T2, T3, T4, T5, R any](s *Set, id, doc string, params ...ParamDoc) Command5[T1, T2, T3, T4, T5, R] {
	return Command5[T1, T2, T3, T4, T5, R]{Declare[Args5[T1, T2, T3, T4, T5], R](s, id, doc, params...)}
}

// Declare6 declares a command taking six arguments.
func Declare6[T1, T2, T3, T4, T5, T6, R any](s *Set, id, doc string, params ...ParamDoc) Command6[T1, T2, T3, T4, T5, T6, R] {
	return Command6[T1, T2, T3, T4, T5, T6, R]{Declare[Args6[T1, T2, T3, T4, T5, T6], R](s, id, doc, params...)}
}

// Call dispatches the command through h.
func (c Command0[R]) Call(ctx context.Context, h Host) *Future[R] {
	return Execute(ctx, h, c.Command, Args0{})
}

// Call dispatches the command through h.
func (c Command1[T1, R]) Call(ctx context.Context, h Host, p1 T1) *Future[R] {
	return Execute(ctx, h, c.Command, Args1[T1]{p1})
}

// Call dispatches the command through h.
func (c Command2[T1, T2, R]) Call(ctx context.Context, h Host, p1 T1, p2 T2) *Future[R] {
	return Execute(ctx, h, c.Command, Args2[T1, T2]{p1, p2})
}

// Call dispatches the command through h.
func (c Command3[T1, T2, T3, R]) Call(ctx context.Context, h Host, p1 T1, p2 T2, p3 T3) *Future[R] {
	return Execute(ctx, h, c.Command, Args3[T1, T2, T3]{p1, p2, p3})
}

// Call dispatches the command through h.
func (c Command4[T1, T2, T3, T4, R]) Call(ctx context.Context, h Host, p1 T1, p2 T2, p3 T3, p4 T4) *Future[R] {
	return Execute(ctx, h, c.Command, Args4[T1, T2, T3, T4]{p1, p2, p3, p4})
}

// Call dispatches the command through h.
func (c Command5[T1, T2, T3, T4, T5, R]) Call(ctx context.Context, h Host, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5) *Future[R] {
	return Execute(ctx, h, c.Command, Args5[T1, T2, T3, T4, T5]{p1, p2, p3, p4, p5})
}

// Call dispatches the command through h.
func (c Command6[T1, T2, T3, T4, T5, T6, R]) Call(ctx context.Context, h Host, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6) *Future[R] {
	return Execute(ctx, h, c.Command, Args6[T1, T2, T3, T4, T5, T6]{p1, p2, p3, p4, p5, p6})
}
