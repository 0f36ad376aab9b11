package bus

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/zjrosen/knowncmd/internal/log"
)

// Handler runs one command on the host side.
type Handler func(ctx context.Context, args []any) (any, error)

// Mux is an in-process Host that routes command identifiers to handlers.
// Handlers run on their own goroutine, as with HostFunc.
type Mux struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewMux creates an empty Mux.
func NewMux() *Mux {
	return &Mux{handlers: make(map[string]Handler)}
}

// Register routes id to h. Returns ErrDuplicateHandler if id is taken.
func (m *Mux) Register(id string, h Handler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.handlers[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, id)
	}
	m.handlers[id] = h
	return nil
}

// Commands returns the routed identifiers, sorted.
func (m *Mux) Commands() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.handlers))
	for id := range m.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Invoke runs the handler for command, or fails with ErrUnknownCommand.
func (m *Mux) Invoke(ctx context.Context, command string, args []any) *Future[any] {
	m.mu.RLock()
	h, ok := m.handlers[command]
	m.mu.RUnlock()

	if !ok {
		log.Debug(log.CatBus, "No handler for command", "command", command)
		return Failed[any](fmt.Errorf("%w: %s", ErrUnknownCommand, command))
	}
	return goInvoke(ctx, command, func(ctx context.Context) (any, error) {
		return h(ctx, args)
	})
}

// Compile-time check that Mux implements Host.
var _ Host = (*Mux)(nil)

// Handle registers a typed handler for cmd on m. The host argument list is
// rebuilt into the tuple A; an argument list that does not fit A fails the
// invocation with ErrArity or ErrArgumentType.
func Handle[A Arguments, R any](m *Mux, cmd Command[A, R], fn func(ctx context.Context, args A) (R, error)) error {
	if cmd.id == "" {
		return ErrUndeclaredCommand
	}
	return m.Register(cmd.id, func(ctx context.Context, args []any) (any, error) {
		a, err := unflatten[A](cmd.id, args)
		if err != nil {
			return nil, err
		}
		return fn(ctx, a)
	})
}

// unflatten is the inverse of flatten.
func unflatten[A Arguments](command string, args []any) (A, error) {
	var a A
	rv := reflect.ValueOf(&a).Elem()

	next := 0
	for f := 0; f < rv.NumField(); f++ {
		field := rv.Field(f)
		ft := field.Type()

		switch {
		case ft.Implements(restSlotType):
			slot := reflect.Zero(ft).Interface().(restSlot)
			vals := make([]reflect.Value, 0, len(args)-next)
			for ; next < len(args); next++ {
				v, ok := convertValue(args[next], slot.elemType())
				if !ok {
					return a, argumentError(command, next, args[next], slot.elemType())
				}
				vals = append(vals, v)
			}
			field.Set(slot.wrap(vals))

		case ft.Implements(optionalSlotType):
			if next >= len(args) {
				continue
			}
			arg := args[next]
			next++
			if arg == nil {
				continue
			}
			slot := reflect.Zero(ft).Interface().(optionalSlot)
			v, ok := convertValue(arg, slot.elemType())
			if !ok {
				return a, argumentError(command, next-1, arg, slot.elemType())
			}
			field.Set(slot.wrap(v))

		default:
			if next >= len(args) {
				return a, fmt.Errorf("command %s: got %d arguments: %w", command, len(args), ErrArity)
			}
			v, ok := convertValue(args[next], ft)
			if !ok {
				return a, argumentError(command, next, args[next], ft)
			}
			field.Set(v)
			next++
		}
	}

	if next < len(args) {
		return a, fmt.Errorf("command %s: got %d arguments: %w", command, len(args), ErrArity)
	}
	return a, nil
}

func argumentError(command string, i int, v any, want reflect.Type) error {
	return fmt.Errorf("command %s: argument %d of type %T is not %v: %w", command, i+1, v, want, ErrArgumentType)
}
