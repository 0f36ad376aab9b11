package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMux_RegisterAndInvoke(t *testing.T) {
	m := NewMux()
	require.NoError(t, m.Register("x.hello", func(ctx context.Context, args []any) (any, error) {
		return "hello " + args[0].(string), nil
	}))

	v, err := m.Invoke(context.Background(), "x.hello", []any{"world"}).Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello world", v)
	require.Equal(t, []string{"x.hello"}, m.Commands())
}

func TestMux_DuplicateHandler(t *testing.T) {
	m := NewMux()
	h := func(context.Context, []any) (any, error) { return nil, nil }
	require.NoError(t, m.Register("x.a", h))
	require.ErrorIs(t, m.Register("x.a", h), ErrDuplicateHandler)
}

func TestMux_UnknownCommand(t *testing.T) {
	_, err := NewMux().Invoke(context.Background(), "x.none", nil).Await(context.Background())
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestMux_HandlerPanic(t *testing.T) {
	m := NewMux()
	require.NoError(t, m.Register("x.panic", func(context.Context, []any) (any, error) {
		panic("boom")
	}))

	_, err := m.Invoke(context.Background(), "x.panic", nil).Await(context.Background())
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "x.panic", pe.Command)
	require.Contains(t, err.Error(), "x.panic panicked: boom")
}

func TestMux_HandlerIgnoresCancellation(t *testing.T) {
	m := NewMux()
	require.NoError(t, m.Register("x.ctx", func(ctx context.Context, _ []any) (any, error) {
		return ctx.Err(), nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, err := m.Invoke(ctx, "x.ctx", nil).Await(context.Background())
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestHandle_Typed(t *testing.T) {
	set := NewSet("test")
	find := Declare3[string, Opt[int], Rest[string], []string](set, "x.find", "")

	m := NewMux()
	require.NoError(t, Handle(m, find.Command, func(ctx context.Context, a Args3[string, Opt[int], Rest[string]]) ([]string, error) {
		limit, ok := a.P2.Get()
		if !ok {
			limit = len(a.P3)
		}
		out := []string{a.P1}
		for i := 0; i < limit && i < len(a.P3); i++ {
			out = append(out, a.P3[i])
		}
		return out, nil
	}))

	ctx := context.Background()
	got, err := find.Call(ctx, m, "q", Some(1), Rest[string]{"a", "b"}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"q", "a"}, got)

	got, err = find.Call(ctx, m, "q", None[int](), Rest[string]{"a", "b"}).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"q", "a", "b"}, got)
}

func TestHandle_NamedOptionalArgument(t *testing.T) {
	set := NewSet("test")
	fold := Declare2[string, Opt[lineNumbers], int](set, "x.fold", "")

	m := NewMux()
	require.NoError(t, Handle(m, fold.Command, func(ctx context.Context, a Args2[string, Opt[lineNumbers]]) (int, error) {
		lines, _ := a.P2.Get()
		return len(lines), nil
	}))

	// a host that forwards the underlying slice type
	host := InvokeFunc(func(ctx context.Context, command string, args []any) *Future[any] {
		return m.Invoke(ctx, command, []any{args[0], []int(args[1].(lineNumbers))})
	})

	ctx := context.Background()
	got, err := fold.Call(ctx, host, "a.go", Some(lineNumbers{1, 2, 3})).Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestHandle_Undeclared(t *testing.T) {
	err := Handle(NewMux(), Command[Args0, Void]{}, func(context.Context, Args0) (Void, error) {
		return Void{}, nil
	})
	require.ErrorIs(t, err, ErrUndeclaredCommand)
}

func TestUnflatten_Errors(t *testing.T) {
	type args = Args2[string, Opt[int]]

	tests := []struct {
		name    string
		args    []any
		wantErr error
	}{
		{"missing required", []any{}, ErrArity},
		{"too many", []any{"a", 1, 2}, ErrArity},
		{"wrong required type", []any{1}, ErrArgumentType},
		{"wrong optional type", []any{"a", "b"}, ErrArgumentType},
		{"lossy number", []any{"a", 1.5}, ErrArgumentType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unflatten[args]("x.cmd", tt.args)
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUnflatten_Conversions(t *testing.T) {
	got, err := unflatten[Args3[int, Opaque, Opt[float64]]]("x.cmd", []any{2.0, nil, 3})
	require.NoError(t, err)
	require.Equal(t, 2, got.P1)
	require.Nil(t, got.P2)
	v, ok := got.P3.Get()
	require.True(t, ok)
	require.Equal(t, 3.0, v)
}
