package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFuture_SettlesOnce(t *testing.T) {
	f, settle := NewFuture[int]()
	require.False(t, f.Settled())

	settle(1, nil)
	settle(2, errors.New("ignored"))

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.True(t, f.Settled())
}

func TestFuture_ResolvedAndFailed(t *testing.T) {
	v, err := Resolved("ok").Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", v)

	boom := errors.New("boom")
	v, err = Failed[string](boom).Await(context.Background())
	require.Same(t, boom, err)
	require.Empty(t, v)
}

func TestFuture_AwaitContextDone(t *testing.T) {
	f, settle := NewFuture[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the future is still usable after an abandoned wait
	settle(7, nil)
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFuture_Done(t *testing.T) {
	f, settle := NewFuture[int]()
	go settle(1, nil)

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future never settled")
	}
}

func TestThen(t *testing.T) {
	f, settle := NewFuture[int]()
	doubled := Then(f, func(v int, err error) (int, error) {
		return v * 2, err
	})
	settle(21, nil)

	v, err := doubled.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestThen_PreservesError(t *testing.T) {
	boom := errors.New("boom")
	out := Then(Failed[int](boom), func(v int, err error) (string, error) {
		return "", err
	})

	_, err := out.Await(context.Background())
	require.Same(t, boom, err)
}

func TestThen_Panic(t *testing.T) {
	out := Then(Resolved(1), func(int, error) (int, error) {
		panic("bad continuation")
	})

	_, err := out.Await(context.Background())
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "bad continuation", pe.Value)
}
