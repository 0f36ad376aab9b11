package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		args Arguments
		want []any
	}{
		{"empty", With0(), []any{}},
		{"required only", With2(1, "a"), []any{1, "a"}},
		{"trailing none trimmed", With3(1, None[string](), None[int]()), []any{1}},
		{"some kept", With3(1, Some("x"), None[int]()), []any{1, "x"}},
		{"gap sent as nil", With3(1, None[string](), Some(5)), []any{1, nil, 5}},
		{"rest expanded", With2("a", Rest[int]{1, 2, 3}), []any{"a", 1, 2, 3}},
		{"empty rest", With2("a", Rest[int]{}), []any{"a"}},
		{"none before empty rest", With3("a", None[int](), Rest[int](nil)), []any{"a"}},
		{"opaque nil required", With1[Opaque](nil), []any{nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, flatten(tt.args))
		})
	}
}

func TestOpt(t *testing.T) {
	v, ok := Some(3).Get()
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = None[int]().Get()
	require.False(t, ok)
	require.False(t, Opt[string]{}.IsSome())
}

// A command with N required and M optional parameters sends between N and
// N+M arguments, and exactly N plus the index of the last present optional.
func TestFlatten_OptionalArity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		present := rapid.SliceOfN(rapid.Bool(), 3, 3).Draw(t, "present")
		opt := func(i int) Opt[int] {
			if present[i] {
				return Some(i)
			}
			return None[int]()
		}
		args := With5("uri", 1.5, opt(0), opt(1), opt(2))

		got := flatten(args)

		last := -1
		for i, p := range present {
			if p {
				last = i
			}
		}
		require.Len(t, got, 2+last+1)
		require.GreaterOrEqual(t, len(got), 2)
		require.LessOrEqual(t, len(got), 5)
		for i := 0; i <= last; i++ {
			if present[i] {
				require.Equal(t, i, got[2+i])
			} else {
				require.Nil(t, got[2+i])
			}
		}
	})
}

func TestUnflatten_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Args4[string, Opt[int], Opt[string], Rest[float64]]{
			P1: rapid.String().Draw(t, "p1"),
		}
		if rapid.Bool().Draw(t, "p2") {
			a.P2 = Some(rapid.Int().Draw(t, "p2v"))
		}
		if rapid.Bool().Draw(t, "p3") {
			a.P3 = Some(rapid.String().Draw(t, "p3v"))
		}
		for _, n := range rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "p4") {
			a.P4 = append(a.P4, float64(n)/4)
		}

		got, err := unflatten[Args4[string, Opt[int], Opt[string], Rest[float64]]]("x.round", flatten(a))
		require.NoError(t, err)
		if got.P4 != nil && len(got.P4) == 0 {
			got.P4 = nil
		}
		require.Equal(t, a, got)
	})
}

type lineNumbers []int

// Host values of the underlying type must land in optional and rest slots
// the same way they land in required ones.
func TestUnflatten_NamedElementTypes(t *testing.T) {
	type args = Args3[lineNumbers, Opt[lineNumbers], Rest[lineNumbers]]

	got, err := unflatten[args]("x.lines", []any{[]int{1, 2}, []int{3, 4, 5}, []int{6}, []int{7, 8}})
	require.NoError(t, err)
	require.Equal(t, lineNumbers{1, 2}, got.P1)

	opt, ok := got.P2.Get()
	require.True(t, ok)
	require.Equal(t, lineNumbers{3, 4, 5}, opt)
	require.Equal(t, Rest[lineNumbers]{{6}, {7, 8}}, got.P3)
}

func TestUnflatten_OpaqueOptionalNil(t *testing.T) {
	got, err := unflatten[Args2[Opaque, Rest[Opaque]]]("x.any", []any{"a", nil, 3})
	require.NoError(t, err)
	require.Equal(t, "a", got.P1)
	require.Equal(t, Rest[Opaque]{nil, 3}, got.P2)
}
