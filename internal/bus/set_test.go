package bus

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/signature"
)

type testURI struct{ Path string }

type testColumn int

type testTarget interface{ isTarget() }

func (testURI) isTarget() {}

func TestSet_DerivesSignatures(t *testing.T) {
	set := NewSet("test",
		WithTypeName[testURI]("Uri"),
		WithTypeName[testTarget]("Uri | string"),
	)
	Declare3[testTarget, Opt[testColumn], Opt[string], Void](set, "vscode.open", "Open a resource",
		Param("uriOrString", "Uri or string"),
		Param("columnOrOptions", ""),
		Param("label", ""),
	)
	Declare2[testURI, Opaque, []testURI](set, "x.find", "")
	Declare1[Rest[string], int](set, "x.count", "", Param("items", "Strings to count"))
	Declare0[Opaque](set, "x.opaque", "")

	sigs, err := set.Signatures()
	require.NoError(t, err)
	require.Len(t, sigs, 4)

	require.Equal(t, "vscode.open(uriOrString: Uri | string, columnOrOptions?: testColumn, label?: string): void", sigs[0].String())
	require.Equal(t, "Open a resource", sigs[0].Doc())
	require.Equal(t, "Uri or string", sigs[0].Params()[0].Doc)

	require.Equal(t, "x.find(arg1: Uri, arg2: unknown): Uri[]", sigs[1].String())
	require.Equal(t, "x.count(...items: string[]): number", sigs[2].String())
	require.Equal(t, "x.opaque(): unknown", sigs[3].String())
}

func TestSet_TypeRefs(t *testing.T) {
	namer := &typeNamer{set: NewSet("test"), origins: map[string]reflect.Type{}}
	tests := []struct {
		name string
		typ  any
		want string
	}{
		{"int", 0, "number"},
		{"float", 0.0, "number"},
		{"bool", false, "boolean"},
		{"string", "", "string"},
		{"bytes", []byte(nil), "Uint8Array"},
		{"named int", testColumn(0), "testColumn"},
		{"pointer", &testURI{}, "testURI"},
		{"map", map[string]int(nil), "Record<string, number>"},
		{"raw json", json.RawMessage(nil), "unknown"},
		{"anonymous struct", struct{ A int }{}, "object"},
		{"nested slice", [][]string(nil), "string[][]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, namer.typeRef(reflectTypeOf(tt.typ)).Name())
		})
	}
	require.True(t, namer.typeRef(voidType).IsVoid())
}

func TestSet_DuplicateDeclarationsAreKept(t *testing.T) {
	set := NewSet("test")
	Declare1[Opaque, Void](set, "notebook.selectKernel", "")
	Declare1[Opaque, Void](set, "notebook.selectKernel", "")

	sigs, err := set.Signatures()
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	require.Len(t, sigs, 2)
	require.True(t, sigs[0].Equal(sigs[1]))
}

// Only the declared names matter: numeric kinds all read as number.
func TestSet_NumericKindsShareSignature(t *testing.T) {
	set := NewSet("test")
	Declare2[int, int, int](set, "x.add", "")
	Declare2[float64, float64, float64](set, "x.add", "")

	sigs, err := set.Signatures()
	require.NoError(t, err)
	require.True(t, sigs[0].Equal(sigs[1]))
}

type testPosition struct{ Line int }

func TestSet_TypeNameClash(t *testing.T) {
	type testPosition struct{ Offset int }

	set := NewSet("test")
	Declare1[testPosition, Void](set, "x.local", "")
	Declare1[Opt[[]testPositionAlias], Void](set, "x.package", "")
	Declare1[int, Void](set, "x.unrelated", "")

	sigs, err := set.Signatures()
	require.ErrorIs(t, err, ErrTypeNameClash)
	require.Contains(t, err.Error(), "command x.package")
	require.Len(t, sigs, 2)

	// a distinct name keeps them apart
	set = NewSet("test", WithTypeName[testPositionAlias]("PackagePosition"))
	Declare1[testPosition, Void](set, "x.local", "")
	Declare1[Opt[[]testPositionAlias], Void](set, "x.package", "")

	sigs, err = set.Signatures()
	require.NoError(t, err)
	require.Equal(t, "x.package(arg1?: PackagePosition[]): void", sigs[1].String())
}

type testPositionAlias = testPosition

func TestSet_MalformedDeclarations(t *testing.T) {
	set := NewSet("test")
	Declare1[int, Void](set, "x.tooManyDocs", "", Param("a", ""), Param("b", ""))
	Declare0[Void](set, "bad..id", "")
	Declare1[int, Void](set, "x.fine", "")

	sigs, err := set.Signatures()
	require.ErrorIs(t, err, ErrArity)
	require.ErrorIs(t, err, signature.ErrInvalidID)
	require.Contains(t, err.Error(), "test:")
	require.Len(t, sigs, 1)
	require.Equal(t, "x.fine", sigs[0].ID())
}

func TestCommand_Identity(t *testing.T) {
	set := NewSet("test")
	cmd := Declare0[Void](set, "x.one", "")

	require.Equal(t, "x.one", cmd.ID())
	require.True(t, cmd.Declared())
	require.False(t, Command[Args0, Void]{}.Declared())
}

func reflectTypeOf(v any) reflect.Type {
	return reflect.TypeOf(v)
}
