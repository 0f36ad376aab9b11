package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/signature"
)

var (
	goSrc   = Source{Name: "commands.editor", Kind: SourceGo}
	yamlSrc = Source{Name: "declarations/notebook.yaml", Kind: SourceBuiltIn}
	userSrc = Source{Name: "team.toml", Kind: SourceUser}
)

func openSig(t *testing.T) *signature.Signature {
	t.Helper()
	return signature.NewBuilder("vscode.open").
		Param("uriOrString", signature.Named("Uri | string"), "").
		Optional("columnOrOptions", signature.Named("ViewColumn | TextDocumentShowOptions"), "").
		Optional("label", signature.Named("string"), "").
		MustBuild()
}

func selectKernelSig(t *testing.T, doc string) *signature.Signature {
	t.Helper()
	return signature.NewBuilder("notebook.selectKernel").
		Param("options", signature.Unknown, doc).
		MustBuild()
}

func TestSourceString(t *testing.T) {
	require.Equal(t, "go:commands.editor", goSrc.String())
	require.Equal(t, "built-in:declarations/notebook.yaml", yamlSrc.String())
	require.Equal(t, "user:team.toml", userSrc.String())
	require.Equal(t, "unknown", SourceKind(42).String())
}

func TestBuilder_AddAndBuild(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(goSrc, openSig(t)))

	tbl, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	e, ok := tbl.Lookup("vscode.open")
	require.True(t, ok)
	require.Equal(t, "vscode.open", e.ID())
	require.Equal(t, []Source{goSrc}, e.Sources())
	require.Equal(t, 1, e.Signature().Required())
}

func TestBuilder_AddNil(t *testing.T) {
	b := NewBuilder()
	require.ErrorIs(t, b.Add(goSrc, nil), ErrNilSignature)
}

func TestBuilder_IdenticalDuplicateIsIdempotent(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(yamlSrc, selectKernelSig(t, "Select kernel options")))
	require.NoError(t, b.Add(goSrc, selectKernelSig(t, "Kernel info and extension id")))
	// same source again is not recorded twice
	require.NoError(t, b.Add(goSrc, selectKernelSig(t, "")))

	tbl, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	e, _ := tbl.Lookup("notebook.selectKernel")
	require.Equal(t, []Source{yamlSrc, goSrc}, e.Sources())
	require.Equal(t, "Select kernel options", e.Signature().Params()[0].Doc, "first declaration wins presentation")
	require.Empty(t, tbl.Refinements())
}

func TestBuilder_DifferingDuplicateConflicts(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(goSrc, openSig(t)))

	other := signature.NewBuilder("vscode.open").
		Param("uri", signature.Named("Uri"), "").
		MustBuild()
	err := b.Add(userSrc, other)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSignatureConflict))

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "vscode.open", conflict.ID)
	require.Equal(t, goSrc, conflict.ExistingSource)
	require.Equal(t, userSrc, conflict.IncomingSource)
	require.Same(t, other, conflict.Incoming)
	require.Contains(t, err.Error(), "go:commands.editor")
	require.Contains(t, err.Error(), "user:team.toml")

	tbl, buildErr := b.Build()
	require.Nil(t, tbl)
	require.ErrorIs(t, buildErr, ErrSignatureConflict)
}

func interactiveOpen(t *testing.T, precise bool) *signature.Signature {
	t.Helper()
	typ := func(name string) signature.TypeRef {
		if precise {
			return signature.Named(name)
		}
		return signature.Unknown
	}
	return signature.NewBuilder("interactive.open").
		Param("showOptions", typ("ViewColumn | InteractiveShowOptions"), "").
		Param("resource", typ("Uri"), "").
		Param("controllerId", typ("string"), "").
		Param("title", typ("string"), "").
		Returns(typ("InteractiveWindow")).
		MustBuild()
}

func TestBuilder_RefinementEitherOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []bool // precise flags in insertion order
	}{
		{name: "opaque first", order: []bool{false, true}},
		{name: "precise first", order: []bool{true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			srcs := map[bool]Source{true: goSrc, false: yamlSrc}
			for _, precise := range tt.order {
				require.NoError(t, b.Add(srcs[precise], interactiveOpen(t, precise)))
			}

			tbl, err := b.Build()
			require.NoError(t, err)

			e, ok := tbl.Lookup("interactive.open")
			require.True(t, ok)
			require.Equal(t, "InteractiveWindow", e.Signature().Result().Name())
			require.Len(t, e.Sources(), 2)

			refinements := tbl.Refinements()
			require.Len(t, refinements, 1)
			require.Equal(t, "interactive.open", refinements[0].ID)
			require.Equal(t, goSrc, refinements[0].PreciseSource)
			require.Equal(t, yamlSrc, refinements[0].OpaqueSource)
			require.True(t, refinements[0].Opaque.Result().IsOpaque())
		})
	}
}

func TestBuilder_StrictMergeRejectsRefinement(t *testing.T) {
	b := NewBuilder(WithStrictMerge(true))
	require.NoError(t, b.Add(yamlSrc, interactiveOpen(t, false)))
	require.ErrorIs(t, b.Add(goSrc, interactiveOpen(t, true)), ErrSignatureConflict)
}

func TestBuilder_AddAllJoinsErrors(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(goSrc, openSig(t)))

	a := signature.NewBuilder("vscode.open").MustBuild()
	c := signature.NewBuilder("setContext").
		Param("key", signature.Named("string"), "").
		Param("value", signature.Unknown, "").
		MustBuild()
	err := b.AddAll(userSrc, a, nil, c)
	require.ErrorIs(t, err, ErrSignatureConflict)
	require.ErrorIs(t, err, ErrNilSignature)

	// Build reports the failed adds again
	_, buildErr := b.Build()
	require.Error(t, buildErr)
}

func TestBuilder_AddTable(t *testing.T) {
	base := NewBuilder()
	require.NoError(t, base.Add(goSrc, openSig(t)))
	require.NoError(t, base.Add(yamlSrc, selectKernelSig(t, "")))
	baseTable, err := base.Build()
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AddTable(baseTable))
	require.NoError(t, b.Add(userSrc, selectKernelSig(t, "")))

	tbl, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	e, _ := tbl.Lookup("notebook.selectKernel")
	require.Equal(t, []Source{yamlSrc, userSrc}, e.Sources())
}
