package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/signature"
)

func buildTable(t *testing.T, ids ...string) *Table {
	t.Helper()
	b := NewBuilder()
	for _, id := range ids {
		require.NoError(t, b.Add(goSrc, signature.NewBuilder(id).MustBuild()))
	}
	tbl, err := b.Build()
	require.NoError(t, err)
	return tbl
}

func ids(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID())
	}
	return out
}

func TestTable_ListSorted(t *testing.T) {
	tbl := buildTable(t, "vscode.open", "editor.fold", "cursorMove", "editor.action.showHover")

	require.Equal(t, []string{"cursorMove", "editor.action.showHover", "editor.fold", "vscode.open"}, ids(tbl.List()))
	require.Equal(t, ids(tbl.List()), tbl.IDs())
}

func TestTable_LookupMissing(t *testing.T) {
	tbl := buildTable(t, "vscode.open")

	_, ok := tbl.Lookup("vscode.openWith")
	require.False(t, ok)
}

func TestTable_ByPrefix(t *testing.T) {
	tbl := buildTable(t,
		"editor.action",
		"editor.action-legacy",
		"editor.action.showHover",
		"editor.action.goToLocations",
		"editor.actions",
		"editor.fold",
		"notebook.cell.execute",
	)

	tests := []struct {
		namespace string
		want      []string
	}{
		{"editor.action", []string{"editor.action", "editor.action.goToLocations", "editor.action.showHover"}},
		{"editor.action.", []string{"editor.action", "editor.action.goToLocations", "editor.action.showHover"}},
		{"notebook", []string{"notebook.cell.execute"}},
		{"workbench", []string{}},
		{"", []string{"editor.action", "editor.action-legacy", "editor.action.goToLocations", "editor.action.showHover", "editor.actions", "editor.fold", "notebook.cell.execute"}},
	}
	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			require.Equal(t, tt.want, ids(tbl.ByPrefix(tt.namespace)))
		})
	}
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	tbl := buildTable(t, "a.one", "a.two")

	list := tbl.IDs()
	list[0] = "mutated"
	require.Equal(t, "a.one", tbl.IDs()[0])

	e, _ := tbl.Lookup("a.one")
	srcs := e.Sources()
	srcs[0].Name = "mutated"
	e, _ = tbl.Lookup("a.one")
	require.Equal(t, goSrc, e.Sources()[0])
}
