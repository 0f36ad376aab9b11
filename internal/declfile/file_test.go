package declfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/signature"
)

const openYAML = `
commands:
  - id: vscode.open
    doc: Opens the provided resource in the editor
    params:
      - name: uriOrString
        type: Uri | string
      - name: columnOrOptions
        type: ViewColumn | TextDocumentShowOptions
        optional: true
      - name: label
        type: string
        optional: true
  - id: notebook.cell.execute
    params:
      - name: options
        type: unknown
        doc: Cell range and document to execute
`

const openTOML = `
[[commands]]
id = "vscode.open"
doc = "Opens the provided resource in the editor"

[[commands.params]]
name = "uriOrString"
type = "Uri | string"

[[commands.params]]
name = "columnOrOptions"
type = "ViewColumn | TextDocumentShowOptions"
optional = true

[[commands.params]]
name = "label"
type = "string"
optional = true

[[commands]]
id = "notebook.cell.execute"

[[commands.params]]
name = "options"
type = "unknown"
doc = "Cell range and document to execute"
`

func TestParse_YAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := Parse("decl.yaml", []byte(openYAML))
	require.NoError(t, err)
	fromTOML, err := Parse("decl.toml", []byte(openTOML))
	require.NoError(t, err)

	require.Len(t, fromYAML, 2)
	require.Len(t, fromTOML, 2)
	for i := range fromYAML {
		require.True(t, fromYAML[i].Equal(fromTOML[i]), "%s != %s", fromYAML[i], fromTOML[i])
	}

	require.Equal(t,
		"vscode.open(uriOrString: Uri | string, columnOrOptions?: ViewColumn | TextDocumentShowOptions, label?: string): void",
		fromYAML[0].String())
	require.Equal(t, "Opens the provided resource in the editor", fromYAML[0].Doc())
	require.True(t, fromYAML[1].Params()[0].Type.IsOpaque())
	require.True(t, fromYAML[1].Result().IsVoid())
}

func TestParse_Empty(t *testing.T) {
	sigs, err := Parse("empty.yaml", nil)
	require.NoError(t, err)
	require.Empty(t, sigs)

	sigs, err = Parse("empty.toml", []byte(""))
	require.NoError(t, err)
	require.Empty(t, sigs)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported extension",
			file:    "decl.json",
			content: `{}`,
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "missing id",
			file:    "decl.yaml",
			content: "commands:\n  - doc: nothing\n",
			wantErr: ErrMissingID,
		},
		{
			name:    "optional before required",
			file:    "decl.yaml",
			content: "commands:\n  - id: a.b\n    params:\n      - {name: x, type: string, optional: true}\n      - {name: y, type: string}\n",
			wantErr: signature.ErrOptionalRequired,
		},
		{
			name:    "rest not last",
			file:    "decl.yml",
			content: "commands:\n  - id: a.b\n    params:\n      - {name: xs, type: string, rest: true}\n      - {name: y, type: string}\n",
			wantErr: signature.ErrRestNotLast,
		},
		{
			name:    "unknown yaml field",
			file:    "decl.yaml",
			content: "commands:\n  - id: a.b\n    result: string\n",
			wantMsg: "parse decl.yaml",
		},
		{
			name:    "unknown toml key",
			file:    "decl.toml",
			content: "[[commands]]\nid = \"a.b\"\nresult = \"string\"\n",
			wantMsg: "unknown keys",
		},
		{
			name:    "malformed toml",
			file:    "decl.toml",
			content: "[[commands]\n",
			wantMsg: "parse decl.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.file, []byte(tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				require.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_KeepsWellFormedCommands(t *testing.T) {
	content := "commands:\n  - id: good.one\n  - doc: no id\n  - id: good.two\n    returns: string\n"
	sigs, err := Parse("mixed.yaml", []byte(content))
	require.ErrorIs(t, err, ErrMissingID)
	require.Contains(t, err.Error(), "command 2")
	require.Len(t, sigs, 2)
	require.Equal(t, "good.one", sigs[0].ID())
	require.Equal(t, "string", sigs[1].Result().Name())
}

func TestEncode_RoundTrip(t *testing.T) {
	sigs, err := Parse("decl.yaml", []byte(openYAML))
	require.NoError(t, err)

	out, err := Encode(sigs)
	require.NoError(t, err)

	again, err := Parse("again.yaml", out)
	require.NoError(t, err)
	require.Len(t, again, len(sigs))
	for i := range sigs {
		require.True(t, sigs[i].Equal(again[i]))
		require.Equal(t, sigs[i].Doc(), again[i].Doc())
	}
}

func TestIsDeclarationFile(t *testing.T) {
	require.True(t, IsDeclarationFile("a.yaml"))
	require.True(t, IsDeclarationFile("a.YML"))
	require.True(t, IsDeclarationFile("dir/a.toml"))
	require.False(t, IsDeclarationFile("a.json"))
	require.False(t, IsDeclarationFile("README.md"))
}
