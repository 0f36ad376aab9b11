package commands

import "github.com/zjrosen/knowncmd/internal/bus"

var editor = newSet("editor")

var (
	SetContext = bus.Declare2[string, bus.Opaque, bus.Void](editor,
		"setContext", "Set a custom context key value that can be used in when clauses.",
		bus.Param("name", "The context key name"),
		bus.Param("value", "The context key value; any JSON value a when clause can compare"))

	CursorMove = bus.Declare1[CursorMoveOptions, bus.Void](editor,
		"cursorMove", "Move cursor to a logical position in the view.",
		bus.Param("options", "Where and by how much to move"))

	EditorScroll = bus.Declare1[EditorScrollOptions, bus.Void](editor,
		"editorScroll", "Scroll editor in the given direction.",
		bus.Param("options", "Direction and unit of the scroll"))

	RevealLine = bus.Declare1[RevealLineOptions, bus.Void](editor,
		"revealLine", "Reveal the given line at the given logical position.",
		bus.Param("options", "Line number and logical position"))

	Unfold = bus.Declare1[FoldOptions, bus.Void](editor,
		"editor.unfold", "Unfold the content in the editor.",
		bus.Param("options", "Levels, direction and selection lines to unfold"))

	Fold = bus.Declare1[FoldOptions, bus.Void](editor,
		"editor.fold", "Fold the content in the editor.",
		bus.Param("options", "Levels, direction and selection lines to fold"))

	ToggleFold = bus.Declare0[bus.Void](editor,
		"editor.toggleFold", "Folds or unfolds the content in the editor depending on its current state.")

	FindWithArgs = bus.Declare1[FindOptions, bus.Void](editor,
		"editor.actions.findWithArgs", "Open a new In-Editor Find Widget with specific options.",
		bus.Param("args", "Strings and toggles to prefill the find widget with"))

	MoveActiveEditor = bus.Declare1[MoveEditorOptions, bus.Void](editor,
		"moveActiveEditor", "Move the active editor by tabs or groups.",
		bus.Param("options", "Direction, unit and amount of the move"))

	CopyActiveEditor = bus.Declare1[CopyEditorOptions, bus.Void](editor,
		"copyActiveEditor", "Copy the active editor by groups.",
		bus.Param("options", "Direction and amount of the copy"))

	GetEditorLayout = bus.Declare0[EditorLayout](editor,
		"vscode.getEditorLayout", "Get Editor Layout, in the same format as vscode.setEditorLayout.")
)
