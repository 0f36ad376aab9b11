package commands

import "github.com/zjrosen/knowncmd/internal/bus"

var navigation = newSet("navigation")

// Opening and comparing resources.
var (
	Open = bus.Declare3[UriOrString, bus.Opt[ColumnOrOptions], bus.Opt[string], bus.Void](navigation,
		"vscode.open", "Opens the provided resource in the editor.",
		bus.Param("uriOrString", "Uri-instance or string (only http/https)"),
		bus.Param("columnOrOptions", "Either the column in which to open or editor options, see vscode.TextDocumentShowOptions"),
		bus.Param("label", "Editor label (optional)"))

	OpenWith = bus.Declare3[URI, string, bus.Opt[ColumnOrOptions], bus.Void](navigation,
		"vscode.openWith", "Opens the provided resource with a specific editor.",
		bus.Param("resource", "Resource to open"),
		bus.Param("viewId", "Custom editor view id. This should be the viewType string for custom editors or the notebookType string for notebooks. Use 'default' to use VS Code's default text editor"),
		bus.Param("columnOrOptions", "Either the column in which to open or editor options, see vscode.TextDocumentShowOptions"))

	Diff = bus.Declare4[URI, URI, bus.Opt[string], bus.Opt[TextDocumentShowOptions], bus.Void](navigation,
		"vscode.diff", "Opens the provided resources in the diff editor to compare their contents.",
		bus.Param("left", "Left-hand side resource of the diff editor"),
		bus.Param("right", "Right-hand side resource of the diff editor"),
		bus.Param("title", "Human readable title for the diff editor"),
		bus.Param("options", "Either the column in which to open, or editor options (see vscode.TextDocumentShowOptions)"))

	Changes = bus.Declare2[string, []ChangeResource, bus.Void](navigation,
		"vscode.changes", "Opens a list of resources in the changes editor to compare their contents.",
		bus.Param("title", "Human readable title for the changes editor"),
		bus.Param("resourceList", "List of resources to compare"))

	OpenFolder = bus.Declare2[bus.Opt[URI], bus.Opt[FolderOptions], bus.Void](navigation,
		"vscode.openFolder", "Open a folder or workspace in the current window or new window.",
		bus.Param("uri", "Uri of the folder or workspace file to open. If not provided, a native dialog will ask the user for the folder"),
		bus.Param("options", "Window options; for backward compatibility also the boolean forceNewWindow setting"))

	NewWindow = bus.Declare1[bus.Opt[NewWindowOptions], bus.Void](navigation,
		"vscode.newWindow", "Opens an new window depending on the newWindow argument.",
		bus.Param("options", "Whether to reuse the window"))

	RemoveFromRecentlyOpened = bus.Declare1[UriOrString, bus.Void](navigation,
		"vscode.removeFromRecentlyOpened", "Removes an entry with the given path from the recently opened list.",
		bus.Param("path", "URI or URI string to remove from recently opened"))
)

// Peek and go to locations.
var (
	GoToLocations = bus.Declare6[URI, Position, []Location, bus.Opt[MultipleMode], bus.Opt[string], bus.Opt[bool], bus.Void](navigation,
		"editor.action.goToLocations", "Go to locations from a position in a file.",
		bus.Param("uri", "The text document in which to start"),
		bus.Param("position", "The position at which to start"),
		bus.Param("locations", "An array of locations"),
		bus.Param("multiple", "Define what to do when having multiple results"),
		bus.Param("noResultsMessage", "Human readable message that shows when locations is empty"),
		bus.Param("openInPeek", "Open the results in the peek view"))

	PeekLocations = bus.Declare4[URI, Position, []Location, bus.Opt[MultipleMode], bus.Void](navigation,
		"editor.action.peekLocations", "Peek locations from a position in a file.",
		bus.Param("uri", "The text document in which to start"),
		bus.Param("position", "The position at which to start"),
		bus.Param("locations", "An array of locations"),
		bus.Param("multiple", "Define what to do when having multiple results"))
)
