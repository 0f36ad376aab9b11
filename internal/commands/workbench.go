package commands

import "github.com/zjrosen/knowncmd/internal/bus"

var workbench = newSet("workbench")

// Quick access, search and chat.
var (
	QuickOpen = bus.Declare1[string, bus.Void](workbench,
		"workbench.action.quickOpen", "Quick access.",
		bus.Param("prefix", "Quick access provider prefix, e.g. '>' for commands"))

	FindInFiles = bus.Declare1[bus.Opaque, bus.Void](workbench,
		"workbench.action.findInFiles", "Open a workspace search.",
		bus.Param("options", "A set of options for the search"))

	OpenNewSearchEditor = bus.Declare1[bus.Opaque, bus.Void](workbench,
		"search.action.openNewEditor", "Opens search in a new search editor.",
		bus.Param("args", "Open new Search Editor args"))

	OpenSearchEditor = bus.Declare1[bus.Opaque, bus.Void](workbench,
		"search.action.openEditor", "Opens search in an existing search editor.",
		bus.Param("args", "Open new Search Editor args"))

	OpenNewSearchEditorToSide = bus.Declare1[bus.Opaque, bus.Void](workbench,
		"search.action.openNewEditorToSide", "Opens search in a new search editor to the side.",
		bus.Param("args", "Open new Search Editor args"))

	EditorChatStart = bus.Declare1[bus.Opaque, bus.Void](workbench,
		"vscode.editorChat.start", "Invoke a new editor chat session.",
		bus.Param("runArguments", "Initial range, message and autosend flag of the session"))
)

// Files, extensions and tasks.
var (
	NewUntitledFile = bus.Declare1[bus.Opt[UntitledFileOptions], bus.Void](workbench,
		"workbench.action.files.newUntitledFile", "New Untitled Text File.",
		bus.Param("options", "The editor view type or language ID if known"))

	InstallExtension = bus.Declare2[UriOrString, bus.Opt[InstallExtensionOptions], bus.Void](workbench,
		"workbench.extensions.installExtension", "Install the given extension.",
		bus.Param("extensionIdOrVSIXUri", "Extension id or VSIX resource uri"),
		bus.Param("options", "Options for installing the extension"))

	UninstallExtension = bus.Declare1[string, bus.Void](workbench,
		"workbench.extensions.uninstallExtension", "Uninstall the given extension.",
		bus.Param("extensionId", "Id of the extension to uninstall"))

	SearchExtensions = bus.Declare1[string, bus.Void](workbench,
		"workbench.extensions.search", "Search for a specific extension.",
		bus.Param("query", "Query to use in search"))

	RunTask = bus.Declare1[TaskFilter, bus.Void](workbench,
		"workbench.action.tasks.runTask", "Run Task.",
		bus.Param("args", "Filters the tasks shown in the Quick Pick"))
)

// Issue reporting, logs and walkthroughs.
var (
	OpenIssueReporter = bus.Declare1[bus.Opt[IssueReporterOptions], bus.Void](workbench,
		"workbench.action.openIssueReporter", "Open the issue reporter and optionally prefill part of the form.",
		bus.Param("options", "Data to use to prefill the issue reporter with"))

	OpenIssueReporterAlias = bus.Declare1[bus.Opt[IssueReporterOptions], bus.Void](workbench,
		"vscode.openIssueReporter", "Open the issue reporter and optionally prefill part of the form.",
		bus.Param("options", "Data to use to prefill the issue reporter with"))

	OpenLogFile = bus.Declare1[bus.Opt[string], bus.Void](workbench,
		"workbench.action.openLogFile", "Open a log file.",
		bus.Param("logFile", "The id of the log file to open, for example \"window\""))

	OpenWalkthrough = bus.Declare2[bus.Opt[WalkthroughTarget], bus.Opt[WalkthroughOptions], bus.Void](workbench,
		"workbench.action.openWalkthrough", "Open the walkthrough.",
		bus.Param("walkthroughID", "ID of the walkthrough to open"),
		bus.Param("optionsOrToSide", "Opens the walkthrough in a new editor group to the side"))
)
