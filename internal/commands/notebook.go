package commands

import "github.com/zjrosen/knowncmd/internal/bus"

var notebook = newSet("notebook")

// Notebook serialization and kernels.
var (
	ExecuteDataToNotebook = bus.Declare2[string, []byte, NotebookData](notebook,
		"vscode.executeDataToNotebook", "Invoke notebook serializer.",
		bus.Param("notebookType", "A notebook type"),
		bus.Param("data", "Bytes to convert to data"))

	ExecuteNotebookToData = bus.Declare2[string, NotebookData, []byte](notebook,
		"vscode.executeNotebookToData", "Invoke notebook serializer.",
		bus.Param("notebookType", "A notebook type"),
		bus.Param("NotebookData", "Notebook data to convert to bytes"))

	SelectKernel = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.selectKernel", "Notebook Kernel Args.",
		bus.Param("options", "Kernel id and extension that contributes it, or the notebook editor to pick for"))

	ResolveNotebookContentProviders = bus.Declare0[[]NotebookContentProvider](notebook,
		"vscode.resolveNotebookContentProviders", "Resolve Notebook Content Providers.")
)

// Cell commands. Their arguments are host-internal payloads.
var (
	ToggleCellOutputs = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.cell.toggleOutputs", "Toggle Outputs.",
		bus.Param("options", "Cell range and notebook document whose outputs are toggled"))

	FoldCell = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.fold", "Fold Cell.",
		bus.Param("index", "The cell index"))

	UnfoldCell = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.unfold", "Unfold Cell.",
		bus.Param("index", "The cell index"))

	ChangeCellLanguage = bus.Declare2[bus.Opaque, bus.Opaque, bus.Void](notebook,
		"notebook.cell.changeLanguage", "Change Cell Language.",
		bus.Param("range", "The cell range"),
		bus.Param("language", "The target cell language"))

	ExecuteNotebook = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.execute", "Run All.",
		bus.Param("uri", "The document uri"))

	ExecuteCell = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.cell.execute", "Execute Cell.",
		bus.Param("options", "Cell range and document uri"))

	ExecuteCellAndFocusContainer = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.cell.executeAndFocusContainer", "Execute Cell and Focus Container.",
		bus.Param("options", "Cell range and document uri"))

	CancelCellExecution = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"notebook.cell.cancelExecution", "Stop Cell Execution.",
		bus.Param("options", "Cell range and document uri"))
)

// Interactive window.
var (
	InteractiveOpen = bus.Declare4[InteractiveShowOptions, URI, string, string, InteractiveWindow](notebook,
		"interactive.open", "Open Interactive Window.",
		bus.Param("showOptions", "Show Options"),
		bus.Param("resource", "Interactive resource Uri"),
		bus.Param("controllerId", "Notebook controller Id"),
		bus.Param("title", "Interactive editor title"))

	InteractiveOpenInternal = bus.Declare4[bus.Opaque, bus.Opaque, bus.Opaque, bus.Opaque, bus.Void](notebook,
		"_interactive.open", "Open Interactive Window.",
		bus.Param("showOptions", "Show Options"),
		bus.Param("resource", "Interactive resource Uri"),
		bus.Param("controllerId", "Notebook controller Id"),
		bus.Param("title", "Interactive editor title"))

	InteractiveExecute = bus.Declare1[bus.Opaque, bus.Void](notebook,
		"interactive.execute", "Execute the Contents of the Input Box.",
		bus.Param("resource", "Interactive resource Uri"))
)
