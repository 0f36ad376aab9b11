package commands

import "github.com/zjrosen/knowncmd/internal/bus"

var language = newSet("language")

// Document and workspace language features.
var (
	ExecuteDocumentHighlights = bus.Declare2[URI, Position, []DocumentHighlight](language,
		"vscode.executeDocumentHighlights", "Execute document highlight provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteDocumentSymbolProvider = bus.Declare1[URI, []DocumentSymbol](language,
		"vscode.executeDocumentSymbolProvider", "Execute document symbol provider.",
		bus.Param("uri", "Uri of a text document"))

	ExecuteFormatDocumentProvider = bus.Declare2[URI, FormattingOptions, []TextEdit](language,
		"vscode.executeFormatDocumentProvider", "Execute document format provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("options", "Formatting options"))

	ExecuteFormatRangeProvider = bus.Declare3[URI, Range, FormattingOptions, []TextEdit](language,
		"vscode.executeFormatRangeProvider", "Execute range format provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("range", "A range in a text document"),
		bus.Param("options", "Formatting options"))

	ExecuteFormatOnTypeProvider = bus.Declare4[URI, Position, string, FormattingOptions, []TextEdit](language,
		"vscode.executeFormatOnTypeProvider", "Execute format on type provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"),
		bus.Param("ch", "Trigger character"),
		bus.Param("options", "Formatting options"))

	ExecuteDefinitionProvider = bus.Declare2[URI, Position, []LocationOrLink](language,
		"vscode.executeDefinitionProvider", "Execute all definition providers.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteTypeDefinitionProvider = bus.Declare2[URI, Position, []LocationOrLink](language,
		"vscode.executeTypeDefinitionProvider", "Execute all type definition providers.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteDeclarationProvider = bus.Declare2[URI, Position, []LocationOrLink](language,
		"vscode.executeDeclarationProvider", "Execute all declaration providers.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteImplementationProvider = bus.Declare2[URI, Position, []LocationOrLink](language,
		"vscode.executeImplementationProvider", "Execute all implementation providers.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteReferenceProvider = bus.Declare2[URI, Position, []LocationOrLink](language,
		"vscode.executeReferenceProvider", "Execute all reference providers.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteHoverProvider = bus.Declare2[URI, Position, []Hover](language,
		"vscode.executeHoverProvider", "Execute all hover providers.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteSelectionRangeProvider = bus.Declare2[URI, []Position, []SelectionRange](language,
		"vscode.executeSelectionRangeProvider", "Execute selection range provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "Positions in a text document"))

	ExecuteWorkspaceSymbolProvider = bus.Declare1[string, []SymbolInformation](language,
		"vscode.executeWorkspaceSymbolProvider", "Execute all workspace symbol providers.",
		bus.Param("query", "Search string"))

	ExecuteLinkProvider = bus.Declare2[URI, bus.Opt[int], []DocumentLink](language,
		"vscode.executeLinkProvider", "Execute document link provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("linkResolveCount", "Number of links that should be resolved, only when links are unresolved"))

	ExecuteCompletionItemProvider = bus.Declare4[URI, Position, bus.Opt[string], bus.Opt[int], CompletionList](language,
		"vscode.executeCompletionItemProvider", "Execute completion item provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"),
		bus.Param("triggerCharacter", "Trigger completion when the user types the character, like `,` or `(`"),
		bus.Param("itemResolveCount", "Number of completions to resolve (too large numbers slow down completions)"))

	ExecuteSignatureHelpProvider = bus.Declare3[URI, Position, bus.Opt[string], SignatureHelp](language,
		"vscode.executeSignatureHelpProvider", "Execute signature help provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"),
		bus.Param("triggerCharacter", "Trigger signature help when the user types the character, like `,` or `(`"))

	ExecuteCodeLensProvider = bus.Declare2[URI, bus.Opt[int], []CodeLens](language,
		"vscode.executeCodeLensProvider", "Execute code lens provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("itemResolveCount", "Number of lenses that should be resolved and returned. Will only return resolved lenses, will impact performance"))

	ExecuteCodeActionProvider = bus.Declare4[URI, RangeOrSelection, bus.Opt[string], bus.Opt[int], []CommandOrCodeAction](language,
		"vscode.executeCodeActionProvider", "Execute code action provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("rangeOrSelection", "Range in a text document. Some refactoring provider requires Selection object."),
		bus.Param("kind", "Code action kind to return code actions for"),
		bus.Param("itemResolveCount", "Number of code actions to resolve (too large numbers slow down code actions)"))

	ExecuteDocumentColorProvider = bus.Declare1[URI, []ColorInformation](language,
		"vscode.executeDocumentColorProvider", "Execute document color provider.",
		bus.Param("uri", "Uri of a text document"))

	ExecuteColorPresentationProvider = bus.Declare2[Color, ColorContext, []ColorPresentation](language,
		"vscode.executeColorPresentationProvider", "Execute color presentation provider.",
		bus.Param("color", "The color to show and insert"),
		bus.Param("context", "Context object with uri and range"))

	ExecuteInlayHintProvider = bus.Declare2[URI, Range, []InlayHint](language,
		"vscode.executeInlayHintProvider", "Execute inlay hints provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("range", "A range in a text document"))

	ExecuteFoldingRangeProvider = bus.Declare1[URI, []FoldingRange](language,
		"vscode.executeFoldingRangeProvider", "Execute folding range provider.",
		bus.Param("uri", "Uri of a text document"))

	ExecuteInlineValueProvider = bus.Declare3[URI, Range, InlineValueContext, []InlineValue](language,
		"vscode.executeInlineValueProvider", "Execute inline value provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("range", "A range in a text document"),
		bus.Param("context", "An InlineValueContext"))
)

// Rename.
var (
	PrepareRename = bus.Declare2[URI, Position, RenameLocation](language,
		"vscode.prepareRename", "Execute the prepareRename of rename provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ExecuteDocumentRenameProvider = bus.Declare3[URI, Position, string, WorkspaceEdit](language,
		"vscode.executeDocumentRenameProvider", "Execute rename provider.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"),
		bus.Param("newName", "The new symbol name"))
)

// Semantic tokens.
var (
	ProvideDocumentSemanticTokensLegend = bus.Declare1[URI, SemanticTokensLegend](language,
		"vscode.provideDocumentSemanticTokensLegend", "Provide semantic tokens legend for a document.",
		bus.Param("uri", "Uri of a text document"))

	ProvideDocumentSemanticTokens = bus.Declare1[URI, SemanticTokens](language,
		"vscode.provideDocumentSemanticTokens", "Provide semantic tokens for a document.",
		bus.Param("uri", "Uri of a text document"))

	ProvideDocumentRangeSemanticTokensLegend = bus.Declare2[URI, bus.Opt[Range], SemanticTokensLegend](language,
		"vscode.provideDocumentRangeSemanticTokensLegend", "Provide semantic tokens legend for a document range.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("range", "A range in a text document"))

	ProvideDocumentRangeSemanticTokens = bus.Declare2[URI, Range, SemanticTokens](language,
		"vscode.provideDocumentRangeSemanticTokens", "Provide semantic tokens for a document range.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("range", "A range in a text document"))
)

// Call and type hierarchies.
var (
	PrepareCallHierarchy = bus.Declare2[URI, Position, []CallHierarchyItem](language,
		"vscode.prepareCallHierarchy", "Prepare call hierarchy at a position inside a document.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ProvideIncomingCalls = bus.Declare1[CallHierarchyItem, []CallHierarchyIncomingCall](language,
		"vscode.provideIncomingCalls", "Compute incoming calls for an item.",
		bus.Param("item", "A call hierarchy item"))

	ProvideOutgoingCalls = bus.Declare1[CallHierarchyItem, []CallHierarchyOutgoingCall](language,
		"vscode.provideOutgoingCalls", "Compute outgoing calls for an item.",
		bus.Param("item", "A call hierarchy item"))

	PrepareTypeHierarchy = bus.Declare2[URI, Position, []TypeHierarchyItem](language,
		"vscode.prepareTypeHierarchy", "Prepare type hierarchy at a position inside a document.",
		bus.Param("uri", "Uri of a text document"),
		bus.Param("position", "A position in a text document"))

	ProvideSupertypes = bus.Declare1[TypeHierarchyItem, []TypeHierarchyItem](language,
		"vscode.provideSupertypes", "Compute supertypes for an item.",
		bus.Param("item", "A type hierarchy item"))

	ProvideSubtypes = bus.Declare1[TypeHierarchyItem, []TypeHierarchyItem](language,
		"vscode.provideSubtypes", "Compute subtypes for an item.",
		bus.Param("item", "A type hierarchy item"))
)
