package commands

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/zjrosen/knowncmd/internal/bus"
)

// URI identifies a resource. It travels as its string form.
type URI struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// ParseURI parses s into a URI.
func ParseURI(s string) (URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, fmt.Errorf("parse uri %q: %w", s, err)
	}
	return URI{Scheme: u.Scheme, Authority: u.Host, Path: u.Path, Query: u.RawQuery, Fragment: u.Fragment}, nil
}

// File returns a file URI for path.
func File(path string) URI {
	return URI{Scheme: "file", Path: path}
}

func (u URI) String() string {
	v := url.URL{Scheme: u.Scheme, Host: u.Authority, Path: u.Path, RawQuery: u.Query, Fragment: u.Fragment}
	if u.Scheme == "file" && u.Authority == "" {
		return "file://" + v.EscapedPath()
	}
	return v.String()
}

func (u URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// URIString is a resource given in string form.
type URIString string

// UriOrString is a URI or its string form.
type UriOrString interface {
	isUriOrString()
}

func (URI) isUriOrString()       {}
func (URIString) isUriOrString() {}

// Position is a zero-based line and character offset.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is an ordered pair of positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Selection is a range with a direction.
type Selection struct {
	Range
	Anchor Position `json:"anchor"`
	Active Position `json:"active"`
}

// RangeOrSelection is a Range or a Selection.
type RangeOrSelection interface {
	isRangeOrSelection()
}

func (Range) isRangeOrSelection()     {}
func (Selection) isRangeOrSelection() {}

// Location is a range inside a resource.
type Location struct {
	URI   URI   `json:"uri"`
	Range Range `json:"range"`
}

// LocationLink connects an origin range to a target.
type LocationLink struct {
	OriginSelectionRange *Range `json:"originSelectionRange,omitempty"`
	TargetURI            URI    `json:"targetUri"`
	TargetRange          Range  `json:"targetRange"`
	TargetSelectionRange *Range `json:"targetSelectionRange,omitempty"`
}

// LocationOrLink is a Location or a LocationLink.
type LocationOrLink interface {
	isLocationOrLink()
}

func (Location) isLocationOrLink()     {}
func (LocationLink) isLocationOrLink() {}

// ViewColumn is an editor column. Negative values are symbolic.
type ViewColumn int

const (
	ViewColumnBeside ViewColumn = -2
	ViewColumnActive ViewColumn = -1
	ViewColumnOne    ViewColumn = 1
	ViewColumnTwo    ViewColumn = 2
	ViewColumnThree  ViewColumn = 3
)

// TextDocumentShowOptions controls how a document is shown.
type TextDocumentShowOptions struct {
	ViewColumn    *ViewColumn `json:"viewColumn,omitempty"`
	PreserveFocus bool        `json:"preserveFocus,omitempty"`
	Preview       *bool       `json:"preview,omitempty"`
	Selection     *Range      `json:"selection,omitempty"`
}

// ColumnOrOptions is a ViewColumn or TextDocumentShowOptions.
type ColumnOrOptions interface {
	isColumnOrOptions()
}

func (ViewColumn) isColumnOrOptions()              {}
func (TextDocumentShowOptions) isColumnOrOptions() {}

// InteractiveWindowOptions is the subset of show options the interactive
// window honours.
type InteractiveWindowOptions struct {
	ViewColumn    *ViewColumn `json:"viewColumn,omitempty"`
	PreserveFocus bool        `json:"preserveFocus,omitempty"`
}

// InteractiveShowOptions is a ViewColumn or InteractiveWindowOptions.
type InteractiveShowOptions interface {
	isInteractiveShowOptions()
}

func (ViewColumn) isInteractiveShowOptions()               {}
func (InteractiveWindowOptions) isInteractiveShowOptions() {}

// NotebookEditor identifies an open notebook editor.
type NotebookEditor struct {
	NotebookURI URI         `json:"notebookUri"`
	ViewColumn  *ViewColumn `json:"viewColumn,omitempty"`
}

// InteractiveWindow describes an opened interactive window.
type InteractiveWindow struct {
	NotebookURI    URI             `json:"notebookUri"`
	InputURI       URI             `json:"inputUri"`
	NotebookEditor *NotebookEditor `json:"notebookEditor,omitempty"`
}

// NotebookCellData is one cell of a serialized notebook.
type NotebookCellData struct {
	Kind       int            `json:"kind"`
	Value      string         `json:"value"`
	LanguageID string         `json:"languageId"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// NotebookData is a deserialized notebook.
type NotebookData struct {
	Cells    []NotebookCellData `json:"cells"`
	Metadata map[string]any     `json:"metadata,omitempty"`
}

// NotebookContentProvider is the static info of a notebook content provider.
type NotebookContentProvider struct {
	ViewType        string         `json:"viewType"`
	DisplayName     string         `json:"displayName"`
	FilenamePattern []any          `json:"filenamePattern"`
	Options         map[string]any `json:"options,omitempty"`
}

// FormattingOptions configure document formatting.
type FormattingOptions struct {
	TabSize      int  `json:"tabSize"`
	InsertSpaces bool `json:"insertSpaces"`
}

// TextEdit replaces a range with new text.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// WorkspaceEdit groups text edits by resource.
type WorkspaceEdit struct {
	Changes map[string][]TextEdit `json:"changes"`
}

// DocumentHighlight marks a symbol occurrence.
type DocumentHighlight struct {
	Range Range `json:"range"`
	Kind  int   `json:"kind"`
}

// SymbolKind classifies a symbol.
type SymbolKind int

// DocumentSymbol is a hierarchical symbol of a document.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail"`
	Kind           SymbolKind       `json:"kind"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// SymbolInformation is a workspace symbol.
type SymbolInformation struct {
	Name          string     `json:"name"`
	ContainerName string     `json:"containerName"`
	Kind          SymbolKind `json:"kind"`
	Location      Location   `json:"location"`
}

// Hover is hover content for a position.
type Hover struct {
	Contents []string `json:"contents"`
	Range    *Range   `json:"range,omitempty"`
}

// SelectionRange is a range with its enclosing parent.
type SelectionRange struct {
	Range  Range           `json:"range"`
	Parent *SelectionRange `json:"parent,omitempty"`
}

// CallHierarchyItem is a node of the call hierarchy.
type CallHierarchyItem struct {
	Name           string     `json:"name"`
	Kind           SymbolKind `json:"kind"`
	Detail         string     `json:"detail,omitempty"`
	URI            URI        `json:"uri"`
	Range          Range      `json:"range"`
	SelectionRange Range      `json:"selectionRange"`
}

// CallHierarchyIncomingCall is a caller of an item.
type CallHierarchyIncomingCall struct {
	From       CallHierarchyItem `json:"from"`
	FromRanges []Range           `json:"fromRanges"`
}

// CallHierarchyOutgoingCall is a callee of an item.
type CallHierarchyOutgoingCall struct {
	To         CallHierarchyItem `json:"to"`
	FromRanges []Range           `json:"fromRanges"`
}

// TypeHierarchyItem is a node of the type hierarchy.
type TypeHierarchyItem struct {
	Name           string     `json:"name"`
	Kind           SymbolKind `json:"kind"`
	Detail         string     `json:"detail,omitempty"`
	URI            URI        `json:"uri"`
	Range          Range      `json:"range"`
	SelectionRange Range      `json:"selectionRange"`
}

// RenameLocation is the range and placeholder of a rename.
type RenameLocation struct {
	Range       Range  `json:"range"`
	Placeholder string `json:"placeholder"`
}

// DocumentLink is a link inside a document.
type DocumentLink struct {
	Range   Range  `json:"range"`
	Target  *URI   `json:"target,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// SemanticTokensLegend names token types and modifiers.
type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

// SemanticTokens are encoded semantic tokens.
type SemanticTokens struct {
	ResultID string   `json:"resultId,omitempty"`
	Data     []uint32 `json:"data"`
}

// CompletionItem is one completion proposal.
type CompletionItem struct {
	Label      string `json:"label"`
	Kind       int    `json:"kind,omitempty"`
	Detail     string `json:"detail,omitempty"`
	InsertText string `json:"insertText,omitempty"`
}

// CompletionList is a list of completion proposals.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// SignatureInformation describes one callable signature.
type SignatureInformation struct {
	Label         string `json:"label"`
	Documentation string `json:"documentation,omitempty"`
}

// SignatureHelp is signature help at a position.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature int                    `json:"activeSignature"`
	ActiveParameter int                    `json:"activeParameter"`
}

// HostCommand is a reference to a command with its arguments.
type HostCommand struct {
	Title     string `json:"title"`
	Command   string `json:"command"`
	Tooltip   string `json:"tooltip,omitempty"`
	Arguments []any  `json:"arguments,omitempty"`
}

// CodeLens is a command shown inline with source text.
type CodeLens struct {
	Range   Range        `json:"range"`
	Command *HostCommand `json:"command,omitempty"`
}

// CodeAction is a quick fix or refactoring.
type CodeAction struct {
	Title       string         `json:"title"`
	Kind        string         `json:"kind,omitempty"`
	Edit        *WorkspaceEdit `json:"edit,omitempty"`
	Command     *HostCommand   `json:"command,omitempty"`
	IsPreferred bool           `json:"isPreferred,omitempty"`
}

// CommandOrCodeAction is a HostCommand or a CodeAction.
type CommandOrCodeAction interface {
	isCommandOrCodeAction()
}

func (HostCommand) isCommandOrCodeAction() {}
func (CodeAction) isCommandOrCodeAction()  {}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// ColorInformation is a color found in a document.
type ColorInformation struct {
	Range Range `json:"range"`
	Color Color `json:"color"`
}

// ColorContext locates the color being presented.
type ColorContext struct {
	URI   URI   `json:"uri"`
	Range Range `json:"range"`
}

// ColorPresentation is one textual form of a color.
type ColorPresentation struct {
	Label               string     `json:"label"`
	TextEdit            *TextEdit  `json:"textEdit,omitempty"`
	AdditionalTextEdits []TextEdit `json:"additionalTextEdits,omitempty"`
}

// InlayHint is inline annotation text.
type InlayHint struct {
	Position     Position `json:"position"`
	Label        string   `json:"label"`
	Kind         int      `json:"kind,omitempty"`
	PaddingLeft  bool     `json:"paddingLeft,omitempty"`
	PaddingRight bool     `json:"paddingRight,omitempty"`
}

// FoldingRange is a foldable line range.
type FoldingRange struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Kind  string `json:"kind,omitempty"`
}

// InlineValueContext describes the debugger stop location.
type InlineValueContext struct {
	FrameID         int   `json:"frameId"`
	StoppedLocation Range `json:"stoppedLocation"`
}

// InlineValue is text, a variable lookup or an expression shown inline
// while debugging. Exactly one of Text, VariableName and Expression is set.
type InlineValue struct {
	Range        Range  `json:"range"`
	Text         string `json:"text,omitempty"`
	VariableName string `json:"variableName,omitempty"`
	Expression   string `json:"expression,omitempty"`
}

// ChangeResource is one entry of a multi-file diff: the resource and
// optionally its original and modified versions. It travels as a tuple.
type ChangeResource struct {
	Resource URI
	Original *URI
	Modified *URI
}

func (c ChangeResource) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Resource, c.Original, c.Modified})
}

// TestItem identifies a test.
type TestItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URI   *URI   `json:"uri,omitempty"`
}

// TestRunProfile identifies a test run profile.
type TestRunProfile struct {
	Label string `json:"label"`
	Kind  int    `json:"kind"`
}

// CursorMoveOptions configure the cursorMove command.
type CursorMoveOptions struct {
	To        string `json:"to"`
	By        string `json:"by,omitempty"`
	Value     int    `json:"value,omitempty"`
	Select    bool   `json:"select,omitempty"`
	NoHistory bool   `json:"noHistory,omitempty"`
}

// EditorScrollOptions configure the editorScroll command.
type EditorScrollOptions struct {
	To           string `json:"to"`
	By           string `json:"by,omitempty"`
	Value        int    `json:"value,omitempty"`
	RevealCursor bool   `json:"revealCursor,omitempty"`
}

// RevealLineOptions configure the revealLine command.
type RevealLineOptions struct {
	LineNumber int    `json:"lineNumber"`
	At         string `json:"at"`
}

// FoldOptions configure folding and unfolding.
type FoldOptions struct {
	Levels         int    `json:"levels,omitempty"`
	Direction      string `json:"direction,omitempty"`
	SelectionLines []int  `json:"selectionLines,omitempty"`
}

// FindOptions prefill the find widget.
type FindOptions struct {
	SearchString    string `json:"searchString"`
	ReplaceString   string `json:"replaceString"`
	IsRegex         bool   `json:"isRegex"`
	MatchWholeWord  bool   `json:"matchWholeWord"`
	IsCaseSensitive bool   `json:"isCaseSensitive"`
	PreserveCase    bool   `json:"preserveCase"`
	FindInSelection bool   `json:"findInSelection"`
}

// MultipleMode selects what goToLocations does with several results.
type MultipleMode string

const (
	MultiplePeek        MultipleMode = "peek"
	MultipleGotoAndPeek MultipleMode = "gotoAndPeek"
	MultipleGoto        MultipleMode = "goto"
)

// OpenFolderOptions configure vscode.openFolder.
type OpenFolderOptions struct {
	ForceNewWindow   bool   `json:"forceNewWindow,omitempty"`
	ForceReuseWindow bool   `json:"forceReuseWindow,omitempty"`
	NoRecentEntry    bool   `json:"noRecentEntry,omitempty"`
	ForceLocalWindow bool   `json:"forceLocalWindow,omitempty"`
	ForceProfile     string `json:"forceProfile,omitempty"`
	ForceTempProfile bool   `json:"forceTempProfile,omitempty"`
	FilesToOpen      []URI  `json:"filesToOpen,omitempty"`
}

// ForceNewWindow is the legacy boolean form of OpenFolderOptions.
type ForceNewWindow bool

// FolderOptions is OpenFolderOptions or ForceNewWindow.
type FolderOptions interface {
	isFolderOptions()
}

func (OpenFolderOptions) isFolderOptions() {}
func (ForceNewWindow) isFolderOptions()    {}

// NewWindowOptions configure vscode.newWindow.
type NewWindowOptions struct {
	ReuseWindow bool `json:"reuseWindow,omitempty"`
}

// MoveEditorOptions configure moveActiveEditor.
type MoveEditorOptions struct {
	To    string `json:"to"`
	By    string `json:"by,omitempty"`
	Value int    `json:"value,omitempty"`
}

// CopyEditorOptions configure copyActiveEditor.
type CopyEditorOptions struct {
	To    string `json:"to"`
	Value int    `json:"value,omitempty"`
}

// EditorGroupLayout is one group of an editor layout.
type EditorGroupLayout struct {
	Size   float64 `json:"size"`
	Groups []any   `json:"groups,omitempty"`
}

// EditorLayout is the editor group layout. Orientation 0 is horizontal.
type EditorLayout struct {
	Orientation int                 `json:"orientation"`
	Groups      []EditorGroupLayout `json:"groups"`
}

// UntitledFileOptions configure a new untitled file.
type UntitledFileOptions struct {
	LanguageID string `json:"languageId,omitempty"`
	ViewType   string `json:"viewType,omitempty"`
}

// InstallExtensionOptions configure extension installation. Justification
// is a string or an object with reason and action.
type InstallExtensionOptions struct {
	InstallOnlyNewlyAddedFromExtensionPackVSIX bool           `json:"installOnlyNewlyAddedFromExtensionPackVSIX,omitempty"`
	InstallPreReleaseVersion                   bool           `json:"installPreReleaseVersion,omitempty"`
	DonotSync                                  bool           `json:"donotSync,omitempty"`
	Justification                              bus.Opaque     `json:"justification,omitempty"`
	Enable                                     bool           `json:"enable,omitempty"`
	Context                                    map[string]any `json:"context,omitempty"`
}

// TaskLabel filters tasks by label.
type TaskLabel string

// TaskFilterOptions filter tasks by type and label.
type TaskFilterOptions struct {
	Type string `json:"type"`
	Task string `json:"task"`
}

// TaskFilter is a TaskLabel or TaskFilterOptions.
type TaskFilter interface {
	isTaskFilter()
}

func (TaskLabel) isTaskFilter()         {}
func (TaskFilterOptions) isTaskFilter() {}

// IssueExtensionID prefills the issue reporter with an extension.
type IssueExtensionID string

// IssueReport prefills the issue reporter form.
type IssueReport struct {
	ExtensionID string `json:"extensionId"`
	IssueTitle  string `json:"issueTitle"`
	IssueBody   string `json:"issueBody"`
}

// IssueReporterOptions is an IssueExtensionID or an IssueReport.
type IssueReporterOptions interface {
	isIssueReporterOptions()
}

func (IssueExtensionID) isIssueReporterOptions() {}
func (IssueReport) isIssueReporterOptions()      {}

// WalkthroughID names a walkthrough.
type WalkthroughID string

// WalkthroughStep names a walkthrough category and optional step.
type WalkthroughStep struct {
	Category string `json:"category"`
	Step     string `json:"step,omitempty"`
}

// WalkthroughTarget is a WalkthroughID or a WalkthroughStep.
type WalkthroughTarget interface {
	isWalkthroughTarget()
}

func (WalkthroughID) isWalkthroughTarget()   {}
func (WalkthroughStep) isWalkthroughTarget() {}

// WalkthroughPlacement controls where a walkthrough opens.
type WalkthroughPlacement struct {
	ToSide   bool `json:"toSide,omitempty"`
	Inactive bool `json:"inactive,omitempty"`
}

// ToSide is the boolean form of WalkthroughPlacement.
type ToSide bool

// WalkthroughOptions is a WalkthroughPlacement or ToSide.
type WalkthroughOptions interface {
	isWalkthroughOptions()
}

func (WalkthroughPlacement) isWalkthroughOptions() {}
func (ToSide) isWalkthroughOptions()               {}

// typeNames spell Go types the way declaration files name them.
var typeNames = []bus.SetOption{
	bus.WithTypeName[URI]("Uri"),
	bus.WithTypeName[UriOrString]("Uri | string"),
	bus.WithTypeName[RangeOrSelection]("Range | Selection"),
	bus.WithTypeName[LocationOrLink]("Location | LocationLink"),
	bus.WithTypeName[ColumnOrOptions]("ViewColumn | TextDocumentShowOptions"),
	bus.WithTypeName[InteractiveShowOptions]("ViewColumn | InteractiveWindowOptions"),
	bus.WithTypeName[HostCommand]("Command"),
	bus.WithTypeName[CommandOrCodeAction]("Command | CodeAction"),
	bus.WithTypeName[MultipleMode]("'peek' | 'gotoAndPeek' | 'goto'"),
	bus.WithTypeName[FolderOptions]("OpenFolderOptions | boolean"),
	bus.WithTypeName[TaskFilter]("string | TaskFilterOptions"),
	bus.WithTypeName[IssueReporterOptions]("string | IssueReport"),
	bus.WithTypeName[WalkthroughTarget]("string | WalkthroughStep"),
	bus.WithTypeName[WalkthroughOptions]("WalkthroughPlacement | boolean"),
}

func newSet(name string) *bus.Set {
	return bus.NewSet(name, typeNames...)
}
