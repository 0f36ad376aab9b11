package presentation

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp is the kind of a diff segment.
type DiffOp string

const (
	DiffEqual  DiffOp = "equal"
	DiffDelete DiffOp = "delete"
	DiffInsert DiffOp = "insert"
)

// DiffSegment is a run of text that is shared, only in the old signature or
// only in the new one.
type DiffSegment struct {
	Op   DiffOp `json:"op"`
	Text string `json:"text"`
}

// SignatureDiff computes a token-level diff between two rendered signatures.
func SignatureDiff(oldSig, newSig string) []DiffSegment {
	oldTokens := tokenize(oldSig)
	newTokens := tokenize(newSig)

	dmp := diffmatchpatch.New()
	// Tokens are mapped to runes so the diff never splits an identifier.
	a, b, tokens := dmp.DiffLinesToRunes(strings.Join(oldTokens, "\n")+"\n", strings.Join(newTokens, "\n")+"\n")
	diffs := dmp.DiffMainRunes(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, tokens)

	var segments []DiffSegment
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\n", "")
		if text == "" {
			continue
		}
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		}
		if n := len(segments); n > 0 && segments[n-1].Op == op {
			segments[n-1].Text += text
			continue
		}
		segments = append(segments, DiffSegment{Op: op, Text: text})
	}
	return segments
}

// tokenize splits a signature into identifiers and single punctuation or
// space characters.
func tokenize(s string) []string {
	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '_' || r == '.' || r == '\'' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			current.WriteRune(r)
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

var (
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Strikethrough(true)
	insertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
)

// RenderDiff renders segments as the old and new lines, with removed text
// styled on the old line and added text on the new line.
func RenderDiff(segments []DiffSegment) (oldLine, newLine string) {
	var o, n strings.Builder
	for _, s := range segments {
		switch s.Op {
		case DiffEqual:
			o.WriteString(s.Text)
			n.WriteString(s.Text)
		case DiffDelete:
			o.WriteString(deleteStyle.Render(s.Text))
		case DiffInsert:
			n.WriteString(insertStyle.Render(s.Text))
		}
	}
	return o.String(), n.String()
}
