package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	opaqueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	json   bool
}

// NewFormatter creates a formatter writing text, or JSON when asJSON is set.
func NewFormatter(writer io.Writer, asJSON bool) *Formatter {
	return &Formatter{
		writer: writer,
		json:   asJSON,
	}
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatSignatures writes a list of signatures as a table, one row per command.
func (f *Formatter) FormatSignatures(sigs []SignatureDTO) error {
	if f.json {
		return f.encode(sigs)
	}

	idWidth := len("COMMAND")
	for _, s := range sigs {
		idWidth = max(idWidth, lipgloss.Width(s.ID))
	}
	idCol := lipgloss.NewStyle().Width(idWidth + 2)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		idCol.Render(headerStyle.Render("COMMAND")), headerStyle.Render("SIGNATURE")))
	b.WriteString("\n")
	for _, s := range sigs {
		call := strings.TrimPrefix(s.Call, s.ID)
		if s.Opaque {
			call = opaqueStyle.Render(call)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, idCol.Render(idStyle.Render(s.ID)), call))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d commands", len(sigs))))
	b.WriteString("\n")

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// FormatSignature writes one signature with its parameter docs and sources.
func (f *Formatter) FormatSignature(sig SignatureDTO) error {
	if f.json {
		return f.encode(sig)
	}

	var b strings.Builder
	b.WriteString(idStyle.Render(sig.Call))
	b.WriteString("\n")
	if sig.Doc != "" {
		b.WriteString("\n  " + sig.Doc + "\n")
	}
	if len(sig.Params) > 0 {
		b.WriteString("\n" + headerStyle.Render("Parameters") + "\n")
		for _, p := range sig.Params {
			name := p.Name
			switch {
			case p.Rest:
				name = "..." + name
			case p.Optional:
				name += "?"
			}
			typ := p.Type
			if typ == "unknown" {
				typ = opaqueStyle.Render(typ)
			}
			fmt.Fprintf(&b, "  %s: %s", name, typ)
			if p.Doc != "" {
				b.WriteString(mutedStyle.Render("  " + p.Doc))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n" + headerStyle.Render("Returns") + " " + sig.Result + "\n")
	b.WriteString(headerStyle.Render("Sources") + " " + strings.Join(sig.Sources, ", ") + "\n")

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// FormatReport writes a check report.
func (f *Formatter) FormatReport(r CheckReportDTO) error {
	if f.json {
		return f.encode(r)
	}

	var b strings.Builder
	if r.OK {
		b.WriteString(successStyle.Render("✓ signature table is consistent"))
		fmt.Fprintf(&b, " (%d commands)\n", r.Commands)
	} else {
		b.WriteString(errorStyle.Render("✗ signature table has errors") + "\n")
	}

	if len(r.Sources) > 0 {
		names := make([]string, 0, len(r.Sources))
		for name := range r.Sources {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("\n" + headerStyle.Render("Sources") + "\n")
		for _, name := range names {
			fmt.Fprintf(&b, "  %-48s %d\n", name, r.Sources[name])
		}
	}

	if len(r.Refinements) > 0 {
		b.WriteString("\n" + headerStyle.Render("Refined opaque declarations") + "\n")
		for _, ref := range r.Refinements {
			fmt.Fprintf(&b, "  %s\n", idStyle.Render(ref.ID))
			fmt.Fprintf(&b, "    %s %s\n", mutedStyle.Render(ref.OpaqueSource+":"), ref.Opaque)
			fmt.Fprintf(&b, "    %s %s\n", mutedStyle.Render(ref.PreciseSource+":"), ref.Precise)
		}
	}

	if len(r.Conflicts) > 0 {
		b.WriteString("\n" + headerStyle.Render("Conflicts") + "\n")
		for _, c := range r.Conflicts {
			oldLine, newLine := RenderDiff(c.Diff)
			fmt.Fprintf(&b, "  %s\n", errorStyle.Render(c.ID))
			fmt.Fprintf(&b, "    - %s %s\n", mutedStyle.Render(c.ExistingSource+":"), oldLine)
			fmt.Fprintf(&b, "    + %s %s\n", mutedStyle.Render(c.IncomingSource+":"), newLine)
		}
	}

	if len(r.Errors) > 0 {
		b.WriteString("\n" + headerStyle.Render("Errors") + "\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// FormatValue writes an arbitrary result value as JSON.
func (f *Formatter) FormatValue(v any) error {
	return f.encode(v)
}
