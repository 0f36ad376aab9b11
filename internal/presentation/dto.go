package presentation

import (
	"errors"

	"github.com/zjrosen/knowncmd/internal/signature"
	"github.com/zjrosen/knowncmd/internal/table"
)

// SignatureDTO represents a table entry for presentation.
type SignatureDTO struct {
	ID      string     `json:"id"`
	Doc     string     `json:"doc,omitempty"`
	Call    string     `json:"call"`
	Params  []ParamDTO `json:"params"`
	Result  string     `json:"result"`
	Opaque  bool       `json:"opaque"` // any parameter or the result is opaque
	Sources []string   `json:"sources"`
}

// ParamDTO represents one parameter.
type ParamDTO struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Rest     bool   `json:"rest,omitempty"`
	Doc      string `json:"doc,omitempty"`
}

// FromEntry converts a table entry to a DTO.
func FromEntry(e table.Entry) SignatureDTO {
	dto := FromSignature(e.Signature())
	for _, src := range e.Sources() {
		dto.Sources = append(dto.Sources, src.String())
	}
	return dto
}

// FromSignature converts a signature to a DTO without sources.
func FromSignature(sig *signature.Signature) SignatureDTO {
	dto := SignatureDTO{
		ID:      sig.ID(),
		Doc:     sig.Doc(),
		Call:    sig.String(),
		Params:  make([]ParamDTO, 0, len(sig.Params())),
		Result:  sig.Result().Name(),
		Opaque:  sig.Result().IsOpaque(),
		Sources: []string{},
	}
	for _, p := range sig.Params() {
		dto.Params = append(dto.Params, ParamDTO{
			Name:     p.Name,
			Type:     p.Type.Name(),
			Optional: p.Optional,
			Rest:     p.Rest,
			Doc:      p.Doc,
		})
		if p.Type.IsOpaque() {
			dto.Opaque = true
		}
	}
	return dto
}

// FromEntries converts entries in order.
func FromEntries(entries []table.Entry) []SignatureDTO {
	out := make([]SignatureDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return out
}

// RefinementDTO represents an opaque declaration replaced by a precise one.
type RefinementDTO struct {
	ID            string `json:"id"`
	Precise       string `json:"precise"`
	PreciseSource string `json:"precise_source"`
	Opaque        string `json:"opaque"`
	OpaqueSource  string `json:"opaque_source"`
}

// ConflictDTO represents two incompatible declarations of one command.
type ConflictDTO struct {
	ID             string        `json:"id"`
	Existing       string        `json:"existing"`
	ExistingSource string        `json:"existing_source"`
	Incoming       string        `json:"incoming"`
	IncomingSource string        `json:"incoming_source"`
	Diff           []DiffSegment `json:"diff"`
}

// FromConflict converts a conflict, computing the signature diff.
func FromConflict(c *table.ConflictError) ConflictDTO {
	return ConflictDTO{
		ID:             c.ID,
		Existing:       c.Existing.String(),
		ExistingSource: c.ExistingSource.String(),
		Incoming:       c.Incoming.String(),
		IncomingSource: c.IncomingSource.String(),
		Diff:           SignatureDiff(c.Existing.String(), c.Incoming.String()),
	}
}

// CheckReportDTO summarizes a table build.
type CheckReportDTO struct {
	OK          bool            `json:"ok"`
	Commands    int             `json:"commands"`
	Sources     map[string]int  `json:"sources"` // declarations per source
	Refinements []RefinementDTO `json:"refinements"`
	Conflicts   []ConflictDTO   `json:"conflicts"`
	Errors      []string        `json:"errors"`
}

// NewCheckReport builds a report from a table build. t is nil when the build
// failed; err carries every failure.
func NewCheckReport(t *table.Table, err error) CheckReportDTO {
	report := CheckReportDTO{
		OK:          err == nil,
		Sources:     map[string]int{},
		Refinements: []RefinementDTO{},
		Conflicts:   []ConflictDTO{},
		Errors:      []string{},
	}
	if t != nil {
		report.Commands = t.Len()
		for _, e := range t.List() {
			for _, src := range e.Sources() {
				report.Sources[src.String()]++
			}
		}
		for _, r := range t.Refinements() {
			report.Refinements = append(report.Refinements, RefinementDTO{
				ID:            r.ID,
				Precise:       r.Precise.String(),
				PreciseSource: r.PreciseSource.String(),
				Opaque:        r.Opaque.String(),
				OpaqueSource:  r.OpaqueSource.String(),
			})
		}
	}
	for _, e := range leafErrors(err) {
		var conflict *table.ConflictError
		if errors.As(e, &conflict) {
			report.Conflicts = append(report.Conflicts, FromConflict(conflict))
			continue
		}
		report.Errors = append(report.Errors, e.Error())
	}
	return report
}

// leafErrors flattens errors.Join trees. Each returned error is a single
// failure; wrapped single errors are kept whole.
func leafErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, leafErrors(e)...)
		}
		return out
	}
	return []error{err}
}
