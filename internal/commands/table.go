package commands

import (
	"embed"
	"errors"
	"fmt"

	"github.com/zjrosen/knowncmd/internal/bus"
	"github.com/zjrosen/knowncmd/internal/declfile"
	"github.com/zjrosen/knowncmd/internal/table"
)

//go:embed declarations
var declarationsFS embed.FS

const embeddedPrefix = "embedded"

var builtin *table.Table

func init() {
	t, err := Build()
	if err != nil {
		panic(fmt.Sprintf("known command table: %v", err))
	}
	builtin = t
}

// Sets returns the Go declaration sets in a stable order.
func Sets() []*bus.Set {
	return []*bus.Set{language, navigation, editor, notebook, testRuns, workbench}
}

// Table returns the built-in signature table: the Go declarations merged
// with the embedded declaration files.
func Table() *table.Table {
	return builtin
}

// EmbeddedFiles parses the embedded declaration files.
func EmbeddedFiles() ([]declfile.File, error) {
	return declfile.LoadFS(declarationsFS, "declarations", embeddedPrefix, table.SourceBuiltIn)
}

// Build assembles the built-in table with opts.
func Build(opts ...table.Option) (*table.Table, error) {
	return Merge(opts)
}

// Merge assembles the built-in table together with extra declaration files.
// Every source is attempted; the error joins each failure.
func Merge(opts []table.Option, extra ...declfile.File) (*table.Table, error) {
	b := table.NewBuilder(opts...)
	var errs []error

	for _, s := range Sets() {
		sigs, err := s.Signatures()
		if err != nil {
			errs = append(errs, err)
		}
		src := table.Source{Name: s.Name(), Kind: table.SourceGo}
		if err := b.AddAll(src, sigs...); err != nil {
			errs = append(errs, err)
		}
	}

	files, err := EmbeddedFiles()
	if err != nil {
		errs = append(errs, err)
	}
	if err := declfile.AddFiles(b, files); err != nil {
		errs = append(errs, err)
	}
	if err := declfile.AddFiles(b, extra); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b.Build()
}
