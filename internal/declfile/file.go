package declfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/knowncmd/internal/signature"
	"github.com/zjrosen/knowncmd/internal/table"
)

// Loader errors
var (
	ErrUnsupportedFormat = errors.New("unsupported declaration file format")
	ErrMissingID         = errors.New("command entry has no id")
)

// DeclarationFile is the root structure of a declaration file.
type DeclarationFile struct {
	Commands []CommandDef `yaml:"commands" toml:"commands"`
}

// CommandDef declares one command.
type CommandDef struct {
	ID      string     `yaml:"id" toml:"id"`
	Doc     string     `yaml:"doc" toml:"doc"`
	Params  []ParamDef `yaml:"params" toml:"params"`
	Returns string     `yaml:"returns" toml:"returns"` // empty means void
}

// ParamDef declares one parameter.
type ParamDef struct {
	Name     string `yaml:"name" toml:"name"`
	Type     string `yaml:"type" toml:"type"`
	Optional bool   `yaml:"optional" toml:"optional"`
	Rest     bool   `yaml:"rest" toml:"rest"`
	Doc      string `yaml:"doc" toml:"doc"`
}

// File is a parsed declaration file.
type File struct {
	Source     table.Source
	Signatures []*signature.Signature
}

// IsDeclarationFile reports whether name has a supported extension.
func IsDeclarationFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// Parse decodes a declaration file. The format is chosen by the extension
// of name. Every malformed command is reported; well-formed ones are still
// returned.
func Parse(name string, content []byte) ([]*signature.Signature, error) {
	var file DeclarationFile
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	case ".toml":
		md, err := toml.Decode(string(content), &file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse %s: unknown keys %v", name, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	sigs := make([]*signature.Signature, 0, len(file.Commands))
	var errs []error
	for i, def := range file.Commands {
		sig, err := buildSignature(def)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: command %d: %w", name, i+1, err))
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs, errors.Join(errs...)
}

func buildSignature(def CommandDef) (*signature.Signature, error) {
	if strings.TrimSpace(def.ID) == "" {
		return nil, ErrMissingID
	}
	b := signature.NewBuilder(def.ID).Doc(def.Doc)
	for _, p := range def.Params {
		b.Add(signature.Param{
			Name:     p.Name,
			Type:     signature.Named(p.Type),
			Optional: p.Optional,
			Rest:     p.Rest,
			Doc:      p.Doc,
		})
	}
	return b.Returns(signature.Named(def.Returns)).Build()
}

// Encode renders signatures as a YAML declaration file.
func Encode(sigs []*signature.Signature) ([]byte, error) {
	file := DeclarationFile{Commands: make([]CommandDef, 0, len(sigs))}
	for _, sig := range sigs {
		def := CommandDef{ID: sig.ID(), Doc: sig.Doc(), Returns: sig.Result().Name()}
		for _, p := range sig.Params() {
			def.Params = append(def.Params, ParamDef{
				Name:     p.Name,
				Type:     p.Type.Name(),
				Optional: p.Optional,
				Rest:     p.Rest,
				Doc:      p.Doc,
			})
		}
		file.Commands = append(file.Commands, def)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
