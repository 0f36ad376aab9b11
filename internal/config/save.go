package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveFlags replaces the flags section of the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveFlags(configPath string, flags map[string]bool) error {
	return saveValue(configPath, "flags", flags)
}

// SaveDeclarationDirs replaces declarations.dirs in the config file, keeping
// the other declaration settings.
func SaveDeclarationDirs(configPath string, dirs []string) error {
	return saveValue(configPath, "declarations.dirs", dirs)
}

// AddDeclarationDir appends dir to the configured declaration directories.
// Adding a directory that is already listed is a no-op.
func AddDeclarationDir(configPath, dir string, existing []string) error {
	for _, d := range existing {
		if d == dir {
			return nil
		}
	}
	dirs := make([]string, 0, len(existing)+1)
	dirs = append(dirs, existing...)
	dirs = append(dirs, dir)
	return SaveDeclarationDirs(configPath, dirs)
}

// SetFlag enables or disables one feature flag, keeping the others.
func SetFlag(configPath, name string, enabled bool, existing map[string]bool) error {
	flags := make(map[string]bool, len(existing)+1)
	for k, v := range existing {
		flags[k] = v
	}
	flags[name] = enabled
	return SaveFlags(configPath, flags)
}

// saveValue sets the dotted key path to value and writes the file atomically.
func saveValue(configPath, keyPath string, value any) error {
	// Read existing file content
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: config path is user supplied
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	var valueNode yaml.Node
	if err := valueNode.Encode(value); err != nil {
		return fmt.Errorf("building %s node: %w", keyPath, err)
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}
	if err := setPath(doc.Content[0], strings.Split(keyPath, "."), &valueNode); err != nil {
		return err
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// setPath replaces or creates the value at keys below mapping.
func setPath(mapping *yaml.Node, keys []string, value *yaml.Node) error {
	key := keys[0]
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		if len(keys) == 1 {
			mapping.Content[i+1] = value
			return nil
		}
		child := mapping.Content[i+1]
		if child.Kind != yaml.MappingNode {
			// "declarations:" with no body decodes as a null scalar
			if child.Tag != "!!null" {
				return fmt.Errorf("config key %q is not a mapping", key)
			}
			child = &yaml.Node{Kind: yaml.MappingNode}
			mapping.Content[i+1] = child
		}
		return setPath(child, keys[1:], value)
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
	if len(keys) == 1 {
		mapping.Content = append(mapping.Content, keyNode, value)
		return nil
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	mapping.Content = append(mapping.Content, keyNode, child)
	return setPath(child, keys[1:], value)
}

// writeAtomic writes to a temp file in the same directory, then renames it.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".knowncmd.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
