package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the on-disk shape of a YAML catalog.
type yamlDocument struct {
	Enum  map[string]*Definition `yaml:"enum"`
	Flags map[string]*Definition `yaml:"flags"`
}

// decodeYAML parses a YAML catalog file with strict field validation
// (catches typos like "member:" vs "members:").
func decodeYAML(data []byte, file string) ([]*Definition, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("failed to parse YAML: %v", err),
			File:    file,
			Line:    yamlErrorLine(err),
			Err:     err,
		}
	}

	// Second pass over the node tree recovers declaration order and lines,
	// which the map decoding above discards.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), File: file, Err: err}
	}

	var defs []*Definition
	for _, kind := range kinds {
		decoded := doc.Enum
		if kind == KindFlags {
			decoded = doc.Flags
		}
		for _, entry := range mappingEntries(documentMapping(&root), string(kind)) {
			def := decoded[entry.name]
			if def == nil {
				def = &Definition{}
			}
			def.Name = entry.name
			def.Kind = kind
			def.File = file
			def.Line = entry.line
			defs = append(defs, def)
		}
	}
	return defs, nil
}

type yamlEntry struct {
	name string
	line int
}

// documentMapping returns the top-level mapping node, or nil.
func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	return root
}

// mappingEntries lists the keys of the mapping stored under key, in order.
func mappingEntries(mapping *yaml.Node, key string) []yamlEntry {
	if mapping == nil {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		value := mapping.Content[i+1]
		if value.Kind != yaml.MappingNode {
			return nil
		}
		var entries []yamlEntry
		for j := 0; j+1 < len(value.Content); j += 2 {
			k := value.Content[j]
			entries = append(entries, yamlEntry{name: k.Value, line: k.Line})
		}
		return entries
	}
	return nil
}

// yamlErrorLine pulls the first line number out of a yaml.TypeError, or 0.
func yamlErrorLine(err error) int {
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) || len(typeErr.Errors) == 0 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(typeErr.Errors[0], "line %d:", &line); scanErr != nil {
		return 0
	}
	return line
}
