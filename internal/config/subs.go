package config

import (
	// standard
	"fmt"
	"os"
	"strings"
	// external
	"gopkg.in/yaml.v3"
)

// Substitution is a single literal find/replace rule.
type Substitution struct {
	From string
	To   string
}

// SubTable holds substitution rules in declaration order. Apply runs
// them in that order, so a given table always normalizes a given line
// to the same result.
type SubTable []Substitution

// Apply runs every rule of the table against line.
func (st SubTable) Apply(line string) string {
	for _, sub := range st {
		line = strings.ReplaceAll(line, sub.From, sub.To)
	}
	return line
}

// NewSubTableFromFile loads a substitution table from a YAML mapping
// file. JSON files load too, being a YAML subset.
func NewSubTableFromFile(filePath string) (SubTable, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("can't read %q: %w", filePath, err)
	}
	st, err := parseSubTable(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filePath, err)
	}
	return st, nil
}

// NewSubTable parses a substitution table from a YAML string.
func NewSubTable(content string) (SubTable, error) {
	st, err := parseSubTable([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("invalid substitution table: %w", err)
	}
	return st, nil
}

// parseSubTable decodes via yaml.Node rather than a map, so that rule
// order follows the file instead of Go's randomized map iteration.
func parseSubTable(data []byte) (SubTable, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return SubTable{}, nil // empty file: no rules
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of literal replacements")
	}
	table := make(SubTable, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]
		if key.Value == "" {
			return nil, fmt.Errorf("line %d: empty substitution key", key.Line)
		}
		table = append(table, Substitution{From: key.Value, To: val.Value})
	}
	return table, nil
}
