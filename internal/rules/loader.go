package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/labschema/pkg/labschema"
)

//go:embed rules.yaml
var defaultRules []byte

// document is the YAML form of a rule table.
type document struct {
	Categories map[string]categoryDoc `yaml:"categories"`
}

type categoryDoc struct {
	Attributes []policyDoc `yaml:"attributes"`
	Children   []policyDoc `yaml:"children,omitempty"`
}

type policyDoc struct {
	Header     string   `yaml:"header"`
	Key        string   `yaml:"key"`
	Pattern    string   `yaml:"pattern,omitempty"`
	Hint       string   `yaml:"hint,omitempty"`
	Boolean    bool     `yaml:"boolean,omitempty"`
	DataType   bool     `yaml:"data_type,omitempty"`
	URL        bool     `yaml:"url,omitempty"`
	Extra      string   `yaml:"extra,omitempty"`
	AllowEmpty bool     `yaml:"allow_empty,omitempty"`
	Optional   bool     `yaml:"optional,omitempty"`
	Aliases    []string `yaml:"aliases,omitempty"`
}

// Default returns the rule table embedded in the binary.
func Default() (*Table, error) {
	t, err := Parse(defaultRules)
	if err != nil {
		return nil, fmt.Errorf("embedded rules: %w", err)
	}
	return t, nil
}

// DefaultYAML returns the embedded rule table source.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// Load reads a rule table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return t, nil
}

// Parse builds a rule table from YAML content.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %v: %w", err, labschema.ErrInvalidRules)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("no categories declared: %w", labschema.ErrInvalidRules)
	}
	return build(doc)
}

// MarshalYAML renders the table in the format Parse accepts.
func (t *Table) MarshalYAML() (interface{}, error) {
	return t.doc, nil
}
