package content

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Metric is one (label, value) pair shown on a project card.
type Metric struct {
	Key   string
	Value string
}

// Label is the display form of Key: the first underscore becomes a space
// and the first letter is upper-cased.
func (m Metric) Label() string {
	s := strings.Replace(m.Key, "_", " ", 1)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Metrics keeps project metrics in document order. In YAML it is written
// as a plain mapping.
type Metrics []Metric

// UnmarshalYAML decodes a mapping node pair by pair so that the order of
// the source document is preserved.
func (m *Metrics) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: metrics must be a mapping", node.Line)
	}
	out := make(Metrics, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: metric entries must be scalar", k.Line)
		}
		if seen[k.Value] {
			return fmt.Errorf("line %d: duplicate metric %q", k.Line, k.Value)
		}
		seen[k.Value] = true
		out = append(out, Metric{Key: k.Value, Value: v.Value})
	}
	*m = out
	return nil
}

// MarshalYAML writes the metrics back as an ordered mapping.
func (m Metrics) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, metric := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: metric.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: metric.Value},
		)
	}
	return node, nil
}
