// Package content holds the portfolio data model and loads it from YAML.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultContent []byte

// DefaultYAML returns the embedded sample content, e.g. for `folio init`.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultContent))
	copy(out, defaultContent)
	return out
}

// Default returns the embedded sample portfolio.
func Default() (*Portfolio, error) {
	p, err := Parse(bytes.NewReader(defaultContent))
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return p, nil
}

// Load reads and validates the content file at path. An empty path loads
// the embedded sample portfolio.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content %s: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a portfolio document and validates it. Unknown keys are
// rejected so that typos surface at authoring time.
func Parse(r io.Reader) (*Portfolio, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
