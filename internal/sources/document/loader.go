package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khulnasoft/startpage/internal/landing"
)

// Loader reads a landing document from a YAML or JSON file.
type Loader struct {
	filePath string
}

// NewLoader creates a new document loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Path returns the file the loader reads from.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads, parses and validates the document file.
func (l *Loader) Load() (*landing.Document, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.filePath, err)
	}
	return doc, nil
}

// Parse decodes a document from YAML or JSON bytes.
// Missing fields, unknown fields and type mismatches are all rejected, and
// the decoded document must pass Validate.
func Parse(data []byte) (*landing.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if err := checkRequired(&root); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc landing.Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	doc.Normalize()

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
