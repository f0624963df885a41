package document

import (
	"fmt"

	"github.com/khulnasoft/startpage/internal/landing"
)

// BuiltInSource names the compiled-in default document.
const BuiltInSource = "built-in"

// Resolve loads the document at path, or the built-in default when path is empty.
// It returns the document together with the source it came from.
func Resolve(path string) (*landing.Document, string, error) {
	if path == "" {
		doc := landing.Default()
		if err := doc.Validate(); err != nil {
			return nil, "", fmt.Errorf("built-in document: %w", err)
		}
		return doc, BuiltInSource, nil
	}

	doc, err := NewLoader(path).Load()
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
