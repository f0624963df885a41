package landing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScriptVariable is the global the browser-side page reads its settings from.
const ScriptVariable = "CONFIG"

// EncodeJSON renders the document as indented JSON.
func EncodeJSON(d *Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as json: %w", err)
	}
	return append(data, '\n'), nil
}

// EncodeYAML renders the document as YAML with two-space indentation.
func EncodeYAML(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode document as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document as yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeScript renders the document as a `const CONFIG = {...};` script.
// json.Marshal escapes <, > and & so the output is safe inside a <script> tag.
func EncodeScript(d *Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as script: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + 32)
	buf.WriteString("const " + ScriptVariable + " = ")
	buf.Write(data)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}
