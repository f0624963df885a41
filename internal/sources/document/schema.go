package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when the file holds no document at all.
var ErrEmptyDocument = errors.New("document is empty")

// MissingFieldError names a required field absent from the file.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// TypeError names a field whose value has the wrong YAML type.
type TypeError struct {
	Field string
	Want  string
	Got   string // resolved YAML tag, e.g. "!!int"
	Line  int
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s (line %d)", e.Field, e.Want, e.Got, e.Line)
}

const (
	tagStr  = "!!str"
	tagBool = "!!bool"
	tagNull = "!!null"
)

// fieldSpec is a required key and the scalar tag its value must carry.
type fieldSpec struct {
	key string
	tag string
}

// scalarFields lists every required top-level scalar of the document.
var scalarFields = []fieldSpec{
	{"imageBackground", tagBool},
	{"openInNewTab", tagBool},
	{"twelveHourFormat", tagBool},
	{"greetingMorning", tagStr},
	{"greetingAfternoon", tagStr},
	{"greetingEvening", tagStr},
	{"greetingNight", tagStr},
	{"firstListIcon", tagStr},
	{"secondListIcon", tagStr},
}

var requiredListFields = []string{"firstList", "secondList"}

var entryFields = []fieldSpec{
	{"name", tagStr},
	{"link", tagStr},
}

// checkRequired walks the parsed node tree and reports the first missing
// or mistyped field. null is only accepted for a whole list.
func checkRequired(root *yaml.Node) error {
	if root.Kind == 0 || len(root.Content) == 0 {
		return ErrEmptyDocument
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return fmt.Errorf("document must be a mapping, got %s", kindName(top.Kind))
	}

	if err := checkScalars(top, "", scalarFields); err != nil {
		return err
	}

	lists := lookup(top, "lists")
	if lists == nil {
		return &MissingFieldError{Field: "lists"}
	}
	if lists.Kind != yaml.MappingNode {
		return typeError("lists", "mapping", lists)
	}

	for _, key := range requiredListFields {
		path := "lists." + key
		list := lookup(lists, key)
		if list == nil {
			return &MissingFieldError{Field: path}
		}
		if isNull(list) {
			continue
		}
		if list.Kind != yaml.SequenceNode {
			return typeError(path, "sequence", list)
		}
		for i, entry := range list.Content {
			entryPath := fmt.Sprintf("%s[%d]", path, i)
			entry = resolveAlias(entry)
			if entry.Kind != yaml.MappingNode {
				return typeError(entryPath, "mapping", entry)
			}
			if err := checkScalars(entry, entryPath+".", entryFields); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkScalars(m *yaml.Node, prefix string, fields []fieldSpec) error {
	for _, f := range fields {
		v := lookup(m, f.key)
		if v == nil {
			return &MissingFieldError{Field: prefix + f.key}
		}
		if v.Kind != yaml.ScalarNode || v.ShortTag() != f.tag {
			return typeError(prefix+f.key, wantName(f.tag), v)
		}
	}
	return nil
}

func typeError(field, want string, n *yaml.Node) *TypeError {
	got := n.ShortTag()
	if n.Kind != yaml.ScalarNode {
		got = kindName(n.Kind)
	}
	return &TypeError{Field: field, Want: want, Got: got, Line: n.Line}
}

func wantName(tag string) string {
	switch tag {
	case tagBool:
		return "bool"
	case tagStr:
		return "string"
	default:
		return tag
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// lookup returns the value node for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolveAlias(m.Content[i+1])
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
