package schema

import (
	"sort"
)

// Property is one generated descriptor entry.
type Property struct {
	Type        string         `json:"type"`
	Items       map[string]any `json:"items,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Descriptor is the protocol-visible result of compiling a Field tree.
// Generation is pure: the same tree always yields a structurally identical
// descriptor (map keys sort deterministically when marshaled).
type Descriptor struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Describe compiles a Field tree into a Descriptor. The root must be an
// object; anything else degrades to an empty object descriptor. Describe
// never fails: shapes it cannot model precisely fall back to "string" for
// leaves and "object" for composites.
func Describe(root *Field) Descriptor {
	d := Descriptor{
		Type:       "object",
		Properties: map[string]Property{},
	}
	if root == nil || root.Kind != KindObject {
		return d
	}

	names := make([]string, 0, len(root.Properties))
	for name := range root.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := root.Properties[name]
		if f == nil {
			continue
		}
		d.Properties[name] = describeProperty(f)
		// A field wrapped only in Default (no Optional) stays required.
		if !f.hasOptional() {
			d.Required = append(d.Required, name)
		}
	}
	return d
}

func describeProperty(f *Field) Property {
	p := Property{Description: f.Description}
	switch f.Kind {
	case KindNumber:
		p.Type = "number"
	case KindBoolean:
		p.Type = "boolean"
	case KindArray:
		p.Type = "array"
		p.Items = describeItems(f.Elem)
	case KindObject:
		// Nested objects are opaque at this level; only array elements
		// get expanded recursively.
		p.Type = "object"
	case KindUnion:
		p.Type = unionType(f.Alts)
	default:
		p.Type = "string"
	}
	return p
}

// describeItems produces the items descriptor for an array element. Object
// elements expand fully; unions and anything unrecognized fall back to string.
func describeItems(elem *Field) map[string]any {
	if elem == nil {
		return map[string]any{"type": "string"}
	}
	switch elem.Kind {
	case KindNumber:
		return map[string]any{"type": "number"}
	case KindBoolean:
		return map[string]any{"type": "boolean"}
	case KindObject:
		nested := Describe(elem)
		items := map[string]any{
			"type":       "object",
			"properties": nested.Properties,
		}
		if len(nested.Required) > 0 {
			items["required"] = nested.Required
		}
		return items
	default:
		return map[string]any{"type": "string"}
	}
}

// unionType collapses a union to a single output type: if every alternative
// maps to the same primitive, that primitive wins; otherwise string.
func unionType(alts []Kind) string {
	common := ""
	for _, k := range alts {
		var t string
		switch k {
		case KindString:
			t = "string"
		case KindNumber:
			t = "number"
		case KindBoolean:
			t = "boolean"
		default:
			return "string"
		}
		if common == "" {
			common = t
		} else if common != t {
			return "string"
		}
	}
	if common == "" {
		return "string"
	}
	return common
}
