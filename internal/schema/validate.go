package schema

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Violation is one per-field validation failure.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string { return v.Path + ": " + v.Message }

// Validate checks args against an object-rooted Field tree before a tool
// handler runs. It returns the arguments with default values filled in for
// absent fields, plus every violation found (not just the first). Unknown
// keys are ignored.
//
// Absence is admitted by either an Optional or a Default wrapper. The
// generated descriptor advertises default-only fields as required anyway;
// the validator is deliberately the looser of the two.
func Validate(root *Field, args map[string]any) (map[string]any, []Violation) {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	if root == nil || root.Kind != KindObject {
		return out, nil
	}

	var violations []Violation
	for _, name := range sortedKeys(root.Properties) {
		f := root.Properties[name]
		if f == nil {
			continue
		}
		val, present := out[name]
		if !present || val == nil {
			if dv, ok := f.defaultValue(); ok {
				out[name] = dv
				continue
			}
			if f.hasOptional() {
				continue
			}
			violations = append(violations, Violation{Path: name, Message: "required parameter is missing"})
			continue
		}
		violations = append(violations, checkValue(name, f, val)...)
	}
	return out, violations
}

func checkValue(path string, f *Field, val any) []Violation {
	switch f.Kind {
	case KindString:
		if _, ok := val.(string); !ok {
			return mismatch(path, "string", val)
		}
	case KindNumber:
		if !isNumber(val) {
			return mismatch(path, "number", val)
		}
	case KindBoolean:
		if _, ok := val.(bool); !ok {
			return mismatch(path, "boolean", val)
		}
	case KindArray:
		arr, ok := val.([]any)
		if !ok {
			return mismatch(path, "array", val)
		}
		var out []Violation
		if f.Elem != nil {
			for i, item := range arr {
				out = append(out, checkValue(fmt.Sprintf("%s[%d]", path, i), f.Elem, item)...)
			}
		}
		return out
	case KindObject:
		obj, ok := val.(map[string]any)
		if !ok {
			return mismatch(path, "object", val)
		}
		var out []Violation
		for _, name := range sortedKeys(f.Properties) {
			p := f.Properties[name]
			if p == nil {
				continue
			}
			v, present := obj[name]
			if !present || v == nil {
				if _, hasDefault := p.defaultValue(); hasDefault || p.hasOptional() {
					continue
				}
				out = append(out, Violation{Path: path + "." + name, Message: "required parameter is missing"})
				continue
			}
			out = append(out, checkValue(path+"."+name, p, v)...)
		}
		return out
	case KindUnion:
		for _, alt := range f.Alts {
			if matchesKind(alt, val) {
				return nil
			}
		}
		return []Violation{{Path: path, Message: fmt.Sprintf("value does not match any union alternative %v", kindNames(f.Alts))}}
	}
	return nil
}

func matchesKind(k Kind, val any) bool {
	switch k {
	case KindString:
		_, ok := val.(string)
		return ok
	case KindNumber:
		return isNumber(val)
	case KindBoolean:
		_, ok := val.(bool)
		return ok
	case KindArray:
		_, ok := val.([]any)
		return ok
	case KindObject:
		_, ok := val.(map[string]any)
		return ok
	}
	return false
}

func isNumber(val any) bool {
	switch val.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return true
	}
	return false
}

func mismatch(path, want string, got any) []Violation {
	return []Violation{{Path: path, Message: fmt.Sprintf("expected %s, got %T", want, got)}}
}

func kindNames(kinds []Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func sortedKeys(m map[string]*Field) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
