// Package schema defines the declarative parameter model for tools and
// compiles it into the inputSchema shape the MCP protocol expects.
package schema

// Kind enumerates the closed set of base field kinds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindUnion:
		return "union"
	}
	return "unknown"
}

type wrapperKind int

const (
	wrapOptional wrapperKind = iota
	wrapDefault
)

type wrapper struct {
	kind  wrapperKind
	value any // default value, only for wrapDefault
}

// Field is one node of a declarative schema tree. Wrappers may stack in any
// order and any number of times; classification must not depend on their order.
type Field struct {
	Kind        Kind
	Description string
	Elem        *Field            // array element, Kind == KindArray
	Properties  map[string]*Field // Kind == KindObject
	Alts        []Kind            // union alternatives, Kind == KindUnion
	wrappers    []wrapper
}

// String declares a string field.
func String() *Field { return &Field{Kind: KindString} }

// Number declares a numeric field.
func Number() *Field { return &Field{Kind: KindNumber} }

// Boolean declares a boolean field.
func Boolean() *Field { return &Field{Kind: KindBoolean} }

// ArrayOf declares an array field with the given element schema.
func ArrayOf(elem *Field) *Field { return &Field{Kind: KindArray, Elem: elem} }

// ObjectOf declares an object field with named properties.
func ObjectOf(props map[string]*Field) *Field {
	return &Field{Kind: KindObject, Properties: props}
}

// UnionOf declares a field accepting any of the listed base kinds.
func UnionOf(alts ...Kind) *Field { return &Field{Kind: KindUnion, Alts: alts} }

// Optional wraps the field in an optional marker.
func (f *Field) Optional() *Field {
	f.wrappers = append(f.wrappers, wrapper{kind: wrapOptional})
	return f
}

// Default wraps the field in a default-value marker. Note that a default on
// its own does not make the field optional in the generated descriptor; only
// an explicit Optional does.
func (f *Field) Default(v any) *Field {
	f.wrappers = append(f.wrappers, wrapper{kind: wrapDefault, value: v})
	return f
}

// Describe attaches a human-readable description.
func (f *Field) Describe(text string) *Field {
	f.Description = text
	return f
}

// hasOptional reports whether an optional marker appears anywhere in the
// wrapper chain, regardless of ordering relative to default markers.
func (f *Field) hasOptional() bool {
	for _, w := range f.wrappers {
		if w.kind == wrapOptional {
			return true
		}
	}
	return false
}

// defaultValue returns the innermost default marker's value, if any.
func (f *Field) defaultValue() (any, bool) {
	for i := len(f.wrappers) - 1; i >= 0; i-- {
		if f.wrappers[i].kind == wrapDefault {
			return f.wrappers[i].value, true
		}
	}
	return nil, false
}
