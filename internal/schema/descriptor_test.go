package schema

import (
	"encoding/json"
	"testing"
)

func marshalDescriptor(t *testing.T, d Descriptor) string {
	t.Helper()
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal descriptor: %v", err)
	}
	return string(data)
}

func TestDescribeBasicTypes(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"query": String().Describe("search query"),
		"limit": Number(),
		"exact": Boolean().Optional(),
	})
	d := Describe(root)

	if got := d.Properties["query"].Type; got != "string" {
		t.Fatalf("query type = %q, want string", got)
	}
	if got := d.Properties["query"].Description; got != "search query" {
		t.Fatalf("query description = %q", got)
	}
	if got := d.Properties["limit"].Type; got != "number" {
		t.Fatalf("limit type = %q, want number", got)
	}
	if got := d.Properties["exact"].Type; got != "boolean" {
		t.Fatalf("exact type = %q, want boolean", got)
	}
	if len(d.Required) != 2 || d.Required[0] != "limit" || d.Required[1] != "query" {
		t.Fatalf("required = %v, want [limit query]", d.Required)
	}
}

func TestDescribeIsPure(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"ids":  ArrayOf(Number()),
		"deck": String().Optional(),
		"note": ObjectOf(map[string]*Field{"front": String()}),
	})
	first := marshalDescriptor(t, Describe(root))
	for i := 0; i < 10; i++ {
		if again := marshalDescriptor(t, Describe(root)); again != first {
			t.Fatalf("descriptor changed between calls:\n%s\n%s", first, again)
		}
	}
}

// Regression: a boolean wrapped optional-then-default used to come out as
// string. Wrapper order must never influence the resolved type or the
// required classification.
func TestUnwrapOrderIndependence(t *testing.T) {
	a := ObjectOf(map[string]*Field{
		"flag": Boolean().Optional().Default(true),
	})
	b := ObjectOf(map[string]*Field{
		"flag": Boolean().Default(true).Optional(),
	})

	da, db := Describe(a), Describe(b)
	if da.Properties["flag"].Type != "boolean" || db.Properties["flag"].Type != "boolean" {
		t.Fatalf("flag types = %q / %q, want boolean both ways",
			da.Properties["flag"].Type, db.Properties["flag"].Type)
	}
	if len(da.Required) != 0 || len(db.Required) != 0 {
		t.Fatalf("flag should be optional both ways, required = %v / %v", da.Required, db.Required)
	}
	if marshalDescriptor(t, da) != marshalDescriptor(t, db) {
		t.Fatalf("wrapper order changed the descriptor")
	}
}

func TestDefaultWithoutOptionalStaysRequired(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"limit": Number().Default(float64(100)),
	})
	d := Describe(root)
	if len(d.Required) != 1 || d.Required[0] != "limit" {
		t.Fatalf("default-only field must stay required, got %v", d.Required)
	}
}

func TestDescribeNonObjectRootDegrades(t *testing.T) {
	for _, root := range []*Field{nil, String(), ArrayOf(Number()), Number().Optional()} {
		d := Describe(root)
		if d.Type != "object" || len(d.Properties) != 0 || len(d.Required) != 0 {
			t.Fatalf("non-object root should degrade to empty object descriptor, got %+v", d)
		}
	}
}

func TestDescribeArrayItems(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"ids":   ArrayOf(Number()),
		"flags": ArrayOf(Boolean().Optional()),
		"notes": ArrayOf(ObjectOf(map[string]*Field{
			"front": String(),
			"back":  String().Optional(),
		})),
		"mixed": ArrayOf(UnionOf(KindString, KindNumber)),
		"bare":  ArrayOf(nil),
	})
	d := Describe(root)

	if got := d.Properties["ids"].Items["type"]; got != "number" {
		t.Fatalf("ids items type = %v", got)
	}
	if got := d.Properties["flags"].Items["type"]; got != "boolean" {
		t.Fatalf("flags items type = %v", got)
	}
	notes := d.Properties["notes"].Items
	if notes["type"] != "object" {
		t.Fatalf("notes items type = %v", notes["type"])
	}
	props, ok := notes["properties"].(map[string]Property)
	if !ok {
		t.Fatalf("notes items properties missing: %v", notes)
	}
	if props["front"].Type != "string" {
		t.Fatalf("nested front type = %q", props["front"].Type)
	}
	req, ok := notes["required"].([]string)
	if !ok || len(req) != 1 || req[0] != "front" {
		t.Fatalf("nested required = %v, want [front]", notes["required"])
	}
	// Unions inside items collapse to string, as does a missing element.
	if got := d.Properties["mixed"].Items["type"]; got != "string" {
		t.Fatalf("mixed items type = %v, want string", got)
	}
	if got := d.Properties["bare"].Items["type"]; got != "string" {
		t.Fatalf("bare items type = %v, want string", got)
	}
}

func TestDescribeNestedObjectStaysOpaque(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"options": ObjectOf(map[string]*Field{
			"allowDuplicate": Boolean(),
		}),
	})
	d := Describe(root)
	p := d.Properties["options"]
	if p.Type != "object" {
		t.Fatalf("options type = %q", p.Type)
	}
	if p.Items != nil {
		t.Fatalf("nested object must not expand at the property level: %+v", p)
	}
}

func TestUnionCollapse(t *testing.T) {
	cases := []struct {
		alts []Kind
		want string
	}{
		{[]Kind{KindNumber, KindNumber}, "number"},
		{[]Kind{KindBoolean}, "boolean"},
		{[]Kind{KindString, KindNumber}, "string"},
		{[]Kind{KindNumber, KindObject}, "string"},
		{nil, "string"},
	}
	for _, c := range cases {
		root := ObjectOf(map[string]*Field{"v": UnionOf(c.alts...)})
		if got := Describe(root).Properties["v"].Type; got != c.want {
			t.Fatalf("union %v type = %q, want %q", c.alts, got, c.want)
		}
	}
}
