package schema

import (
	"testing"
)

func TestValidateMissingRequired(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"deck":  String(),
		"limit": Number().Optional(),
	})
	_, violations := Validate(root, map[string]any{})
	if len(violations) != 1 {
		t.Fatalf("violations = %v, want exactly one", violations)
	}
	if violations[0].Path != "deck" {
		t.Fatalf("violation path = %q, want deck", violations[0].Path)
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"limit": Number().Default(float64(50)),
		"deck":  String().Optional(),
	})
	args, violations := Validate(root, map[string]any{})
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if got := args["limit"]; got != float64(50) {
		t.Fatalf("limit default = %v, want 50", got)
	}
	if _, present := args["deck"]; present {
		t.Fatalf("optional field without default must stay absent")
	}
}

func TestValidateTypeMismatches(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"deck":  String(),
		"limit": Number(),
		"exact": Boolean(),
		"ids":   ArrayOf(Number()),
	})
	_, violations := Validate(root, map[string]any{
		"deck":  float64(3),
		"limit": "ten",
		"exact": "yes",
		"ids":   []any{float64(1), "two", float64(3)},
	})
	want := map[string]bool{
		"deck":   true,
		"limit":  true,
		"exact":  true,
		"ids[1]": true,
	}
	if len(violations) != len(want) {
		t.Fatalf("violations = %v, want %d entries", violations, len(want))
	}
	for _, v := range violations {
		if !want[v.Path] {
			t.Fatalf("unexpected violation path %q (%s)", v.Path, v.Message)
		}
	}
}

func TestValidateNestedObject(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"note": ObjectOf(map[string]*Field{
			"front": String(),
			"back":  String().Optional(),
		}),
	})
	_, violations := Validate(root, map[string]any{
		"note": map[string]any{"back": "b"},
	})
	if len(violations) != 1 || violations[0].Path != "note.front" {
		t.Fatalf("violations = %v, want one at note.front", violations)
	}
}

func TestValidateUnion(t *testing.T) {
	root := ObjectOf(map[string]*Field{
		"id": UnionOf(KindString, KindNumber),
	})
	if _, v := Validate(root, map[string]any{"id": "1502298033753"}); len(v) != 0 {
		t.Fatalf("string should satisfy the union: %v", v)
	}
	if _, v := Validate(root, map[string]any{"id": float64(1502298033753)}); len(v) != 0 {
		t.Fatalf("number should satisfy the union: %v", v)
	}
	if _, v := Validate(root, map[string]any{"id": true}); len(v) != 1 {
		t.Fatalf("boolean should not satisfy the union: %v", v)
	}
}

func TestValidateIgnoresUnknownKeys(t *testing.T) {
	root := ObjectOf(map[string]*Field{"deck": String()})
	args, violations := Validate(root, map[string]any{"deck": "Default", "stray": 1})
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if args["stray"] != 1 {
		t.Fatalf("unknown keys should pass through untouched")
	}
}
