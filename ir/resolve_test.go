package ir

import "testing"

func testTree() []*Node {
	return []*Node{
		FromFloat("x", 5),
		NewDict("cart",
			FromFloat("price", 100),
			FromFloat("tax_rate", 0.2),
		),
		NewList("tags",
			FromString("0", "red"),
			FromString("1", "blue"),
		),
		FromString("greeting", "hello"),
	}
}

func TestResolve(t *testing.T) {
	root := testTree()
	tests := []struct {
		name     string
		path     string
		wantName string
		wantNil  bool
	}{
		{
			name:     "top level by name",
			path:     "x",
			wantName: "x",
		},
		{
			name:     "nested by name",
			path:     "cart.price",
			wantName: "price",
		},
		{
			name:     "positional fallback at root",
			path:     "0",
			wantName: "x",
		},
		{
			name:     "list child by index",
			path:     "tags.1",
			wantName: "1",
		},
		{
			name:    "missing name",
			path:    "nope",
			wantNil: true,
		},
		{
			name:    "missing nested",
			path:    "cart.nope",
			wantNil: true,
		},
		{
			name:    "leaf on intermediate segment",
			path:    "x.y",
			wantNil: true,
		},
		{
			name:    "index out of range",
			path:    "tags.7",
			wantNil: true,
		},
		{
			name:    "invalid path",
			path:    "cart..price",
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(root, tt.path)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Resolve(%q) = %v, want miss", tt.path, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Resolve(%q) missed", tt.path)
			}
			if got.Name != tt.wantName {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.path, got.Name, tt.wantName)
			}
		})
	}
}

func TestResolvePositionalFallbackAfterNameDrift(t *testing.T) {
	// list names drift after deletion; index lookups stay correct
	list := NewList("tags",
		FromString("0", "red"),
		FromString("1", "blue"),
		FromString("2", "green"),
	)
	root := []*Node{list}
	root = Delete(root, list.Children[0].ID)

	n := Resolve(root, "tags.0")
	if n == nil {
		t.Fatal("Resolve(tags.0) missed after delete")
	}
	// name "0" no longer exists; position 0 now holds the node named "1"
	if n.String != "blue" {
		t.Errorf("Resolve(tags.0).String = %q, want %q", n.String, "blue")
	}
}

func TestResolveReturnsNodeNotPayload(t *testing.T) {
	root := testTree()
	n := Resolve(root, "x")
	if n == nil || n.Kind != NumberKind || n.Float64 != 5 {
		t.Fatalf("Resolve(x) = %+v, want number node with payload 5", n)
	}
}
