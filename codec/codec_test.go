package codec

import (
	"errors"
	"testing"

	"github.com/jarstore/go-jar/ir"
)

func sampleTree() []*ir.Node {
	return []*ir.Node{
		ir.FromString("greeting", "hello"),
		ir.NewDict("cart",
			ir.FromFloat("price", 100),
			ir.FromFloat("tax_rate", 0.2),
			ir.FromFormula("total", "{{cart.price}} * (1 + {{cart.tax_rate}})"),
		),
		ir.NewList("tags",
			ir.FromString("0", "red"),
			ir.FromString("1", "blue"),
		),
		ir.FromBool("onboarded", false),
	}
}

func TestMarshalPreservesOrder(t *testing.T) {
	got, err := Marshal(sampleTree())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"greeting":"hello",` +
		`"cart":{"price":100,"tax_rate":0.2,"total":"{{cart.price}} * (1 + {{cart.tax_rate}})"},` +
		`"tags":["red","blue"],` +
		`"onboarded":false}`
	if string(got) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalExpressionExportsRawFormula(t *testing.T) {
	got, err := Marshal([]*ir.Node{ir.FromFormula("f", "{{a}} + 1")})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"f":"{{a}} + 1"}`; string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestMarshalNode(t *testing.T) {
	n := ir.NewDict("d", ir.FromFloat("x", 1.5))
	got, err := MarshalNode(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"x":1.5}`; string(got) != want {
		t.Errorf("MarshalNode = %s, want %s", got, want)
	}
}

func TestUnmarshal(t *testing.T) {
	doc := `{"a":"text","n":2.5,"b":true,"d":{"inner":1},"l":[10,20],"z":null}`
	nodes, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		kind ir.Kind
	}{
		{"a", ir.TextKind},
		{"n", ir.NumberKind},
		{"b", ir.BoolKind},
		{"d", ir.DictKind},
		{"d.inner", ir.NumberKind},
		{"l", ir.ListKind},
		{"l.0", ir.NumberKind},
		{"z", ir.DictKind}, // null imports as an empty dictionary
	}
	for _, tt := range tests {
		n := ir.Resolve(nodes, tt.path)
		if n == nil {
			t.Fatalf("Resolve(%q) missed", tt.path)
		}
		if n.Kind != tt.kind {
			t.Errorf("%s kind = %s, want %s", tt.path, n.Kind, tt.kind)
		}
	}
	if n := ir.Resolve(nodes, "l.1"); n.Float64 != 20 {
		t.Errorf("l.1 = %v, want 20", n.Float64)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "top-level array", doc: `[1,2]`},
		{name: "top-level scalar", doc: `"hi"`},
		{name: "truncated", doc: `{"a":`},
		{name: "trailing data", doc: `{} {}`},
		{name: "empty input", doc: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.doc)); !errors.Is(err, ErrImport) {
				t.Errorf("Unmarshal(%q) error = %v, want ErrImport", tt.doc, err)
			}
		})
	}
}

func TestUnmarshalDuplicateKeyLastWriteWins(t *testing.T) {
	nodes, err := Unmarshal([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}
	// position of the first occurrence is kept
	if nodes[0].Name != "a" || nodes[0].Float64 != 3 {
		t.Errorf("nodes[0] = %+v, want a=3", nodes[0])
	}
	if nodes[1].Name != "b" {
		t.Errorf("nodes[1].Name = %q, want b", nodes[1].Name)
	}
}

func TestUnmarshalContainersInArraysBecomeDictionaries(t *testing.T) {
	nodes, err := Unmarshal([]byte(`{"l":[{"x":1},[2,3]]}`))
	if err != nil {
		t.Fatal(err)
	}
	l := ir.Resolve(nodes, "l")
	if l.Kind != ir.ListKind || len(l.Children) != 2 {
		t.Fatalf("l = %+v, want list of 2", l)
	}
	for i, c := range l.Children {
		if c.Kind != ir.DictKind {
			t.Errorf("l.%d kind = %s, want dictionary", i, c.Kind)
		}
	}
	if n := ir.Resolve(nodes, "l.1.0"); n == nil || n.Float64 != 2 {
		t.Errorf("l.1.0 = %+v, want number 2", n)
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	// export(import(doc)) must reproduce doc for documents without the
	// lossy cases (expressions, containers inside arrays)
	doc := `{"greeting":"hello","cart":{"price":100,"tax_rate":0.2},"tags":["red","blue"],"onboarded":false}`
	nodes, err := Unmarshal([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Marshal(nodes)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != doc {
		t.Errorf("roundtrip =\n%s\nwant\n%s", got, doc)
	}
}

func TestImportLosesExpressionKind(t *testing.T) {
	exported, err := Marshal([]*ir.Node{ir.FromFormula("f", "{{a}} + 1")})
	if err != nil {
		t.Fatal(err)
	}
	nodes, err := Unmarshal(exported)
	if err != nil {
		t.Fatal(err)
	}
	f := ir.Resolve(nodes, "f")
	if f.Kind != ir.TextKind {
		t.Errorf("f kind = %s, want text after reimport", f.Kind)
	}
	if f.String != "{{a}} + 1" {
		t.Errorf("f = %q", f.String)
	}
}

func TestUnmarshalAssignsFreshIDs(t *testing.T) {
	a, err := Unmarshal([]byte(`{"x":1}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Unmarshal([]byte(`{"x":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if a[0].ID == "" || a[0].ID == b[0].ID {
		t.Error("imported nodes do not get fresh ids")
	}
}

func TestMerge(t *testing.T) {
	root := sampleTree()
	merged, err := Merge(root, []byte(`{"greeting":"hi","cart":{"price":50},"onboarded":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if g := ir.Resolve(merged, "greeting"); g.String != "hi" {
		t.Errorf("greeting = %q, want hi", g.String)
	}
	if p := ir.Resolve(merged, "cart.price"); p.Float64 != 50 {
		t.Errorf("cart.price = %v, want 50", p.Float64)
	}
	// untouched siblings survive the merge
	if tr := ir.Resolve(merged, "cart.tax_rate"); tr == nil || tr.Float64 != 0.2 {
		t.Errorf("cart.tax_rate = %+v, want 0.2", tr)
	}
	// null removes per RFC 7386
	if ir.Resolve(merged, "onboarded") != nil {
		t.Error("onboarded survived a null merge")
	}
}

func TestMergeBadPatchLeavesCallerState(t *testing.T) {
	root := sampleTree()
	before := ir.CloneSeq(root)
	if _, err := Merge(root, []byte(`{bad json`)); !errors.Is(err, ErrImport) {
		t.Fatalf("Merge error = %v, want ErrImport", err)
	}
	if !ir.EqualSeq(root, before) {
		t.Error("failed merge modified the input tree")
	}
}
