package formula

import (
	"errors"
	"strings"
	"testing"

	"github.com/jarstore/go-jar/ir"
)

func evalRoot() []*ir.Node {
	return []*ir.Node{
		ir.FromFloat("price", 100),
		ir.FromFloat("tax_rate", 0.2),
		ir.FromString("name", "World"),
		ir.FromString("unit", "kg"),
		ir.FromBool("active", true),
		ir.FromFormula("total", "{{price}} * (1 + {{tax_rate}})"),
		ir.NewDict("cart",
			ir.FromFloat("qty", 3),
		),
	}
}

func TestEvaluate(t *testing.T) {
	root := evalRoot()
	tests := []struct {
		name       string
		formula    string
		wantText   string
		wantNumber float64
		wantIsNum  bool
		wantErr    error
	}{
		{
			name:     "no references returns formula unchanged",
			formula:  "just some text + 1",
			wantText: "just some text + 1",
		},
		{
			name:       "arithmetic with references",
			formula:    "{{price}} * (1 + {{tax_rate}})",
			wantNumber: 120,
			wantIsNum:  true,
		},
		{
			name:     "text substitution skips arithmetic",
			formula:  "Hello {{name}}",
			wantText: "Hello World",
		},
		{
			name:    "missing reference",
			formula: "{{missing}}",
			wantErr: ErrReference,
		},
		{
			name:       "single numeric reference",
			formula:    "{{price}}",
			wantNumber: 100,
			wantIsNum:  true,
		},
		{
			name:       "nested path reference",
			formula:    "{{cart.qty}} * {{price}}",
			wantNumber: 300,
			wantIsNum:  true,
		},
		{
			name:     "substituted letters defeat strict charset",
			formula:  "{{price}} {{unit}} + 1",
			wantText: "100 kg + 1",
		},
		{
			name:     "boolean substitutes as text",
			formula:  "active: {{active}}",
			wantText: "active: true",
		},
		{
			name:     "expression reference substitutes raw formula",
			formula:  "total is {{total}}",
			wantText: "total is {{price}} * (1 + {{tax_rate}})",
		},
		{
			name:       "modulo",
			formula:    "{{price}} % 30",
			wantNumber: 10,
			wantIsNum:  true,
		},
		{
			name:       "unary minus",
			formula:    "-{{price}} + 50",
			wantNumber: -50,
			wantIsNum:  true,
		},
		{
			name:       "precedence",
			formula:    "2 + {{cart.qty}} * 4",
			wantNumber: 14,
			wantIsNum:  true,
		},
		{
			name:       "left associativity",
			formula:    "{{price}} - 10 - 20",
			wantNumber: 70,
			wantIsNum:  true,
		},
		{
			name:    "unbalanced parens",
			formula: "({{price}} + 1",
			wantErr: ErrArithmetic,
		},
		{
			name:    "trailing operator",
			formula: "{{price}} +",
			wantErr: ErrArithmetic,
		},
		{
			name:    "bad number after substitution",
			formula: "{{price}}.2.3",
			wantErr: ErrArithmetic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.formula, root)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Evaluate(%q) error = %v, want %v", tt.formula, err, tt.wantErr)
				}
				if got.Text != ErrValue {
					t.Errorf("Evaluate(%q) result = %q, want %q", tt.formula, got.Text, ErrValue)
				}
				if err.Error() == "" {
					t.Error("empty error message")
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.formula, err)
			}
			if got.IsNumber != tt.wantIsNum {
				t.Fatalf("Evaluate(%q) IsNumber = %v, want %v", tt.formula, got.IsNumber, tt.wantIsNum)
			}
			if tt.wantIsNum {
				if got.Number != tt.wantNumber {
					t.Errorf("Evaluate(%q) = %v, want %v", tt.formula, got.Number, tt.wantNumber)
				}
				return
			}
			if got.Text != tt.wantText {
				t.Errorf("Evaluate(%q) = %q, want %q", tt.formula, got.Text, tt.wantText)
			}
		})
	}
}

func TestEvaluateMissingReferenceNamesPath(t *testing.T) {
	_, err := Evaluate("{{missing.path}}", evalRoot())
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "missing.path"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name %q", err.Error(), want)
	}
}

func TestEvaluateFailureIsLocalized(t *testing.T) {
	// one node's failure must not affect another node's evaluation
	root := evalRoot()
	if _, err := Evaluate("{{missing}}", root); err == nil {
		t.Fatal("expected error")
	}
	res, err := Evaluate("{{price}} + 1", root)
	if err != nil || !res.IsNumber || res.Number != 101 {
		t.Errorf("subsequent evaluation affected: %+v, %v", res, err)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{name: "whole number", res: Result{Number: 120, IsNumber: true}, want: "120"},
		{name: "fraction", res: Result{Number: 0.25, IsNumber: true}, want: "0.25"},
		{name: "text", res: Result{Text: "hi"}, want: "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
