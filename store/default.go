package store

import "github.com/jarstore/go-jar/ir"

// DefaultJar is the built-in tree used when no persisted document can be
// loaded. It doubles as a small demo of each kind.
func DefaultJar() []*ir.Node {
	return []*ir.Node{
		ir.FromString("greeting", "hello"),
		ir.NewDict("cart",
			ir.FromFloat("price", 100),
			ir.FromFloat("tax_rate", 0.2),
			ir.FromFormula("total", "{{cart.price}} * (1 + {{cart.tax_rate}})"),
		),
		ir.NewList("tags",
			ir.FromString("0", "sample"),
			ir.FromString("1", "starter"),
		),
		ir.FromBool("onboarded", false),
	}
}
