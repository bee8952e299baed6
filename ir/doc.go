// Package ir defines the node tree backing a jar.
//
// # Overview
//
// A jar is an ordered sequence of nodes. Each node carries a process-unique
// id, a name, a kind, and a kind-dependent payload. Dictionary and List
// nodes exclusively own their children; there is no sharing and no cycles.
// The root sequence behaves like a Dictionary with no enclosing name.
//
// # Node Kinds
//
//   - TextKind: string value
//   - NumberKind: float64 value
//   - BoolKind: boolean value
//   - DictKind: ordered children addressed by unique name
//   - ListKind: ordered children addressed positionally; names are advisory
//   - ExprKind: a formula string, evaluated on demand (see package formula)
//
// # Creating Nodes
//
// Use the constructor functions:
//
//	n := ir.FromString("greeting", "hello")
//	n := ir.FromFloat("price", 100)
//	d := ir.NewDict("settings")
//
// Constructors assign fresh ids. Ids are unique for the process lifetime
// and are used only for structural targeting (delete, update-by-identity),
// never for path addressing.
//
// # Addressing
//
// Resolve walks a dotted path against a node sequence. Each segment matches
// a child by name first, then falls back to a zero-based decimal index into
// the same sequence. This keeps List lookups correct even when child names
// have drifted after deletions.
//
// # Mutation
//
// DeepSet, UpdateValue and Delete transform a root sequence and return the
// replacement root. Each call completes fully before the next is dispatched;
// no partial writes are observable. Node trees are not safe for concurrent
// use; callers serialize access (see package store).
package ir
