// Package jar is a locally-owned, hierarchical typed key/value store
// addressable by dotted paths. It ties together the node tree (package ir),
// the formula evaluator (package formula), and the JSON codec (package
// codec) behind one store value.
package jar

import (
	"fmt"

	"github.com/jarstore/go-jar/codec"
	"github.com/jarstore/go-jar/formula"
	"github.com/jarstore/go-jar/ir"
)

// Jar is the whole store: an ordered node sequence acting as an implicit
// top-level Dictionary. Jar values are not safe for concurrent use; callers
// serialize access (see package store).
type Jar struct {
	Nodes []*ir.Node
}

func New(nodes ...*ir.Node) *Jar {
	return &Jar{Nodes: nodes}
}

// Get resolves a dotted path, returning nil on a miss.
func (j *Jar) Get(path string) *ir.Node {
	return ir.Resolve(j.Nodes, path)
}

// Eval evaluates a formula string against the whole tree.
func (j *Jar) Eval(f string) (formula.Result, error) {
	return formula.Evaluate(f, j.Nodes)
}

// EvalPath evaluates the node at path: expression nodes run through the
// evaluator, leaves yield their value directly.
func (j *Jar) EvalPath(path string) (formula.Result, error) {
	n := j.Get(path)
	if n == nil {
		return formula.Result{Text: formula.ErrValue},
			fmt.Errorf("%w: %s", formula.ErrReference, path)
	}
	switch n.Kind {
	case ir.ExprKind:
		return formula.Evaluate(n.Formula, j.Nodes)
	case ir.NumberKind:
		return formula.Result{Number: n.Float64, IsNumber: true}, nil
	default:
		return formula.Result{Text: n.ValueString()}, nil
	}
}

// Set deep-sets val at path. It reports false when the path was blocked by
// a conflicting leaf on an intermediate segment; the tree is unchanged in
// that case.
func (j *Jar) Set(path string, val *ir.Node) bool {
	nodes, ok := ir.DeepSet(j.Nodes, path, val)
	j.Nodes = nodes
	return ok
}

// UpdateValue replaces the payload of the node with the given id, keeping
// its kind. Absent ids and container nodes are no-ops.
func (j *Jar) UpdateValue(id, raw string) {
	j.Nodes = ir.UpdateValue(j.Nodes, id, raw)
}

// Delete removes the node with the given id. Sibling order is preserved
// and List children are not renumbered.
func (j *Jar) Delete(id string) {
	j.Nodes = ir.Delete(j.Nodes, id)
}

// Export renders the jar as a JSON document.
func (j *Jar) Export() ([]byte, error) {
	return codec.Marshal(j.Nodes)
}

// Import replaces the whole tree with the decoded document. On decode
// failure the current tree is untouched.
func (j *Jar) Import(data []byte) error {
	nodes, err := codec.Unmarshal(data)
	if err != nil {
		return err
	}
	j.Nodes = nodes
	return nil
}

// MergeImport applies a JSON merge patch to the jar's export and replaces
// the tree with the result. On failure the current tree is untouched.
func (j *Jar) MergeImport(patch []byte) error {
	nodes, err := codec.Merge(j.Nodes, patch)
	if err != nil {
		return err
	}
	j.Nodes = nodes
	return nil
}
