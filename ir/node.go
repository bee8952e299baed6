package ir

import (
	"strconv"

	"github.com/google/uuid"
)

// Node is the single element of the jar tree. Exactly one payload field is
// meaningful for a given Kind: String for TextKind, Float64 for NumberKind,
// Bool for BoolKind, Formula for ExprKind, and Children for DictKind and
// ListKind. Constructors keep the unused fields at their zero values.
type Node struct {
	ID   string
	Name string
	Kind Kind

	String   string
	Float64  float64
	Bool     bool
	Formula  string
	Children []*Node
}

// NewID returns a fresh process-unique node id.
func NewID() string {
	return uuid.NewString()
}

func FromString(name, v string) *Node {
	return &Node{ID: NewID(), Name: name, Kind: TextKind, String: v}
}

func FromFloat(name string, f float64) *Node {
	return &Node{ID: NewID(), Name: name, Kind: NumberKind, Float64: f}
}

func FromBool(name string, v bool) *Node {
	return &Node{ID: NewID(), Name: name, Kind: BoolKind, Bool: v}
}

func FromFormula(name, formula string) *Node {
	return &Node{ID: NewID(), Name: name, Kind: ExprKind, Formula: formula}
}

func NewDict(name string, children ...*Node) *Node {
	return &Node{ID: NewID(), Name: name, Kind: DictKind, Children: children}
}

func NewList(name string, children ...*Node) *Node {
	return &Node{ID: NewID(), Name: name, Kind: ListKind, Children: children}
}

// ValueString returns the display form of a leaf payload. Expression nodes
// yield their raw formula text; containers yield the empty string.
func (n *Node) ValueString() string {
	switch n.Kind {
	case TextKind:
		return n.String
	case NumberKind:
		return strconv.FormatFloat(n.Float64, 'f', -1, 64)
	case BoolKind:
		return strconv.FormatBool(n.Bool)
	case ExprKind:
		return n.Formula
	default:
		return ""
	}
}

// SetPayload copies v's kind and payload onto n, leaving n's id and name
// untouched. All payload slots are overwritten so no stale value survives a
// kind change.
func (n *Node) SetPayload(v *Node) {
	n.Kind = v.Kind
	n.String = v.String
	n.Float64 = v.Float64
	n.Bool = v.Bool
	n.Formula = v.Formula
	n.Children = v.Children
}

// Clone returns a deep copy of n with the same ids.
func (n *Node) Clone() *Node {
	res := &Node{}
	*res = *n
	if n.Children != nil {
		res.Children = CloneSeq(n.Children)
	}
	return res
}

func CloneSeq(seq []*Node) []*Node {
	res := make([]*Node, len(seq))
	for i, c := range seq {
		res[i] = c.Clone()
	}
	return res
}

// Equal reports structural equality: name, kind, payload, and children, in
// order. Ids are ignored so trees built independently compare equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case TextKind:
		return a.String == b.String
	case NumberKind:
		return a.Float64 == b.Float64
	case BoolKind:
		return a.Bool == b.Bool
	case ExprKind:
		return a.Formula == b.Formula
	default:
		return EqualSeq(a.Children, b.Children)
	}
}

func EqualSeq(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Get returns the child of seq named field, or nil.
func Get(seq []*Node, field string) *Node {
	for _, n := range seq {
		if n.Name == field {
			return n
		}
	}
	return nil
}

// FindID returns the node with the given id anywhere under seq, or nil.
func FindID(seq []*Node, id string) *Node {
	for _, n := range seq {
		if n.ID == id {
			return n
		}
		if n.Kind.IsContainer() {
			if res := FindID(n.Children, id); res != nil {
				return res
			}
		}
	}
	return nil
}

// Visit walks every node under seq in order, pre-order. Returning false
// from f stops descent into that node's children.
func Visit(seq []*Node, f func(n *Node) bool) {
	for _, n := range seq {
		if !f(n) {
			continue
		}
		if n.Kind.IsContainer() {
			Visit(n.Children, f)
		}
	}
}
