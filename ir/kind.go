package ir

import "fmt"

// Kind is the closed set of node variants.
type Kind int

const (
	TextKind Kind = iota
	NumberKind
	BoolKind
	DictKind
	ListKind
	ExprKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		TextKind:   "text",
		NumberKind: "number",
		BoolKind:   "boolean",
		DictKind:   "dictionary",
		ListKind:   "list",
		ExprKind:   "expression",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind maps the wire names used by the trigger interface to kinds.
func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"text":       TextKind,
		"number":     NumberKind,
		"boolean":    BoolKind,
		"dictionary": DictKind,
		"list":       ListKind,
		"expression": ExprKind,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unrecognized kind %q", v)
	}
	return k, nil
}

func Kinds() []Kind {
	return []Kind{
		TextKind,
		NumberKind,
		BoolKind,
		DictKind,
		ListKind,
		ExprKind,
	}
}

// IsContainer reports whether nodes of this kind own children.
func (k Kind) IsContainer() bool {
	switch k {
	case DictKind, ListKind:
		return true
	default:
		return false
	}
}
