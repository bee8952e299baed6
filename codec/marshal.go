package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jarstore/go-jar/ir"
)

// Marshal renders root as a JSON object, preserving child order. The
// encoding/json map types would reorder keys, so the document structure is
// written directly and scalars are delegated to json.Marshal.
func Marshal(root []*ir.Node) ([]byte, error) {
	var b bytes.Buffer
	if err := writeObject(&b, root); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalIndent is Marshal followed by json.Indent.
func MarshalIndent(root []*ir.Node) ([]byte, error) {
	d, err := Marshal(root)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := json.Indent(&b, d, "", "  "); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalNode renders a single node's exported value.
func MarshalNode(n *ir.Node) ([]byte, error) {
	var b bytes.Buffer
	if err := writeValue(&b, n); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeObject(b *bytes.Buffer, seq []*ir.Node) error {
	b.WriteByte('{')
	for i, n := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(n.Name)
		if err != nil {
			return err
		}
		b.Write(key)
		b.WriteByte(':')
		if err := writeValue(b, n); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

func writeArray(b *bytes.Buffer, seq []*ir.Node) error {
	b.WriteByte('[')
	for i, n := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeValue(b, n); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func writeValue(b *bytes.Buffer, n *ir.Node) error {
	switch n.Kind {
	case ir.DictKind:
		return writeObject(b, n.Children)
	case ir.ListKind:
		return writeArray(b, n.Children)
	case ir.TextKind:
		return writeScalar(b, n.String)
	case ir.NumberKind:
		return writeScalar(b, n.Float64)
	case ir.BoolKind:
		return writeScalar(b, n.Bool)
	case ir.ExprKind:
		// raw formula text, never the computed result
		return writeScalar(b, n.Formula)
	default:
		return fmt.Errorf("cannot export kind %s", n.Kind)
	}
}

func writeScalar(b *bytes.Buffer, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(d)
	return nil
}
