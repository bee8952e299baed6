package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jarstore/go-jar/ir"
)

// Unmarshal decodes a JSON document into a node sequence. The top-level
// value must be an object. Kinds are inferred from the JSON value types;
// every generated node gets a fresh id. Key order is preserved by reading
// the decoder's token stream directly.
func Unmarshal(data []byte) ([]*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrImport)
	}
	nodes, err := readObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrImport)
	}
	return nodes, nil
}

func readObject(dec *json.Decoder) ([]*ir.Node, error) {
	var nodes []*ir.Node
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImport, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrImport, keyTok)
		}
		n, err := readValue(dec, key)
		if err != nil {
			return nil, err
		}
		nodes = upsert(nodes, n)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	return nodes, nil
}

// upsert appends n, or replaces an existing same-named sibling in place:
// dictionary names are unique, last write wins.
func upsert(nodes []*ir.Node, n *ir.Node) []*ir.Node {
	for i, c := range nodes {
		if c.Name == n.Name {
			nodes[i] = n
			return nodes
		}
	}
	return append(nodes, n)
}

func readValue(dec *json.Decoder, name string) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			children, err := readObject(dec)
			if err != nil {
				return nil, err
			}
			return ir.NewDict(name, children...), nil
		case '[':
			children, err := readArray(dec)
			if err != nil {
				return nil, err
			}
			return ir.NewList(name, children...), nil
		}
		return nil, fmt.Errorf("%w: unexpected %v", ErrImport, t)
	case string:
		return ir.FromString(name, t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImport, err)
		}
		return ir.FromFloat(name, f), nil
	case bool:
		return ir.FromBool(name, t), nil
	case nil:
		// null has no leaf kind; it imports as an empty Dictionary
		return ir.NewDict(name), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrImport, tok)
	}
}

// readArray imports array elements under positional names. Containers
// nested directly inside an array element import as Dictionary kind whether
// the element was an object or an array; only their order distinguishes
// array children from that point on.
func readArray(dec *json.Decoder) ([]*ir.Node, error) {
	var nodes []*ir.Node
	for i := 0; dec.More(); i++ {
		name := fmt.Sprintf("%d", i)
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImport, err)
		}
		var n *ir.Node
		switch t := tok.(type) {
		case json.Delim:
			var children []*ir.Node
			switch t {
			case '{':
				children, err = readObject(dec)
			case '[':
				children, err = readArray(dec)
			default:
				return nil, fmt.Errorf("%w: unexpected %v", ErrImport, t)
			}
			if err != nil {
				return nil, err
			}
			n = ir.NewDict(name, children...)
		case string:
			n = ir.FromString(name, t)
		case json.Number:
			f, ferr := t.Float64()
			if ferr != nil {
				return nil, fmt.Errorf("%w: %v", ErrImport, ferr)
			}
			n = ir.FromFloat(name, f)
		case bool:
			n = ir.FromBool(name, t)
		case nil:
			n = ir.NewDict(name)
		default:
			return nil, fmt.Errorf("%w: unexpected token %v", ErrImport, tok)
		}
		nodes = append(nodes, n)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	return nodes, nil
}
