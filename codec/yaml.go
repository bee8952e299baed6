package codec

import (
	"fmt"

	"github.com/jarstore/go-jar/ir"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders root as a YAML mapping with the same structure the
// JSON export has. yaml.MapSlice keeps child order.
func MarshalYAML(root []*ir.Node) ([]byte, error) {
	return yaml.Marshal(yamlObject(root))
}

// UnmarshalYAML decodes a YAML document into a node sequence under the same
// inference rules as Unmarshal. The top-level value must be a mapping.
func UnmarshalYAML(data []byte) ([]*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	ms, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value must be a mapping", ErrImport)
	}
	return yamlReadObject(ms)
}

func yamlObject(seq []*ir.Node) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(seq))
	for _, n := range seq {
		ms = append(ms, yaml.MapItem{Key: n.Name, Value: yamlValue(n)})
	}
	return ms
}

func yamlValue(n *ir.Node) any {
	switch n.Kind {
	case ir.DictKind:
		return yamlObject(n.Children)
	case ir.ListKind:
		vals := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			vals = append(vals, yamlValue(c))
		}
		return vals
	case ir.TextKind:
		return n.String
	case ir.NumberKind:
		return n.Float64
	case ir.BoolKind:
		return n.Bool
	default: // ExprKind: raw formula text
		return n.Formula
	}
}

func yamlReadObject(ms yaml.MapSlice) ([]*ir.Node, error) {
	var nodes []*ir.Node
	for _, item := range ms {
		key := fmt.Sprint(item.Key)
		n, err := yamlReadValue(key, item.Value, false)
		if err != nil {
			return nil, err
		}
		nodes = upsert(nodes, n)
	}
	return nodes, nil
}

func yamlReadValue(name string, v any, inList bool) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		children, err := yamlReadObject(x)
		if err != nil {
			return nil, err
		}
		return ir.NewDict(name, children...), nil
	case []any:
		var children []*ir.Node
		for i, elt := range x {
			c, err := yamlReadValue(fmt.Sprintf("%d", i), elt, true)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		if inList {
			// same fidelity gap as the JSON import: containers inside a
			// list element carry Dictionary kind
			return ir.NewDict(name, children...), nil
		}
		return ir.NewList(name, children...), nil
	case string:
		return ir.FromString(name, x), nil
	case bool:
		return ir.FromBool(name, x), nil
	case nil:
		return ir.NewDict(name), nil
	default:
		f, ok := yamlNumber(v)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported value %T", ErrImport, v)
		}
		return ir.FromFloat(name, f), nil
	}
}

func yamlNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
