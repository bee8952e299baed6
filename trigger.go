package jar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jarstore/go-jar/ir"
)

// TriggerRequest is a one-shot inbound mutation: a dotted key, an optional
// raw value, and an optional type name (text, number, boolean, dictionary,
// list, or expression). An empty Type means text.
type TriggerRequest struct {
	Key   string
	Value string
	Type  string
}

// Coerce builds the node prototype for the request. Number values parse as
// float; boolean is true exactly for the string "true"; dictionary and list
// produce empty containers and ignore Value.
func (r *TriggerRequest) Coerce() (*ir.Node, error) {
	typ := r.Type
	if typ == "" {
		typ = "text"
	}
	kind, err := ir.ParseKind(typ)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ir.NumberKind:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number value %q", r.Value)
		}
		return ir.FromFloat("", f), nil
	case ir.BoolKind:
		return ir.FromBool("", r.Value == "true"), nil
	case ir.DictKind:
		return ir.NewDict(""), nil
	case ir.ListKind:
		return ir.NewList(""), nil
	case ir.ExprKind:
		return ir.FromFormula("", r.Value), nil
	default:
		return ir.FromString("", r.Value), nil
	}
}

// Trigger coerces and applies the request. A missing key is a silent no-op
// with an empty acknowledgement. When the mutation applied, ack is a
// transient human-readable message.
func (j *Jar) Trigger(req *TriggerRequest) (ack string, err error) {
	if req.Key == "" {
		return "", nil
	}
	val, err := req.Coerce()
	if err != nil {
		return "", err
	}
	if !j.Set(req.Key, val) {
		// blocked by a conflicting leaf or a bad path; per the mutation
		// contract this is a no-op, not an error
		return "", nil
	}
	return fmt.Sprintf("set %s", req.Key), nil
}
