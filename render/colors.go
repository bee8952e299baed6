package render

import (
	"github.com/fatih/color"

	"github.com/jarstore/go-jar/ir"
)

type colors struct {
	enabled  bool
	fieldFn  func(string, ...any) string
	idFn     func(string, ...any) string
	valueFns map[ir.Kind]func(string, ...any) string
}

func newColors(enabled bool) *colors {
	c := &colors{
		enabled: enabled,
		fieldFn: color.RGB(196, 96, 16).SprintfFunc(),
		idFn:    color.RGB(96, 96, 96).SprintfFunc(),
		valueFns: map[ir.Kind]func(string, ...any) string{
			ir.TextKind:   color.RGB(8, 196, 16).SprintfFunc(),
			ir.NumberKind: color.RGB(128, 216, 236).SprintfFunc(),
			ir.BoolKind:   color.CyanString,
			ir.ExprKind:   color.RGB(198, 198, 46).SprintfFunc(),
		},
	}
	return c
}

func (c *colors) field(s string) string {
	if !c.enabled {
		return s
	}
	return c.fieldFn("%s", s)
}

func (c *colors) id(s string) string {
	if !c.enabled {
		return s
	}
	return c.idFn("%s", s)
}

func (c *colors) value(k ir.Kind, s string) string {
	if !c.enabled {
		return s
	}
	f, ok := c.valueFns[k]
	if !ok {
		return s
	}
	return f("%s", s)
}
