// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Form identifies which rule an Expr applies.
type Form uint8

const (
	FormBits Form = iota
	FormConcat
	FormUnion
	FormPad
	FormRepeat
	FormRepeatRange
	FormRef
)

// formKeys maps mapping keys to forms. "of" is an argument, not a form.
var formKeys = map[string]Form{
	"bits":         FormBits,
	"concat":       FormConcat,
	"union":        FormUnion,
	"pad":          FormPad,
	"repeat":       FormRepeat,
	"repeat_range": FormRepeatRange,
	"ref":          FormRef,
}

// Expr is one length-set expression as written in a layout file.
type Expr struct {
	Form     Form
	Bits     []uint64 // FormBits
	Operands []*Expr  // FormConcat, FormUnion
	N        uint64   // alignment or count for FormPad, FormRepeat, FormRepeatRange
	Of       *Expr    // FormPad, FormRepeat, FormRepeatRange
	Ref      string   // FormRef
	Line     int
}

// takesOf reports whether the form wraps an "of" operand.
func (f Form) takesOf() bool {
	return f == FormPad || f == FormRepeat || f == FormRepeatRange
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(n *yaml.Node) error {
	e.Line = n.Line
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := literal(n)
		if err != nil {
			return err
		}
		e.Form, e.Bits = FormBits, []uint64{v}
		return nil
	case yaml.SequenceNode:
		bits, err := literals(n)
		if err != nil {
			return err
		}
		e.Form, e.Bits = FormBits, bits
		return nil
	case yaml.MappingNode:
		return e.mapping(n)
	default:
		return fmt.Errorf("line %d: %w", n.Line, ErrUnknownForm)
	}
}

func (e *Expr) mapping(n *yaml.Node) error {
	forms := 0
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Value == "of" {
			e.Of = &Expr{}
			if err := val.Decode(e.Of); err != nil {
				return err
			}
			continue
		}
		form, ok := formKeys[key.Value]
		if !ok {
			return fmt.Errorf("line %d: %w: %q", key.Line, ErrUnknownForm, key.Value)
		}
		forms++
		e.Form = form
		if err := e.decodeArg(form, val); err != nil {
			return err
		}
	}

	switch {
	case forms == 0:
		return fmt.Errorf("line %d: %w", n.Line, ErrUnknownForm)
	case forms > 1:
		return fmt.Errorf("line %d: %w", n.Line, ErrAmbiguousForm)
	case e.Form.takesOf() != (e.Of != nil):
		return fmt.Errorf("line %d: %w", n.Line, ErrMissingOf)
	}

	return nil
}

func (e *Expr) decodeArg(form Form, val *yaml.Node) error {
	var err error
	switch form {
	case FormBits:
		if val.Kind == yaml.ScalarNode {
			var v uint64
			v, err = literal(val)
			e.Bits = []uint64{v}
		} else {
			e.Bits, err = literals(val)
		}
	case FormConcat, FormUnion:
		if val.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: %w: operands must be a list", val.Line, ErrUnknownForm)
		}
		e.Operands = make([]*Expr, len(val.Content))
		for i, item := range val.Content {
			e.Operands[i] = &Expr{}
			if err = item.Decode(e.Operands[i]); err != nil {
				return err
			}
		}
	case FormPad, FormRepeat, FormRepeatRange:
		e.N, err = literal(val)
	case FormRef:
		if val.Kind != yaml.ScalarNode || val.Value == "" {
			return fmt.Errorf("line %d: %w: empty name", val.Line, ErrUnknownRef)
		}
		e.Ref = val.Value
	}

	return err
}

func literal(n *yaml.Node) (uint64, error) {
	var v uint64
	if n.Kind != yaml.ScalarNode || n.Decode(&v) != nil {
		return 0, fmt.Errorf("line %d: %w: %q", n.Line, ErrBadLiteral, n.Value)
	}

	return v, nil
}

func literals(n *yaml.Node) ([]uint64, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %w", n.Line, ErrBadLiteral)
	}
	out := make([]uint64, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := literal(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
