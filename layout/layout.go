// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlbits/bitlength"
	"github.com/katalvlaran/lvlbits/operator"
)

// Document is a parsed layout file.
type Document struct {
	Types map[string]*Expr `yaml:"types"`
	Root  *Expr            `yaml:"root"`
}

// Layout holds the built Set of the root and of every named type.
type Layout struct {
	Root  *bitlength.Set
	types map[string]*bitlength.Set
}

// Type returns the Set built for a named type.
func (l *Layout) Type(name string) (*bitlength.Set, bool) {
	s, ok := l.types[name]
	return s, ok
}

// Names returns the named types in sorted order.
func (l *Layout) Names() []string {
	return slices.Sorted(maps.Keys(l.types))
}

// Parse decodes one layout document. Unknown top-level keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		return nil, fmt.Errorf("layout: %w", err)
	}
	if d.Root == nil {
		return nil, ErrNoRoot
	}

	return &d, nil
}

// Load parses and builds the layout file at path.
func Load(path string, opts ...operator.Option) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l, err := d.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}

// Build turns every named type and the root into Sets sharing one Config.
// Unreferenced types are built too, so every error in the file surfaces.
func (d *Document) Build(opts ...operator.Option) (*Layout, error) {
	if d.Root == nil {
		return nil, ErrNoRoot
	}
	b := &builder{
		doc:      d,
		cfg:      operator.NewConfig(opts...),
		built:    make(map[string]*bitlength.Set, len(d.Types)),
		visiting: make(map[string]bool),
	}
	for _, name := range slices.Sorted(maps.Keys(d.Types)) {
		if _, err := b.resolve(name); err != nil {
			return nil, err
		}
	}
	root, err := b.build(d.Root)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}

	return &Layout{Root: root, types: b.built}, nil
}

type builder struct {
	doc      *Document
	cfg      *operator.Config
	built    map[string]*bitlength.Set
	visiting map[string]bool
	path     []string
}

func (b *builder) resolve(name string) (*bitlength.Set, error) {
	if s, ok := b.built[name]; ok {
		return s, nil
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(b.path, " -> "), name)
	}
	e, ok := b.doc.Types[name]
	if !ok || e == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRef, name)
	}

	b.visiting[name] = true
	b.path = append(b.path, name)
	s, err := b.build(e)
	b.path = b.path[:len(b.path)-1]
	delete(b.visiting, name)
	if err != nil {
		return nil, err
	}
	b.built[name] = s

	return s, nil
}

func (b *builder) build(e *Expr) (*bitlength.Set, error) {
	switch e.Form {
	case FormBits:
		n, err := operator.NewScalar(e.Bits...)
		if err != nil {
			return nil, at(e, err)
		}
		return bitlength.FromNode(n, b.cfg)
	case FormConcat, FormUnion:
		operands := make([]any, 0, len(e.Operands))
		for _, op := range e.Operands {
			s, err := b.build(op)
			if err != nil {
				return nil, err
			}
			operands = append(operands, s)
		}
		var s *bitlength.Set
		var err error
		if e.Form == FormConcat {
			s, err = bitlength.Concatenate(operands...)
		} else {
			s, err = bitlength.Unite(operands...)
		}
		return s, at(e, err)
	case FormPad:
		of, err := b.build(e.Of)
		if err != nil {
			return nil, err
		}
		s, err := of.PadToAlignment(e.N)
		return s, at(e, err)
	case FormRepeat, FormRepeatRange:
		of, err := b.build(e.Of)
		if err != nil {
			return nil, err
		}
		var s *bitlength.Set
		if e.Form == FormRepeat {
			s, err = of.Repeat(e.N)
		} else {
			s, err = of.RepeatRange(e.N)
		}
		return s, at(e, err)
	case FormRef:
		s, err := b.resolve(e.Ref)
		return s, at(e, err)
	default:
		return nil, at(e, fmt.Errorf("%w: form %d", ErrUnknownForm, e.Form))
	}
}

// at prefixes err with the line of e. Errors already carrying a line, and
// cycle reports, pass through.
func at(e *Expr, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*lineError); ok || errors.Is(err, ErrCycle) {
		return err
	}

	return &lineError{line: e.Line, err: err}
}

type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string { return fmt.Sprintf("line %d: %v", e.line, e.err) }

func (e *lineError) Unwrap() error { return e.err }
