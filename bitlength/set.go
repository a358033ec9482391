// SPDX-License-Identifier: MIT

package bitlength

import (
	"fmt"
	"iter"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlbits/intset"
	"github.com/katalvlaran/lvlbits/operator"
)

// Set is an immutable bit length set. The zero value is not usable; build
// one with New, Of or MustNew.
type Set struct {
	root *operator.Node // always memoized
	cfg  *operator.Config
}

// New builds a Set from:
//   - any Go integer (a single fixed length),
//   - a slice or array of integers, an iter.Seq[uint64] or an *intset.Set
//     (a literal set of lengths),
//   - another *Set (shares its tree and cache),
//   - an *operator.Node (wrapped in a fresh cache).
//
// opts configure the cache of the resulting Set and of every Set derived
// from it. When arg is a *Set, its own cache keeps its original Config.
//
// Errors: ErrEmpty, ErrNegativeValue, ErrNonInteger, ErrNilOperand,
// ErrUnsupportedOperand.
func New(arg any, opts ...operator.Option) (*Set, error) {
	return coerce(arg, operator.NewConfig(opts...))
}

// MustNew is New that panics on error. Intended for literals.
func MustNew(arg any, opts ...operator.Option) *Set {
	s, err := New(arg, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Of builds a literal Set from typed integers.
func Of[T constraints.Integer](values ...T) (*Set, error) {
	out := make([]uint64, 0, len(values))
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("element %d (%d): %w", i, v, ErrNegativeValue)
		}
		out = append(out, uint64(v))
	}
	n, err := operator.NewScalar(out...)
	if err != nil {
		return nil, err
	}

	return wrap(n, operator.DefaultConfig()), nil
}

// FromNode wraps n in a fresh cache governed by cfg (nil: defaults).
func FromNode(n *operator.Node, cfg *operator.Config) (*Set, error) {
	if n == nil {
		return nil, ErrNilOperand
	}
	if cfg == nil {
		cfg = operator.DefaultConfig()
	}

	return wrap(n, cfg), nil
}

func wrap(n *operator.Node, cfg *operator.Config) *Set {
	return &Set{root: operator.Memoize(n, cfg), cfg: cfg}
}

// coerce interprets arg under cfg. Literal forms become Scalar nodes.
func coerce(arg any, cfg *operator.Config) (*Set, error) {
	switch v := arg.(type) {
	case *Set:
		if v == nil {
			return nil, ErrNilOperand
		}
		return &Set{root: v.root, cfg: v.cfg}, nil
	case *operator.Node:
		if v == nil {
			return nil, ErrNilOperand
		}
		return wrap(v, cfg), nil
	case *intset.Set:
		if v == nil {
			return nil, ErrNilOperand
		}
		n, err := operator.NewScalarSet(v)
		if err != nil {
			return nil, err
		}
		return wrap(n, cfg), nil
	case iter.Seq[uint64]:
		n, err := operator.NewScalar(collect(v)...)
		if err != nil {
			return nil, err
		}
		return wrap(n, cfg), nil
	case nil:
		return nil, ErrNilOperand
	}

	values, err := integers(reflect.ValueOf(arg))
	if err != nil {
		return nil, err
	}
	n, err := operator.NewScalar(values...)
	if err != nil {
		return nil, err
	}

	return wrap(n, cfg), nil
}

// integers flattens an integer, or a slice/array of integers, into lengths.
func integers(rv reflect.Value) ([]uint64, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]uint64, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := integer(rv.Index(i))
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := integer(rv)
		if err != nil {
			return nil, err
		}
		return []uint64{v}, nil
	default:
		return nil, fmt.Errorf("%s: %w", rv.Type(), ErrUnsupportedOperand)
	}
}

func integer(rv reflect.Value) (uint64, error) {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return 0, fmt.Errorf("%d: %w", rv.Int(), ErrNegativeValue)
		}
		return uint64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Invalid:
		return 0, ErrNonInteger
	default:
		return 0, fmt.Errorf("%s: %w", rv.Type(), ErrNonInteger)
	}
}

func collect(seq iter.Seq[uint64]) []uint64 {
	var out []uint64
	for v := range seq {
		out = append(out, v)
	}

	return out
}

// Root returns the memoized operator tree behind s.
func (s *Set) Root() *operator.Node { return s.root }

// Config returns the cache configuration inherited by Sets derived from s.
func (s *Set) Config() *operator.Config { return s.cfg }

// String renders the operator tree deterministically.
func (s *Set) String() string { return s.root.String() }
