// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvlbits/intset"
)

// Expand materializes the exact set of reachable lengths.
//
// This is the slow path: its cost grows with the size of the result, which
// for nested variable-length layouts can be astronomically large. Use Min,
// Max and Modulo for anything that is not validation or a known-small set.
//
// When the governing Config has an expansion budget, Expand returns
// ErrExpansionBudgetExceeded instead of a partial set once it runs out.
func (n *Node) Expand() (*intset.Set, error) {
	s, err := n.expand(newExpander(n.config()))
	if err != nil {
		return nil, err
	}

	return s.Clone(), nil
}

// config returns the Config of the nearest cache, or the defaults.
func (n *Node) config() *Config {
	if n.memo != nil {
		return n.memo.cfg
	}

	return DefaultConfig()
}

// expander carries the time budget of one top-level Expand call down the tree.
type expander struct {
	start    time.Time
	deadline time.Time // zero: unlimited
}

func newExpander(cfg *Config) *expander {
	ex := &expander{start: time.Now()}
	if cfg.expansionBudget > 0 {
		ex.deadline = ex.start.Add(cfg.expansionBudget)
	}

	return ex
}

func (ex *expander) check() error {
	if ex.deadline.IsZero() {
		return nil
	}
	if now := time.Now(); now.After(ex.deadline) {
		return fmt.Errorf("after %s: %w", now.Sub(ex.start).Round(time.Millisecond), ErrExpansionBudgetExceeded)
	}

	return nil
}

// sum returns { x + y | x ∈ a, y ∈ b }.
func (ex *expander) sum(a, b *intset.Set) (*intset.Set, error) {
	out := intset.New()
	for x := range a.All() {
		if err := ex.check(); err != nil {
			return nil, err
		}
		for y := range b.All() {
			out.Add(x + y)
		}
	}

	return out, nil
}

// expand returns a set that may be shared with a cache; callers must not mutate it.
func (n *Node) expand(ex *expander) (*intset.Set, error) {
	if n.memo != nil {
		return n.memo.expansion(n, ex)
	}

	return n.expandUncached(ex)
}

func (n *Node) expandUncached(ex *expander) (*intset.Set, error) {
	switch n.kind {
	case KindScalar:
		return n.values, nil

	case KindPadding:
		e, err := n.child.expand(ex)
		if err != nil {
			return nil, err
		}
		return e.Map(func(x uint64) uint64 { return pad(x, n.n) }), nil

	case KindConcatenation:
		acc := intset.New(0)
		for _, c := range n.children {
			e, err := c.expand(ex)
			if err != nil {
				return nil, err
			}
			if acc, err = ex.sum(acc, e); err != nil {
				return nil, err
			}
		}
		return acc, nil

	case KindRepetition, KindRangeRepetition:
		e, err := n.child.expand(ex)
		if err != nil {
			return nil, err
		}
		acc := intset.New(0)
		out := intset.New(0)
		for i := uint64(0); i < n.n; i++ {
			next, err := ex.sum(acc, e)
			if err != nil {
				return nil, err
			}
			if next.Equal(acc) {
				break // only possible when e == {0}
			}
			acc = next
			if n.kind == KindRangeRepetition {
				out.AddAll(acc)
			}
		}
		if n.kind == KindRepetition {
			return acc, nil
		}
		return out, nil

	case KindUnion:
		out := intset.New()
		for _, c := range n.children {
			e, err := c.expand(ex)
			if err != nil {
				return nil, err
			}
			out.AddAll(e)
		}
		return out, nil
	}
	panic(unknownKind(n.kind))
}
