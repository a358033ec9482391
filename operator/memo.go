// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lvlbits/intset"
	"github.com/katalvlaran/lvlbits/numcheck"
)

// maxLoggedNodeLen caps the rendered tree in log fields.
const maxLoggedNodeLen = 160

// memo caches the answers of one node. Each slot goes from empty to
// populated once and never reverts.
//
// min and max are guarded by sync.Once. Residues may be computed twice by
// racing callers; the first stored result wins and both are equal anyway.
// Expansion is deduplicated across concurrent callers with singleflight.
type memo struct {
	cfg *Config

	minOnce sync.Once
	minVal  uint64
	maxOnce sync.Once
	maxVal  uint64

	mu       sync.Mutex
	residues map[uint64]*intset.Set

	group    singleflight.Group
	expanded atomic.Pointer[intset.Set]
}

// Memoize returns a node equivalent to n that caches its answers under cfg.
// The result shares n's operands; n itself is left untouched. A nil cfg
// means DefaultConfig().
func Memoize(n *Node, cfg *Config) *Node {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cp := *n
	cp.memo = &memo{cfg: cfg, residues: make(map[uint64]*intset.Set)}

	return &cp
}

func (m *memo) minimum(n *Node) uint64 {
	m.minOnce.Do(func() { m.minVal = n.min() })

	return m.minVal
}

func (m *memo) maximum(n *Node) uint64 {
	m.maxOnce.Do(func() { m.maxVal = n.max() })

	return m.maxVal
}

func (m *memo) modulo(n *Node, d uint64) *intset.Set {
	m.mu.Lock()
	s, ok := m.residues[d]
	m.mu.Unlock()
	m.cfg.metrics.residue(ok)
	if ok {
		return s.Clone()
	}

	s = n.modulo(d)

	m.mu.Lock()
	if prev, ok := m.residues[d]; ok {
		s = prev
	} else {
		m.residues[d] = s
	}
	m.mu.Unlock()

	return s.Clone()
}

func (m *memo) expansion(n *Node, ex *expander) (*intset.Set, error) {
	if s := m.expanded.Load(); s != nil {
		return s, nil
	}
	v, err, _ := m.group.Do("expand", func() (any, error) {
		if s := m.expanded.Load(); s != nil {
			return s, nil
		}
		start := time.Now()
		s, err := n.expandUncached(ex)
		elapsed := time.Since(start)
		m.cfg.metrics.expansion(elapsed, err)
		if err != nil {
			return nil, err
		}
		if m.cfg.slowThreshold > 0 && elapsed > m.cfg.slowThreshold {
			m.reportSlow(n, s, elapsed)
		}
		if m.cfg.selfCheck {
			m.check(n, s)
		}
		m.cfg.logger.WithFields(logrus.Fields{
			"kind":    n.kind,
			"elapsed": elapsed,
			"values":  s.Len(),
		}).Debug("operator: expansion cached")
		m.expanded.Store(s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*intset.Set), nil
}

// reportSlow logs an expansion that took longer than the threshold, with a
// stack trace pointing at the caller that asked for it.
func (m *memo) reportSlow(n *Node, s *intset.Set, elapsed time.Duration) {
	m.cfg.metrics.slow()
	m.cfg.logger.WithFields(logrus.Fields{
		"node":      truncate(n.String(), maxLoggedNodeLen),
		"elapsed":   elapsed.Round(time.Millisecond),
		"threshold": m.cfg.slowThreshold,
		"values":    humanize.Comma(int64(s.Len())),
	}).Warnf("operator: slow numerical expansion; prefer Min/Max/Modulo\n%+v",
		errors.New("expansion requested here"))
}

// check cross-validates a fresh expansion. A mismatch is a defect in the
// algebra and panics.
func (m *memo) check(n *Node, s *intset.Set) {
	err := numcheck.Validate(n, s, numcheck.Divisors(1, m.cfg.probeDivisors)...)
	if err == nil {
		return
	}
	m.cfg.logger.WithField("node", truncate(n.String(), maxLoggedNodeLen)).
		Errorf("operator: self-check failed: %v", err)
	panic(errors.WithStack(fmt.Errorf("%w: %s: %w", ErrInvariantViolation, truncate(n.String(), maxLoggedNodeLen), err)))
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
