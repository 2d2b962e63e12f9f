// SPDX-License-Identifier: MIT
//
// File: candidates.go
// Role: CandidateMap, the per-query-vertex candidate sets of a dual simulation.
// Determinism:
//   - Iteration over a set is ascending by data vertex ID.
// Concurrency:
//   - A CandidateMap is not safe for concurrent mutation. Refine works on a
//     private clone; the maps it returns are never mutated again, so sharing
//     them between readers is safe.
// AI-HINT (file):
//   - An empty map (Empty() == true) means "no match"; it has no sets at all.
//   - Sets are indexed by query vertex ID 0..Len()-1 and sized for Order()
//     data IDs; membership tests outside that range report false.

package dualsim

import (
	"fmt"
	"strings"

	"github.com/soniakeys/bits"
)

// CandidateMap maps every query vertex to its set of candidate data vertices.
type CandidateMap struct {
	order int
	sets  []bits.Bits
	sizes []int
}

// newCandidateMap returns a map of n empty sets over an ID space of order.
func newCandidateMap(n, order int) *CandidateMap {
	m := &CandidateMap{
		order: order,
		sets:  make([]bits.Bits, n),
		sizes: make([]int, n),
	}
	for u := range m.sets {
		m.sets[u] = bits.New(order)
	}

	return m
}

// emptyMap is the "no match" result over order.
func emptyMap(order int) *CandidateMap {
	return &CandidateMap{order: order}
}

// NewCandidateMap builds a map from explicit sets: sets[u] lists the candidate
// data vertices of query vertex u. Every ID must lie in [0, order).
// If any set is empty the returned map is the empty map.
func NewCandidateMap(order int, sets [][]int) (*CandidateMap, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: negative order %d", ErrOrderMismatch, order)
	}
	m := newCandidateMap(len(sets), order)
	for u, ids := range sets {
		for _, d := range ids {
			if d < 0 || d >= order {
				return nil, fmt.Errorf("%w: candidate %d for query vertex %d outside [0,%d)",
					ErrOrderMismatch, d, u, order)
			}
			m.add(u, d)
		}
	}
	if m.anyEmpty() {
		return emptyMap(order), nil
	}

	return m, nil
}

func (m *CandidateMap) add(u, d int) {
	if m.sets[u].Bit(d) == 0 {
		m.sets[u].SetBit(d, 1)
		m.sizes[u]++
	}
}

func (m *CandidateMap) remove(u, d int) {
	if m.sets[u].Bit(d) == 1 {
		m.sets[u].SetBit(d, 0)
		m.sizes[u]--
	}
}

func (m *CandidateMap) anyEmpty() bool {
	for _, n := range m.sizes {
		if n == 0 {
			return true
		}
	}

	return false
}

// Empty reports whether the map is the "no match" result.
func (m *CandidateMap) Empty() bool {
	return m == nil || len(m.sets) == 0
}

// Len returns the number of query vertices covered. The empty map has Len 0.
func (m *CandidateMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.sets)
}

// Order returns the size of the data ID space the sets are defined over.
func (m *CandidateMap) Order() int {
	if m == nil {
		return 0
	}

	return m.order
}

// Contains reports whether data vertex d is a candidate for query vertex u.
func (m *CandidateMap) Contains(u, d int) bool {
	if u < 0 || u >= m.Len() || d < 0 || d >= m.order {
		return false
	}

	return m.sets[u].Bit(d) == 1
}

// Size returns |S(u)|, or 0 if u is out of range.
func (m *CandidateMap) Size(u int) int {
	if u < 0 || u >= m.Len() {
		return 0
	}

	return m.sizes[u]
}

// Sizes returns a copy of all set sizes indexed by query vertex.
func (m *CandidateMap) Sizes() []int {
	if m.Empty() {
		return nil
	}

	return append([]int(nil), m.sizes...)
}

// Candidates returns S(u) in ascending order.
func (m *CandidateMap) Candidates(u int) []int {
	if u < 0 || u >= m.Len() {
		return nil
	}
	out := make([]int, 0, m.sizes[u])
	s := m.sets[u]
	for d := s.OneFrom(0); d >= 0; d = s.OneFrom(d + 1) {
		out = append(out, d)
	}

	return out
}

// InAny reports whether d is a candidate for at least one query vertex.
func (m *CandidateMap) InAny(d int) bool {
	for u := range m.Len() {
		if m.Contains(u, d) {
			return true
		}
	}

	return false
}

// Union returns every data vertex that is a candidate of some query vertex, ascending.
func (m *CandidateMap) Union() []int {
	if m.Empty() {
		return nil
	}
	acc := bits.New(m.order)
	for _, s := range m.sets {
		acc.Or(acc, s)
	}
	out := make([]int, 0, acc.OnesCount())
	for d := acc.OneFrom(0); d >= 0; d = acc.OneFrom(d + 1) {
		out = append(out, d)
	}

	return out
}

// Clone returns a deep copy of m.
func (m *CandidateMap) Clone() *CandidateMap {
	if m.Empty() {
		return emptyMap(m.Order())
	}
	c := &CandidateMap{
		order: m.order,
		sets:  make([]bits.Bits, len(m.sets)),
		sizes: append([]int(nil), m.sizes...),
	}
	for u, s := range m.sets {
		c.sets[u] = bits.New(m.order)
		copy(c.sets[u].Bits, s.Bits)
	}

	return c
}

// Restrict returns a copy of m in which every set keeps only the data vertices
// accepted by keep. If any set becomes empty the result is the empty map.
func (m *CandidateMap) Restrict(keep func(d int) bool) *CandidateMap {
	c := m.Clone()
	if c.Empty() {
		return c
	}
	for u := range c.sets {
		s := c.sets[u]
		for d := s.OneFrom(0); d >= 0; d = s.OneFrom(d + 1) {
			if !keep(d) {
				c.remove(u, d)
			}
		}
	}
	if c.anyEmpty() {
		return emptyMap(m.order)
	}

	return c
}

// Equal reports whether m and o hold the same sets for the same query vertices.
// The data ID space may differ; only memberships are compared.
func (m *CandidateMap) Equal(o *CandidateMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	for u := range m.Len() {
		if m.sizes[u] != o.sizes[u] {
			return false
		}
		s := m.sets[u]
		for d := s.OneFrom(0); d >= 0; d = s.OneFrom(d + 1) {
			if !o.Contains(u, d) {
				return false
			}
		}
	}

	return true
}

// String renders the map as "{0:[..] 1:[..]}" or "{}" for the empty map.
func (m *CandidateMap) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for u := range m.Len() {
		if u > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v", u, m.Candidates(u))
	}
	sb.WriteByte('}')

	return sb.String()
}
