// Package multiset implements a generic multiset (bag): an unordered
// collection that allows repeated instances of equal values and keeps one
// multiplicity per distinct value.
package multiset

import (
	"fmt"
	"maps"
	"strings"
)

// Multiset holds values together with their multiplicities. The zero value
// is an empty multiset, ready to use. Every operation is copy-on-write: it
// returns a new multiset and leaves the receiver unchanged, so instances
// can be shared across goroutines for reading without locking.
type Multiset[V comparable] struct {
	counts map[V]int
	size   int
}

// Pair is one distinct value together with its multiplicity.
type Pair[V comparable] struct {
	Value V
	Count int
}

// New returns an empty multiset.
func New[V comparable]() Multiset[V] {
	return Multiset[V]{}
}

// Of builds a multiset from the given values, counting repeated arguments.
func Of[V comparable](values ...V) Multiset[V] {
	counts := make(map[V]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	return Multiset[V]{counts, len(values)}
}

// FromPairs builds a multiset from (value, multiplicity) pairs. Pairs with
// a count below 1 contribute nothing; repeated values accumulate.
func FromPairs[V comparable](pairs []Pair[V]) Multiset[V] {
	m := Multiset[V]{counts: make(map[V]int, len(pairs))}
	for _, p := range pairs {
		if p.Count < 1 {
			continue
		}
		m.counts[p.Value] += p.Count
		m.size += p.Count
	}
	return m
}

// Put returns a copy of m with one more instance of v.
func (m Multiset[V]) Put(v V) Multiset[V] {
	return m.PutN(v, 1)
}

// PutN returns a copy of m with n more instances of v. A count below 1 is
// a defined no-op, not an error: the receiver is returned unchanged.
func (m Multiset[V]) PutN(v V, n int) Multiset[V] {
	if n < 1 {
		return m
	}
	counts := clone(m.counts, 1)
	counts[v] += n
	return Multiset[V]{counts, m.size + n}
}

// Delete returns a copy of m with one instance of v removed.
func (m Multiset[V]) Delete(v V) Multiset[V] {
	return m.DeleteN(v, 1)
}

// DeleteN returns a copy of m with up to n instances of v removed.
// Multiplicity floors at zero: deleting more instances than present drops
// the value entirely and never affects other entries. Deleting an absent
// value is a no-op.
func (m Multiset[V]) DeleteN(v V, n int) Multiset[V] {
	current := m.counts[v]
	if current == 0 || n < 1 {
		return m
	}
	removed := min(n, current)
	counts := clone(m.counts, 0)
	if removed == current {
		delete(counts, v)
	} else {
		counts[v] = current - removed
	}
	return Multiset[V]{counts, m.size - removed}
}

// Multiplicity reports how many instances of v are in m, 0 if absent.
func (m Multiset[V]) Multiplicity(v V) int {
	return m.counts[v]
}

// Contains reports whether m holds at least one instance of v.
func (m Multiset[V]) Contains(v V) bool {
	return m.counts[v] > 0
}

// Size is the total number of instances across all values, in O(1).
func (m Multiset[V]) Size() int {
	return m.size
}

// Distinct returns the distinct values of m without their multiplicities,
// in no particular order.
func (m Multiset[V]) Distinct() []V {
	out := make([]V, 0, len(m.counts))
	for v := range m.counts {
		out = append(out, v)
	}
	return out
}

// ToList returns one (value, multiplicity) pair per distinct value, in map
// iteration order: unsorted, and not stable across equal multisets that
// were built differently.
func (m Multiset[V]) ToList() []Pair[V] {
	out := make([]Pair[V], 0, len(m.counts))
	for v, n := range m.counts {
		out = append(out, Pair[V]{v, n})
	}
	return out
}

func (m Multiset[V]) String() string {
	var b strings.Builder
	b.WriteString("Multiset[")
	first := true
	for v, n := range m.counts {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%d", v, n)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

func clone[V comparable](counts map[V]int, extra int) map[V]int {
	out := make(map[V]int, len(counts)+extra)
	maps.Copy(out, counts)
	return out
}
