package multiset

import "maps"

// Sum returns the multiset addition of m and other: each value ends up
// with the sum of its multiplicities in the two operands. The result size
// is the sum of the operand sizes.
func (m Multiset[V]) Sum(other Multiset[V]) Multiset[V] {
	counts := clone(m.counts, len(other.counts))
	for v, n := range other.counts {
		counts[v] += n
	}
	return Multiset[V]{counts, m.size + other.size}
}

// Union returns a multiset where each value has the larger of its two
// multiplicities. The size is recomputed from the merged multiplicities
// rather than carried over from either operand.
func (m Multiset[V]) Union(other Multiset[V]) Multiset[V] {
	counts := clone(m.counts, len(other.counts))
	for v, n := range other.counts {
		if n > counts[v] {
			counts[v] = n
		}
	}
	size := 0
	for _, n := range counts {
		size += n
	}
	return Multiset[V]{counts, size}
}

// Intersection returns a multiset keeping, for each value present in both
// operands, the smaller of the two multiplicities. It iterates whichever
// side has fewer distinct values and probes the other.
func (m Multiset[V]) Intersection(other Multiset[V]) Multiset[V] {
	small, large := m, other
	if len(large.counts) < len(small.counts) {
		small, large = large, small
	}
	out := Multiset[V]{counts: make(map[V]int, len(small.counts))}
	for v, n := range small.counts {
		if k := large.counts[v]; k > 0 {
			n = min(n, k)
			out.counts[v] = n
			out.size += n
		}
	}
	return out
}

// Difference returns m with, for each value in other, that many instances
// removed. Multiplicities floor at zero; values absent from m are ignored.
func (m Multiset[V]) Difference(other Multiset[V]) Multiset[V] {
	counts := clone(m.counts, 0)
	size := m.size
	for v, n := range other.counts {
		current := counts[v]
		if current == 0 {
			continue
		}
		if n >= current {
			delete(counts, v)
			size -= current
		} else {
			counts[v] = current - n
			size -= n
		}
	}
	return Multiset[V]{counts, size}
}

// Equal reports whether both multisets hold the same values with the same
// multiplicities.
func (m Multiset[V]) Equal(other Multiset[V]) bool {
	return maps.Equal(m.counts, other.counts)
}

// SubsetOf reports whether every value of m appears in other at least as
// many times. It returns false on the first violation; a multiset with
// more distinct values than other can never be a subset, so that case
// returns without inspecting any multiplicities.
func (m Multiset[V]) SubsetOf(other Multiset[V]) bool {
	if len(m.counts) > len(other.counts) {
		return false
	}
	for v, n := range m.counts {
		if n > other.counts[v] {
			return false
		}
	}
	return true
}
