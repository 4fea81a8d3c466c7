package multiset

import "iter"

// FromSeq builds a multiset from a finite sequence, counting each yielded
// value once.
func FromSeq[V comparable](seq iter.Seq[V]) Multiset[V] {
	m := Multiset[V]{counts: map[V]int{}}
	for v := range seq {
		m.counts[v]++
		m.size++
	}
	return m
}

// FromSeqFunc builds a multiset where each yielded value contributes the
// multiplicity computed by multiplicity(v). Values mapped below 1 are
// skipped entirely; repeated source values accumulate additively.
func FromSeqFunc[V comparable](seq iter.Seq[V], multiplicity func(V) int) Multiset[V] {
	m := Multiset[V]{counts: map[V]int{}}
	for v := range seq {
		n := multiplicity(v)
		if n < 1 {
			continue
		}
		m.counts[v] += n
		m.size += n
	}
	return m
}

// Collect folds every value of seq into m with multiplicity 1 and returns
// the accumulated multiset. The receiver is unchanged.
func (m Multiset[V]) Collect(seq iter.Seq[V]) Multiset[V] {
	counts := clone(m.counts, 0)
	size := m.size
	for v := range seq {
		counts[v]++
		size++
	}
	return Multiset[V]{counts, size}
}

// All returns a lazy sequence of (value, multiplicity) pairs, equivalent
// in content to ToList.
func (m Multiset[V]) All() iter.Seq2[V, int] {
	return func(yield func(V, int) bool) {
		for v, n := range m.counts {
			if !yield(v, n) {
				return
			}
		}
	}
}
