package dag

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// labelStat is the per-label accumulator.
type labelStat struct {
	weight float64 // weight of the first edge seen with this label
	count  int
}

// Histogram maps each distinct edge label to its weight and frequency,
// ordered by label text.
type Histogram struct {
	tree *treemap.Map
}

// Histogram tallies edge labels in insertion order. Every edge sharing a
// label has the same weight when the graph comes from the builder; for other
// sources the first seen weight is kept.
// Complexity: O(E log L) for L distinct labels.
func (g *Graph) Histogram() *Histogram {
	tree := treemap.NewWithStringComparator()
	for i := range g.edges {
		key := g.edges[i].Label.String()
		if v, ok := tree.Get(key); ok {
			v.(*labelStat).count++
			continue
		}
		tree.Put(key, &labelStat{weight: g.edges[i].Weight, count: 1})
	}

	return &Histogram{tree: tree}
}

// Len returns the number of distinct labels.
func (h *Histogram) Len() int { return h.tree.Size() }

// Lookup returns the weight and count recorded for l.
func (h *Histogram) Lookup(l Label) (weight float64, count int, ok bool) {
	v, found := h.tree.Get(l.String())
	if !found {
		return 0, 0, false
	}
	s := v.(*labelStat)

	return s.weight, s.count, true
}

// Each calls fn for every label in ascending label order.
func (h *Histogram) Each(fn func(l Label, weight float64, count int)) {
	it := h.tree.Iterator()
	for it.Next() {
		var l Label
		copy(l[:], it.Key().(string))
		s := it.Value().(*labelStat)
		fn(l, s.weight, s.count)
	}
}
