package expand

import (
	"github.com/yungbote/vocabgraph/internal/domain"
)

// Hierarchy holds the is-a adjacency in both directions plus per-run
// closure memos. Not safe for concurrent use; each pipeline run builds
// its own.
type Hierarchy struct {
	parents  map[int64][]int64
	children map[int64][]int64

	ancestorMemo   map[int64]domain.IDSet
	descendantMemo map[int64]domain.IDSet
}

// NewHierarchy indexes the hierarchical edges of rels; every other
// relationship kind is ignored here.
func NewHierarchy(rels []domain.RelationshipRow) *Hierarchy {
	h := &Hierarchy{
		parents:        make(map[int64][]int64),
		children:       make(map[int64][]int64),
		ancestorMemo:   make(map[int64]domain.IDSet),
		descendantMemo: make(map[int64]domain.IDSet),
	}
	for _, r := range rels {
		if r.Kind != domain.RelIsA {
			continue
		}
		h.parents[r.ConceptID1] = append(h.parents[r.ConceptID1], r.ConceptID2)
		h.children[r.ConceptID2] = append(h.children[r.ConceptID2], r.ConceptID1)
	}
	return h
}

// Ancestors returns id plus everything reachable upward through is-a
// edges. The returned set is memoized and shared; callers must not
// mutate it.
func (h *Hierarchy) Ancestors(id int64) domain.IDSet {
	return h.walk(id, h.parents, h.ancestorMemo)
}

// Descendants returns id plus everything reachable downward through
// is-a edges. Same sharing rule as Ancestors.
func (h *Hierarchy) Descendants(id int64) domain.IDSet {
	return h.walk(id, h.children, h.descendantMemo)
}

// walk is an explicit-stack traversal with a visited set, so cycles
// terminate and depth is bounded by memory rather than the call stack.
func (h *Hierarchy) walk(start int64, next map[int64][]int64, memo map[int64]domain.IDSet) domain.IDSet {
	if cached, ok := memo[start]; ok {
		return cached
	}

	visited := domain.NewIDSet()
	stack := []int64{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(id) {
			continue
		}
		if id != start {
			if cached, ok := memo[id]; ok {
				visited.AddAll(cached)
				continue
			}
		}
		visited.Add(id)
		stack = append(stack, next[id]...)
	}

	memo[start] = visited
	return visited
}
