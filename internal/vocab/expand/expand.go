package expand

import (
	"github.com/yungbote/vocabgraph/internal/domain"
)

// Expand computes the full concept-id set to import from a seed set of
// concepts with target-language synonyms:
//
//  1. the seed itself,
//  2. every concept one hop from the seed via an is-a or maps-to edge,
//  3. the complete ancestor and descendant closure of (1)∪(2) over the
//     is-a hierarchy, so imported taxonomic paths have no gaps.
//
// No deduplication or domain filtering happens here; exclusion is a
// downstream content filter, not a traversal boundary.
func Expand(seed domain.IDSet, rels []domain.RelationshipRow) domain.IDSet {
	return ExpandWith(seed, rels, NewHierarchy(rels))
}

// ExpandWith is Expand with a caller-built Hierarchy, so one index can
// serve both expansion and reporting.
func ExpandWith(seed domain.IDSet, rels []domain.RelationshipRow, h *Hierarchy) domain.IDSet {
	start := seed.Clone()
	for _, r := range rels {
		if r.Kind != domain.RelIsA && r.Kind != domain.RelMapsTo {
			continue
		}
		if seed.Has(r.ConceptID1) || seed.Has(r.ConceptID2) {
			start.Add(r.ConceptID1)
			start.Add(r.ConceptID2)
		}
	}

	all := start.Clone()
	for id := range start {
		all.AddAll(h.Ancestors(id))
		all.AddAll(h.Descendants(id))
	}
	return all
}
