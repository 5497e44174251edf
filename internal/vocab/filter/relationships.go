package filter

import (
	"github.com/yungbote/vocabgraph/internal/domain"
)

// Relationships keeps edges whose endpoints both resolve to kept
// concepts. An endpoint outside the set is not an error; the edge is
// silently dropped. Self-referencing maps-to edges are dropped too.
// Every relationship kind other than is-a and maps-to is ignored.
func Relationships(rels []domain.RelationshipRow, kept domain.IDSet) (isA, mapsTo []domain.RelationshipRow) {
	for _, r := range rels {
		if !kept.Has(r.ConceptID1) || !kept.Has(r.ConceptID2) {
			continue
		}
		switch r.Kind {
		case domain.RelIsA:
			isA = append(isA, r)
		case domain.RelMapsTo:
			if r.ConceptID1 == r.ConceptID2 {
				continue
			}
			mapsTo = append(mapsTo, r)
		}
	}
	return isA, mapsTo
}
