package filter

import (
	"github.com/yungbote/vocabgraph/internal/domain"
)

// ExcludeDomains drops concepts belonging to an excluded domain and
// deduplicates on concept id, keeping the first occurrence. It runs
// strictly after expansion: closure may pass through an excluded node,
// but the node itself never survives. The removed set must be
// subtracted from every downstream membership set so stale checks
// cannot resurrect an excluded concept.
func ExcludeDomains(concepts []domain.Concept, excluded []string) (kept []domain.Concept, keptIDs, removedIDs domain.IDSet) {
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, d := range excluded {
		excludedSet[d] = struct{}{}
	}

	kept = make([]domain.Concept, 0, len(concepts))
	keptIDs = domain.NewIDSet()
	removedIDs = domain.NewIDSet()

	for _, c := range concepts {
		if keptIDs.Has(c.ConceptID) || removedIDs.Has(c.ConceptID) {
			continue
		}
		if _, ex := excludedSet[c.DomainID]; ex {
			removedIDs.Add(c.ConceptID)
			continue
		}
		kept = append(kept, c)
		keptIDs.Add(c.ConceptID)
	}
	return kept, keptIDs, removedIDs
}

// SelectConcepts keeps the concept rows whose id is in wanted.
func SelectConcepts(concepts []domain.Concept, wanted domain.IDSet) []domain.Concept {
	out := make([]domain.Concept, 0, len(wanted))
	for _, c := range concepts {
		if wanted.Has(c.ConceptID) {
			out = append(out, c)
		}
	}
	return out
}
