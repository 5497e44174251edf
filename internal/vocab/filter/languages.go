package filter

import (
	"github.com/yungbote/vocabgraph/internal/domain"
)

// TargetSynonyms keeps synonym rows whose language is in the run's
// language map and returns them with the seed concept-id set.
func TargetSynonyms(rows []domain.SynonymRow, langs domain.LanguageMap) ([]domain.SynonymRow, domain.IDSet) {
	kept := make([]domain.SynonymRow, 0, len(rows))
	seed := domain.NewIDSet()
	for _, r := range rows {
		if _, ok := langs[r.LanguageID]; !ok {
			continue
		}
		kept = append(kept, r)
		seed.Add(r.ConceptID)
	}
	return kept, seed
}
