package domain

// Concept is one row of the CONCEPT table: a single vocabulary entry
// with a release-wide unique identifier.
type Concept struct {
	ConceptID       int64  `json:"concept_id"`
	ConceptName     string `json:"concept_name"`
	DomainID        string `json:"domain_id"`
	VocabularyID    string `json:"vocabulary_id"`
	ConceptClassID  string `json:"concept_class_id"`
	ConceptCode     string `json:"concept_code"`
	StandardConcept string `json:"standard_concept"` // empty when the source field is null
}

// SynonymRow is one row of the CONCEPT_SYNONYM table.
type SynonymRow struct {
	ConceptID  int64  `json:"concept_id"`
	Name       string `json:"concept_synonym_name"`
	LanguageID int64  `json:"language_concept_id"`
}

// RelationshipRow is one row of the CONCEPT_RELATIONSHIP table. Kind is
// the raw relationship_id label; only "Is a" and "Maps to" are
// interpreted downstream.
type RelationshipRow struct {
	ConceptID1 int64  `json:"concept_id_1"`
	ConceptID2 int64  `json:"concept_id_2"`
	Kind       string `json:"relationship_id"`
}

const (
	RelIsA    = "Is a"
	RelMapsTo = "Maps to"
)

// Name is a per-language label attached to a concept. The triple
// (ConceptID, LanguageID, Value) is unique after merge.
type Name struct {
	ConceptID    int64  `json:"concept_id"`
	Value        string `json:"value"`
	LanguageID   int64  `json:"language_concept_id"`
	LanguageName string `json:"language_name"`
}

// LanguageMap is the language reference table: language concept id to
// display name. Loaded once per run, never mutated.
type LanguageMap map[int64]string

// IDByName returns the id of the language with the given display name,
// or false when the run has no such target language.
func (m LanguageMap) IDByName(name string) (int64, bool) {
	for id, n := range m {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// IDSet is the concept-id set threaded between pipeline stages.
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

func (s IDSet) AddAll(other IDSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Subtract removes every id in other, in place.
func (s IDSet) Subtract(other IDSet) {
	for id := range other {
		delete(s, id)
	}
}

func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
