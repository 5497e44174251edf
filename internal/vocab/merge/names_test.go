package merge

import (
	"testing"

	"github.com/yungbote/vocabgraph/internal/domain"
)

var testLangs = domain.LanguageMap{
	4182948: "Chinese",
	4182504: "German",
}

func testOverrides() Overrides {
	return NewOverrides(map[string][]string{
		"Chinese": {"ICD10CM", "ICD10PCS"},
	})
}

func TestCuratedNameWinsForOverriddenVocabulary(t *testing.T) {
	concepts := []domain.Concept{
		{ConceptID: 1, VocabularyID: "ICD10CM", ConceptCode: "A00"},
	}
	kept := domain.NewIDSet(1)
	synonyms := []domain.SynonymRow{
		{ConceptID: 1, Name: "Y", LanguageID: 4182948},
	}
	sheets := []SheetNames{
		{Vocabulary: "ICD10CM", Language: "Chinese", Codes: map[string]string{"A00": "X"}},
	}

	names := BuildNames(concepts, kept, synonyms, sheets, testLangs, testOverrides())
	if len(names) != 1 {
		t.Fatalf("expected 1 name, got %d: %v", len(names), names)
	}
	if names[0].Value != "X" {
		t.Fatalf("expected curated name X, got %q", names[0].Value)
	}
}

func TestSynonymSuppressedEvenWithoutCuratedMatch(t *testing.T) {
	// The override claims the whole (language, vocabulary) pair: a
	// Chinese synonym for an ICD10CM concept is dropped even when the
	// workbook has no row for that code.
	concepts := []domain.Concept{
		{ConceptID: 1, VocabularyID: "ICD10CM", ConceptCode: "B99"},
	}
	kept := domain.NewIDSet(1)
	synonyms := []domain.SynonymRow{
		{ConceptID: 1, Name: "Y", LanguageID: 4182948},
	}

	names := BuildNames(concepts, kept, synonyms, nil, testLangs, testOverrides())
	if len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}
}

func TestSynonymKeptForNonOverriddenVocabulary(t *testing.T) {
	concepts := []domain.Concept{
		{ConceptID: 1, VocabularyID: "SNOMED", ConceptCode: "12345"},
	}
	kept := domain.NewIDSet(1)
	synonyms := []domain.SynonymRow{
		{ConceptID: 1, Name: "中文名", LanguageID: 4182948},
		{ConceptID: 1, Name: "Deutscher Name", LanguageID: 4182504},
	}

	names := BuildNames(concepts, kept, synonyms, nil, testLangs, testOverrides())
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d: %v", len(names), names)
	}
	if names[0].LanguageName != "Chinese" || names[1].LanguageName != "German" {
		t.Fatalf("unexpected language names: %v", names)
	}
}

func TestExcludedConceptContributesNoNames(t *testing.T) {
	concepts := []domain.Concept{
		{ConceptID: 1, VocabularyID: "ICD10CM", ConceptCode: "A00"},
	}
	kept := domain.NewIDSet() // concept 1 was removed by the domain filter
	synonyms := []domain.SynonymRow{
		{ConceptID: 1, Name: "Y", LanguageID: 4182948},
	}
	sheets := []SheetNames{
		{Vocabulary: "ICD10CM", Language: "Chinese", Codes: map[string]string{"A00": "X"}},
	}

	names := BuildNames(concepts, kept, synonyms, sheets, testLangs, testOverrides())
	if len(names) != 0 {
		t.Fatalf("excluded concept produced names: %v", names)
	}
}

func TestStructuralConceptWithZeroNames(t *testing.T) {
	concepts := []domain.Concept{
		{ConceptID: 2, VocabularyID: "SNOMED", ConceptCode: "999"},
	}
	names := BuildNames(concepts, domain.NewIDSet(2), nil, nil, testLangs, testOverrides())
	if len(names) != 0 {
		t.Fatalf("expected no names for structural concept, got %v", names)
	}
}

func TestBuildNamesDeduplicatesTriples(t *testing.T) {
	concepts := []domain.Concept{
		{ConceptID: 1, VocabularyID: "SNOMED", ConceptCode: "1"},
	}
	kept := domain.NewIDSet(1)
	synonyms := []domain.SynonymRow{
		{ConceptID: 1, Name: "same", LanguageID: 4182504},
		{ConceptID: 1, Name: "same", LanguageID: 4182504},
		{ConceptID: 1, Name: "same", LanguageID: 4182948},
	}

	names := BuildNames(concepts, kept, synonyms, nil, testLangs, testOverrides())
	if len(names) != 2 {
		t.Fatalf("expected 2 distinct triples, got %d: %v", len(names), names)
	}
}

func TestDedupIdempotence(t *testing.T) {
	names := []domain.Name{
		{ConceptID: 1, Value: "a", LanguageID: 10},
		{ConceptID: 1, Value: "a", LanguageID: 10},
		{ConceptID: 1, Value: "b", LanguageID: 10},
	}
	once := Dedup(names)
	twice := Dedup(append(append([]domain.Name{}, once...), once...))
	if len(once) != 2 || len(twice) != len(once) {
		t.Fatalf("dedup not idempotent: once=%d twice=%d", len(once), len(twice))
	}
}
