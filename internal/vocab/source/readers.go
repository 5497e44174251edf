package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yungbote/vocabgraph/internal/domain"
	"github.com/yungbote/vocabgraph/internal/platform/logger"
)

func skipLogger(log *logger.Logger, file string) func(int, error) {
	return func(line int, err error) {
		if log != nil {
			log.Warn("skipping malformed row", "file", file, "line", line, "error", err)
		}
	}
}

// ReadConcepts loads the full CONCEPT table. A null standard-concept
// flag becomes the empty string.
func ReadConcepts(path string, log *logger.Logger) ([]domain.Concept, error) {
	required := []string{"concept_id", "concept_name", "domain_id", "vocabulary_id", "concept_class_id", "concept_code"}
	var out []domain.Concept
	err := readTable(path, '\t', required, func(rec Record) error {
		rawID, _ := rec.Get("concept_id")
		id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return fmt.Errorf("concept_id %q: %w", rawID, err)
		}
		name, _ := rec.Get("concept_name")
		domainID, _ := rec.Get("domain_id")
		vocab, _ := rec.Get("vocabulary_id")
		class, _ := rec.Get("concept_class_id")
		code, _ := rec.Get("concept_code")
		std, _ := rec.Get("standard_concept")
		out = append(out, domain.Concept{
			ConceptID:       id,
			ConceptName:     name,
			DomainID:        domainID,
			VocabularyID:    vocab,
			ConceptClassID:  class,
			ConceptCode:     strings.TrimSpace(code),
			StandardConcept: strings.TrimSpace(std),
		})
		return nil
	}, skipLogger(log, path))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadSynonyms loads the CONCEPT_SYNONYM table.
func ReadSynonyms(path string, log *logger.Logger) ([]domain.SynonymRow, error) {
	required := []string{"concept_id", "concept_synonym_name", "language_concept_id"}
	var out []domain.SynonymRow
	err := readTable(path, '\t', required, func(rec Record) error {
		rawID, _ := rec.Get("concept_id")
		id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return fmt.Errorf("concept_id %q: %w", rawID, err)
		}
		rawLang, _ := rec.Get("language_concept_id")
		lang, err := strconv.ParseInt(strings.TrimSpace(rawLang), 10, 64)
		if err != nil {
			return fmt.Errorf("language_concept_id %q: %w", rawLang, err)
		}
		name, _ := rec.Get("concept_synonym_name")
		out = append(out, domain.SynonymRow{ConceptID: id, Name: name, LanguageID: lang})
		return nil
	}, skipLogger(log, path))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadRelationships loads the CONCEPT_RELATIONSHIP table. Kind is kept
// verbatim; interpretation of the label happens downstream.
func ReadRelationships(path string, log *logger.Logger) ([]domain.RelationshipRow, error) {
	required := []string{"concept_id_1", "concept_id_2", "relationship_id"}
	var out []domain.RelationshipRow
	err := readTable(path, '\t', required, func(rec Record) error {
		raw1, _ := rec.Get("concept_id_1")
		id1, err := strconv.ParseInt(strings.TrimSpace(raw1), 10, 64)
		if err != nil {
			return fmt.Errorf("concept_id_1 %q: %w", raw1, err)
		}
		raw2, _ := rec.Get("concept_id_2")
		id2, err := strconv.ParseInt(strings.TrimSpace(raw2), 10, 64)
		if err != nil {
			return fmt.Errorf("concept_id_2 %q: %w", raw2, err)
		}
		kind, _ := rec.Get("relationship_id")
		out = append(out, domain.RelationshipRow{ConceptID1: id1, ConceptID2: id2, Kind: strings.TrimSpace(kind)})
		return nil
	}, skipLogger(log, path))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadLanguages loads the language reference table (comma-delimited).
// The result defines the run's target languages and is never mutated.
func ReadLanguages(path string, log *logger.Logger) (domain.LanguageMap, error) {
	required := []string{"language_concept_id", "language_name"}
	out := make(domain.LanguageMap)
	err := readTable(path, ',', required, func(rec Record) error {
		rawID, _ := rec.Get("language_concept_id")
		id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return fmt.Errorf("language_concept_id %q: %w", rawID, err)
		}
		name, _ := rec.Get("language_name")
		out[id] = strings.TrimSpace(name)
		return nil
	}, skipLogger(log, path))
	if err != nil {
		return nil, err
	}
	return out, nil
}
