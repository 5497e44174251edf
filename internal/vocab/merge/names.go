package merge

import (
	"github.com/yungbote/vocabgraph/internal/domain"
)

// Overrides records which (language, vocabulary) pairs have an
// authoritative curated source, so the synonym-table name for that pair
// is suppressed in favor of the curated one.
type Overrides map[string]map[string]struct{}

func NewOverrides(byLanguage map[string][]string) Overrides {
	o := make(Overrides, len(byLanguage))
	for lang, vocabs := range byLanguage {
		set := make(map[string]struct{}, len(vocabs))
		for _, v := range vocabs {
			set[v] = struct{}{}
		}
		o[lang] = set
	}
	return o
}

func (o Overrides) Claimed(language, vocabulary string) bool {
	vocabs, ok := o[language]
	if !ok {
		return false
	}
	_, ok = vocabs[vocabulary]
	return ok
}

// SheetNames is the curated output of one workbook sheet: code to name
// for a single vocabulary and language.
type SheetNames struct {
	Vocabulary string
	Language   string
	Codes      map[string]string
}

type nameKey struct {
	conceptID  int64
	languageID int64
	value      string
}

// BuildNames merges curated sheet names with synonym-table names for
// every kept concept and deduplicates on (concept, language, text).
//
// Curated names are emitted first, keyed by vocabulary and code. A
// synonym name is dropped when its (language, vocabulary) pair is
// claimed by an override, and always when its concept is not in the
// kept set; exclusion membership is checked before a name is emitted,
// never after. A kept concept with no name at all is fine: structural
// nodes stay in the graph for hierarchy connectivity.
func BuildNames(concepts []domain.Concept, kept domain.IDSet, synonyms []domain.SynonymRow, sheets []SheetNames, langs domain.LanguageMap, overrides Overrides) []domain.Name {
	vocabByID := make(map[int64]string, len(concepts))

	var out []domain.Name
	seen := make(map[nameKey]struct{})
	emit := func(n domain.Name) {
		k := nameKey{conceptID: n.ConceptID, languageID: n.LanguageID, value: n.Value}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, n)
	}

	for _, c := range concepts {
		if !kept.Has(c.ConceptID) {
			continue
		}
		vocabByID[c.ConceptID] = c.VocabularyID
		for _, sheet := range sheets {
			if c.VocabularyID != sheet.Vocabulary {
				continue
			}
			value, ok := sheet.Codes[c.ConceptCode]
			if !ok {
				continue
			}
			langID, ok := langs.IDByName(sheet.Language)
			if !ok {
				// The sheet's language is not a target for this run.
				continue
			}
			emit(domain.Name{
				ConceptID:    c.ConceptID,
				Value:        value,
				LanguageID:   langID,
				LanguageName: sheet.Language,
			})
		}
	}

	for _, s := range synonyms {
		if !kept.Has(s.ConceptID) {
			continue
		}
		langName, ok := langs[s.LanguageID]
		if !ok {
			continue
		}
		if overrides.Claimed(langName, vocabByID[s.ConceptID]) {
			continue
		}
		emit(domain.Name{
			ConceptID:    s.ConceptID,
			Value:        s.Name,
			LanguageID:   s.LanguageID,
			LanguageName: langName,
		})
	}

	return out
}

// Dedup removes exact duplicate (concept, language, text) triples from
// an already-built name list, keeping the first instance.
func Dedup(names []domain.Name) []domain.Name {
	seen := make(map[nameKey]struct{}, len(names))
	out := make([]domain.Name, 0, len(names))
	for _, n := range names {
		k := nameKey{conceptID: n.ConceptID, languageID: n.LanguageID, value: n.Value}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, n)
	}
	return out
}
