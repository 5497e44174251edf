package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/vocabgraph/internal/config"
	"github.com/yungbote/vocabgraph/internal/domain"
	"github.com/yungbote/vocabgraph/internal/platform/logger"
	"github.com/yungbote/vocabgraph/internal/vocab/expand"
	"github.com/yungbote/vocabgraph/internal/vocab/filter"
	"github.com/yungbote/vocabgraph/internal/vocab/merge"
	"github.com/yungbote/vocabgraph/internal/vocab/source"
)

// Sink is the write side of the pipeline. The Neo4j store implements
// it; tests substitute a capture fake.
type Sink interface {
	Clear(ctx context.Context) error
	EnsureSchema(ctx context.Context) error
	CreateConcepts(ctx context.Context, concepts []domain.Concept) error
	CreateNames(ctx context.Context, names []domain.Name) error
	CreateRelationships(ctx context.Context, relType string, rels []domain.RelationshipRow) error
}

// Run executes one full import: load, expand, exclude, merge, write.
// Every stage materializes its output before the next begins; the only
// state threaded between stages is the explicit concept-id sets.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger, sink Sink) error {
	log = log.With("run_id", uuid.New().String())

	if cfg.CleanSources {
		if err := cleanSources(cfg, log); err != nil {
			return err
		}
	}

	// Step 1: language reference table; defines the run's target set.
	langs, err := source.ReadLanguages(cfg.Path(cfg.Files.Language), log)
	if err != nil {
		return err
	}
	log.Info("languages loaded", "count", len(langs))

	// Step 2: synonyms, filtered to target languages; the seed set.
	synonyms, err := source.ReadSynonyms(cfg.Path(cfg.Files.Synonym), log)
	if err != nil {
		return err
	}
	targetSynonyms, seed := filter.TargetSynonyms(synonyms, langs)
	log.Info("synonyms loaded", "total", len(synonyms), "target_language", len(targetSynonyms), "seed_concepts", len(seed))

	// Step 3: curated workbook names, when a workbook is configured.
	sheets, err := loadSheets(cfg, log)
	if err != nil {
		return err
	}

	// Step 4: the full concept table.
	concepts, err := source.ReadConcepts(cfg.Path(cfg.Files.Concept), log)
	if err != nil {
		return err
	}
	log.Info("concepts loaded", "count", len(concepts))

	// Steps 5-6: expansion. One hop via is-a/maps-to, then the full
	// is-a closure in both directions.
	rels, err := source.ReadRelationships(cfg.Path(cfg.Files.Relationship), log)
	if err != nil {
		return err
	}
	expanded := expand.Expand(seed, rels)
	log.Info("concept set expanded", "seed", len(seed), "expanded", len(expanded))

	// Step 7: restrict the concept table to the expanded set, then
	// drop excluded domains. Removed ids are subtracted so nothing
	// downstream can re-admit them.
	imported := filter.SelectConcepts(concepts, expanded)
	finalConcepts, keptIDs, removedIDs := filter.ExcludeDomains(imported, cfg.ExcludedDomains)
	log.Info("domain exclusion applied", "kept", len(keptIDs), "removed", len(removedIDs), "excluded_domains", cfg.ExcludedDomains)

	// Step 8: merged, deduplicated names.
	overrides := merge.NewOverrides(cfg.NameOverrides)
	names := merge.BuildNames(finalConcepts, keptIDs, targetSynonyms, sheets, langs, overrides)
	log.Info("names built", "count", len(names))
	reportLanguageDistribution(names, log)

	// Step 9: relationships restricted to kept concepts.
	isA, mapsTo := filter.Relationships(rels, keptIDs)
	log.Info("relationships filtered", "is_a", len(isA), "maps_to", len(mapsTo))

	// Step 10: write. Clear first; a failed write is fatal and the
	// caller re-runs from scratch.
	if err := sink.Clear(ctx); err != nil {
		return err
	}
	if err := sink.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := sink.CreateConcepts(ctx, finalConcepts); err != nil {
		return err
	}
	if err := sink.CreateNames(ctx, names); err != nil {
		return err
	}
	if err := sink.CreateRelationships(ctx, "IS_A", isA); err != nil {
		return err
	}
	if err := sink.CreateRelationships(ctx, "MAPS_TO", mapsTo); err != nil {
		return err
	}

	log.Info("graph import completed",
		"concepts", len(finalConcepts),
		"names", len(names),
		"is_a", len(isA),
		"maps_to", len(mapsTo),
	)
	return nil
}

func cleanSources(cfg *config.Config, log *logger.Logger) error {
	for _, name := range []string{cfg.Files.Concept, cfg.Files.Synonym, cfg.Files.Relationship} {
		raw := cfg.Path(rawName(name))
		cleaned := cfg.Path(name)
		if raw == cleaned {
			return fmt.Errorf("pipeline: clean_sources is set but %q has no _cleaned suffix to write to", name)
		}
		stats, err := source.CleanFile(raw, cleaned, log)
		if err != nil {
			return err
		}
		log.Info("source cleaned", "file", raw, "lines", stats.Lines)
	}
	return nil
}

// rawName maps CONCEPT_cleaned.csv back to CONCEPT.csv.
func rawName(cleaned string) string {
	const marker = "_cleaned"
	if i := strings.LastIndex(cleaned, marker); i >= 0 {
		return cleaned[:i] + cleaned[i+len(marker):]
	}
	return cleaned
}

func loadSheets(cfg *config.Config, log *logger.Logger) ([]merge.SheetNames, error) {
	if cfg.Files.Workbook == "" || len(cfg.Sheets) == 0 {
		return nil, nil
	}
	wb, err := source.OpenWorkbook(cfg.Path(cfg.Files.Workbook))
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	out := make([]merge.SheetNames, 0, len(cfg.Sheets))
	for _, sc := range cfg.Sheets {
		codes, err := wb.SheetCodeNames(sc.Name, sc.CodeMarker, sc.NameMarker)
		if err != nil {
			// No safe fallback when a column cannot be resolved; the
			// run stops rather than guess which column is authoritative.
			return nil, fmt.Errorf("pipeline: sheet %q: %w", sc.Name, err)
		}
		log.Info("workbook sheet loaded", "sheet", sc.Name, "vocabulary", sc.Vocabulary, "codes", len(codes))
		out = append(out, merge.SheetNames{
			Vocabulary: sc.Vocabulary,
			Language:   sc.Language,
			Codes:      codes,
		})
	}
	return out, nil
}

func reportLanguageDistribution(names []domain.Name, log *logger.Logger) {
	counts := make(map[string]int)
	for _, n := range names {
		counts[n.LanguageName]++
	}
	languages := make([]string, 0, len(counts))
	for lang := range counts {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	for _, lang := range languages {
		log.Info("name distribution", "language", lang, "count", counts[lang])
	}
}
