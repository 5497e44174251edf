package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/vocabgraph/internal/domain"
	"github.com/yungbote/vocabgraph/internal/platform/logger"
	"github.com/yungbote/vocabgraph/internal/platform/neo4jdb"
)

// VocabStore writes the vocabulary graph in batches. Batch size tunes
// throughput, not correctness; batches are independent because edges
// are only created after every referenced node exists. A failed batch
// aborts the run — the destination is cleared at the start of each run,
// so a partial graph is not a meaningful state and nothing is retried.
type VocabStore struct {
	client    *neo4jdb.Client
	log       *logger.Logger
	batchSize int
	workers   int
}

func NewVocabStore(client *neo4jdb.Client, log *logger.Logger, batchSize, workers int) *VocabStore {
	if batchSize <= 0 {
		batchSize = 1000
	}
	if workers <= 0 {
		workers = 1
	}
	return &VocabStore{
		client:    client,
		log:       log.With("store", "VocabGraph"),
		batchSize: batchSize,
		workers:   workers,
	}
}

func (s *VocabStore) session(ctx context.Context) neo4j.SessionWithContext {
	return s.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.client.Database,
	})
}

// Clear removes every node and relationship. Each run rebuilds the
// graph from scratch.
func (s *VocabStore) Clear(ctx context.Context) error {
	sess := s.session(ctx)
	defer sess.Close(ctx)

	res, err := sess.Run(ctx, `MATCH (n) DETACH DELETE n`, nil)
	if err != nil {
		return fmt.Errorf("graph: clear database: %w", err)
	}
	if _, err := res.Consume(ctx); err != nil {
		return fmt.Errorf("graph: clear database: %w", err)
	}
	s.log.Info("database cleared")
	return nil
}

var schemaStatements = []string{
	`CREATE CONSTRAINT concept_id_unique IF NOT EXISTS FOR (c:Concept) REQUIRE c.concept_id IS UNIQUE`,
	`CREATE INDEX concept_code_idx IF NOT EXISTS FOR (c:Concept) ON (c.concept_code)`,
	`CREATE INDEX vocabulary_id_idx IF NOT EXISTS FOR (c:Concept) ON (c.vocabulary_id)`,
	`CREATE INDEX canonical_name_idx IF NOT EXISTS FOR (c:Concept) ON (c.canonical_name)`,
	`CREATE INDEX name_language_idx IF NOT EXISTS FOR (n:Name) ON (n.language_concept_id)`,
	`CREATE FULLTEXT INDEX name_fulltext IF NOT EXISTS FOR (n:Name) ON EACH [n.value]`,
}

// EnsureSchema creates the uniqueness constraint and indexes. Every
// statement is guarded with IF NOT EXISTS; failures are logged and
// skipped because restricted users may lack schema privileges.
func (s *VocabStore) EnsureSchema(ctx context.Context) error {
	sess := s.session(ctx)
	defer sess.Close(ctx)

	for _, stmt := range schemaStatements {
		res, err := sess.Run(ctx, stmt, nil)
		if err != nil {
			s.log.Warn("schema statement failed (continuing)", "statement", stmt, "error", err)
			continue
		}
		_, _ = res.Consume(ctx)
	}
	s.log.Info("constraints and indexes ensured")
	return nil
}

// CreateConcepts creates one Concept node per row.
func (s *VocabStore) CreateConcepts(ctx context.Context, concepts []domain.Concept) error {
	records := make([]map[string]any, 0, len(concepts))
	for _, c := range concepts {
		records = append(records, map[string]any{
			"concept_id":       c.ConceptID,
			"concept_code":     c.ConceptCode,
			"canonical_name":   c.ConceptName,
			"domain_id":        c.DomainID,
			"vocabulary_id":    c.VocabularyID,
			"concept_class_id": c.ConceptClassID,
			"standard_concept": c.StandardConcept,
		})
	}
	query := `
UNWIND $rows AS row
CREATE (c:Concept {
	concept_id: row.concept_id,
	concept_code: row.concept_code,
	canonical_name: row.canonical_name,
	domain_id: row.domain_id,
	vocabulary_id: row.vocabulary_id,
	concept_class_id: row.concept_class_id,
	standard_concept: row.standard_concept
})
`
	return s.runBatches(ctx, "concepts", query, records)
}

// CreateNames creates one Name node per row with a HAS_NAME edge to the
// owning concept.
func (s *VocabStore) CreateNames(ctx context.Context, names []domain.Name) error {
	records := make([]map[string]any, 0, len(names))
	for _, n := range names {
		records = append(records, map[string]any{
			"concept_id":          n.ConceptID,
			"value":               n.Value,
			"language_concept_id": n.LanguageID,
			"language_name":       n.LanguageName,
		})
	}
	query := `
UNWIND $rows AS row
MATCH (c:Concept {concept_id: row.concept_id})
CREATE (n:Name {
	concept_id: row.concept_id,
	value: row.value,
	language_concept_id: row.language_concept_id,
	language_name: row.language_name
})
CREATE (c)-[:HAS_NAME]->(n)
`
	return s.runBatches(ctx, "names", query, records)
}

// CreateRelationships creates typed edges between existing concepts.
// relType is interpolated into Cypher, so only the two known labels are
// accepted.
func (s *VocabStore) CreateRelationships(ctx context.Context, relType string, rels []domain.RelationshipRow) error {
	switch relType {
	case "IS_A", "MAPS_TO":
	default:
		return fmt.Errorf("graph: unknown relationship type %q", relType)
	}
	if len(rels) == 0 {
		s.log.Info("no relationships to create", "type", relType)
		return nil
	}

	records := make([]map[string]any, 0, len(rels))
	for _, r := range rels {
		records = append(records, map[string]any{
			"concept_id_1": r.ConceptID1,
			"concept_id_2": r.ConceptID2,
		})
	}
	query := fmt.Sprintf(`
UNWIND $rows AS row
MATCH (source:Concept {concept_id: row.concept_id_1})
MATCH (target:Concept {concept_id: row.concept_id_2})
CREATE (source)-[:%s]->(target)
`, relType)
	return s.runBatches(ctx, relType, query, records)
}

// runBatches splits records into batches and submits them through a
// bounded errgroup. Each batch gets its own session; node and edge
// creation order within a stage does not affect the final graph.
func (s *VocabStore) runBatches(ctx context.Context, what, query string, records []map[string]any) error {
	total := (len(records) + s.batchSize - 1) / s.batchSize
	s.log.Info("writing batches", "what", what, "rows", len(records), "batches", total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := 0; i < len(records); i += s.batchSize {
		batch := records[i:min(i+s.batchSize, len(records))]
		num := i/s.batchSize + 1
		g.Go(func() error {
			if err := s.writeBatch(ctx, query, batch); err != nil {
				return fmt.Errorf("graph: %s batch %d/%d: %w", what, num, total, err)
			}
			if num%10 == 0 {
				s.log.Info("batch progress", "what", what, "batch", num, "total", total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("batches written", "what", what, "rows", len(records))
	return nil
}

func (s *VocabStore) writeBatch(ctx context.Context, query string, rows []map[string]any) error {
	sess := s.session(ctx)
	defer sess.Close(ctx)

	_, err := sess.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"rows": rows})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
