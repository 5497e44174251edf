package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/vocabgraph/internal/config"
	"github.com/yungbote/vocabgraph/internal/data/graph"
	"github.com/yungbote/vocabgraph/internal/platform/logger"
	"github.com/yungbote/vocabgraph/internal/platform/neo4jdb"
	"github.com/yungbote/vocabgraph/internal/vocab/pipeline"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}
	log.Info("config loaded", "source_dir", cfg.SourceDir, "batch_size", cfg.BatchSize, "excluded_domains", cfg.ExcludedDomains)

	// Neo4j
	client, err := neo4jdb.New(cfg.Neo4j, log)
	if err != nil {
		log.Error("neo4j init failed", "error", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer client.Close(ctx)

	sink := graph.NewVocabStore(client, log, cfg.BatchSize, cfg.FlushWorkers)

	if err := pipeline.Run(ctx, cfg, log, sink); err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}
}
