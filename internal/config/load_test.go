package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithSourceDirFromEnv(t *testing.T) {
	t.Setenv("VOCABGRAPH_CONFIG", "")
	t.Setenv("VOCABGRAPH_SOURCE_DIR", "/data/vocab")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceDir != "/data/vocab" {
		t.Fatalf("unexpected source dir %q", cfg.SourceDir)
	}
	if cfg.BatchSize != 1000 {
		t.Fatalf("unexpected default batch size %d", cfg.BatchSize)
	}
	if len(cfg.ExcludedDomains) != 1 || cfg.ExcludedDomains[0] != "Geography" {
		t.Fatalf("unexpected default excluded domains %v", cfg.ExcludedDomains)
	}
	if vocabs := cfg.NameOverrides["Chinese"]; len(vocabs) != 2 {
		t.Fatalf("unexpected default overrides %v", cfg.NameOverrides)
	}
}

func TestLoadMissingSourceDirFails(t *testing.T) {
	t.Setenv("VOCABGRAPH_CONFIG", "")
	t.Setenv("VOCABGRAPH_SOURCE_DIR", "")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error without source_dir")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	body := `
source_dir: /srv/vocab
batch_size: 250
flush_workers: 4
excluded_domains: [Geography, Metadata]
files:
  workbook: codes.xlsx
sheets:
  - name: ICD-10-CM
    vocabulary: ICD10CM
    code_marker: CM
    name_marker: "中文"
    language: Chinese
neo4j:
  uri: bolt://graph:7687
  user: importer
`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOCABGRAPH_CONFIG", p)
	t.Setenv("VOCABGRAPH_SOURCE_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceDir != "/srv/vocab" || cfg.BatchSize != 250 || cfg.FlushWorkers != 4 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if len(cfg.ExcludedDomains) != 2 {
		t.Fatalf("unexpected excluded domains %v", cfg.ExcludedDomains)
	}
	if cfg.Files.Workbook != "codes.xlsx" {
		t.Fatalf("unexpected workbook %q", cfg.Files.Workbook)
	}
	if cfg.Neo4j.URI != "bolt://graph:7687" || cfg.Neo4j.User != "importer" {
		t.Fatalf("neo4j section not applied: %+v", cfg.Neo4j)
	}
	if cfg.Path("CONCEPT_cleaned.csv") != filepath.Join("/srv/vocab", "CONCEPT_cleaned.csv") {
		t.Fatalf("unexpected path %q", cfg.Path("CONCEPT_cleaned.csv"))
	}
}

func TestValidateSheetRequirements(t *testing.T) {
	cfg := defaultConfig()
	cfg.SourceDir = "/srv/vocab"
	cfg.Sheets = []SheetConfig{{Name: "ICD-10-CM"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for incomplete sheet config")
	}
}
