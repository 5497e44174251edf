package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/vocabgraph/internal/platform/envutil"
)

func defaultConfig() *Config {
	return &Config{
		Env:       "development",
		SourceDir: "",
		Files: FilesConfig{
			Concept:      "CONCEPT_cleaned.csv",
			Synonym:      "CONCEPT_SYNONYM_cleaned.csv",
			Relationship: "CONCEPT_RELATIONSHIP_cleaned.csv",
			Language:     "language_id.csv",
			Workbook:     "",
		},
		ExcludedDomains: []string{"Geography"},
		NameOverrides: map[string][]string{
			"Chinese": {"ICD10CM", "ICD10PCS"},
		},
		Sheets: []SheetConfig{
			{Name: "ICD-10-CM", Vocabulary: "ICD10CM", CodeMarker: "CM", NameMarker: "中文", Language: "Chinese"},
			{Name: "ICD-10-PCS", Vocabulary: "ICD10PCS", CodeMarker: "PCS", NameMarker: "中文", Language: "Chinese"},
		},
		BatchSize:    1000,
		FlushWorkers: 1,
	}
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("VOCABGRAPH_CONFIG"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}

	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgPath, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", cfgPath, err)
		}
	}

	if v := envutil.String("VOCABGRAPH_SOURCE_DIR", ""); v != "" {
		cfg.SourceDir = v
	}
	if v := envutil.Int("VOCABGRAPH_BATCH_SIZE", 0); v > 0 {
		cfg.BatchSize = v
	}
	if v := envutil.Int("VOCABGRAPH_FLUSH_WORKERS", 0); v > 0 {
		cfg.FlushWorkers = v
	}
	cfg.Neo4j.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceDir) == "" {
		return fmt.Errorf("config: source_dir is required")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("config: batch_size must be positive")
	}
	if c.FlushWorkers <= 0 {
		c.FlushWorkers = 1
	}
	for i, s := range c.Sheets {
		if s.Name == "" || s.Vocabulary == "" {
			return fmt.Errorf("config: sheets[%d]: name and vocabulary are required", i)
		}
		if s.CodeMarker == "" || s.NameMarker == "" {
			return fmt.Errorf("config: sheets[%d]: code_marker and name_marker are required", i)
		}
		if s.Language == "" {
			return fmt.Errorf("config: sheets[%d]: language is required", i)
		}
	}
	return nil
}

// Path resolves a file name against the configured source directory.
func (c *Config) Path(name string) string {
	return filepath.Join(c.SourceDir, name)
}
