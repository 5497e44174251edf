package config

import (
	"github.com/yungbote/vocabgraph/internal/platform/neo4jdb"
)

// FilesConfig names the source files inside SourceDir. The *_cleaned
// names are what the quote-repair pass produces; pointing these at the
// raw files and setting clean_sources regenerates them on each run.
type FilesConfig struct {
	Concept      string `yaml:"concept"`
	Synonym      string `yaml:"synonym"`
	Relationship string `yaml:"relationship"`
	Language     string `yaml:"language"`
	Workbook     string `yaml:"workbook"`
}

// SheetConfig describes one workbook sheet carrying curated names for a
// single vocabulary. Columns are resolved by substring match on header
// text, not by position, because header wording shifts between dataset
// releases.
type SheetConfig struct {
	Name       string `yaml:"name"`
	Vocabulary string `yaml:"vocabulary"`
	CodeMarker string `yaml:"code_marker"`
	NameMarker string `yaml:"name_marker"`
	// Language is the display name of the language the sheet provides.
	Language string `yaml:"language"`
}

type Config struct {
	Env string `yaml:"env"`

	SourceDir    string      `yaml:"source_dir"`
	Files        FilesConfig `yaml:"files"`
	CleanSources bool        `yaml:"clean_sources"`

	ExcludedDomains []string `yaml:"excluded_domains"`

	// NameOverrides maps a language display name to the vocabularies for
	// which the workbook is authoritative over the synonym table.
	NameOverrides map[string][]string `yaml:"name_overrides"`

	Sheets []SheetConfig `yaml:"sheets"`

	BatchSize    int `yaml:"batch_size"`
	FlushWorkers int `yaml:"flush_workers"`

	Neo4j neo4jdb.Config `yaml:"neo4j"`
}
