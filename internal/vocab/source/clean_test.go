package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanFileRepairsQuoting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.csv")
	dst := filepath.Join(dir, "out.csv")

	in := "concept_id\tconcept_name\n" +
		"1\t\"quoted value\"\n" +
		"2\tsays \"hi\" there\n"
	if err := os.WriteFile(src, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := CleanFile(src, dst, nil)
	if err != nil {
		t.Fatalf("CleanFile: %v", err)
	}
	if stats.Lines != 3 {
		t.Fatalf("expected 3 lines, got %d", stats.Lines)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if lines[1] != "1\tquoted value" {
		t.Fatalf("wrapping quotes not stripped: %q", lines[1])
	}
	if lines[2] != `2	says \"hi\" there` {
		t.Fatalf("interior quotes not escaped: %q", lines[2])
	}
}

func TestCleanFileReplacesInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.csv")
	dst := filepath.Join(dir, "out.csv")

	if err := os.WriteFile(src, []byte("a\tb\xff\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CleanFile(src, dst, nil); err != nil {
		t.Fatalf("CleanFile: %v", err)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "\xff") {
		t.Fatalf("invalid byte survived: %q", out)
	}
	if !strings.Contains(string(out), "�") {
		t.Fatalf("expected replacement rune in %q", out)
	}
}

func TestCleanFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := CleanFile(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.csv"), nil); err == nil {
		t.Fatal("expected error for missing input")
	}
}
