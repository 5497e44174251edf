package domain

import "testing"

func TestIDSetOps(t *testing.T) {
	s := NewIDSet(1, 2, 3)
	if !s.Has(2) || s.Has(9) {
		t.Fatalf("membership wrong: %v", s)
	}

	s.Subtract(NewIDSet(2, 9))
	if s.Has(2) || len(s) != 2 {
		t.Fatalf("subtract wrong: %v", s)
	}

	c := s.Clone()
	c.Add(7)
	if s.Has(7) {
		t.Fatal("clone aliases the original")
	}

	s.AddAll(c)
	if !s.Has(7) || len(s) != 3 {
		t.Fatalf("addall wrong: %v", s)
	}
}

func TestLanguageMapIDByName(t *testing.T) {
	m := LanguageMap{1: "Chinese", 2: "German"}
	if id, ok := m.IDByName("German"); !ok || id != 2 {
		t.Fatalf("got %d %v", id, ok)
	}
	if _, ok := m.IDByName("Korean"); ok {
		t.Fatal("expected miss for Korean")
	}
}
