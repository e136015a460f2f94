package catalog

import (
	"testing"

	"github.com/szymonw/studylog/internal/config"
)

func TestBuiltinCatalog(t *testing.T) {
	c := Load(config.Defaults())

	subjects := c.Subjects()
	if len(subjects) == 0 {
		t.Fatal("expected built-in subjects")
	}
	if subjects[0].Name != "Matematyka" {
		t.Errorf("first subject = %q, want Matematyka", subjects[0].Name)
	}

	cats := c.CategoriesFor("Matematyka")
	if len(cats) == 0 {
		t.Fatal("expected categories for Matematyka")
	}
	for _, cat := range cats {
		if cat.Subject != "Matematyka" {
			t.Errorf("category %q belongs to %q", cat.Name, cat.Subject)
		}
	}

	if got := c.CategoriesFor("Astronomia"); len(got) != 0 {
		t.Errorf("unknown subject returned categories: %v", got)
	}
}

func TestSubjectLookup(t *testing.T) {
	c := Load(config.Defaults())

	s, ok := c.Subject("Fizyka")
	if !ok {
		t.Fatal("Fizyka not found")
	}
	if s.Color == "" || s.Icon == "" {
		t.Errorf("subject missing presentation fields: %+v", s)
	}

	if _, ok := c.Subject("Chemia"); ok {
		t.Error("expected Chemia to be absent from built-ins")
	}
}

func TestConfigOverridesBuiltins(t *testing.T) {
	cfg := config.Defaults()
	cfg.Subjects = []config.SubjectConfig{
		{Name: "Chemia", Color: "#FFFFFF", Icon: "⚗", Active: true},
		{Name: "Biologia", Color: "#000000", Icon: "🧬", Active: false},
	}
	cfg.Categories = []config.CategoryConfig{
		{Name: "Stechiometria", Subject: "Chemia", Difficulty: "hard", Active: true},
	}

	c := Load(cfg)

	subjects := c.Subjects()
	if len(subjects) != 1 || subjects[0].Name != "Chemia" {
		t.Errorf("subjects = %+v, want only active Chemia", subjects)
	}
	if _, ok := c.Subject("Matematyka"); ok {
		t.Error("built-in subject leaked past a config override")
	}

	cats := c.CategoriesFor("Chemia")
	if len(cats) != 1 || cats[0].Name != "Stechiometria" {
		t.Errorf("categories = %+v", cats)
	}
}
