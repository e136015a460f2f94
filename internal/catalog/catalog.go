// Package catalog holds the subjects and task categories available in
// the session form. The built-in set targets Matura prep; a config file
// can replace it entirely.
package catalog

import "github.com/szymonw/studylog/internal/config"

// Subject is one selectable study subject.
type Subject struct {
	Name   string
	Color  string
	Icon   string
	Active bool
}

// Category is a task category scoped to a subject.
type Category struct {
	Name       string
	Subject    string
	Difficulty string
	Active     bool
}

// Catalog is the resolved set of subjects and categories.
type Catalog struct {
	subjects   []Subject
	categories []Category
}

func defaultSubjects() []Subject {
	return []Subject{
		{Name: "Matematyka", Color: "#10B981", Icon: "∑", Active: true},
		{Name: "Język polski", Color: "#F59E0B", Icon: "✎", Active: true},
		{Name: "Język angielski", Color: "#3B82F6", Icon: "Aa", Active: true},
		{Name: "Fizyka", Color: "#8B5CF6", Icon: "⚛", Active: true},
		{Name: "Informatyka", Color: "#EC4899", Icon: "⌘", Active: true},
	}
}

func defaultCategories() []Category {
	return []Category{
		{Name: "Równania i nierówności", Subject: "Matematyka", Difficulty: "medium", Active: true},
		{Name: "Funkcje", Subject: "Matematyka", Difficulty: "medium", Active: true},
		{Name: "Geometria", Subject: "Matematyka", Difficulty: "hard", Active: true},
		{Name: "Ciągi", Subject: "Matematyka", Difficulty: "medium", Active: true},
		{Name: "Stereometria", Subject: "Matematyka", Difficulty: "hard", Active: true},
		{Name: "Lektury", Subject: "Język polski", Difficulty: "medium", Active: true},
		{Name: "Wypracowanie", Subject: "Język polski", Difficulty: "hard", Active: true},
		{Name: "Gramatyka", Subject: "Język angielski", Difficulty: "easy", Active: true},
		{Name: "Rozumienie tekstu", Subject: "Język angielski", Difficulty: "medium", Active: true},
		{Name: "Kinematyka", Subject: "Fizyka", Difficulty: "medium", Active: true},
		{Name: "Elektryczność", Subject: "Fizyka", Difficulty: "hard", Active: true},
		{Name: "Algorytmy", Subject: "Informatyka", Difficulty: "hard", Active: true},
		{Name: "Bazy danych", Subject: "Informatyka", Difficulty: "medium", Active: true},
	}
}

// Load resolves the catalog from cfg, falling back to the built-in set
// for whichever of subjects and categories the config leaves empty.
func Load(cfg config.Config) *Catalog {
	c := &Catalog{
		subjects:   defaultSubjects(),
		categories: defaultCategories(),
	}
	if len(cfg.Subjects) > 0 {
		c.subjects = c.subjects[:0]
		for _, s := range cfg.Subjects {
			c.subjects = append(c.subjects, Subject(s))
		}
	}
	if len(cfg.Categories) > 0 {
		c.categories = c.categories[:0]
		for _, cat := range cfg.Categories {
			c.categories = append(c.categories, Category(cat))
		}
	}
	return c
}

// Subjects returns the active subjects in declaration order.
func (c *Catalog) Subjects() []Subject {
	var out []Subject
	for _, s := range c.subjects {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Subject looks up an active subject by name.
func (c *Catalog) Subject(name string) (Subject, bool) {
	for _, s := range c.subjects {
		if s.Active && s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// CategoriesFor returns the active categories belonging to subject.
func (c *Catalog) CategoriesFor(subject string) []Category {
	var out []Category
	for _, cat := range c.categories {
		if cat.Active && cat.Subject == subject {
			out = append(out, cat)
		}
	}
	return out
}
