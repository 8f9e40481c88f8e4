package fixture

import (
	"testing"

	"academy-core/internal/model"
)

func TestCatalogShape(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 6 {
		t.Fatalf("expected 6 canned courses, got %d", len(catalog))
	}

	online := 0
	seen := make(map[string]bool)
	for _, d := range catalog {
		if seen[d.ID] {
			t.Errorf("duplicate course id %q", d.ID)
		}
		seen[d.ID] = true
		if !d.Status.Valid() {
			t.Errorf("course %q has invalid status %q", d.ID, d.Status)
		}
		if d.Status == model.StatusOnline {
			online++
		}
		if d.DiscountedPrice > d.OriginalPrice {
			t.Errorf("course %q discounted above original price", d.ID)
		}
		if len(d.SyllabusPhases) == 0 {
			t.Errorf("course %q has no syllabus phases", d.ID)
		}
		for _, p := range d.SyllabusPhases {
			if len(p.Weeks) == 0 {
				t.Errorf("course %q phase %q has no weeks", d.ID, p.Title)
			}
		}
	}
	if online != 2 {
		t.Fatalf("expected exactly 2 Online courses, got %d", online)
	}
}

func TestCatalogNewestFirst(t *testing.T) {
	catalog := Catalog()
	for i := 1; i < len(catalog); i++ {
		if catalog[i].CreatedAt.After(catalog[i-1].CreatedAt) {
			t.Fatalf("catalog not ordered newest first at index %d", i)
		}
	}
}

func TestByID(t *testing.T) {
	d := ByID("fullstack-web-development")
	if d == nil {
		t.Fatal("expected a record for a known id")
	}
	if d.Name != "Full Stack Web Development" {
		t.Fatalf("unexpected record: %+v", d.Course)
	}
	if ByID("missing-id") != nil {
		t.Fatal("expected nil for an unknown id")
	}
}

func TestSummariesMatchCatalog(t *testing.T) {
	catalog := Catalog()
	summaries := Summaries()
	if len(summaries) != len(catalog) {
		t.Fatalf("expected %d summaries, got %d", len(catalog), len(summaries))
	}
	for i := range summaries {
		if summaries[i] != catalog[i].Course {
			t.Fatalf("summary %d does not match its detail record", i)
		}
	}
}
