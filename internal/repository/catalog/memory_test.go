package catalog

import (
	"errors"
	"testing"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

func seedThree(repo Repository) {
	repo.Create(domain.Product{Name: "Sight", Category: "OPTICS", Price: "849.00"})
	repo.Create(domain.Product{Name: "Belt", Category: "LOAD_BEARING", Price: "189.00"})
	repo.Create(domain.Product{Name: "Scope", Category: "OPTICS", Price: "359.00"})
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemory()
	seedThree(repo)

	products := repo.List()
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, p.ID)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewMemory()
	if _, err := repo.GetByID(99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByCategoryExactMatch(t *testing.T) {
	repo := NewMemory()
	seedThree(repo)

	optics := repo.ListByCategory("OPTICS")
	if len(optics) != 2 {
		t.Fatalf("expected 2 optics, got %+v", optics)
	}
	for _, p := range optics {
		if p.Category != "OPTICS" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}

	// Matching is case-sensitive and unknown categories are a normal,
	// empty result.
	if got := repo.ListByCategory("optics"); len(got) != 0 {
		t.Fatalf("expected no lowercase matches, got %+v", got)
	}
	if got := repo.ListByCategory("NVG"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListStableOrder(t *testing.T) {
	repo := NewMemory()
	seedThree(repo)

	first := repo.List()
	second := repo.List()
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order changed between calls: %+v vs %+v", first, second)
		}
	}
}
