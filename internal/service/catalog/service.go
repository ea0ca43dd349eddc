package catalog

import (
	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	catalogrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/catalog"
)

type Service struct {
	repo catalogrepo.Repository
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product, or only the products in the given category
// when one is supplied. Category matching is exact and case-sensitive.
func (s *Service) List(category string) []domain.Product {
	if category != "" {
		return s.repo.ListByCategory(category)
	}
	return s.repo.List()
}

func (s *Service) Get(id int) (*domain.Product, error) {
	return s.repo.GetByID(id)
}

// Ready reports whether the catalog has been seeded.
func (s *Service) Ready() bool {
	return s.repo.Count() > 0
}
