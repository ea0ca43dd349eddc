package catalog

import (
	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

// Repository provides access to the product catalog. The catalog is
// populated by the seed step at process start and is read-only afterwards;
// Create exists for seeding and is never exposed over HTTP.
type Repository interface {
	List() []domain.Product
	GetByID(id int) (*domain.Product, error)
	ListByCategory(category string) []domain.Product
	Create(p domain.Product) domain.Product
	Count() int
}
