package catalog

import (
	"sync"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	byID   map[int]domain.Product
	order  []int
	nextID int
}

// NewMemory builds an empty in-memory catalog. Ids are assigned
// sequentially from 1 in creation order.
func NewMemory() Repository {
	return &memoryRepo{
		byID:   make(map[int]domain.Product),
		nextID: 1,
	}
}

func (r *memoryRepo) Create(p domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p
}

func (r *memoryRepo) List() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

func (r *memoryRepo) GetByID(id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) ListByCategory(category string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Exact, case-sensitive match. No match is a normal outcome and
	// yields an empty slice, not an error.
	result := make([]domain.Product, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

func (r *memoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
