package cart

import (
	"sync"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	byID   map[int]domain.CartItem
	order  []int
	nextID int
}

// NewMemory builds an empty in-memory cart store. Line ids are assigned
// sequentially from 1 and are never reused within a process lifetime.
func NewMemory() Repository {
	return &memoryRepo{
		byID:   make(map[int]domain.CartItem),
		nextID: 1,
	}
}

func (r *memoryRepo) Add(in AddInput) domain.CartItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		item := r.byID[id]
		if item.ProductID == in.ProductID && sameUser(item.UserID, in.UserID) {
			item.Quantity += in.Quantity
			r.byID[id] = item
			return item
		}
	}

	item := domain.CartItem{
		ID:        r.nextID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UserID:    in.UserID,
	}
	r.nextID++
	r.byID[item.ID] = item
	r.order = append(r.order, item.ID)
	return item
}

func (r *memoryRepo) UpdateQuantity(id, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item.Quantity = quantity
	r.byID[id] = item
	return &item, nil
}

func (r *memoryRepo) Remove(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *memoryRepo) Clear(userID *int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID == nil {
		r.byID = make(map[int]domain.CartItem)
		r.order = nil
		return
	}

	kept := r.order[:0]
	for _, id := range r.order {
		if sameUser(r.byID[id].UserID, userID) {
			delete(r.byID, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
}

func (r *memoryRepo) List(userID *int) []domain.CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.CartItem, 0, len(r.order))
	for _, id := range r.order {
		item := r.byID[id]
		if userID != nil && !sameUser(item.UserID, userID) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func sameUser(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
