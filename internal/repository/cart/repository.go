package cart

import (
	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

// AddInput describes a requested cart addition. Quantity must already be
// validated (>= 1) by the caller; the store trusts its input. A nil UserID
// targets the single shared anonymous cart.
type AddInput struct {
	ProductID int
	Quantity  int
	UserID    *int
}

// Repository owns cart line items. Lines are keyed by a sequential id
// assigned at creation; at most one line exists per (userId, productId)
// pair. The store does not resolve product ids against the catalog, so a
// dangling reference is tolerated here and filtered out at read time by
// the service join.
type Repository interface {
	Add(in AddInput) domain.CartItem
	UpdateQuantity(id, quantity int) (*domain.CartItem, error)
	Remove(id int) bool
	Clear(userID *int)
	List(userID *int) []domain.CartItem
}
