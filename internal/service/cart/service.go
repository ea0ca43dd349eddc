package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	cartrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/cart"
)

type Service struct {
	repo    cartRepo
	catalog productResolver
}

type cartRepo interface {
	Add(in cartrepo.AddInput) domain.CartItem
	UpdateQuantity(id, quantity int) (*domain.CartItem, error)
	Remove(id int) bool
	Clear(userID *int)
	List(userID *int) []domain.CartItem
}

type productResolver interface {
	GetByID(id int) (*domain.Product, error)
}

func New(repo cartrepo.Repository, catalog productResolver) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddInput is a requested cart addition. A nil Quantity defaults to 1.
type AddInput struct {
	ProductID int  `json:"productId"`
	Quantity  *int `json:"quantity,omitempty"`
	UserID    *int `json:"userId,omitempty"`
}

// Add merges the requested quantity into an existing line for the same
// (userId, productId) pair, or creates a new line. The product id is not
// resolved against the catalog at write time; dangling lines are dropped
// by List instead.
func (s *Service) Add(in AddInput) (*domain.CartItem, error) {
	if in.ProductID <= 0 {
		return nil, errors.New("productId required")
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 1 {
		return nil, errors.New("quantity must be positive")
	}
	item := s.repo.Add(cartrepo.AddInput{
		ProductID: in.ProductID,
		Quantity:  quantity,
		UserID:    in.UserID,
	})
	return &item, nil
}

// UpdateQuantity overwrites a line's quantity. Returns domain.ErrNotFound
// when the line does not exist.
func (s *Service) UpdateQuantity(id, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be positive")
	}
	return s.repo.UpdateQuantity(id, quantity)
}

// Remove deletes a line. A false return means the line was not present;
// removing an already-removed line is not an error.
func (s *Service) Remove(id int) bool {
	return s.repo.Remove(id)
}

// Clear deletes the given user's lines, or every line when userID is nil.
func (s *Service) Clear(userID *int) {
	s.repo.Clear(userID)
}

// List joins each stored line with its catalog product. Lines whose
// product no longer resolves are silently excluded.
func (s *Service) List(userID *int) []domain.CartItemWithProduct {
	items := s.repo.List(userID)
	result := make([]domain.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		product, err := s.catalog.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		result = append(result, domain.CartItemWithProduct{CartItem: item, Product: *product})
	}
	return result
}

// Totals computes the aggregate item count and the decimal-exact total
// price over an already-joined cart view.
func Totals(items []domain.CartItemWithProduct) (int, decimal.Decimal, error) {
	count := 0
	total := decimal.Zero
	for _, item := range items {
		price, err := decimal.NewFromString(item.Product.Price)
		if err != nil {
			return 0, decimal.Zero, fmt.Errorf("parse price of product %d: %w", item.Product.ID, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return count, total, nil
}
