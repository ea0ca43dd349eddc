package cartclient

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	cartsvc "github.com/Dreadpool/TacticalGearForge/internal/service/cart"
)

// Notifier receives user-visible cart notifications. The adapter emits one
// per completed or failed mutation; it never retries on its own.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string)

func (f NotifierFunc) Notify(title, message string) { f(title, message) }

// Adapter presents a single consistent view of the cart. Mutations are
// applied optimistically to the local cache, sent to the server, and
// reconciled by replacing local state with the server's authoritative
// list. On failure the cache keeps its optimistic state and the failure
// surfaces through the Notifier. Reads prefer the last server list and
// fall back to the cache before the first successful sync.
type Adapter struct {
	client   *Client
	cache    *Cache
	notifier Notifier

	mu     sync.Mutex
	server []domain.CartItemWithProduct
	synced bool
}

func NewAdapter(client *Client, cache *Cache, notifier Notifier) *Adapter {
	if notifier == nil {
		notifier = NotifierFunc(func(string, string) {})
	}
	return &Adapter{client: client, cache: cache, notifier: notifier}
}

// Items returns the current cart view: the last reconciled server list, or
// the persisted cache while no server response has arrived yet.
func (a *Adapter) Items() []domain.CartItemWithProduct {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.synced {
		out := make([]domain.CartItemWithProduct, len(a.server))
		copy(out, a.server)
		return out
	}
	items, err := a.cache.Items()
	if err != nil {
		return []domain.CartItemWithProduct{}
	}
	return items
}

// Refresh fetches the authoritative cart and reconciles the cache with it.
func (a *Adapter) Refresh(ctx context.Context) error {
	items, err := a.client.FetchCart(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.CartItemWithProduct{}
	}
	a.mu.Lock()
	a.server = items
	a.synced = true
	a.mu.Unlock()
	return a.cache.SetItems(items)
}

// AddItem adds quantity of the given product. The product record comes
// from the caller (the catalog page already has it) so the optimistic
// cache entry carries price and name before the server assigns a line id.
func (a *Adapter) AddItem(ctx context.Context, product domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	optimistic := domain.CartItemWithProduct{
		CartItem: domain.CartItem{ProductID: product.ID, Quantity: quantity},
		Product:  product,
	}
	if err := a.cache.AddItem(optimistic); err == nil {
		a.invalidate()
	}

	if _, err := a.client.Add(ctx, product.ID, quantity); err != nil {
		a.notifier.Notify("Operation Failed", "Failed to add item to cart. Please try again.")
		return err
	}
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	a.notifier.Notify("Added to Cart", "Item has been added to your tactical loadout.")
	return nil
}

// UpdateItem changes a line's quantity.
func (a *Adapter) UpdateItem(ctx context.Context, id, quantity int) error {
	if err := a.cache.UpdateItem(id, quantity); err == nil {
		a.invalidate()
	}
	if _, err := a.client.UpdateQuantity(ctx, id, quantity); err != nil {
		a.notifier.Notify("Operation Failed", "Failed to update cart item. Please try again.")
		return err
	}
	return a.Refresh(ctx)
}

// RemoveItem deletes a line.
func (a *Adapter) RemoveItem(ctx context.Context, id int) error {
	if err := a.cache.RemoveItem(id); err == nil {
		a.invalidate()
	}
	if err := a.client.Remove(ctx, id); err != nil {
		a.notifier.Notify("Operation Failed", "Failed to remove cart item. Please try again.")
		return err
	}
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	a.notifier.Notify("Item Removed", "Item has been removed from your tactical loadout.")
	return nil
}

// Clear empties the whole cart.
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.client.Clear(ctx); err != nil {
		a.notifier.Notify("Operation Failed", "Failed to clear cart. Please try again.")
		return err
	}
	if err := a.cache.Clear(); err != nil {
		return err
	}
	if err := a.Refresh(ctx); err != nil {
		return err
	}
	a.notifier.Notify("Cart Cleared", "All items have been removed from your tactical loadout.")
	return nil
}

// Totals returns the aggregate item count and decimal-exact total price of
// the current cart view.
func (a *Adapter) Totals() (int, decimal.Decimal, error) {
	return cartsvc.Totals(a.Items())
}

// invalidate marks the in-memory server list stale so reads fall back to
// the optimistically updated cache until the next reconciliation.
func (a *Adapter) invalidate() {
	a.mu.Lock()
	a.synced = false
	a.mu.Unlock()
}
