package cartclient

import (
	"path/filepath"
	"testing"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

func openTestCache(t *testing.T) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tactical-cart.db")
	cache, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache, path
}

func sampleItem(id, productID, quantity int) domain.CartItemWithProduct {
	return domain.CartItemWithProduct{
		CartItem: domain.CartItem{ID: id, ProductID: productID, Quantity: quantity},
		Product:  domain.Product{ID: productID, Name: "Sight", Price: "9.99"},
	}
}

func TestCacheEmptyByDefault(t *testing.T) {
	cache, _ := openTestCache(t)
	items, err := cache.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cache, got %+v", items)
	}
}

func TestCacheAddMergesOnProduct(t *testing.T) {
	cache, _ := openTestCache(t)

	if err := cache.AddItem(sampleItem(1, 3, 2)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := cache.AddItem(sampleItem(0, 3, 3)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items, err := cache.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("expected one merged line with quantity 5, got %+v", items)
	}
}

func TestCacheUpdateAndRemove(t *testing.T) {
	cache, _ := openTestCache(t)
	cache.AddItem(sampleItem(1, 3, 2))
	cache.AddItem(sampleItem(2, 4, 1))

	if err := cache.UpdateItem(1, 7); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	items, _ := cache.Items()
	if items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %+v", items[0])
	}

	if err := cache.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	items, _ = cache.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("expected only line 2 left, got %+v", items)
	}
}

func TestCachePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tactical-cart.db")
	cache, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if err := cache.SetItems([]domain.CartItemWithProduct{sampleItem(1, 3, 2)}); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenCache(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	items, err := reopened.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 3 || items[0].Quantity != 2 {
		t.Fatalf("cache did not survive reopen: %+v", items)
	}
}
