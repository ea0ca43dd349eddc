package cartclient

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
)

// The cache mirrors the storefront's persisted browser store: one fixed
// bucket, one key, the whole cart list as a JSON blob.
const (
	cacheBucket = "tactical-cart"
	itemsKey    = "items"
)

// Cache is the locally persisted cart mirror. It survives process
// restarts and serves reads while the server is unreachable. It is never
// authoritative: reconciliation overwrites it with server state.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens (or creates) the cache file at path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cart cache: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cacheBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cart cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Items returns the cached cart list. An absent key yields an empty list.
func (c *Cache) Items() ([]domain.CartItemWithProduct, error) {
	var items []domain.CartItemWithProduct
	err := c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(cacheBucket)).Get([]byte(itemsKey))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &items)
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItemWithProduct{}
	}
	return items, nil
}

// SetItems replaces the cached list wholesale. This is the reconciliation
// path: the server list wins.
func (c *Cache) SetItems(items []domain.CartItemWithProduct) error {
	if items == nil {
		items = []domain.CartItemWithProduct{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(cacheBucket)).Put([]byte(itemsKey), raw)
	})
}

// AddItem optimistically merges an item into the cached list, using the
// same rule as the server store: an existing line for the same product
// gains quantity, otherwise the item is appended.
func (c *Cache) AddItem(item domain.CartItemWithProduct) error {
	items, err := c.Items()
	if err != nil {
		return err
	}
	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return c.SetItems(items)
}

// UpdateItem overwrites the quantity of the cached line with the given id.
// Unknown ids are ignored; the next reconciliation sorts it out.
func (c *Cache) UpdateItem(id, quantity int) error {
	items, err := c.Items()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	return c.SetItems(items)
}

// RemoveItem drops the cached line with the given id.
func (c *Cache) RemoveItem(id int) error {
	items, err := c.Items()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return c.SetItems(kept)
}

// Clear empties the cached list.
func (c *Cache) Clear() error {
	return c.SetItems(nil)
}
