package cartclient

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/Dreadpool/TacticalGearForge/internal/config"
	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	"github.com/Dreadpool/TacticalGearForge/internal/httpserver"
	cartrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/cart"
	catalogrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/catalog"
	cartsvc "github.com/Dreadpool/TacticalGearForge/internal/service/cart"
	catalogsvc "github.com/Dreadpool/TacticalGearForge/internal/service/catalog"
)

type recordingNotifier struct {
	titles []string
}

func (r *recordingNotifier) Notify(title, _ string) {
	r.titles = append(r.titles, title)
}

func (r *recordingNotifier) last() string {
	if len(r.titles) == 0 {
		return ""
	}
	return r.titles[len(r.titles)-1]
}

func newTestServer(t *testing.T) (*httptest.Server, []domain.Product) {
	t.Helper()

	catalogRepo := catalogrepo.NewMemory()
	sight := catalogRepo.Create(domain.Product{Name: "Sight", Category: "OPTICS", Price: "9.99", InStock: true})
	belt := catalogRepo.Create(domain.Product{Name: "Belt", Category: "LOAD_BEARING", Price: "20.00", InStock: true})

	cartRepo := cartrepo.NewMemory()
	srv, err := httpserver.New(config.Config{HTTPAddr: ":0"}, log.New(io.Discard, "", 0), httpserver.Deps{
		CatalogSvc: catalogsvc.New(catalogRepo),
		CartSvc:    cartsvc.New(cartRepo, catalogRepo),
	})
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, []domain.Product{sight, belt}
}

func TestAdapterAddReconcilesWithServer(t *testing.T) {
	ts, products := newTestServer(t)
	cache, _ := openTestCache(t)
	notifier := &recordingNotifier{}
	adapter := NewAdapter(NewClient(ts.URL), cache, notifier)

	ctx := context.Background()
	if err := adapter.AddItem(ctx, products[0], 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := adapter.AddItem(ctx, products[1], 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items := adapter.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %+v", items)
	}
	// Server-assigned line ids, not the optimistic zero values.
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("expected reconciled server ids, got %+v", items)
	}
	if notifier.last() != "Added to Cart" {
		t.Fatalf("expected success notification, got %v", notifier.titles)
	}

	// The cache holds the reconciled list too.
	cached, err := cache.Items()
	if err != nil {
		t.Fatalf("cache.Items: %v", err)
	}
	if len(cached) != 2 || cached[0].ID != 1 {
		t.Fatalf("cache not reconciled: %+v", cached)
	}

	count, total, err := adapter.Totals()
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if count != 4 || total.String() != "49.97" {
		t.Fatalf("expected 4 items totalling 49.97, got %d / %s", count, total.String())
	}
}

func TestAdapterAddMergesOnServer(t *testing.T) {
	ts, products := newTestServer(t)
	cache, _ := openTestCache(t)
	adapter := NewAdapter(NewClient(ts.URL), cache, nil)

	ctx := context.Background()
	if err := adapter.AddItem(ctx, products[0], 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := adapter.AddItem(ctx, products[0], 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items := adapter.Items()
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("expected one merged line with quantity 5, got %+v", items)
	}
}

func TestAdapterUpdateAndRemove(t *testing.T) {
	ts, products := newTestServer(t)
	cache, _ := openTestCache(t)
	adapter := NewAdapter(NewClient(ts.URL), cache, nil)

	ctx := context.Background()
	if err := adapter.AddItem(ctx, products[0], 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	id := adapter.Items()[0].ID

	if err := adapter.UpdateItem(ctx, id, 4); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if got := adapter.Items()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}

	if err := adapter.RemoveItem(ctx, id); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if items := adapter.Items(); len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestAdapterClear(t *testing.T) {
	ts, products := newTestServer(t)
	cache, _ := openTestCache(t)
	adapter := NewAdapter(NewClient(ts.URL), cache, nil)

	ctx := context.Background()
	adapter.AddItem(ctx, products[0], 1)
	adapter.AddItem(ctx, products[1], 1)

	if err := adapter.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if items := adapter.Items(); len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
	cached, _ := cache.Items()
	if len(cached) != 0 {
		t.Fatalf("expected empty cache, got %+v", cached)
	}
}

func TestAdapterFailureKeepsCacheAndNotifies(t *testing.T) {
	ts, products := newTestServer(t)
	url := ts.URL
	ts.Close() // server goes away before the mutation

	cache, _ := openTestCache(t)
	notifier := &recordingNotifier{}
	adapter := NewAdapter(NewClient(url), cache, notifier)

	err := adapter.AddItem(context.Background(), products[0], 2)
	if err == nil {
		t.Fatalf("expected error against dead server")
	}
	if notifier.last() != "Operation Failed" {
		t.Fatalf("expected failure notification, got %v", notifier.titles)
	}

	// The optimistic local state survives the failure and keeps serving
	// reads; no reconciliation happened.
	items := adapter.Items()
	if len(items) != 1 || items[0].ProductID != products[0].ID || items[0].Quantity != 2 {
		t.Fatalf("expected optimistic cached line, got %+v", items)
	}
}

func TestAdapterFallsBackToCacheBeforeFirstSync(t *testing.T) {
	cache, _ := openTestCache(t)
	if err := cache.SetItems([]domain.CartItemWithProduct{sampleItem(1, 3, 2)}); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	adapter := NewAdapter(NewClient("http://127.0.0.1:1"), cache, nil)

	items := adapter.Items()
	if len(items) != 1 || items[0].ProductID != 3 {
		t.Fatalf("expected cached fallback, got %+v", items)
	}
}
