package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Dreadpool/TacticalGearForge/internal/config"
	"github.com/Dreadpool/TacticalGearForge/internal/httpserver"
	cartrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/cart"
	catalogrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/catalog"
	"github.com/Dreadpool/TacticalGearForge/internal/seed"
	cartsvc "github.com/Dreadpool/TacticalGearForge/internal/service/cart"
	catalogsvc "github.com/Dreadpool/TacticalGearForge/internal/service/catalog"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	catalogRepo := catalogrepo.NewMemory()
	count := seed.Apply(catalogRepo)
	logger.Printf("seeded catalog with %d products", count)

	cartRepo := cartrepo.NewMemory()
	catalogService := catalogsvc.New(catalogRepo)
	cartService := cartsvc.New(cartRepo, catalogRepo)

	srv, err := httpserver.New(cfg, logger, httpserver.Deps{
		CatalogSvc: catalogService,
		CartSvc:    cartService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
