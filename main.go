package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/a12frin-shagufta/vanshika-pearl/cart"
	"github.com/a12frin-shagufta/vanshika-pearl/catalog"
	"github.com/a12frin-shagufta/vanshika-pearl/checkout"
	catalogControllers "github.com/a12frin-shagufta/vanshika-pearl/controllers/catalog"
	"github.com/a12frin-shagufta/vanshika-pearl/localstore"
	"github.com/a12frin-shagufta/vanshika-pearl/routes"
)

const initialLoadTimeout = 30 * time.Second

func main() {
	log.Println("✅ Starting storefront...")

	// Load environment variables
	_ = godotenv.Load()

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		log.Fatalf("❌ BACKEND_URL is required")
	}

	// Local slot store (persists the guest cart across restarts)
	store := initLocalStore()
	cartStore := cart.NewStore(store)
	if n := cartStore.GetCartCount(); n > 0 {
		log.Printf("✅ Restored cart with %d item(s)", n)
	}

	// Catalog: fetch + annotate once at startup; an unreachable backend
	// degrades to an empty (loading) catalog instead of refusing to start.
	client := catalog.NewClient(backendURL)
	catalogStore := catalog.NewStore()

	ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
	if err := catalogStore.Load(ctx, client); err != nil {
		log.Printf("❌ Initial catalog load failed: %v (serving empty catalog)", err)
	} else {
		log.Printf("✅ Catalog loaded: %d product(s)", len(catalogStore.Products()))
	}
	cancel()

	refreshHub := catalogControllers.NewRefreshHub()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Cart:     cartStore,
		Catalog:  catalogStore,
		Checkout: checkout.NewService(backendURL),
		Refresh:  refreshHub,
	})

	// Re-annotate the catalog periodically so expiring offers fall away
	go startCatalogRefresh(catalogStore, client, refreshHub, refreshInterval())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Storefront running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initLocalStore opens the embedded slot database holding persisted carts.
func initLocalStore() *localstore.Store {
	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		path = "storefront.db"
	}
	store, err := localstore.Open(path)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	return store
}

func refreshInterval() time.Duration {
	minutes := 15
	if v := os.Getenv("CATALOG_REFRESH_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			minutes = m
		}
	}
	return time.Duration(minutes) * time.Minute
}

// startCatalogRefresh reloads the catalog on a fixed interval and notifies
// connected clients after every successful refresh.
func startCatalogRefresh(store *catalog.Store, client *catalog.Client, hub *catalogControllers.RefreshHub, interval time.Duration) {
	for {
		log.Printf("⏳ Next catalog refresh in %s", interval)
		time.Sleep(interval)

		ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
		err := store.Load(ctx, client)
		cancel()

		if err != nil {
			log.Printf("❌ Catalog refresh failed: %v", err)
			continue
		}

		count := len(store.Products())
		log.Printf("✅ Catalog refreshed: %d product(s)", count)
		hub.BroadcastRefresh(count)
	}
}
