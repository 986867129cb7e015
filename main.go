package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Afzal-gif888/campus-cafe-mate/auth"
	"github.com/Afzal-gif888/campus-cafe-mate/config"
	"github.com/Afzal-gif888/campus-cafe-mate/middlewares"
	"github.com/Afzal-gif888/campus-cafe-mate/router"
	"github.com/Afzal-gif888/campus-cafe-mate/stores"
	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	store, err := config.InitStorage(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open storage: %v", err)
	}

	catalog := stores.NewCatalog(store)
	orders := stores.NewOrders(store)

	// First access seeds the default menu.
	items, err := catalog.ListAll()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load catalog: %v", err)
	}
	utils.InfoLogger.Printf("Catalog ready with %d items (driver=%s)", len(items), cfg.StorageDriver)

	verifier, err := auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up credential verifier: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(catalog, orders, verifier)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
