package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirhosin100/AmirShop/cache"
	"github.com/amirhosin100/AmirShop/events"
	"github.com/amirhosin100/AmirShop/models"
	"github.com/amirhosin100/AmirShop/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Marketer{},
		&models.Market{},
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.CartInfo{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Cache backend: Redis in production, in-process map otherwise
	store := initCache()

	// Checkout event publisher (optional)
	var pub *events.Publisher
	if conn := events.Dial(); conn != nil {
		p, err := events.NewPublisher(conn)
		if err != nil {
			log.Printf("⚠️ Failed to set up event publisher: %v", err)
		} else {
			pub = p
		}
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, store, pub)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initCache picks the cache backend. A missing or unreachable Redis is not
// fatal: reads fall back to the in-process cache.
func initCache() cache.Cache {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("⚠️ REDIS_URL not set, using in-process cache")
		return cache.NewMemoryCache()
	}

	store, err := cache.NewRedisCache(url)
	if err != nil {
		log.Printf("⚠️ Invalid REDIS_URL (%v), using in-process cache", err)
		return cache.NewMemoryCache()
	}
	return store
}
