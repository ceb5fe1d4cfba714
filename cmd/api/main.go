package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/config"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/infrastructure/database"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/interfaces/http/middleware"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/interfaces/http/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg := config.FromEnv()

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		BodyLimit:   10 * 1024 * 1024, // 10MB
		// Fetch das planilhas acontece dentro da requisição; timeout de
		// escrita folgado cobre exportações lentas
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start server
	log.Printf("🚀 Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
