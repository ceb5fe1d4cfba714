package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"github.com/arkbsb/ead-scoring-system-sub000/internal/application/usecases"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/config"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/domain/repositories"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/infrastructure/cache"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/infrastructure/sheetsource"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/interfaces/http/handlers"
	"github.com/arkbsb/ead-scoring-system-sub000/internal/interfaces/http/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Sheet source com cache TTL na frente do fetch
	source := sheetsource.New(cfg.HTTPTimeout, cache.New(), cfg.SheetCacheTTL)

	// Repositories
	configRepo := repositories.NewConfigRepository(db)
	launchRepo := repositories.NewLaunchRepository(db)

	// Use Cases
	leadUseCase := usecases.NewLeadUseCase(source, configRepo, cfg.LeadsSheetURL)
	trafficUseCase := usecases.NewTrafficUseCase(source, configRepo, usecases.TrafficSheetURLs{
		Campaigns: cfg.CampaignsSheetURL,
		AdSets:    cfg.AdSetsSheetURL,
		Ads:       cfg.AdsSheetURL,
	})
	launchUseCase := usecases.NewLaunchUseCase(launchRepo, trafficUseCase)
	configUseCase := usecases.NewConfigUseCase(configRepo, configRepo)

	// Handlers
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	trafficHandler := handlers.NewTrafficHandler(trafficUseCase)
	launchHandler := handlers.NewLaunchHandler(launchUseCase)
	configHandler := handlers.NewConfigHandler(configUseCase)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.SupabaseAuth(cfg.SupabaseJWTSecret))

	// Visão pública somente leitura, resolvida por token
	groups.Public.Get("/share/:token", launchHandler.GetSharedView)

	// Leads
	groups.App.Get("/leads", leadHandler.GetLeads)
	groups.App.Get("/leads/summary", leadHandler.GetSummary)

	// Tráfego
	groups.App.Get("/traffic", trafficHandler.GetTraffic)
	groups.App.Get("/traffic/kpis", trafficHandler.GetKPIs)

	// Configuração
	groups.App.Get("/mappings", configHandler.GetLeadMapping)
	groups.App.Put("/mappings", configHandler.SaveLeadMapping)
	groups.App.Get("/traffic/mappings", configHandler.GetTrafficMapping)
	groups.App.Put("/traffic/mappings", configHandler.SaveTrafficMapping)
	groups.App.Get("/segmentation", configHandler.GetSegmentation)
	groups.App.Put("/segmentation", configHandler.SaveSegmentation)
	groups.App.Get("/custom-fields", configHandler.GetCustomFields)
	groups.App.Put("/custom-fields", configHandler.SaveCustomFields)

	// Lançamentos
	groups.App.Get("/launches", launchHandler.GetLaunches)
	groups.App.Post("/launches", launchHandler.CreateLaunch)
	groups.App.Get("/launches/:id", launchHandler.GetLaunch)
	groups.App.Put("/launches/:id", launchHandler.UpdateLaunch)
	groups.App.Delete("/launches/:id", launchHandler.DeleteLaunch)
	groups.App.Get("/launches/:id/progress", launchHandler.GetProgress)
}
