package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	app.Use(RequestLogger())
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	// Rotas sem autenticação: health e visão pública de compartilhamento
	Public fiber.Router
	// Rotas do dashboard, atrás do JWT do backend hospedado
	App fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	public := app.Group("/")

	api := app.Group("/api/v1")
	api.Use(authMiddleware)

	return RouteGroups{
		Public: public,
		App:    api,
	}
}
