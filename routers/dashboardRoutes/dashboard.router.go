package dashboardRoutes

import (
	controller "landcert/controllers/dashboard"
	"landcert/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")

	dashboard.Get("/analytics", middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.GetAnalytics)
	dashboard.Get("/stats", middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.GetStats)
	dashboard.Get("/evaluation-distribution", middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.GetEvaluationDistribution)
}
