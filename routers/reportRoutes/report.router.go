package reportRoutes

import (
	controller "landcert/controllers/report"
	"landcert/middleware"
	validator "landcert/validators/report"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App) {
	reports := app.Group("/reports")

	reports.Post("/", validator.CreateReport(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.CreateReport)
	reports.Put("/:id", validator.UpdateReport(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.UpdateReport)
	reports.Get("/", validator.ListReports(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.ListReports)
}
