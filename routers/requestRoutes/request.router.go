package requestRoutes

import (
	controller "landcert/controllers/request"
	"landcert/middleware"
	validator "landcert/validators/request"

	"github.com/gofiber/fiber/v2"
)

func SetupRequestRoutes(app *fiber.App) {
	requests := app.Group("/requests")

	requests.Post("/", validator.CreateRequest(), middleware.JWTMiddleware, controller.CreateRequest)
	requests.Get("/", validator.ListRequests(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.ListRequests)
	requests.Get("/:id", middleware.JWTMiddleware, controller.GetRequest)
	requests.Put("/:id", validator.UpdateRequest(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.UpdateRequest)
	requests.Patch("/:id/status", validator.UpdateStatus(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.UpdateRequestStatus)
	requests.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controller.DeleteRequest)
}
