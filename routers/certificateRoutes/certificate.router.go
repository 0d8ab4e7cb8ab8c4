package certificateRoutes

import (
	controller "landcert/controllers/certificate"
	"landcert/middleware"
	validator "landcert/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	certificates := app.Group("/certificates")

	certificates.Post("/generate", validator.GenerateCertificate(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.GenerateCertificate)
	certificates.Get("/", validator.ListCertificates(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.ListCertificates)
	certificates.Get("/:id", middleware.JWTMiddleware, controller.GetCertificate)
	certificates.Patch("/:id/sent", middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.MarkCertificateSent)
	certificates.Patch("/:id/collected", middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.MarkCertificateCollected)
}
