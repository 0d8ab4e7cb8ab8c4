package paymentRoutes

import (
	controller "landcert/controllers/payment"
	"landcert/middleware"
	validator "landcert/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	payments := app.Group("/payments")

	payments.Post("/", validator.SubmitPayment(), middleware.JWTMiddleware, controller.SubmitPayment)
	payments.Get("/", validator.ListPayments(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.ListPayments)
	payments.Post("/verify", validator.ResolvePayment(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.VerifyPayment)
	payments.Post("/reject", validator.ResolvePayment(), middleware.JWTMiddleware, middleware.RequireRole("STAFF", "ADMIN"), controller.RejectPayment)
}
