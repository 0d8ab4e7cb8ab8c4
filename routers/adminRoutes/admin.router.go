package adminRoutes

import (
	auditController "landcert/controllers/audit"
	reminderController "landcert/controllers/reminder"
	"landcert/middleware"
	auditValidators "landcert/validators/audit"
	reminderValidators "landcert/validators/reminder"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")

	admin.Get("/audit-logs", auditValidators.ListAuditLogs(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), auditController.ListAuditLogs)

	admin.Get("/reminders", reminderValidators.ListReminders(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), reminderController.ListReminders)
	admin.Post("/reminders/sweep", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), reminderController.RunReminderSweep)
	admin.Post("/reminders/cancel", reminderValidators.CancelReminders(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), reminderController.CancelReminders)
}
