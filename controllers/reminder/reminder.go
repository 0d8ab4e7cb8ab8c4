package reminderController

import (
	"landcert/config"
	"landcert/database"
	"landcert/middleware"
	"landcert/models"
	"landcert/utils"

	"github.com/gofiber/fiber/v2"
)

// ListReminders returns a paginated admin view, optionally filtered by status.
func ListReminders(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedListReminders").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})

	page := 1
	limit := config.AppConfig.PageSize
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Reminder{})
	if reqData != nil && reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", *reqData.Status)
	}

	var total int64
	db.Count(&total)

	var reminders []models.Reminder
	if err := db.Offset(offset).Limit(limit).Order("scheduled_at asc").Find(&reminders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reminders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reminders fetched successfully!", fiber.Map{
		"reminders": reminders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// RunReminderSweep triggers one sweep manually, outside the cron schedule.
func RunReminderSweep(c *fiber.Ctx) error {
	sent, failed := utils.SendPendingReminders()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reminder sweep completed!", fiber.Map{
		"sent":   sent,
		"failed": failed,
	})
}

// CancelReminders hard-deletes all pending reminders for a related entity.
func CancelReminders(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCancelReminders").(*struct {
		RelatedID   uint   `json:"related_id"`
		RelatedType string `json:"related_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := utils.CancelReminders(reqData.RelatedID, reqData.RelatedType); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel reminders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending reminders cancelled!", nil)
}
