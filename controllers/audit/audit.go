package auditController

import (
	"landcert/config"
	"landcert/database"
	"landcert/middleware"
	"landcert/models"

	"github.com/gofiber/fiber/v2"
)

// ListAuditLogs returns a paginated admin view of the audit trail, with
// optional filters on action, model type and actor.
func ListAuditLogs(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedListAuditLogs").(*struct {
		Page      *int    `query:"page"`
		Limit     *int    `query:"limit"`
		Action    *string `query:"action"`
		ModelType *string `query:"model_type"`
		UserID    *uint   `query:"user_id"`
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

	db := database.Database.Db.Model(&models.AuditLog{})
	if reqData != nil {
		if reqData.Action != nil && *reqData.Action != "" {
			db = db.Where("action = ?", *reqData.Action)
		}
		if reqData.ModelType != nil && *reqData.ModelType != "" {
			db = db.Where("model_type = ?", *reqData.ModelType)
		}
		if reqData.UserID != nil && *reqData.UserID > 0 {
			db = db.Where("user_id = ?", *reqData.UserID)
		}
	}

	var total int64
	db.Count(&total)

	var logs []models.AuditLog
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&logs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch audit logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audit logs fetched successfully!", fiber.Map{
		"audit_logs": logs,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
