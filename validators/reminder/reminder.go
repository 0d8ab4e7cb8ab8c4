package reminderValidators

import (
	"landcert/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func ListReminders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Status != nil && *reqData.Status != "" {
			valid := map[string]bool{"pending": true, "processing": true, "sent": true, "failed": true}
			if !valid[strings.ToLower(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: pending, processing, sent, failed."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListReminders", reqData)
		return c.Next()
	}
}

func CancelReminders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RelatedID   uint   `json:"related_id"`
			RelatedType string `json:"related_type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RelatedID == 0 {
			errors["related_id"] = "Related ID is required!"
		}
		reqData.RelatedType = strings.ToLower(strings.TrimSpace(reqData.RelatedType))
		if reqData.RelatedType != "request" && reqData.RelatedType != "certificate" {
			errors["related_type"] = "Invalid related type! Must be one of: request, certificate."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCancelReminders", reqData)
		return c.Next()
	}
}
