package auditValidators

import (
	"landcert/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func ListAuditLogs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page      *int    `query:"page"`
			Limit     *int    `query:"limit"`
			Action    *string `query:"action"`
			ModelType *string `query:"model_type"`
			UserID    *uint   `query:"user_id"`
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
		if reqData.Action != nil && *reqData.Action != "" {
			valid := map[string]bool{
				"created": true, "updated": true, "deleted": true,
				"viewed": true, "exported": true, "login": true,
			}
			if !valid[strings.ToLower(*reqData.Action)] {
				errors["action"] = "Invalid action! Must be one of: created, updated, deleted, viewed, exported, login."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListAuditLogs", reqData)
		return c.Next()
	}
}
