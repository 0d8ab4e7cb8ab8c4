package paymentValidators

import (
	"landcert/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SubmitPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RequestID     uint    `json:"request_id"`
			Amount        float64 `json:"amount"`
			ReceiptNumber string  `json:"receipt_number"`
			ReceiptPath   string  `json:"receipt_path"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RequestID == 0 {
			errors["request_id"] = "Request ID is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		reqData.ReceiptNumber = strings.TrimSpace(reqData.ReceiptNumber)
		if reqData.ReceiptNumber == "" {
			errors["receipt_number"] = "Receipt number is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmitPayment", reqData)
		return c.Next()
	}
}

func ListPayments() fiber.Handler {
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
			valid := map[string]bool{"pending": true, "verified": true, "rejected": true}
			if !valid[strings.ToLower(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: pending, verified, rejected."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListPayments", reqData)
		return c.Next()
	}
}

func ResolvePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentID uint   `json:"payment_id"`
			Notes     string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PaymentID == 0 {
			errors["payment_id"] = "Payment ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResolvePayment", reqData)
		return c.Next()
	}
}
