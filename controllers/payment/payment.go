package paymentController

import (
	"fmt"
	"landcert/config"
	"landcert/database"
	"landcert/middleware"
	"landcert/models"
	"landcert/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubmitPayment records an uploaded fee receipt against a request. The
// payment starts pending; staff verify or reject it later.
func SubmitPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmitPayment").(*struct {
		RequestID     uint    `json:"request_id"`
		Amount        float64 `json:"amount"`
		ReceiptNumber string  `json:"receipt_number"`
		ReceiptPath   string  `json:"receipt_path"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var request models.Request
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.RequestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	if request.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only submit payments for your own requests!", nil)
	}

	payment := models.Payment{
		RequestID:     request.ID,
		Amount:        reqData.Amount,
		ReceiptNumber: reqData.ReceiptNumber,
		ReceiptPath:   reqData.ReceiptPath,
	}

	if err := database.Database.Db.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionCreated, "Payment", payment.ID, nil, payment,
		fmt.Sprintf("Payment receipt %s submitted for request #%d", payment.ReceiptNumber, request.ID))

	if _, err := utils.LogStatusChange(request.ID, models.StatusTypePayment,
		"", string(models.PaymentStatusPending), userID, "Receipt uploaded"); err != nil {
		log.Printf("Failed to log payment status for payment %d: %v", payment.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment submitted successfully!", payment)
}

// ListPayments returns a paginated staff view, optionally filtered by status.
func ListPayments(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedListPayments").(*struct {
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

	db := database.Database.Db.Model(&models.Payment{}).Where("is_deleted = ?", false)
	if reqData != nil && reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("payment_status = ?", *reqData.Status)
	}

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// VerifyPayment marks a pending payment verified. The tailored verification
// mail is sent here; the generic status dispatcher suppresses its own.
func VerifyPayment(c *fiber.Ctx) error {
	return resolvePayment(c, models.PaymentStatusVerified)
}

// RejectPayment marks a pending payment rejected.
func RejectPayment(c *fiber.Ctx) error {
	return resolvePayment(c, models.PaymentStatusRejected)
}

func resolvePayment(c *fiber.Ctx, outcome models.PaymentStatus) error {
	userID, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedResolvePayment").(*struct {
		PaymentID uint   `json:"payment_id"`
		Notes     string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.PaymentID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	// A payment transitions exactly once off pending.
	if payment.PaymentStatus != models.PaymentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment has already been processed!", nil)
	}

	oldValues := payment
	now := time.Now()
	payment.PaymentStatus = outcome
	payment.VerifiedBy = &userID
	payment.VerifiedAt = &now
	payment.Notes = reqData.Notes

	if err := database.Database.Db.Save(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionUpdated, "Payment", payment.ID, oldValues, payment,
		fmt.Sprintf("Payment #%d %s", payment.ID, outcome))

	if _, err := utils.LogStatusChange(payment.RequestID, models.StatusTypePayment,
		string(models.PaymentStatusPending), string(outcome), userID, reqData.Notes); err != nil {
		log.Printf("Failed to log payment status change for payment %d: %v", payment.ID, err)
	}

	// Tailored mail, best-effort
	var request models.Request
	if err := database.Database.Db.Where("id = ?", payment.RequestID).First(&request).Error; err == nil {
		var owner models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", request.UserID, false).First(&owner).Error; err == nil {
			var mailErr error
			if outcome == models.PaymentStatusVerified {
				mailErr = utils.SendPaymentVerifiedEmail(owner.Email, owner.Name, payment.Amount, payment.ReceiptNumber)
			} else {
				mailErr = utils.SendPaymentRejectedEmail(owner.Email, owner.Name, payment.Amount, reqData.Notes)
			}
			if mailErr != nil {
				log.Printf("Failed to send payment %s mail to %s for payment %d: %v", outcome, owner.Email, payment.ID, mailErr)
			}
		}
	}

	// The fee is settled; pending payment reminders no longer apply.
	if outcome == models.PaymentStatusVerified {
		if err := utils.CancelReminders(payment.RequestID, "request"); err != nil {
			log.Printf("Failed to cancel payment reminders for request %d: %v", payment.RequestID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Payment %s successfully!", outcome), payment)
}
