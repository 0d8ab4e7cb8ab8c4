package certificateController

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
	"gorm.io/gorm"
)

// GenerateCertificate issues a certificate for a request with a verified
// payment. The certificate number comes from the per-year atomic counter and
// is created in the same transaction as the certificate row.
func GenerateCertificate(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedGenerateCertificate").(*struct {
		RequestID uint   `json:"request_id"`
		FilePath  string `json:"file_path"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var request models.Request
	if err := db.Where("id = ? AND is_deleted = ?", reqData.RequestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	var payment models.Payment
	if err := db.Where("request_id = ? AND payment_status = ? AND is_deleted = ?",
		request.ID, models.PaymentStatusVerified, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request has no verified payment!", nil)
	}

	var existing models.Certificate
	if err := db.Where("request_id = ? AND is_deleted = ?", request.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued for this request!", fiber.Map{
			"certificate": existing,
		})
	}

	now := time.Now()
	validityDays := 365
	if config.AppConfig != nil {
		validityDays = config.AppConfig.CertificateValidityDays
	}
	expiresAt := now.AddDate(0, 0, validityDays)

	var certificate models.Certificate
	err := db.Transaction(func(tx *gorm.DB) error {
		number, err := utils.NextCertificateNumber(tx, now.Year())
		if err != nil {
			return err
		}

		certificate = models.Certificate{
			RequestID:         request.ID,
			PaymentID:         payment.ID,
			CertificateNumber: number,
			IssuedBy:          userID,
			IssuedAt:          now,
			ExpiresAt:         &expiresAt,
			FilePath:          reqData.FilePath,
		}
		return tx.Create(&certificate).Error
	})
	if err != nil {
		log.Printf("Error generating certificate for request %d: %v", request.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionCreated, "Certificate", certificate.ID, nil, certificate,
		fmt.Sprintf("Certificate %s issued for request #%d", certificate.CertificateNumber, request.ID))

	if _, err := utils.LogStatusChange(request.ID, models.StatusTypeCertificate,
		"", string(models.CertificateStatusGenerated), userID, ""); err != nil {
		log.Printf("Failed to log certificate status for certificate %d: %v", certificate.ID, err)
	}

	var owner models.User
	if err := db.Where("id = ? AND is_deleted = ?", request.UserID, false).First(&owner).Error; err == nil {
		if err := utils.SendCertificateIssuedEmail(owner.Email, owner.Name,
			certificate.CertificateNumber, certificate.FilePath); err != nil {
			log.Printf("Failed to send certificate mail to %s for certificate %d: %v", owner.Email, certificate.ID, err)
		}
		if _, err := utils.ScheduleCertificateExpiryReminder(owner.ID, certificate.ID); err != nil {
			log.Printf("Failed to schedule expiry reminder for certificate %d: %v", certificate.ID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate generated successfully!", certificate)
}

// MarkCertificateSent records dispatch of the certificate to the applicant.
func MarkCertificateSent(c *fiber.Ctx) error {
	return transitionCertificate(c, models.CertificateStatusGenerated, models.CertificateStatusSent)
}

// MarkCertificateCollected records pickup of the original at the office.
func MarkCertificateCollected(c *fiber.Ctx) error {
	return transitionCertificate(c, models.CertificateStatusSent, models.CertificateStatusCollected)
}

func transitionCertificate(c *fiber.Ctx, from, to models.CertificateStatus) error {
	userID, _ := c.Locals("userId").(uint)

	certificateID, err := c.ParamsInt("id")
	if err != nil || certificateID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	var certificate models.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if certificate.Status != from {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("Certificate must be %s to mark it %s!", from, to), nil)
	}

	oldValues := certificate
	certificate.Status = to
	if err := database.Database.Db.Save(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionUpdated, "Certificate", certificate.ID, oldValues, certificate,
		fmt.Sprintf("Certificate %s marked %s", certificate.CertificateNumber, to))

	// sent and collected are not suppressed; the generic dispatcher mails them.
	if _, err := utils.LogStatusChange(certificate.RequestID, models.StatusTypeCertificate,
		string(from), string(to), userID, ""); err != nil {
		log.Printf("Failed to log certificate status change for certificate %d: %v", certificate.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate updated successfully!", certificate)
}

// ListCertificates returns a paginated staff view.
func ListCertificates(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedListCertificates").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
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

	var total int64
	database.Database.Db.Model(&models.Certificate{}).Where("is_deleted = ?", false).Count(&total)

	var certificates []models.Certificate
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Offset(offset).Limit(limit).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCertificate returns one certificate; applicants only see their own.
func GetCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificateID, err := c.ParamsInt("id")
	if err != nil || certificateID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var certificate models.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if user.Role == "APPLICANT" {
		var request models.Request
		if err := database.Database.Db.Where("id = ?", certificate.RequestID).First(&request).Error; err != nil || request.UserID != userID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", certificate)
}
