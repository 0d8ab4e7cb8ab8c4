package utils

import (
	"fmt"
	"landcert/config"
	"landcert/database"
	"landcert/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

func logReminder(format string, args ...interface{}) {
	log.Printf("[REMINDER-SCHEDULER] "+format, args...)
}

// InitializeReminderScheduler starts the periodic sweep over due reminders.
func InitializeReminderScheduler() {
	logReminder("Initializing reminder scheduler...")

	c := cron.New()
	spec := config.AppConfig.ReminderSweepCron
	if _, err := c.AddFunc(spec, func() {
		sent, failed := SendPendingReminders()
		logReminder("Sweep finished: %d sent, %d failed", sent, failed)
	}); err != nil {
		log.Fatalf("[REMINDER-SCHEDULER] Invalid sweep cron spec %q: %v", spec, err)
	}

	c.Start()
	logReminder("Reminder scheduler started (spec %q)", spec)
}

// SchedulePaymentReminder creates a payment-due reminder for the request owner.
func SchedulePaymentReminder(userID, requestID uint) (*models.Reminder, error) {
	days := 3
	if config.AppConfig != nil {
		days = config.AppConfig.PaymentReminderDays
	}
	reminder := models.Reminder{
		UserID:      userID,
		Type:        models.ReminderTypePaymentDue,
		RelatedID:   requestID,
		RelatedType: "request",
		ScheduledAt: time.Now().AddDate(0, 0, days),
		Status:      models.ReminderStatusPending,
		Message:     "Your certification request has been approved but the certification fee has not been paid yet. Please pay the fee and upload your receipt.",
	}
	if err := database.Database.Db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// ScheduleDocumentReminder creates a document-pending reminder for the request owner.
func ScheduleDocumentReminder(userID, requestID uint) (*models.Reminder, error) {
	days := 5
	if config.AppConfig != nil {
		days = config.AppConfig.DocumentReminderDays
	}
	reminder := models.Reminder{
		UserID:      userID,
		Type:        models.ReminderTypeDocumentPending,
		RelatedID:   requestID,
		RelatedType: "request",
		ScheduledAt: time.Now().AddDate(0, 0, days),
		Status:      models.ReminderStatusPending,
		Message:     "Your certification request is missing supporting documents. Please upload them so processing can continue.",
	}
	if err := database.Database.Db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// ScheduleCertificateExpiryReminder creates an expiry reminder for a
// certificate. A missing certificate is a logged no-op, not an error.
func ScheduleCertificateExpiryReminder(userID, certificateID uint) (*models.Reminder, error) {
	db := database.Database.Db

	var cert models.Certificate
	if err := db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&cert).Error; err != nil {
		logReminder("Certificate %d not found, skipping expiry reminder", certificateID)
		return nil, nil
	}

	lead := 30
	if config.AppConfig != nil {
		lead = config.AppConfig.CertificateExpiryDays
	}
	scheduledAt := time.Now().AddDate(0, 0, lead)
	if cert.ExpiresAt != nil {
		scheduledAt = cert.ExpiresAt.AddDate(0, 0, -lead)
	}

	reminder := models.Reminder{
		UserID:      userID,
		Type:        models.ReminderTypeCertificateExpiry,
		RelatedID:   certificateID,
		RelatedType: "certificate",
		ScheduledAt: scheduledAt,
		Status:      models.ReminderStatusPending,
		Message:     fmt.Sprintf("Your land-use certificate %s is approaching its expiry date.", cert.CertificateNumber),
	}
	if err := db.Create(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// CancelReminders hard-deletes all pending reminders for a related entity.
func CancelReminders(relatedID uint, relatedType string) error {
	return database.Database.Db.Unscoped().
		Where("related_id = ? AND related_type = ? AND status = ?", relatedID, relatedType, models.ReminderStatusPending).
		Delete(&models.Reminder{}).Error
}

// SendPendingReminders sweeps all due pending reminders and sends each one,
// marking it sent or failed. Each reminder is claimed with a conditional
// pending → processing update first, so an overlapping sweep cannot dispatch
// the same row twice. A send failure is terminal for that reminder.
func SendPendingReminders() (sent int, failed int) {
	db := database.Database.Db
	now := time.Now()

	var due []models.Reminder
	if err := db.Where("status = ? AND scheduled_at <= ?", models.ReminderStatusPending, now).Find(&due).Error; err != nil {
		logReminder("Error fetching due reminders: %v", err)
		return 0, 0
	}

	for _, reminder := range due {
		claim := db.Model(&models.Reminder{}).
			Where("id = ? AND status = ?", reminder.ID, models.ReminderStatusPending).
			Update("status", models.ReminderStatusProcessing)
		if claim.Error != nil {
			logReminder("Error claiming reminder %d: %v", reminder.ID, claim.Error)
			continue
		}
		if claim.RowsAffected == 0 {
			// Another sweep got there first.
			continue
		}

		if err := deliverReminder(&reminder); err != nil {
			logReminder("Failed to send reminder %d (type %s, user %d): %v", reminder.ID, reminder.Type, reminder.UserID, err)
			db.Model(&models.Reminder{}).Where("id = ?", reminder.ID).
				Update("status", models.ReminderStatusFailed)
			failed++
			continue
		}

		sentAt := time.Now()
		db.Model(&models.Reminder{}).Where("id = ?", reminder.ID).
			Updates(map[string]interface{}{
				"status":  models.ReminderStatusSent,
				"sent_at": sentAt,
			})
		sent++
	}

	return sent, failed
}

// deliverReminder resolves the user and sends the type-specific mail.
func deliverReminder(reminder *models.Reminder) error {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", reminder.UserID, false).First(&user).Error; err != nil {
		return fmt.Errorf("user %d not found: %w", reminder.UserID, err)
	}

	switch reminder.Type {
	case models.ReminderTypePaymentDue:
		return SendPaymentDueReminderEmail(user.Email, user.Name, reminder.Message, reminder.RelatedID)
	case models.ReminderTypeDocumentPending:
		return SendDocumentPendingReminderEmail(user.Email, user.Name, reminder.Message, reminder.RelatedID)
	case models.ReminderTypeCertificateExpiry:
		certNumber := ""
		var cert models.Certificate
		if err := db.Where("id = ?", reminder.RelatedID).First(&cert).Error; err == nil {
			certNumber = cert.CertificateNumber
		}
		return SendCertificateExpiryReminderEmail(user.Email, user.Name, reminder.Message, certNumber)
	default:
		return fmt.Errorf("unknown reminder type %q", reminder.Type)
	}
}
