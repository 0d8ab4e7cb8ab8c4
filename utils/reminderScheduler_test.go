package utils

import (
	"landcert/database"
	"landcert/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReminderUser(t *testing.T) *models.User {
	t.Helper()
	user := models.User{Name: "Kofi Mensah", Email: "kofi@example.com", Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return &user
}

func TestSchedulePaymentReminder(t *testing.T) {
	setupTestDB(t)
	user := seedReminderUser(t)

	reminder, err := SchedulePaymentReminder(user.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, reminder)

	assert.Equal(t, models.ReminderTypePaymentDue, reminder.Type)
	assert.Equal(t, models.ReminderStatusPending, reminder.Status)
	assert.Equal(t, uint(42), reminder.RelatedID)
	assert.Equal(t, "request", reminder.RelatedType)

	expected := time.Now().AddDate(0, 0, 3)
	assert.WithinDuration(t, expected, reminder.ScheduledAt, time.Minute)
}

func TestScheduleCertificateExpiryReminderMissingCertificate(t *testing.T) {
	setupTestDB(t)
	user := seedReminderUser(t)

	reminder, err := ScheduleCertificateExpiryReminder(user.ID, 9999)
	require.NoError(t, err)
	assert.Nil(t, reminder)

	var count int64
	database.Database.Db.Model(&models.Reminder{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestScheduleCertificateExpiryReminderLeadTime(t *testing.T) {
	setupTestDB(t)
	user := seedReminderUser(t)

	expires := time.Now().AddDate(1, 0, 0)
	cert := models.Certificate{
		RequestID:         1,
		PaymentID:         1,
		CertificateNumber: "CERT-2025-00001",
		IssuedAt:          time.Now(),
		ExpiresAt:         &expires,
	}
	require.NoError(t, database.Database.Db.Create(&cert).Error)

	reminder, err := ScheduleCertificateExpiryReminder(user.ID, cert.ID)
	require.NoError(t, err)
	require.NotNil(t, reminder)

	assert.WithinDuration(t, expires.AddDate(0, 0, -30), reminder.ScheduledAt, time.Minute)
	assert.Contains(t, reminder.Message, "CERT-2025-00001")
}

func TestSendPendingRemindersSendsDueOnly(t *testing.T) {
	setupTestDB(t)
	mails := captureMail(t)
	user := seedReminderUser(t)
	db := database.Database.Db

	due := models.Reminder{
		UserID:      user.ID,
		Type:        models.ReminderTypePaymentDue,
		RelatedID:   1,
		RelatedType: "request",
		ScheduledAt: time.Now().Add(-time.Hour),
		Status:      models.ReminderStatusPending,
		Message:     "fee outstanding",
	}
	future := models.Reminder{
		UserID:      user.ID,
		Type:        models.ReminderTypeDocumentPending,
		RelatedID:   1,
		RelatedType: "request",
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Status:      models.ReminderStatusPending,
		Message:     "documents missing",
	}
	require.NoError(t, db.Create(&due).Error)
	require.NoError(t, db.Create(&future).Error)

	sent, failed := SendPendingReminders()
	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, failed)
	require.Len(t, *mails, 1)
	assert.Equal(t, []string{user.Email}, (*mails)[0].To)

	var updated models.Reminder
	require.NoError(t, db.First(&updated, due.ID).Error)
	assert.Equal(t, models.ReminderStatusSent, updated.Status)
	require.NotNil(t, updated.SentAt)

	var untouched models.Reminder
	require.NoError(t, db.First(&untouched, future.ID).Error)
	assert.Equal(t, models.ReminderStatusPending, untouched.Status)
}

func TestSendPendingRemindersIdempotent(t *testing.T) {
	setupTestDB(t)
	mails := captureMail(t)
	user := seedReminderUser(t)

	reminder := models.Reminder{
		UserID:      user.ID,
		Type:        models.ReminderTypePaymentDue,
		RelatedID:   5,
		RelatedType: "request",
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.ReminderStatusPending,
		Message:     "fee outstanding",
	}
	require.NoError(t, database.Database.Db.Create(&reminder).Error)

	sent, _ := SendPendingReminders()
	assert.Equal(t, 1, sent)

	// A second sweep finds nothing to do.
	sent, failed := SendPendingReminders()
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
	assert.Len(t, *mails, 1)
}

func TestSendPendingRemindersFailureIsTerminal(t *testing.T) {
	setupTestDB(t)
	failMail(t, assert.AnError)
	user := seedReminderUser(t)
	db := database.Database.Db

	reminder := models.Reminder{
		UserID:      user.ID,
		Type:        models.ReminderTypeDocumentPending,
		RelatedID:   8,
		RelatedType: "request",
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.ReminderStatusPending,
		Message:     "documents missing",
	}
	require.NoError(t, db.Create(&reminder).Error)

	sent, failed := SendPendingReminders()
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, failed)

	var updated models.Reminder
	require.NoError(t, db.First(&updated, reminder.ID).Error)
	assert.Equal(t, models.ReminderStatusFailed, updated.Status)
	assert.Nil(t, updated.SentAt)

	// failed is terminal; no further sweep picks it up.
	sent, failed = SendPendingReminders()
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}

func TestSendPendingRemindersClaimedRowIsSkipped(t *testing.T) {
	setupTestDB(t)
	mails := captureMail(t)
	user := seedReminderUser(t)

	claimed := models.Reminder{
		UserID:      user.ID,
		Type:        models.ReminderTypePaymentDue,
		RelatedID:   3,
		RelatedType: "request",
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.ReminderStatusProcessing,
		Message:     "claimed by another sweep",
	}
	require.NoError(t, database.Database.Db.Create(&claimed).Error)

	sent, failed := SendPendingReminders()
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
	assert.Empty(t, *mails)
}

func TestCancelReminders(t *testing.T) {
	setupTestDB(t)
	user := seedReminderUser(t)
	db := database.Database.Db

	now := time.Now()
	pending := models.Reminder{
		UserID: user.ID, Type: models.ReminderTypePaymentDue,
		RelatedID: 10, RelatedType: "request",
		ScheduledAt: now.Add(24 * time.Hour), Status: models.ReminderStatusPending,
	}
	sentAt := now
	alreadySent := models.Reminder{
		UserID: user.ID, Type: models.ReminderTypePaymentDue,
		RelatedID: 10, RelatedType: "request",
		ScheduledAt: now.Add(-24 * time.Hour), Status: models.ReminderStatusSent, SentAt: &sentAt,
	}
	other := models.Reminder{
		UserID: user.ID, Type: models.ReminderTypeCertificateExpiry,
		RelatedID: 10, RelatedType: "certificate",
		ScheduledAt: now.Add(24 * time.Hour), Status: models.ReminderStatusPending,
	}
	require.NoError(t, db.Create(&pending).Error)
	require.NoError(t, db.Create(&alreadySent).Error)
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, CancelReminders(10, "request"))

	var count int64
	db.Model(&models.Reminder{}).Count(&count)
	assert.Equal(t, int64(2), count)

	// Only the pending reminder for the matching relation is gone.
	var remaining []models.Reminder
	db.Find(&remaining)
	for _, r := range remaining {
		assert.NotEqual(t, pending.ID, r.ID)
	}
}
