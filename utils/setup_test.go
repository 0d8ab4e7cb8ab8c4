package utils

import (
	"landcert/cache"
	"landcert/config"
	"landcert/database"
	"landcert/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB wires an in-memory SQLite database into the global instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.Application{},
		&models.Project{},
		&models.Report{},
		&models.Payment{},
		&models.Certificate{},
		&models.CertificateSequence{},
		&models.StatusHistory{},
		&models.AuditLog{},
		&models.Reminder{},
	))

	database.Database = database.DbInstance{Db: db}
	cache.Client = nil

	config.AppConfig = &config.Config{
		Port:                    "3000",
		JWTKey:                  "test-secret-key",
		SaltRound:               4,
		PageSize:                10,
		DashboardTTLSec:         300,
		PaymentReminderDays:     3,
		DocumentReminderDays:    5,
		CertificateExpiryDays:   30,
		CertificateValidityDays: 365,
		ReminderSweepCron:       "*/15 * * * *",
	}

	return db
}

type sentMail struct {
	To          []string
	Subject     string
	Body        string
	Attachments []MailAttachment
}

// captureMail swaps the mail transport for a recorder for one test.
func captureMail(t *testing.T) *[]sentMail {
	t.Helper()

	var mails []sentMail
	orig := SendMailFunc
	SendMailFunc = func(to []string, subject, body string, attachments []MailAttachment) error {
		mails = append(mails, sentMail{To: to, Subject: subject, Body: body, Attachments: attachments})
		return nil
	}
	t.Cleanup(func() { SendMailFunc = orig })
	return &mails
}

// failMail makes every send fail for one test.
func failMail(t *testing.T, err error) {
	t.Helper()

	orig := SendMailFunc
	SendMailFunc = func(to []string, subject, body string, attachments []MailAttachment) error {
		return err
	}
	t.Cleanup(func() { SendMailFunc = orig })
}
