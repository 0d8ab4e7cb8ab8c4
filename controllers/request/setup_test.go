package requestController

import (
	"bytes"
	"encoding/json"
	"landcert/cache"
	"landcert/config"
	"landcert/database"
	"landcert/models"
	"landcert/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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
	To      []string
	Subject string
	Body    string
}

func captureMail(t *testing.T) *[]sentMail {
	t.Helper()

	var mails []sentMail
	orig := utils.SendMailFunc
	utils.SendMailFunc = func(to []string, subject, body string, attachments []utils.MailAttachment) error {
		mails = append(mails, sentMail{To: to, Subject: subject, Body: body})
		return nil
	}
	t.Cleanup(func() { utils.SendMailFunc = orig })
	return &mails
}

// authAs injects the authenticated user id the way the JWT middleware does.
func authAs(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func seedApplicant(t *testing.T) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Tomasz Nowak",
		Email:    "tomasz@example.com",
		Password: "x",
		Role:     "APPLICANT",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return &user
}
