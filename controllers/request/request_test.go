package requestController

import (
	"io"
	"landcert/database"
	"landcert/models"
	requestValidators "landcert/validators/request"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/request/create", authAs(userID), requestValidators.CreateRequest(), CreateRequest)
	app.Get("/request/list", authAs(userID), requestValidators.ListRequests(), ListRequests)
	app.Get("/request/:id", authAs(userID), GetRequest)
	app.Patch("/request/:id/status", authAs(userID), requestValidators.UpdateStatus(), UpdateRequestStatus)
	return app
}

func TestCreateRequest(t *testing.T) {
	setupTestDB(t)
	mails := captureMail(t)
	user := seedApplicant(t)
	app := newRequestApp(user.ID)

	req := jsonRequest(t, http.MethodPost, "/request/create", fiber.Map{
		"applicant_name":    "Tomasz Nowak",
		"applicant_address": "15 River Walk",
		"project_name":      "Workshop Build",
		"land_use_type":     "industrial",
		"project_area":      240.5,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var saved models.Request
	require.NoError(t, database.Database.Db.First(&saved).Error)
	assert.Equal(t, models.RequestStatusPending, saved.Status)
	assert.Equal(t, user.ID, saved.UserID)
	assert.Equal(t, "Workshop Build", saved.ProjectName)

	// One audit row for the submission.
	var audits []models.AuditLog
	require.NoError(t, database.Database.Db.Find(&audits).Error)
	require.Len(t, audits, 1)
	assert.Equal(t, models.AuditActionCreated, audits[0].Action)
	assert.Equal(t, "Request", audits[0].ModelType)
	assert.Nil(t, audits[0].OldValues)
	assert.NotNil(t, audits[0].NewValues)

	// One confirmation mail to the submitting user.
	require.Len(t, *mails, 1)
	assert.Equal(t, []string{user.Email}, (*mails)[0].To)
}

func TestCreateRequestValidation(t *testing.T) {
	setupTestDB(t)
	mails := captureMail(t)
	user := seedApplicant(t)
	app := newRequestApp(user.ID)

	req := jsonRequest(t, http.MethodPost, "/request/create", fiber.Map{
		"applicant_name": "",
		"project_name":   "",
		"land_use_type":  "maritime",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "applicant_name")
	assert.Contains(t, string(body), "land_use_type")

	var count int64
	database.Database.Db.Model(&models.Request{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, *mails)
}

func TestApproveRequest(t *testing.T) {
	setupTestDB(t)
	mails := captureMail(t)
	user := seedApplicant(t)
	db := database.Database.Db

	request := models.Request{
		ApplicantName:    user.Name,
		ApplicantAddress: "15 River Walk",
		ProjectName:      "Workshop Build",
		UserID:           user.ID,
	}
	require.NoError(t, db.Create(&request).Error)

	app := newRequestApp(user.ID)
	req := jsonRequest(t, http.MethodPatch, "/request/1/status", fiber.Map{
		"status": "approved",
		"notes":  "Site inspection cleared",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Request
	require.NoError(t, db.First(&updated, request.ID).Error)
	assert.Equal(t, models.RequestStatusApproved, updated.Status)

	// Intake record opened for the approved application.
	var application models.Application
	require.NoError(t, db.First(&application).Error)
	assert.Equal(t, "APP-1", application.FileNumber)
	assert.Equal(t, request.ApplicantName, application.ApplicantName)

	// One history row; the generic dispatcher suppresses its mail because the
	// tailored approval mail is sent here.
	var history []models.StatusHistory
	require.NoError(t, db.Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, models.StatusTypeApplication, history[0].StatusType)
	assert.Equal(t, "approved", history[0].NewStatus)

	require.Len(t, *mails, 1)
	assert.Equal(t, []string{user.Email}, (*mails)[0].To)
	assert.Contains(t, (*mails)[0].Subject, "Approved")

	// Fee is now due: a payment reminder is on the books.
	var reminder models.Reminder
	require.NoError(t, db.First(&reminder).Error)
	assert.Equal(t, models.ReminderTypePaymentDue, reminder.Type)
	assert.Equal(t, request.ID, reminder.RelatedID)
}

func TestUpdateRequestStatusSameStatusRejected(t *testing.T) {
	setupTestDB(t)
	captureMail(t)
	user := seedApplicant(t)
	db := database.Database.Db

	request := models.Request{
		ApplicantName:    user.Name,
		ApplicantAddress: "15 River Walk",
		ProjectName:      "Workshop Build",
		Status:           models.RequestStatusPending,
		UserID:           user.ID,
	}
	require.NoError(t, db.Create(&request).Error)

	app := newRequestApp(user.ID)
	req := jsonRequest(t, http.MethodPatch, "/request/1/status", fiber.Map{"status": "pending"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.StatusHistory{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetRequestOwnershipCheck(t *testing.T) {
	setupTestDB(t)
	owner := seedApplicant(t)
	db := database.Database.Db

	intruder := models.User{Name: "Other", Email: "other@example.com", Password: "x", Role: "APPLICANT"}
	require.NoError(t, db.Create(&intruder).Error)

	request := models.Request{
		ApplicantName:    owner.Name,
		ApplicantAddress: "15 River Walk",
		ProjectName:      "Workshop Build",
		UserID:           owner.ID,
	}
	require.NoError(t, db.Create(&request).Error)

	app := newRequestApp(intruder.ID)
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/request/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	app = newRequestApp(owner.ID)
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/request/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
