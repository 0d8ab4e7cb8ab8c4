package utils

import (
	"landcert/database"
	"landcert/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAuditCreateCarriesNewValuesOnly(t *testing.T) {
	setupTestDB(t)

	request := models.Request{ApplicantName: "Ngozi Okafor", ApplicantAddress: "4 Mill Lane", ProjectName: "Retail Unit"}
	require.NoError(t, RecordAudit(nil, 12, models.AuditActionCreated, "Request", 1, nil, request, "Request submitted"))

	var entry models.AuditLog
	require.NoError(t, database.Database.Db.First(&entry).Error)

	assert.Equal(t, uint(12), entry.UserID)
	assert.Equal(t, models.AuditActionCreated, entry.Action)
	assert.Equal(t, "Request", entry.ModelType)
	assert.Nil(t, entry.OldValues)
	require.NotNil(t, entry.NewValues)
	assert.Contains(t, string(entry.NewValues), "Ngozi Okafor")
	assert.NotEmpty(t, entry.EventID)
}

func TestRecordAuditUpdateCarriesBothValues(t *testing.T) {
	setupTestDB(t)

	old := models.Request{Status: models.RequestStatusPending}
	updated := models.Request{Status: models.RequestStatusApproved}
	require.NoError(t, RecordAudit(nil, 3, models.AuditActionUpdated, "Request", 7, old, updated, "Status changed"))

	var entry models.AuditLog
	require.NoError(t, database.Database.Db.First(&entry).Error)

	assert.Contains(t, string(entry.OldValues), "pending")
	assert.Contains(t, string(entry.NewValues), "approved")
}

func TestRecordAuditDeleteCarriesOldValuesOnly(t *testing.T) {
	setupTestDB(t)

	old := models.Request{ApplicantName: "Removed Applicant"}
	require.NoError(t, RecordAudit(nil, 3, models.AuditActionDeleted, "Request", 7, old, nil, "Request removed"))

	var entry models.AuditLog
	require.NoError(t, database.Database.Db.First(&entry).Error)

	assert.Contains(t, string(entry.OldValues), "Removed Applicant")
	assert.Nil(t, entry.NewValues)
}

func TestRecordAuditEventIDsAreUnique(t *testing.T) {
	setupTestDB(t)

	for i := 0; i < 20; i++ {
		require.NoError(t, RecordAudit(nil, 1, models.AuditActionUpdated, "Payment", uint(i), nil, nil, ""))
	}

	var entries []models.AuditLog
	require.NoError(t, database.Database.Db.Find(&entries).Error)
	require.Len(t, entries, 20)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.EventID])
		seen[e.EventID] = true
	}
}

func TestRecordEntityWriteWritesExactlyOneAuditRow(t *testing.T) {
	setupTestDB(t)

	RecordEntityWrite(nil, 5, models.AuditActionUpdated, "Payment", 9,
		models.Payment{PaymentStatus: models.PaymentStatusPending},
		models.Payment{PaymentStatus: models.PaymentStatusVerified},
		"Payment verified")

	var count int64
	database.Database.Db.Model(&models.AuditLog{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordEntityWriteSurvivesCacheBeingDown(t *testing.T) {
	// cache.Client is nil under test, which mirrors redis being unreachable.
	setupTestDB(t)

	RecordEntityWrite(nil, 5, models.AuditActionCreated, "Request", 1, nil, models.Request{}, "")

	var count int64
	database.Database.Db.Model(&models.AuditLog{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
