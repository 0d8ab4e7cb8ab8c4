package utils

import (
	"landcert/database"
	"landcert/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDashboardData(t *testing.T) {
	t.Helper()
	db := database.Database.Db

	requests := []models.Request{
		{ApplicantName: "A", ApplicantAddress: "1", ProjectName: "P1", Status: models.RequestStatusPending},
		{ApplicantName: "B", ApplicantAddress: "2", ProjectName: "P2", Status: models.RequestStatusApproved},
		{ApplicantName: "C", ApplicantAddress: "3", ProjectName: "P3", Status: models.RequestStatusApproved},
		{ApplicantName: "D", ApplicantAddress: "4", ProjectName: "P4", Status: models.RequestStatusRejected, IsDeleted: true},
	}
	for i := range requests {
		require.NoError(t, db.Create(&requests[i]).Error)
	}

	payments := []models.Payment{
		{RequestID: 2, Amount: 150.00, PaymentStatus: models.PaymentStatusVerified},
		{RequestID: 3, Amount: 200.50, PaymentStatus: models.PaymentStatusVerified},
		{RequestID: 1, Amount: 99.99, PaymentStatus: models.PaymentStatusPending},
		{RequestID: 1, Amount: 50.00, PaymentStatus: models.PaymentStatusRejected},
	}
	for i := range payments {
		require.NoError(t, db.Create(&payments[i]).Error)
	}

	certs := []models.Certificate{
		{RequestID: 2, PaymentID: 1, CertificateNumber: "CERT-2026-00001", IssuedAt: time.Now(), Status: models.CertificateStatusGenerated},
		{RequestID: 3, PaymentID: 2, CertificateNumber: "CERT-2026-00002", IssuedAt: time.Now(), Status: models.CertificateStatusSent},
	}
	for i := range certs {
		require.NoError(t, db.Create(&certs[i]).Error)
	}

	reports := []models.Report{
		{ApplicantName: "B", ApplicantAddress: "2", Evaluation: models.EvaluationApproved},
		{ApplicantName: "C", ApplicantAddress: "3", Evaluation: models.EvaluationApproved},
		{ApplicantName: "A", ApplicantAddress: "1", Evaluation: models.EvaluationPending},
	}
	for i := range reports {
		require.NoError(t, db.Create(&reports[i]).Error)
	}
}

func TestGetDashboardStatsWithoutRedis(t *testing.T) {
	setupTestDB(t)
	seedDashboardData(t)

	stats, err := GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalRequests) // soft-deleted row excluded
	assert.Equal(t, int64(1), stats.PendingRequests)
	assert.Equal(t, int64(2), stats.ApprovedRequests)
	assert.Equal(t, int64(0), stats.RejectedRequests)

	assert.Equal(t, int64(4), stats.TotalPayments)
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, int64(2), stats.VerifiedPayments)
	assert.Equal(t, int64(1), stats.RejectedPayments)
	assert.InDelta(t, 350.50, stats.VerifiedAmount, 0.001)

	assert.Equal(t, int64(1), stats.CertificatesGenerated)
	assert.Equal(t, int64(1), stats.CertificatesSent)
	assert.Equal(t, int64(0), stats.CertificatesCollected)
}

func TestGetDashboardAnalyticsWithoutRedis(t *testing.T) {
	setupTestDB(t)
	seedDashboardData(t)

	analytics, err := GetDashboardAnalytics()
	require.NoError(t, err)

	require.Len(t, analytics.MonthlyRequests, 6)
	current := time.Now().Format("2006-01")
	assert.Equal(t, current, analytics.MonthlyRequests[5].Month)
	assert.Equal(t, 3, analytics.MonthlyRequests[5].Count)

	assert.InDelta(t, 350.50, analytics.VerifiedFeeTotal, 0.001)
	assert.Equal(t, int64(2), analytics.CertificatesIssued)
	assert.Len(t, analytics.RecentRequests, 3)
}

func TestGetEvaluationDistribution(t *testing.T) {
	setupTestDB(t)
	seedDashboardData(t)

	dist, err := GetEvaluationDistribution()
	require.NoError(t, err)

	byEvaluation := make(map[string]int64, len(dist))
	for _, d := range dist {
		byEvaluation[d.Evaluation] = d.Count
	}
	assert.Equal(t, int64(2), byEvaluation["approved"])
	assert.Equal(t, int64(1), byEvaluation["pending"])
}

func TestClearDashboardCacheWithoutRedis(t *testing.T) {
	setupTestDB(t)
	assert.NoError(t, ClearDashboardCache())
}
