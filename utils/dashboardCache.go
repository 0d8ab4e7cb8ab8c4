package utils

import (
	"context"
	"landcert/cache"
	"landcert/config"
	"landcert/database"
	"landcert/models"
	"time"
)

// Dashboard cache keys. Any committed write to Request, Payment or Report
// evicts all three; there is no partial invalidation.
const (
	CacheKeyAnalytics              = "dashboard.analytics"
	CacheKeyStats                  = "dashboard.stats"
	CacheKeyEvaluationDistribution = "dashboard.evaluation_distribution"
)

func dashboardTTL() time.Duration {
	if config.AppConfig != nil && config.AppConfig.DashboardTTLSec > 0 {
		return time.Duration(config.AppConfig.DashboardTTLSec) * time.Second
	}
	return 300 * time.Second
}

// MonthlyCount is one month's request volume.
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// DashboardAnalytics is the trend view of the dashboard.
type DashboardAnalytics struct {
	MonthlyRequests    []MonthlyCount   `json:"monthly_requests"`
	VerifiedFeeTotal   float64          `json:"verified_fee_total"`
	CertificatesIssued int64            `json:"certificates_issued_this_year"`
	RecentRequests     []models.Request `json:"recent_requests"`
}

// DashboardStats is the totals view of the dashboard.
type DashboardStats struct {
	TotalRequests         int64   `json:"total_requests"`
	PendingRequests       int64   `json:"pending_requests"`
	ApprovedRequests      int64   `json:"approved_requests"`
	RejectedRequests      int64   `json:"rejected_requests"`
	TotalPayments         int64   `json:"total_payments"`
	PendingPayments       int64   `json:"pending_payments"`
	VerifiedPayments      int64   `json:"verified_payments"`
	RejectedPayments      int64   `json:"rejected_payments"`
	VerifiedAmount        float64 `json:"verified_amount"`
	CertificatesGenerated int64   `json:"certificates_generated"`
	CertificatesSent      int64   `json:"certificates_sent"`
	CertificatesCollected int64   `json:"certificates_collected"`
	TotalUsers            int64   `json:"total_users"`
	PendingReminders      int64   `json:"pending_reminders"`
}

// EvaluationCount is the report count for one evaluation outcome.
type EvaluationCount struct {
	Evaluation string `json:"evaluation"`
	Count      int64  `json:"count"`
}

// GetDashboardAnalytics returns the memoized analytics aggregate, recomputed
// lazily at most once per TTL window. Aggregate query failures propagate.
func GetDashboardAnalytics() (*DashboardAnalytics, error) {
	var out DashboardAnalytics
	err := cache.CacheAside(context.Background(), CacheKeyAnalytics, &out, dashboardTTL(), func() error {
		return computeAnalytics(&out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboardStats returns the memoized totals aggregate.
func GetDashboardStats() (*DashboardStats, error) {
	var out DashboardStats
	err := cache.CacheAside(context.Background(), CacheKeyStats, &out, dashboardTTL(), func() error {
		return computeStats(&out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvaluationDistribution returns report counts grouped by evaluation.
func GetEvaluationDistribution() ([]EvaluationCount, error) {
	var out []EvaluationCount
	err := cache.CacheAside(context.Background(), CacheKeyEvaluationDistribution, &out, dashboardTTL(), func() error {
		return database.Database.Db.Model(&models.Report{}).
			Select("evaluation, count(*) as count").
			Where("is_deleted = ?", false).
			Group("evaluation").
			Scan(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearDashboardCache unconditionally evicts all three dashboard keys.
func ClearDashboardCache() error {
	return cache.Delete(context.Background(),
		CacheKeyAnalytics, CacheKeyStats, CacheKeyEvaluationDistribution)
}

func computeAnalytics(out *DashboardAnalytics) error {
	db := database.Database.Db
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	// Month bucketing is done in Go; date functions differ between postgres
	// and the sqlite test database.
	var created []time.Time
	if err := db.Model(&models.Request{}).
		Where("is_deleted = ? AND created_at >= ?", false, since).
		Pluck("created_at", &created).Error; err != nil {
		return err
	}

	buckets := make(map[string]int)
	for _, ts := range created {
		buckets[ts.Format("2006-01")]++
	}
	months := make([]MonthlyCount, 0, 6)
	for i := 0; i < 6; i++ {
		m := since.AddDate(0, i, 0).Format("2006-01")
		months = append(months, MonthlyCount{Month: m, Count: buckets[m]})
	}
	out.MonthlyRequests = months

	if err := db.Model(&models.Payment{}).
		Where("payment_status = ? AND is_deleted = ?", models.PaymentStatusVerified, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.VerifiedFeeTotal).Error; err != nil {
		return err
	}

	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	if err := db.Model(&models.Certificate{}).
		Where("is_deleted = ? AND issued_at >= ?", false, yearStart).
		Count(&out.CertificatesIssued).Error; err != nil {
		return err
	}

	return db.Where("is_deleted = ?", false).
		Order("created_at desc").Limit(5).
		Find(&out.RecentRequests).Error
}

func computeStats(out *DashboardStats) error {
	db := database.Database.Db

	type countQuery struct {
		dest  *int64
		model interface{}
		where []interface{}
	}
	counts := []countQuery{
		{&out.TotalRequests, &models.Request{}, []interface{}{"is_deleted = ?", false}},
		{&out.PendingRequests, &models.Request{}, []interface{}{"is_deleted = ? AND status = ?", false, models.RequestStatusPending}},
		{&out.ApprovedRequests, &models.Request{}, []interface{}{"is_deleted = ? AND status = ?", false, models.RequestStatusApproved}},
		{&out.RejectedRequests, &models.Request{}, []interface{}{"is_deleted = ? AND status = ?", false, models.RequestStatusRejected}},
		{&out.TotalPayments, &models.Payment{}, []interface{}{"is_deleted = ?", false}},
		{&out.PendingPayments, &models.Payment{}, []interface{}{"is_deleted = ? AND payment_status = ?", false, models.PaymentStatusPending}},
		{&out.VerifiedPayments, &models.Payment{}, []interface{}{"is_deleted = ? AND payment_status = ?", false, models.PaymentStatusVerified}},
		{&out.RejectedPayments, &models.Payment{}, []interface{}{"is_deleted = ? AND payment_status = ?", false, models.PaymentStatusRejected}},
		{&out.CertificatesGenerated, &models.Certificate{}, []interface{}{"is_deleted = ? AND status = ?", false, models.CertificateStatusGenerated}},
		{&out.CertificatesSent, &models.Certificate{}, []interface{}{"is_deleted = ? AND status = ?", false, models.CertificateStatusSent}},
		{&out.CertificatesCollected, &models.Certificate{}, []interface{}{"is_deleted = ? AND status = ?", false, models.CertificateStatusCollected}},
		{&out.TotalUsers, &models.User{}, []interface{}{"is_deleted = ?", false}},
		{&out.PendingReminders, &models.Reminder{}, []interface{}{"status = ?", models.ReminderStatusPending}},
	}
	for _, q := range counts {
		if err := db.Model(q.model).Where(q.where[0], q.where[1:]...).Count(q.dest).Error; err != nil {
			return err
		}
	}

	return db.Model(&models.Payment{}).
		Where("payment_status = ? AND is_deleted = ?", models.PaymentStatusVerified, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.VerifiedAmount).Error
}
