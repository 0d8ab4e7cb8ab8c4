package utils

import (
	"landcert/database"
	"landcert/models"
)

// EffectiveRequestStatus resolves the status shown for a request. When a
// report exists for the same applicant name + address and carries an
// evaluation, the evaluation wins over the coarser request status. The
// name+address matching (rather than a foreign key) mirrors how the field
// office files its paper reports.
func EffectiveRequestStatus(request *models.Request) string {
	var report models.Report
	err := database.Database.Db.
		Where("applicant_name = ? AND applicant_address = ? AND is_deleted = ?",
			request.ApplicantName, request.ApplicantAddress, false).
		Order("updated_at desc").
		First(&report).Error
	if err == nil && report.Evaluation != "" {
		return string(report.Evaluation)
	}
	return string(request.Status)
}
