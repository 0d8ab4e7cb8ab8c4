package models

import "gorm.io/gorm"

// Evaluation is the authoritative outcome recorded on a Report. When set it
// overrides the coarser Request.Status for display.
type Evaluation string

const (
	EvaluationPending  Evaluation = "pending"
	EvaluationApproved Evaluation = "approved"
	EvaluationRejected Evaluation = "rejected"
)

// Report is the staff evaluation report, linked to a Request by applicant
// name + address matching.
type Report struct {
	gorm.Model
	ApplicantName    string     `gorm:"not null;index" json:"applicant_name"`
	ApplicantAddress string     `gorm:"not null;index" json:"applicant_address"`
	ProjectName      string     `json:"project_name"`
	Evaluation       Evaluation `gorm:"type:varchar(20);default:'pending'" json:"evaluation"`
	EvaluatorID      uint       `gorm:"index" json:"evaluator_id"`
	Findings         string     `gorm:"type:text" json:"findings"`
	Recommendations  string     `gorm:"type:text" json:"recommendations"`
	IsDeleted        bool       `gorm:"default:false" json:"is_deleted"`
}
