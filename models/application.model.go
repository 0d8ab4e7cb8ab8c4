package models

import "gorm.io/gorm"

// Application is the intake record staff open when they begin processing a
// submission. It is linked to a Request by applicant name + address matching,
// not by foreign key.
type Application struct {
	gorm.Model
	ApplicantName    string `gorm:"not null;index" json:"applicant_name"`
	ApplicantAddress string `gorm:"not null;index" json:"applicant_address"`
	ProjectName      string `json:"project_name"`
	FileNumber       string `json:"file_number"`
	ReceivedDate     string `json:"received_date"`
	Notes            string `gorm:"type:text" json:"notes"`
	IsDeleted        bool   `gorm:"default:false" json:"is_deleted"`
}
