package models

import "gorm.io/gorm"

// RequestStatus is the coarse lifecycle of a certification request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is an applicant's land-use certification submission.
type Request struct {
	gorm.Model
	ApplicantName    string        `gorm:"not null;index" json:"applicant_name"`
	ApplicantEmail   string        `gorm:"default:''" json:"applicant_email"`
	ApplicantMobile  string        `gorm:"default:''" json:"applicant_mobile"`
	ApplicantAddress string        `gorm:"not null;index" json:"applicant_address"`
	ProjectName      string        `gorm:"not null" json:"project_name"`
	ProjectLocation  string        `json:"project_location"`
	ProjectArea      float64       `gorm:"default:0" json:"project_area"` // square meters
	LandUseType      string        `json:"land_use_type"`                 // residential, commercial, industrial, agricultural
	Description      string        `gorm:"type:text" json:"description"`
	Status           RequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	UserID           uint          `gorm:"index" json:"user_id"`
	IsDeleted        bool          `gorm:"default:false" json:"is_deleted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
