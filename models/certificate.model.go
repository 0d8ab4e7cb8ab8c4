package models

import (
	"time"

	"gorm.io/gorm"
)

// CertificateStatus tracks a certificate from issuance to pickup.
type CertificateStatus string

const (
	CertificateStatusGenerated CertificateStatus = "generated"
	CertificateStatusSent      CertificateStatus = "sent"
	CertificateStatusCollected CertificateStatus = "collected"
)

// Certificate is the issued land-use certificate for an approved, paid request.
type Certificate struct {
	gorm.Model
	RequestID         uint              `gorm:"not null;index" json:"request_id"`
	PaymentID         uint              `gorm:"not null" json:"payment_id"`
	CertificateNumber string            `gorm:"unique;not null" json:"certificate_number"`
	Status            CertificateStatus `gorm:"type:varchar(20);default:'generated'" json:"status"`
	IssuedBy          uint              `json:"issued_by"`
	IssuedAt          time.Time         `json:"issued_at"`
	ExpiresAt         *time.Time        `json:"expires_at"`
	FilePath          string            `json:"file_path"` // stored PDF, attached to the issued mail when present
	IsDeleted         bool              `gorm:"default:false" json:"is_deleted"`

	Request Request `gorm:"foreignKey:RequestID" json:"-"`
}

// CertificateSequence is the per-year counter backing certificate numbering.
// last_number is advanced with an atomic UPDATE so concurrent issuance in the
// same year cannot hand out the same sequence.
type CertificateSequence struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	Year       int  `gorm:"uniqueIndex;not null" json:"year"`
	LastNumber int  `gorm:"not null;default:0" json:"last_number"`
}
