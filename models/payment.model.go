package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is the verification lifecycle of a fee payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment records an uploaded fee receipt for a request. It transitions
// exactly once off pending, by staff action.
type Payment struct {
	gorm.Model
	RequestID     uint          `gorm:"not null;index" json:"request_id"`
	Amount        float64       `gorm:"type:decimal(12,2);not null" json:"amount"`
	ReceiptNumber string        `json:"receipt_number"`
	ReceiptPath   string        `json:"receipt_path"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"payment_status"`
	VerifiedBy    *uint         `json:"verified_by"`
	VerifiedAt    *time.Time    `json:"verified_at"`
	Notes         string        `gorm:"type:text" json:"notes"`
	IsDeleted     bool          `gorm:"default:false" json:"is_deleted"`

	Request Request `gorm:"foreignKey:RequestID" json:"-"`
}
