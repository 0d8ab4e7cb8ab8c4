package models

import (
	"time"
)

// StatusType names which lifecycle a status transition belongs to.
type StatusType string

const (
	StatusTypePayment     StatusType = "payment"
	StatusTypeCertificate StatusType = "certificate"
	StatusTypeApplication StatusType = "application"
)

// StatusHistory is an append-only log of status transitions. Rows are never
// mutated after creation; one row per transition.
type StatusHistory struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	RequestID  uint       `gorm:"not null;index" json:"request_id"`
	StatusType StatusType `gorm:"type:varchar(20);not null;index" json:"status_type"`
	OldStatus  string     `json:"old_status"`
	NewStatus  string     `gorm:"not null" json:"new_status"`
	ChangedBy  uint       `json:"changed_by"` // 0 means system
	Notes      string     `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (StatusHistory) TableName() string {
	return "status_histories"
}
