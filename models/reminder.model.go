package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReminderType is the kind of deferred notification a reminder carries.
type ReminderType string

const (
	ReminderTypePaymentDue        ReminderType = "payment_due"
	ReminderTypeDocumentPending   ReminderType = "document_pending"
	ReminderTypeCertificateExpiry ReminderType = "certificate_expiry"
)

// ReminderStatus tracks a reminder through the sweep. processing is the
// claim state: a sweep moves pending → processing before sending so a
// concurrent sweep cannot pick up the same row.
type ReminderStatus string

const (
	ReminderStatusPending    ReminderStatus = "pending"
	ReminderStatusProcessing ReminderStatus = "processing"
	ReminderStatusSent       ReminderStatus = "sent"
	ReminderStatusFailed     ReminderStatus = "failed"
)

// Reminder is a scheduled future notification. It is created ahead of time
// and mutated exactly once by the sweep, to sent or failed. failed is
// terminal; re-sending requires scheduling a new reminder.
type Reminder struct {
	gorm.Model
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Type        ReminderType   `gorm:"type:varchar(30);not null" json:"type"`
	RelatedID   uint           `gorm:"index" json:"related_id"`
	RelatedType string         `gorm:"type:varchar(30);index" json:"related_type"` // request, certificate
	ScheduledAt time.Time      `gorm:"not null;index" json:"scheduled_at"`
	SentAt      *time.Time     `json:"sent_at"`
	Status      ReminderStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Message     string         `gorm:"type:text" json:"message"`
	Metadata    datatypes.JSON `json:"metadata"`
}
