package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit actions recorded for mutating and notable read operations.
const (
	AuditActionCreated  = "created"
	AuditActionUpdated  = "updated"
	AuditActionDeleted  = "deleted"
	AuditActionViewed   = "viewed"
	AuditActionExported = "exported"
	AuditActionLogin    = "login"
)

// AuditLog is an append-only observability record for every mutating action.
// It has no downstream consumers; nothing reads it back on the hot path.
type AuditLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	EventID     string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"event_id"`
	UserID      uint           `gorm:"index" json:"user_id"` // 0 means system
	Action      string         `gorm:"type:varchar(20);not null;index" json:"action"`
	ModelType   string         `gorm:"type:varchar(50);not null;index" json:"model_type"`
	ModelID     uint           `gorm:"index" json:"model_id"`
	OldValues   datatypes.JSON `json:"old_values"`
	NewValues   datatypes.JSON `json:"new_values"`
	IP          string         `json:"ip"`
	UserAgent   string         `json:"user_agent"`
	URL         string         `json:"url"`
	Method      string         `gorm:"type:varchar(10)" json:"method"`
	Description string         `gorm:"type:text" json:"description"`
	Metadata    datatypes.JSON `json:"metadata"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
