package utils

import (
	"encoding/json"
	"landcert/database"
	"landcert/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordAudit appends one audit row for a mutating or notable action.
// oldValues/newValues may be nil (create carries only new, delete only old).
// The fiber context is optional; when present the request metadata (ip,
// user agent, url, method) is captured alongside.
func RecordAudit(c *fiber.Ctx, userID uint, action, modelType string, modelID uint, oldValues, newValues interface{}, description string) error {
	entry := models.AuditLog{
		EventID:     uuid.NewString(),
		UserID:      userID,
		Action:      action,
		ModelType:   modelType,
		ModelID:     modelID,
		OldValues:   marshalAuditValues(oldValues),
		NewValues:   marshalAuditValues(newValues),
		Description: description,
	}

	if c != nil {
		entry.IP = c.IP()
		entry.UserAgent = c.Get("User-Agent")
		entry.URL = c.OriginalURL()
		entry.Method = c.Method()
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("[AUDIT] Failed to write audit entry (%s %s #%d): %v", action, modelType, modelID, err)
		return err
	}
	return nil
}

func marshalAuditValues(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[AUDIT] Failed to marshal audit values: %v", err)
		return nil
	}
	return datatypes.JSON(b)
}
