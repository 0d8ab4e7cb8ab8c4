package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RecordEntityWrite is the post-write side-effect chain for Request, Payment
// and Report (and Certificate, for audit completeness). Controllers call it
// after every committed write: first the dashboard cache is invalidated, then
// an audit entry is written. The two steps are isolated from each other and
// from the caller; the write itself is authoritative and already committed,
// so neither failure propagates.
func RecordEntityWrite(c *fiber.Ctx, userID uint, action, modelType string, modelID uint, oldValues, newValues interface{}, description string) {
	if err := ClearDashboardCache(); err != nil {
		log.Printf("[OBSERVER] Cache invalidation failed after %s %s #%d: %v", action, modelType, modelID, err)
	}

	if err := RecordAudit(c, userID, action, modelType, modelID, oldValues, newValues, description); err != nil {
		log.Printf("[OBSERVER] Audit write failed after %s %s #%d: %v", action, modelType, modelID, err)
	}
}
