package utils

import (
	"landcert/database"
	"landcert/models"
	"log"
)

// LogStatusChange is the single integration point for every status-bearing
// mutation in the system. It appends one immutable history row and then hands
// the row to the notification dispatcher. The history write is authoritative
// and its failure propagates; the notification is best-effort.
func LogStatusChange(requestID uint, statusType models.StatusType, oldStatus, newStatus string, changedBy uint, notes string) (*models.StatusHistory, error) {
	history := models.StatusHistory{
		RequestID:  requestID,
		StatusType: statusType,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		ChangedBy:  changedBy,
		Notes:      notes,
	}

	if err := database.Database.Db.Create(&history).Error; err != nil {
		return nil, err
	}

	dispatchStatusNotification(&history)

	return &history, nil
}

// suppressGenericMail reports whether a tailored mail from a controller flow
// already covers this transition, so the generic status mail must not go out.
func suppressGenericMail(statusType models.StatusType, newStatus string) bool {
	switch statusType {
	case models.StatusTypePayment:
		return newStatus == string(models.PaymentStatusVerified) ||
			newStatus == string(models.PaymentStatusRejected)
	case models.StatusTypeCertificate:
		return newStatus == string(models.CertificateStatusGenerated)
	case models.StatusTypeApplication:
		return newStatus == string(models.RequestStatusApproved) ||
			newStatus == string(models.RequestStatusRejected)
	}
	return false
}

// statusMailSubject maps a transition to its subject line, falling back to a
// generic subject for unmapped pairs.
func statusMailSubject(statusType models.StatusType, newStatus string) string {
	switch statusType {
	case models.StatusTypePayment:
		if newStatus == string(models.PaymentStatusPending) {
			return "Payment Receipt Received - Under Review"
		}
	case models.StatusTypeCertificate:
		switch newStatus {
		case string(models.CertificateStatusSent):
			return "Your Certificate Has Been Dispatched"
		case string(models.CertificateStatusCollected):
			return "Certificate Collection Confirmed"
		}
	case models.StatusTypeApplication:
		if newStatus == string(models.RequestStatusPending) {
			return "Your Application Is Under Review"
		}
	}
	return "Status Update on Your Certification Request"
}

// dispatchStatusNotification sends the generic status-change mail for a new
// history row unless the transition is covered by a tailored controller mail.
// A missing request or owner is a logged no-op, and a failed send never
// reaches the caller; the state transition itself already committed.
func dispatchStatusNotification(history *models.StatusHistory) {
	db := database.Database.Db

	var request models.Request
	if err := db.Where("id = ?", history.RequestID).First(&request).Error; err != nil {
		log.Printf("[STATUS-NOTIFY] Request %d not found for history %d, skipping notification", history.RequestID, history.ID)
		return
	}

	if request.UserID == 0 {
		log.Printf("[STATUS-NOTIFY] Request %d has no linked user, skipping notification", request.ID)
		return
	}

	if suppressGenericMail(history.StatusType, history.NewStatus) {
		return
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", request.UserID, false).First(&user).Error; err != nil {
		log.Printf("[STATUS-NOTIFY] Owner %d of request %d not found, skipping notification", request.UserID, request.ID)
		return
	}

	subject := statusMailSubject(history.StatusType, history.NewStatus)
	if err := SendStatusChangeEmail(user.Email, user.Name, subject,
		string(history.StatusType), history.OldStatus, history.NewStatus, request.ID); err != nil {
		log.Printf("[STATUS-NOTIFY] Failed to send status mail to %s for request %d (%s: %s -> %s): %v",
			user.Email, request.ID, history.StatusType, history.OldStatus, history.NewStatus, err)
	}
}
