package requestController

import (
	"fmt"
	"landcert/config"
	"landcert/database"
	"landcert/middleware"
	"landcert/models"
	"landcert/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest handles an applicant submitting a new certification request.
func CreateRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreateRequest").(*struct {
		ApplicantName    string  `json:"applicant_name"`
		ApplicantEmail   string  `json:"applicant_email"`
		ApplicantMobile  string  `json:"applicant_mobile"`
		ApplicantAddress string  `json:"applicant_address"`
		ProjectName      string  `json:"project_name"`
		ProjectLocation  string  `json:"project_location"`
		ProjectArea      float64 `json:"project_area"`
		LandUseType      string  `json:"land_use_type"`
		Description      string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	request := models.Request{
		ApplicantName:    reqData.ApplicantName,
		ApplicantEmail:   reqData.ApplicantEmail,
		ApplicantMobile:  reqData.ApplicantMobile,
		ApplicantAddress: reqData.ApplicantAddress,
		ProjectName:      reqData.ProjectName,
		ProjectLocation:  reqData.ProjectLocation,
		ProjectArea:      reqData.ProjectArea,
		LandUseType:      reqData.LandUseType,
		Description:      reqData.Description,
		UserID:           userID,
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		log.Printf("Error creating request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit request!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionCreated, "Request", request.ID, nil, request,
		fmt.Sprintf("Certification request submitted for project %q", request.ProjectName))

	// Submission must succeed even if the confirmation mail does not.
	if err := utils.SendSubmissionReceivedEmail(user.Email, user.Name, request.ProjectName, request.ID); err != nil {
		log.Printf("Failed to send submission confirmation to %s for request %d: %v", user.Email, request.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Request submitted successfully!", request)
}

// ListRequests returns a paginated list for staff, optionally filtered by status.
func ListRequests(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedListRequests").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})

	page := 1
	limit := config.AppConfig.PageSize
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Request{}).Where("is_deleted = ?", false)
	if reqData != nil && reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", *reqData.Status)
	}

	var total int64
	db.Count(&total)

	var requests []models.Request
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	type RequestWithStatus struct {
		models.Request
		EffectiveStatus string `json:"effective_status"`
	}
	result := make([]RequestWithStatus, len(requests))
	for i := range requests {
		result[i] = RequestWithStatus{
			Request:         requests[i],
			EffectiveStatus: utils.EffectiveRequestStatus(&requests[i]),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", fiber.Map{
		"requests": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetRequest returns one request with its status history and effective status.
func GetRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var request models.Request
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	// Applicants can only see their own requests.
	if user.Role == "APPLICANT" && request.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var history []models.StatusHistory
	database.Database.Db.Where("request_id = ?", request.ID).Order("created_at asc").Find(&history)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request fetched successfully!", fiber.Map{
		"request":          request,
		"effective_status": utils.EffectiveRequestStatus(&request),
		"status_history":   history,
	})
}

// UpdateRequest lets staff edit the descriptive fields of a request.
func UpdateRequest(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateRequest").(*struct {
		ProjectName     *string  `json:"project_name"`
		ProjectLocation *string  `json:"project_location"`
		ProjectArea     *float64 `json:"project_area"`
		LandUseType     *string  `json:"land_use_type"`
		Description     *string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var request models.Request
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	oldValues := request

	if reqData.ProjectName != nil {
		request.ProjectName = *reqData.ProjectName
	}
	if reqData.ProjectLocation != nil {
		request.ProjectLocation = *reqData.ProjectLocation
	}
	if reqData.ProjectArea != nil {
		request.ProjectArea = *reqData.ProjectArea
	}
	if reqData.LandUseType != nil {
		request.LandUseType = *reqData.LandUseType
	}
	if reqData.Description != nil {
		request.Description = *reqData.Description
	}

	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionUpdated, "Request", request.ID, oldValues, request,
		fmt.Sprintf("Request #%d details updated", request.ID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request updated successfully!", request)
}

// UpdateRequestStatus moves a request through its application lifecycle. The
// transition flows through the status history recorder; approval and
// rejection send tailored mails here, which the generic dispatcher suppresses.
func UpdateRequestStatus(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateStatus").(*struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var request models.Request
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	oldStatus := request.Status
	newStatus := models.RequestStatus(reqData.Status)
	if oldStatus == newStatus {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request already has this status!", nil)
	}

	oldValues := request
	request.Status = newStatus
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update status!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionUpdated, "Request", request.ID, oldValues, request,
		fmt.Sprintf("Request #%d status changed from %s to %s", request.ID, oldStatus, newStatus))

	if _, err := utils.LogStatusChange(request.ID, models.StatusTypeApplication,
		string(oldStatus), string(newStatus), userID, reqData.Notes); err != nil {
		log.Printf("Failed to log status change for request %d: %v", request.ID, err)
	}

	var owner models.User
	ownerFound := database.Database.Db.Where("id = ? AND is_deleted = ?", request.UserID, false).First(&owner).Error == nil

	switch newStatus {
	case models.RequestStatusApproved:
		// Intake record for the approved application
		application := models.Application{
			ApplicantName:    request.ApplicantName,
			ApplicantAddress: request.ApplicantAddress,
			ProjectName:      request.ProjectName,
			FileNumber:       fmt.Sprintf("APP-%d", request.ID),
		}
		if err := database.Database.Db.Create(&application).Error; err != nil {
			log.Printf("Failed to create application record for request %d: %v", request.ID, err)
		}

		if ownerFound {
			if err := utils.SendApplicationApprovedEmail(owner.Email, owner.Name, request.ProjectName, request.ID); err != nil {
				log.Printf("Failed to send approval mail to %s for request %d: %v", owner.Email, request.ID, err)
			}
			if _, err := utils.SchedulePaymentReminder(owner.ID, request.ID); err != nil {
				log.Printf("Failed to schedule payment reminder for request %d: %v", request.ID, err)
			}
		}
	case models.RequestStatusRejected:
		if ownerFound {
			if err := utils.SendApplicationRejectedEmail(owner.Email, owner.Name, request.ProjectName, reqData.Notes, request.ID); err != nil {
				log.Printf("Failed to send rejection mail to %s for request %d: %v", owner.Email, request.ID, err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request status updated successfully!", request)
}

// DeleteRequest marks a request deleted. Exceptional flow, admin only.
func DeleteRequest(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	var request models.Request
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	oldValues := request
	request.IsDeleted = true
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete request!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionDeleted, "Request", request.ID, oldValues, nil,
		fmt.Sprintf("Request #%d deleted", request.ID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request deleted successfully!", nil)
}
