package reportController

import (
	"fmt"
	"landcert/config"
	"landcert/database"
	"landcert/middleware"
	"landcert/models"
	"landcert/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReport files a staff evaluation report for an applicant.
func CreateReport(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCreateReport").(*struct {
		ApplicantName    string `json:"applicant_name"`
		ApplicantAddress string `json:"applicant_address"`
		ProjectName      string `json:"project_name"`
		Evaluation       string `json:"evaluation"`
		Findings         string `json:"findings"`
		Recommendations  string `json:"recommendations"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	report := models.Report{
		ApplicantName:    reqData.ApplicantName,
		ApplicantAddress: reqData.ApplicantAddress,
		ProjectName:      reqData.ProjectName,
		EvaluatorID:      userID,
		Findings:         reqData.Findings,
		Recommendations:  reqData.Recommendations,
	}
	if reqData.Evaluation != "" {
		report.Evaluation = models.Evaluation(reqData.Evaluation)
	}

	if err := database.Database.Db.Create(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create report!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionCreated, "Report", report.ID, nil, report,
		fmt.Sprintf("Evaluation report filed for %s", report.ApplicantName))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Report created successfully!", report)
}

// UpdateReport revises an evaluation report. The evaluation recorded here
// overrides the request status for display.
func UpdateReport(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	reportID, err := c.ParamsInt("id")
	if err != nil || reportID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid report id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateReport").(*struct {
		Evaluation      *string `json:"evaluation"`
		Findings        *string `json:"findings"`
		Recommendations *string `json:"recommendations"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var report models.Report
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reportID, false).First(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Report not found!", nil)
	}

	oldValues := report

	if reqData.Evaluation != nil {
		report.Evaluation = models.Evaluation(*reqData.Evaluation)
	}
	if reqData.Findings != nil {
		report.Findings = *reqData.Findings
	}
	if reqData.Recommendations != nil {
		report.Recommendations = *reqData.Recommendations
	}
	report.EvaluatorID = userID

	if err := database.Database.Db.Save(&report).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update report!", nil)
	}

	utils.RecordEntityWrite(c, userID, models.AuditActionUpdated, "Report", report.ID, oldValues, report,
		fmt.Sprintf("Evaluation report #%d updated", report.ID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report updated successfully!", report)
}

// ListReports returns a paginated staff view, optionally filtered by evaluation.
func ListReports(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedListReports").(*struct {
		Page       *int    `query:"page"`
		Limit      *int    `query:"limit"`
		Evaluation *string `query:"evaluation"`
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

	db := database.Database.Db.Model(&models.Report{}).Where("is_deleted = ?", false)
	if reqData != nil && reqData.Evaluation != nil && *reqData.Evaluation != "" {
		db = db.Where("evaluation = ?", *reqData.Evaluation)
	}

	var total int64
	db.Count(&total)

	var reports []models.Report
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&reports).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reports!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully!", fiber.Map{
		"reports": reports,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
