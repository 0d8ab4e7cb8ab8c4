package requestValidators

import (
	"landcert/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validLandUseTypes = map[string]bool{
	"residential":  true,
	"commercial":   true,
	"industrial":   true,
	"agricultural": true,
}

func CreateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ApplicantName = strings.TrimSpace(reqData.ApplicantName)
		if reqData.ApplicantName == "" {
			errors["applicant_name"] = "Applicant name is required!"
		} else if len(reqData.ApplicantName) > 100 {
			errors["applicant_name"] = "Applicant name must not exceed 100 characters!"
		}

		reqData.ApplicantAddress = strings.TrimSpace(reqData.ApplicantAddress)
		if reqData.ApplicantAddress == "" {
			errors["applicant_address"] = "Applicant address is required!"
		}

		reqData.ProjectName = strings.TrimSpace(reqData.ProjectName)
		if reqData.ProjectName == "" {
			errors["project_name"] = "Project name is required!"
		} else if len(reqData.ProjectName) > 150 {
			errors["project_name"] = "Project name must not exceed 150 characters!"
		}

		if reqData.ProjectArea < 0 {
			errors["project_area"] = "Project area cannot be negative!"
		}

		if reqData.LandUseType != "" && !validLandUseTypes[strings.ToLower(reqData.LandUseType)] {
			errors["land_use_type"] = "Invalid land use type! Allowed: residential, commercial, industrial, agricultural"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateRequest", reqData)
		return c.Next()
	}
}

func ListRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Status != nil && *reqData.Status != "" {
			valid := map[string]bool{"pending": true, "approved": true, "rejected": true}
			if !valid[strings.ToLower(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: pending, approved, rejected."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListRequests", reqData)
		return c.Next()
	}
}

func UpdateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProjectName     *string  `json:"project_name"`
			ProjectLocation *string  `json:"project_location"`
			ProjectArea     *float64 `json:"project_area"`
			LandUseType     *string  `json:"land_use_type"`
			Description     *string  `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProjectName != nil {
			*reqData.ProjectName = strings.TrimSpace(*reqData.ProjectName)
			if *reqData.ProjectName == "" {
				errors["project_name"] = "Project name cannot be empty!"
			}
		}
		if reqData.ProjectArea != nil && *reqData.ProjectArea < 0 {
			errors["project_area"] = "Project area cannot be negative!"
		}
		if reqData.LandUseType != nil && *reqData.LandUseType != "" && !validLandUseTypes[strings.ToLower(*reqData.LandUseType)] {
			errors["land_use_type"] = "Invalid land use type! Allowed: residential, commercial, industrial, agricultural"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateRequest", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
			Notes  string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		valid := map[string]bool{"pending": true, "approved": true, "rejected": true}
		if !valid[reqData.Status] {
			errors["status"] = "Invalid status! Must be one of: pending, approved, rejected."
		}
		if reqData.Status == "rejected" && strings.TrimSpace(reqData.Notes) == "" {
			errors["notes"] = "Notes are required when rejecting a request!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateStatus", reqData)
		return c.Next()
	}
}
