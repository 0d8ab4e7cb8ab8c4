package reportValidators

import (
	"landcert/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validEvaluations = map[string]bool{"pending": true, "approved": true, "rejected": true}

func CreateReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ApplicantName    string `json:"applicant_name"`
			ApplicantAddress string `json:"applicant_address"`
			ProjectName      string `json:"project_name"`
			Evaluation       string `json:"evaluation"`
			Findings         string `json:"findings"`
			Recommendations  string `json:"recommendations"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.ApplicantName = strings.TrimSpace(reqData.ApplicantName)
		if reqData.ApplicantName == "" {
			errors["applicant_name"] = "Applicant name is required!"
		}
		reqData.ApplicantAddress = strings.TrimSpace(reqData.ApplicantAddress)
		if reqData.ApplicantAddress == "" {
			errors["applicant_address"] = "Applicant address is required!"
		}
		if reqData.Evaluation != "" && !validEvaluations[strings.ToLower(reqData.Evaluation)] {
			errors["evaluation"] = "Invalid evaluation! Must be one of: pending, approved, rejected."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateReport", reqData)
		return c.Next()
	}
}

func UpdateReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Evaluation      *string `json:"evaluation"`
			Findings        *string `json:"findings"`
			Recommendations *string `json:"recommendations"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Evaluation != nil && !validEvaluations[strings.ToLower(*reqData.Evaluation)] {
			errors["evaluation"] = "Invalid evaluation! Must be one of: pending, approved, rejected."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateReport", reqData)
		return c.Next()
	}
}

func ListReports() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page       *int    `query:"page"`
			Limit      *int    `query:"limit"`
			Evaluation *string `query:"evaluation"`
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
		if reqData.Evaluation != nil && *reqData.Evaluation != "" && !validEvaluations[strings.ToLower(*reqData.Evaluation)] {
			errors["evaluation"] = "Invalid evaluation! Must be one of: pending, approved, rejected."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedListReports", reqData)
		return c.Next()
	}
}
