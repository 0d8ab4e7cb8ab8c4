package dashboardController

import (
	"landcert/middleware"
	"landcert/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAnalytics serves the cached analytics aggregate.
func GetAnalytics(c *fiber.Ctx) error {
	analytics, err := utils.GetDashboardAnalytics()
	if err != nil {
		log.Printf("Error computing dashboard analytics: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", analytics)
}

// GetStats serves the cached totals aggregate.
func GetStats(c *fiber.Ctx) error {
	stats, err := utils.GetDashboardStats()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}

// GetEvaluationDistribution serves the cached evaluation breakdown.
func GetEvaluationDistribution(c *fiber.Ctx) error {
	distribution, err := utils.GetEvaluationDistribution()
	if err != nil {
		log.Printf("Error computing evaluation distribution: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluation distribution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation distribution fetched successfully!", fiber.Map{
		"distribution": distribution,
	})
}
