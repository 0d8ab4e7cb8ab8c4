package main

import (
	"landcert/cache"
	"landcert/config"
	"landcert/database"
	adminRoutes "landcert/routers/adminRoutes"
	authRoutes "landcert/routers/authRoutes"
	certificateRoutes "landcert/routers/certificateRoutes"
	dashboardRoutes "landcert/routers/dashboardRoutes"
	paymentRoutes "landcert/routers/paymentRoutes"
	reportRoutes "landcert/routers/reportRoutes"
	requestRoutes "landcert/routers/requestRoutes"
	"landcert/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	cache.InitRedis(config.AppConfig.RedisAddr)
	defer cache.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	requestRoutes.SetupRequestRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
