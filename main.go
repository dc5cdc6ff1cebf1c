package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/shanfullstackdev/factory-management-system/app/config"
	"github.com/shanfullstackdev/factory-management-system/app/database"
	"github.com/shanfullstackdev/factory-management-system/app/routes/auth"
	"github.com/shanfullstackdev/factory-management-system/app/routes/dashboard"
	"github.com/shanfullstackdev/factory-management-system/app/routes/employeeauth"
	"github.com/shanfullstackdev/factory-management-system/app/routes/employees"
	"github.com/shanfullstackdev/factory-management-system/app/routes/payments"
	"github.com/shanfullstackdev/factory-management-system/app/routes/production"
	"github.com/shanfullstackdev/factory-management-system/app/routes/reports"
	"github.com/shanfullstackdev/factory-management-system/app/services"
)

func main() {
	// Initialize database (fatal if unreachable)
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// OTP store: Redis when configured, in-process otherwise
	var otpStore services.OTPStore
	if addr := config.AppConfig.RedisAddr; addr != "" {
		redisStore := services.NewRedisOTPStore(addr, config.AppConfig.RedisDB)
		if err := redisStore.Ping(); err != nil {
			log.Fatal("Cannot establish Redis connection:", err)
		}
		log.Println("Using Redis OTP store at", addr)
		otpStore = redisStore
	} else {
		log.Println("REDIS_ADDR not set, using in-memory OTP store")
		otpStore = services.NewMemoryOTPStore()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.SendString("Factory Management Backend Running")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup employee auth routes (OTP login)
	employeeauth.SetupEmployeeAuthRoutes(app, otpStore)

	// Setup employee routes
	employees.SetupEmployeeRoutes(app)

	// Setup production routes
	production.SetupProductionRoutes(app)

	// Setup payment routes
	payments.SetupPaymentRoutes(app)

	// Setup report routes
	reports.SetupReportRoutes(app)

	// Dashboard summary
	app.Get("/api/dashboard", auth.AdminMiddleware, dashboard.GetDashboardAPI)

	// Static admin and employee pages
	app.Static("/", "./frontend")

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
