package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/planforge/internal/catalog"
	"github.com/mansoorceksport/planforge/internal/config"
	"github.com/mansoorceksport/planforge/internal/handler"
	"github.com/mansoorceksport/planforge/internal/repository"
	"github.com/mansoorceksport/planforge/internal/service"
	"github.com/mansoorceksport/planforge/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Catalogs are compiled in; indexes are built once here and read-only after.
	foodTable := catalog.NewFoodTable()
	exerciseTable := catalog.NewExerciseTable()

	// Repositories
	planRepo := repository.NewRedisPlanRepository(deps.RedisClient)

	// Services
	plannerService := service.NewPlannerService(foodTable, exerciseTable, nil)

	// Handlers
	planHandler := handler.NewPlanHandler(plannerService, planRepo)
	catalogHandler := handler.NewCatalogHandler(foodTable, exerciseTable)

	app := fiber.New(fiber.Config{
		AppName:      "PlanForge API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "planforge",
		})
	})

	// API v1 routes
	v1 := app.Group("/api/v1")

	plans := v1.Group("/plans")
	plans.Post("/generate", planHandler.GeneratePlan)
	plans.Post("/", planHandler.SavePlan)
	plans.Get("/", planHandler.ListPlans)
	plans.Get("/overview", planHandler.GetPlansOverview)
	plans.Get("/active", planHandler.GetActivePlan)
	plans.Get("/:id", planHandler.GetPlan)
	plans.Delete("/:id", planHandler.DeletePlan)
	plans.Post("/:id/activate", planHandler.ActivatePlan)
	plans.Get("/:id/export", planHandler.ExportPlan)

	v1.Get("/foods", catalogHandler.ListFoods)
	v1.Get("/foods/:id", catalogHandler.GetFood)
	v1.Get("/exercises", catalogHandler.ListExercises)
	v1.Get("/exercises/:id", catalogHandler.GetExercise)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
