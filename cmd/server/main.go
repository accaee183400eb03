package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/nocv-se/nocv-backend/internal/config"
	"github.com/nocv-se/nocv-backend/internal/domain/fiber/handler"
	"github.com/nocv-se/nocv-backend/internal/middleware"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/repository"
	"github.com/nocv-se/nocv-backend/internal/service"
	"github.com/nocv-se/nocv-backend/internal/usecase"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	if appConfig.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 12 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	applicationRepo := repository.NewApplicationRepository(db)
	roleProfileRepo := repository.NewRoleProfileRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	presentationRepo := repository.NewPresentationRepository(db)

	openRouter := service.NewOpenRouterService()
	gemini, err := service.NewGeminiService(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo, applicationRepo, roleProfileRepo, openRouter)
	presentationUC := usecase.NewPresentationUsecase(presentationRepo)
	roleProfileUC := usecase.NewRoleProfileUsecase(roleProfileRepo, gemini)

	assessmentHandler := handler.NewAssessmentHandler(assessmentUC)
	presentationHandler := handler.NewPresentationHandler(presentationUC)
	roleProfileHandler := handler.NewRoleProfileHandler(roleProfileUC)

	// Share links are the only unauthenticated surface besides the healthcheck.
	presentationHandler.RegisterPublicRoutes(app)

	api := app.Group("/api/v1", middleware.RequireAuth())
	assessmentHandler.RegisterRoutes(api)
	presentationHandler.RegisterRoutes(api)
	roleProfileHandler.RegisterRoutes(api)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// uuid-ossp backs the uuid_generate_v4 defaults, vector the role-profile
	// embeddings.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatal("could not create uuid-ossp extension: ", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error; err != nil {
		log.Fatal("could not create vector extension: ", err)
	}

	err = db.AutoMigrate(
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.RoleProfile{},
		&model.Transcript{},
		&model.Assessment{},
		&model.Presentation{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
