package main

import (
	"errors"
	"fmt"
	"log"
	"runtime"
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
	"github.com/talentpulse/backend/internal/config"
	"github.com/talentpulse/backend/internal/domain/fiber/handler"
	"github.com/talentpulse/backend/internal/middleware"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/repository"
	"github.com/talentpulse/backend/internal/service"
	"github.com/talentpulse/backend/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
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
			return ctx.Status(code).JSON(fiber.Map{"error": message})
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
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	testRepo := repository.NewTestRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	authConfig := config.LoadAuthConfig()
	tokens := service.NewTokenService(authConfig.JWTSecret, authConfig.TokenExpiry)
	storage := service.NewStorageService()
	extractor := service.NewExtractorService()
	scorer := service.NewScorerService()

	authUC := usecase.NewAuthUsecase(userRepo, candidateRepo, companyRepo, tokens)
	candidateUC := usecase.NewCandidateUsecase(userRepo, candidateRepo, testRepo, storage, extractor, scorer)
	marketplaceUC := usecase.NewMarketplaceUsecase(catalogRepo, purchaseRepo, candidateRepo, companyRepo, testRepo, userRepo)
	testsUC := usecase.NewTestsUsecase(testRepo, catalogRepo, userRepo, companyRepo)

	api := app.Group("/api/v1", middleware.Authenticate(tokens, authUC))

	handler.NewAuthHandler(authUC).RegisterRoutes(api.Group("/auth"))
	handler.NewCandidateHandler(candidateUC).RegisterRoutes(
		api.Group("/candidate", middleware.RequireRoles(model.RoleCandidate)))
	handler.NewCompanyHandler(marketplaceUC, testsUC).RegisterRoutes(
		api.Group("/company", middleware.RequireRoles(model.RoleCompany)))
	handler.NewAdminHandler(marketplaceUC, testsUC, candidateUC).RegisterRoutes(
		api.Group("/admin", middleware.RequireRoles(model.RoleAdmin)))
	handler.NewMarketplaceHandler(marketplaceUC).RegisterRoutes(
		api.Group("/marketplace", middleware.RequireRoles(model.RoleCompany, model.RoleAdmin)))

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
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

	err = db.AutoMigrate(
		&model.Profile{},
		&model.Candidate{},
		&model.Company{},
		&model.Category{},
		&model.TalentPack{},
		&model.CompanyTest{},
		&model.TestQuestion{},
		&model.Purchase{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
