package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cookbook/internal/auth"
	"cookbook/internal/config"
	"cookbook/internal/database"
	"cookbook/internal/database/migration"
	handlers "cookbook/internal/http/handler"
	"cookbook/internal/http/middleware"
	"cookbook/internal/otel"
	mongorepo "cookbook/internal/repository/mongo"
	"cookbook/internal/service"
	"cookbook/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local
	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize MongoDB connection (pooled client)
	client, db, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := migration.EnsureIndexes(ctx, db, loc); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	// Local-disk upload storage, directory created on boot
	store, err := storage.NewDisk(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	signer, err := auth.NewHMACSigner(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("failed to initialize token signer: %v", err)
	}

	// Initialize repositories and services
	recipeRepo := mongorepo.NewRecipeMongo(db)
	userRepo := mongorepo.NewUserMongo(db)

	recipeSvc := service.NewRecipeService(recipeRepo)
	authSvc := service.NewAuthService(userRepo, auth.NewBcryptHasher(cfg.Auth.BcryptCost), auth.NewBcryptVerifier(), signer)
	fileSvc := service.NewFileService(store, cfg.PublicBaseURL)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(loc))
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, client, recipeSvc, authSvc, fileSvc, cfg.Upload.Dir)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
