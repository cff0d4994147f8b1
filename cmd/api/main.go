package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetbrief-team/meetbrief/pkg/validator"

	"github.com/meetbrief-team/meetbrief/internal/adapter/handler"
	"github.com/meetbrief-team/meetbrief/internal/adapter/repository"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/cache"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/database"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/daily"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/external/oauth"
	httpmw "github.com/meetbrief-team/meetbrief/internal/infrastructure/http/middleware"
	"github.com/meetbrief-team/meetbrief/internal/infrastructure/storage"
	"github.com/meetbrief-team/meetbrief/internal/usecase/auth"
	"github.com/meetbrief-team/meetbrief/internal/usecase/briefing"
	"github.com/meetbrief-team/meetbrief/internal/usecase/room"
	transcriptuc "github.com/meetbrief-team/meetbrief/internal/usecase/transcript"
	pkgai "github.com/meetbrief-team/meetbrief/pkg/ai"
	"github.com/meetbrief-team/meetbrief/pkg/config"
	"github.com/meetbrief-team/meetbrief/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply SQL migrations only when explicitly enabled in config.
	// Production deployments should run them from CI/CD instead.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and run sql-migrate from the deploy pipeline.")
		}
		log.Println("🔄 Applying SQL migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; apply them with sql-migrate in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)

	// Initialize video platform client
	log.Println("🎥 Initializing video platform client...")
	dailyClient := daily.NewClient(&cfg.Daily)

	// Initialize generative model client
	log.Println("🤖 Initializing generative model client...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	briefingService := briefing.NewService(geminiClient, logger)

	// Initialize caption archive (optional)
	var archive transcriptuc.Archiver
	if cfg.Storage.Enabled {
		log.Println("🗄️  Initializing caption archive...")
		captionArchive, err := storage.NewCaptionArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize caption archive: %v", err)
		}
		archive = captionArchive
	} else {
		log.Println("🗄️  Caption archive disabled")
	}

	// Initialize OAuth provider
	log.Println("🔐 Initializing OAuth provider...")
	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		cfg.OAuth.Google.RedirectURL,
	)

	// Initialize state manager with Redis for CSRF protection
	log.Println("🔒 Initializing state manager...")
	stateManager := oauth.NewStateManager(redisClient)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, googleProvider, stateManager, jwtManager, logger)
	roomService := room.NewService(dailyClient, roomRepo, logger)
	transcriptService := transcriptuc.NewService(
		dailyClient,
		transcriptRepo,
		roomRepo,
		briefingService,
		archive,
		redisClient,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	roomHandler := handler.NewRoom(roomService, logger)
	transcriptHandler := handler.NewTranscript(transcriptService, logger)
	webhookHandler := handler.NewWebhook(transcriptService, logger)
	log.Println("✅ Handlers initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(authService)
	router := handler.NewRouter(cfg, authHandler, roomHandler, transcriptHandler, webhookHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
