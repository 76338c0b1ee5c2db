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
	"github.com/redis/go-redis/v9"

	pkgvalidator "github.com/speakwise-team/speakwise/pkg/validator"

	"github.com/speakwise-team/speakwise/internal/adapter/handler"
	"github.com/speakwise-team/speakwise/internal/adapter/repository"
	"github.com/speakwise-team/speakwise/internal/domain/repositories"
	"github.com/speakwise-team/speakwise/internal/infrastructure/storage"
	"github.com/speakwise-team/speakwise/internal/usecase/analysis"
	"github.com/speakwise-team/speakwise/internal/usecase/scoring"
	"github.com/speakwise-team/speakwise/internal/worker"
	pkgai "github.com/speakwise-team/speakwise/pkg/ai"
	"github.com/speakwise-team/speakwise/pkg/config"
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

	// CORS middleware (uploads come straight from browser recorders)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("🔧 Initializing dependencies...")

	// Initialize job store
	var jobStore repositories.JobStore
	switch cfg.Store.Type {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		jobStore = repository.NewRedisJobStore(redisClient, cfg.Redis.JobTTL)
	default:
		log.Println("📦 Using in-memory job store")
		jobStore = repository.NewMemoryJobStore()
	}

	// Initialize object storage for audio archiving
	log.Println("🗄️  Initializing object storage...")
	var archiver handler.AudioArchiver
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable, audio archiving disabled: %v", err)
	} else {
		archiver = minioClient
	}

	// Initialize scorers
	log.Println("🤖 Initializing scorers...")
	fluencyScorer := scoring.NewFluencyScorer()
	vocabularyScorer, err := scoring.NewVocabularyScorer(logger)
	if err != nil {
		log.Fatalf("Failed to initialize vocabulary scorer: %v", err)
	}

	var grammarChecker scoring.GrammarChecker
	if cfg.LanguageTool.Enabled {
		grammarChecker = pkgai.NewLanguageToolClient(&cfg.LanguageTool)
	} else {
		log.Println("⚠️  LanguageTool disabled, grammar scorer will run degraded")
	}
	grammarScorer := scoring.NewGrammarScorer(grammarChecker, logger)

	var embedder scoring.Embedder
	if cfg.Embeddings.Enabled {
		embedder = pkgai.NewEmbeddingsClient(&cfg.Embeddings)
	} else {
		log.Println("⚠️  Embeddings disabled, relevancy scorer will run degraded")
	}
	relevancyScorer := scoring.NewRelevancyScorer(embedder, logger)

	// Initialize transcription client
	log.Println("🎙️  Initializing AssemblyAI client...")
	transcriber := pkgai.NewAssemblyAIClient(&cfg.Assembly)

	// Initialize worker pool
	pool := worker.NewPool(cfg.Scoring.Workers, cfg.Scoring.QueueSize, logger)
	pool.Start()

	// Initialize analysis service
	log.Println("✨ Initializing analysis service...")
	analysisService := analysis.NewAnalysisService(
		jobStore,
		transcriber,
		pool,
		fluencyScorer,
		vocabularyScorer,
		grammarScorer,
		relevancyScorer,
		cfg.Scoring.JobTimeout,
		logger,
	)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	audioHandler := handler.NewAudioHandler(analysisService, archiver, logger)
	router := handler.NewRouter(cfg, audioHandler)
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

	pool.Stop()

	log.Println("✅ Server stopped gracefully")
}
