package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cardioscope/backend/internal/artifact"
	"github.com/cardioscope/backend/internal/delivery/http"
	"github.com/cardioscope/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()
	setupLogger(cfg)

	// Artifacts: classifier and scaler, loaded once, immutable afterwards.
	// Either one missing or corrupt means no request can ever be served.
	classifier, err := artifact.LoadForest(cfg.ModelPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ModelPath).Msg("Could not load classifier artifact")
	}
	scaler, err := artifact.LoadScaler(cfg.ScalerPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ScalerPath).Msg("Could not load scaler artifact")
	}
	log.Info().
		Int("trees", classifier.TreeCount()).
		Int("features", len(classifier.FeatureNames())).
		Msg("Artifacts loaded")

	// Dependency Injection: Services
	encoder := service.NewEncoder()
	inference := service.NewInferenceService(scaler, classifier)
	presenter := service.NewPresenter(classifier)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "CardioScope API v1.0",
		Views:        http.NewEngine(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, encoder, inference, presenter)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Info().Str("port", port).Msg("Server starting")
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

type Config struct {
	ModelPath  string
	ScalerPath string
	Port       string
	LogLevel   string
	Env        string
}

func loadConfig() *Config {
	return &Config{
		ModelPath:  getEnv("MODEL_PATH", "models/random_forest.json"),
		ScalerPath: getEnv("SCALER_PATH", "models/scaler.json"),
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Env:        getEnv("GO_ENV", "development"),
	}
}

func setupLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
