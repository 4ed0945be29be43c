package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grubdash/cmd"
	httpin "grubdash/internal/adapters/in/http"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	if configs.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         configs.SentryDSN,
			Environment: configs.AppEnv,
		}); err != nil {
			log.Fatalf("Error initializing sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	app := cmd.NewCompositionRoot(configs, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Error closing event publisher", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := app.CreateOrderSeeder().Seed(ctx, configs.SeedOrders); err != nil {
		logger.Error("Seeding demo orders failed", "error", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := httpin.LoadOpenAPI()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	e := app.CreateRouter(doc)
	e.Logger.SetLevel(log.INFO)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error(err)
		}
	}()

	logger.Info("Listening", "port", port)
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
