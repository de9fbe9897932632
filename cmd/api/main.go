package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"remindly/config"
	_ "remindly/docs" // Swagger docs
	"remindly/internal/httpserver"
	"remindly/internal/task/repository/supabase"
	"remindly/internal/task/usecase"
	"remindly/internal/webhook"
	"remindly/pkg/gemini"
	"remindly/pkg/log"
	"remindly/pkg/schedule"
)

// @title       Remindly API
// @description Natural-language reminders: schedule extraction, display formatting, and task storage.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Remindly...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Supabase.URL)

	// 3. Store repository
	storeClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey, cfg.Supabase.ServiceToken)
	repo := supabase.New(logger, storeClient)

	// 4. Gemini LLM client (optional; titles pass through untouched without it)
	var llm *gemini.Client
	if cfg.Gemini.APIKey != "" {
		llm = gemini.NewClient(cfg.Gemini.APIKey)
		logger.Info(ctx, "Gemini title normalization enabled")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, title normalization disabled")
	}

	timezone := cfg.Gemini.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	// 5. Task UseCase
	taskUC := usecase.New(logger, llm, repo, repo, schedule.NewExtractor(), timezone)

	// 6. Store webhook handler (optional)
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled && cfg.Webhook.Secret != "" {
		webhookHandler = webhook.NewHandler(repo, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Store webhook disabled: webhook.enabled=false or secret missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TaskUseCase:    taskUC,
		Timezone:       timezone,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
