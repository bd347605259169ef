package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adal-azamat/lifesim/internal/config"
	"github.com/adal-azamat/lifesim/internal/handlers"
	"github.com/adal-azamat/lifesim/internal/logger"
	"github.com/adal-azamat/lifesim/internal/services"
	"github.com/adal-azamat/lifesim/internal/storage"
	"github.com/adal-azamat/lifesim/pkg/life"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Lifesim API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer startupCancel()

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Error("OpenAI API key is required when using openai provider")
			os.Exit(1)
		}
		llmService = services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.ModelName, log)
		log.Info("Using OpenAI LLM provider")
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Error("Gemini API key is required when using gemini provider")
			os.Exit(1)
		}
		gemini, err := services.NewGeminiService(startupCtx, cfg.GeminiAPIKey, cfg.ModelName, log)
		if err != nil {
			log.Error("Failed to initialize Gemini service", "error", err)
			os.Exit(1)
		}
		defer func() { _ = gemini.Close() }()
		llmService = gemini
		log.Info("Using Gemini LLM provider")
	default:
		log.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider, "supported", []string{"openai", "gemini"})
		os.Exit(1)
	}

	if err := llmService.InitModel(startupCtx, cfg.ModelName); err != nil {
		log.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	store := storage.NewRedisStore(cfg.RedisURL, log)
	if err := store.WaitForConnection(startupCtx); err != nil {
		log.Error("Failed to connect to session storage", "error", err)
		os.Exit(1)
	}

	audit, err := storage.OpenSQLiteAudit(cfg.AuditDBPath, log)
	if err != nil {
		log.Error("Failed to open audit database", "error", err, "path", cfg.AuditDBPath)
		os.Exit(1)
	}

	narrator := services.NewNarrator(llmService, cfg.GatewayTimeout, log)
	dice := life.NewDice()

	handler := handlers.NewRouter(dice, store, audit, narrator, log)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing session storage", "error", err)
	}
	if err := audit.Close(); err != nil {
		log.Error("Error closing audit database", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
