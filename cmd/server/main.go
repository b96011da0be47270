// Package main boots the companion API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"google.golang.org/adk/model"

	"github.com/easeaico/companion-web/internal/api"
	"github.com/easeaico/companion-web/internal/chat"
	"github.com/easeaico/companion-web/internal/config"
	"github.com/easeaico/companion-web/internal/middleware"
	"github.com/easeaico/companion-web/internal/models"
	"github.com/easeaico/companion-web/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	slog.Info("Configuration loaded",
		"chat_provider", cfg.ChatProvider,
		"media_provider", cfg.MediaProvider,
		"video_enabled", cfg.VideoEnabled(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llm, err := newChatModel(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize chat model", "error", err)
		os.Exit(1)
	}

	avatar, image, err := newImageGenerators(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize image generators", "error", err)
		os.Exit(1)
	}

	var video api.Generator
	if cfg.VideoEnabled() {
		g, err := models.NewCompletionMediaGenerator(completionConfig(cfg), cfg.VideoModel, utils.MediaVideo)
		if err != nil {
			slog.Error("Failed to initialize video generator", "error", err)
			os.Exit(1)
		}
		video = g
	}

	handler := api.NewHandler(chat.NewService(llm), avatar, image, video)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	handler.RegisterRoutes(r)

	// Media generation can take minutes, so writes get the request timeout plus slack.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}

func completionConfig(cfg *config.Config) models.CompletionConfig {
	return models.CompletionConfig{
		BaseURL:    cfg.CompletionBaseURL,
		APIKey:     cfg.CompletionAPIKey,
		CustomerID: cfg.CompletionCustomerID,
		Timeout:    cfg.RequestTimeout,
	}
}

func newChatModel(ctx context.Context, cfg *config.Config) (model.LLM, error) {
	switch cfg.ChatProvider {
	case config.ProviderGemini:
		return models.NewGeminiChatModel(ctx, cfg.GoogleAPIKey, cfg.GeminiChatModel)
	case config.ProviderOpenAI:
		return models.NewCompletionModel(completionConfig(cfg), cfg.ChatModel)
	default:
		return nil, fmt.Errorf("unsupported chat provider %q", cfg.ChatProvider)
	}
}

// newImageGenerators returns the avatar and /image generators. The gemini
// provider serves both with one client.
func newImageGenerators(ctx context.Context, cfg *config.Config) (avatar, image api.Generator, err error) {
	if cfg.MediaProvider == config.ProviderGemini {
		g, err := models.NewGeminiImageGenerator(ctx, cfg.GoogleAPIKey, cfg.GeminiImageModel, cfg.AspectRatio)
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	}

	avatarGen, err := models.NewCompletionMediaGenerator(completionConfig(cfg), cfg.ImageModel, "")
	if err != nil {
		return nil, nil, err
	}
	imageGen, err := models.NewCompletionMediaGenerator(completionConfig(cfg), cfg.ImageModel, utils.MediaImage)
	if err != nil {
		return nil, nil, err
	}
	return avatarGen, imageGen, nil
}
