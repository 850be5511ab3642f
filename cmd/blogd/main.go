package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/config"
	"blog-backend/internal/handler"
	"blog-backend/internal/logger"
	"blog-backend/internal/server"
	"blog-backend/internal/service"
	"blog-backend/internal/storage"
)

func main() {
	// Define command line flags
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging first
	if err := logger.Setup(cfg); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	// Initialize database
	if err := storage.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := storage.Migrate(storage.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database connection established")

	db := storage.GetDB()
	users := storage.NewUserRepository(db)
	posts := storage.NewPostRepository(db)
	comments := storage.NewCommentRepository(db)
	reactions := storage.NewReactionRepository(db)
	suspensions := storage.NewSuspensionRepository(db)
	attachments := storage.NewAttachmentRepository(db)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	ledger := service.NewSuspensionLedger(db, users, suspensions)
	authz := service.NewAuthorizer(users, ledger)
	authService := service.NewAuthService(users, authz, ledger, tokens)
	postService := service.NewPostService(authz, posts)
	commentService := service.NewCommentService(authz, posts, comments)
	engagement := service.NewEngagementService(db, authz, posts, reactions)
	moderation := service.NewModerationService(authz, ledger, users, posts)
	files := service.NewFileService(authz, posts, attachments, cfg.Uploads.Directory, int64(cfg.Uploads.MaxSizeMB)<<20)

	// Seed the administrator account if missing
	if err := authService.EnsureAdmin(cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	h := handler.New(authService, postService, commentService, engagement, moderation, files, tokens)
	srv := server.New(cfg, h.Routes())

	// Start HTTP server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Create a channel for receiving OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for signal
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down...", sig)

	// Gracefully shutdown server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server gracefully stopped")
}
