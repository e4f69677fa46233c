package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusshare/internal/blob"
	"campusshare/internal/config"
	"campusshare/internal/db"
	"campusshare/internal/email"
	"campusshare/internal/genai"
	"campusshare/internal/metrics"
	"campusshare/internal/pipeline"
	"campusshare/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// The model credential is the only thing the app cannot run without
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Blob store for file attachments
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	blobs, err := blob.Connect(connectCtx, cfg.MongoURL, cfg.MongoDatabase)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to blob store: %v", err)
	}
	defer blobs.Close(ctx)

	signedURLKey := cfg.SignedURLKey
	if signedURLKey == "" {
		signedURLKey = cfg.SessionSecret
	}
	signer := blob.NewSigner(signedURLKey, cfg.BaseURL, cfg.SignedURLTTL)

	// Moderation pipeline backed by the hosted model
	prompts, err := pipeline.LoadPrompts(cfg.PromptsFile)
	if err != nil {
		log.Fatalf("Failed to load prompts: %v", err)
	}
	model := genai.New(genai.Config{
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.GeminiModel,
		Endpoint: cfg.GeminiEndpoint,
	})
	pl := pipeline.New(model, prompts)

	notifier := email.NewNotifier(cfg, database)
	metrics.Init()

	// Initialize server and routes
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, blobs, signer, pl, notifier); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
