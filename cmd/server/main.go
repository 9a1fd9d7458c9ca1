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

	"keeneyes-backend/internal/catalog"
	"keeneyes-backend/internal/config"
	"keeneyes-backend/internal/handlers"
	"keeneyes-backend/internal/kb"
	"keeneyes-backend/internal/router"
	"keeneyes-backend/internal/services"
	"keeneyes-backend/internal/session"
)

func main() {
	log.Println("🚀 Starting Keen Eyes Detailing chat backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Knowledge Base ────
	kbText, err := kb.Load(cfg.KBDir)
	if err != nil {
		log.Fatalf("✗ Knowledge base load failed: %v", err)
	}
	log.Printf("✓ Knowledge base loaded (%d bytes)", len(kbText))

	// ──── Step 3: Load Vehicle Size Catalog ────
	vehicleCatalog, err := catalog.Load(cfg.VehicleSizesFile)
	if err != nil {
		log.Fatalf("✗ Vehicle catalog load failed: %v", err)
	}
	log.Printf("✓ Vehicle catalog loaded (%d vehicles)", vehicleCatalog.Size())

	// ──── Step 4: Initialize Gemini Client ────
	completionService, err := services.NewCompletionService(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GeminiConcurrentReqs,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer completionService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Initialize Services ────
	sessionStore := session.NewStore()
	promptComposer := services.NewPromptComposer(kbText, cfg.SupportPhone)
	chatService := services.NewChatService(sessionStore, vehicleCatalog, promptComposer, completionService)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chat backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Endpoint: POST http://localhost:%s/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
