package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pathakanu/rewardsHub/internal/config"
	"github.com/pathakanu/rewardsHub/internal/database"
	"github.com/pathakanu/rewardsHub/internal/hub"
	myopenai "github.com/pathakanu/rewardsHub/internal/openai"
	"github.com/pathakanu/rewardsHub/internal/twilio"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	logger := log.New(os.Stdout, "[rewardsHub] ", log.LstdFlags|log.Lshortfile)
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "rewardshub",
		Short: "Credit card rewards API, assistant and reminders",
		Run: func(cmd *cobra.Command, args []string) {
			serve(cfg, logger)
		},
	}
	root.AddCommand(
		newServeCmd(cfg, logger),
		newAskCmd(),
		newRemindersCmd(cfg),
		newOffersCmd(cfg),
		newExportAnalyticsCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCmd(cfg *config.Config, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the WhatsApp webhook",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			serve(cfg, logger)
		},
	}
}

func serve(cfg *config.Config, logger *log.Logger) {
	db, err := openSeeded(cfg)
	if err != nil {
		logger.Fatalf("database init failed: %v", err)
	}

	openAIClient := myopenai.New(cfg.OpenAIAPIKey)
	webhook := twilio.NewWebhook(cfg.TwilioAuthToken, cfg.PublicBaseURL)
	if !webhook.Verifying() {
		logger.Println("TWILIO_AUTH_TOKEN not set, webhook signatures are not checked")
	}

	rewardsHub := hub.New(cfg, db, openAIClient, webhook, logger)
	if err := rewardsHub.StartScheduler(); err != nil {
		logger.Fatalf("scheduler start: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: rewardsHub.Handler(),
	}

	go func() {
		logger.Printf("server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	waitForShutdown(server, rewardsHub, logger)
}

// openSeeded connects to the configured database and restores the seed data.
func openSeeded(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Reset(db); err != nil {
		return nil, err
	}
	return db, nil
}

func waitForShutdown(server *http.Server, rewardsHub *hub.Hub, logger *log.Logger) {
	stopCtx := make(chan os.Signal, 1)
	signal.Notify(stopCtx, syscall.SIGINT, syscall.SIGTERM)
	<-stopCtx
	logger.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("server shutdown error: %v", err)
	}
	rewardsHub.StopScheduler()
}
