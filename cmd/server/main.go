package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oguzhany/health-reminder/internal/api"
	"github.com/oguzhany/health-reminder/internal/config"
	"github.com/oguzhany/health-reminder/internal/notify"
	"github.com/oguzhany/health-reminder/internal/repository/postgres"
	"github.com/oguzhany/health-reminder/internal/scheduler"
	"github.com/oguzhany/health-reminder/internal/service"
	"github.com/oguzhany/health-reminder/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := postgres.Seed(context.Background(), db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Notification push channel
	hub := notify.NewHub()
	go hub.Run()

	// Per-user reminder schedulers
	manager := scheduler.NewManager(repos.Reminder, hub, scheduler.SystemClock(), cfg.ReminderPollInterval)

	// Initialize services
	services := service.NewServices(repos, cfg)
	services.Reminder.SetChangeListener(manager)

	pages, err := web.NewPages()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, hub, manager, repos, pages, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	manager.StopAll()
	hub.Stop()

	log.Println("Server stopped")
}
