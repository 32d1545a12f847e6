package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oguzhany/health-reminder/internal/api/handlers"
	"github.com/oguzhany/health-reminder/internal/api/middleware"
	"github.com/oguzhany/health-reminder/internal/config"
	"github.com/oguzhany/health-reminder/internal/notify"
	"github.com/oguzhany/health-reminder/internal/repository"
	"github.com/oguzhany/health-reminder/internal/scheduler"
	"github.com/oguzhany/health-reminder/internal/service"
	"github.com/oguzhany/health-reminder/internal/web"
)

func NewRouter(services *service.Services, hub *notify.Hub, manager *scheduler.Manager, repos *repository.Repositories, pages *web.Pages, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	reminderHandler := handlers.NewReminderHandler(services.Reminder)
	tipHandler := handlers.NewTipHandler(services.Tip)
	healthHandler := handlers.NewHealthDataHandler(services.Health)
	emergencyHandler := handlers.NewEmergencyHandler(repos.EmergencyService)
	wsHandler := handlers.NewWebSocketHandler(hub, manager, services.Auth)

	requireAuth := middleware.RequireAuth(services.Auth)
	requireAdmin := middleware.RequireAdmin(services.Auth, repos.User)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/check", authHandler.Check)
			})
		})

		// Public content
		r.Get("/tips", tipHandler.GetAll)
		r.Get("/tips/{id}", tipHandler.Get)
		r.Get("/emergency-services", emergencyHandler.List)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/reminders", func(r chi.Router) {
				r.Get("/", reminderHandler.List)
				r.Post("/", reminderHandler.Create)
				r.Patch("/{id}", reminderHandler.SetActive)
				r.Delete("/{id}", reminderHandler.Delete)
			})

			r.Route("/health-data", func(r chi.Router) {
				r.Get("/", healthHandler.History)
				r.Post("/", healthHandler.Record)
			})
		})

		// Admin routes: role re-resolved from the store on every request
		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)

			r.Post("/tips", tipHandler.Create)
			r.Route("/admin/tips", func(r chi.Router) {
				r.Get("/{id}", tipHandler.Get)
				r.Put("/{id}", tipHandler.Update)
				r.Delete("/{id}", tipHandler.Delete)
			})
		})

		// Notification push channel
		r.Get("/ws", wsHandler.Handle)
	})

	// Page routes behind the navigation gate
	r.Group(func(r chi.Router) {
		r.Use(middleware.PageGate(services.Auth, repos.User))

		r.Get("/", pages.Render("home", "Health Tips"))
		r.Get("/login", pages.Render("login", "Sign In"))
		r.Get("/register", pages.Render("register", "Create Account"))
		r.Get("/tips/{id}", pages.Render("tip", "Tip"))
		r.Get("/emergency", pages.Render("emergency", "Emergency Services"))
		r.Get("/reminders", pages.Render("reminders", "Reminders"))
		r.Get("/health-tracking", pages.Render("health-tracking", "Health Tracking"))
		r.Get("/admin", pages.Render("admin", "Admin"))
		r.Get("/admin/tips", pages.Render("admin-tips", "Manage Tips"))
		r.Get("/admin/tips/new", pages.Render("admin-tip-new", "New Tip"))
		r.Get("/admin/tips/{id}/edit", pages.Render("admin-tip-edit", "Edit Tip"))
	})

	return r
}
