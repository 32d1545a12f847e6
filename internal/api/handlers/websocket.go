package handlers

import (
	"log"
	"net/http"

	ws "github.com/gorilla/websocket"
	"github.com/oguzhany/health-reminder/internal/api/middleware"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/notify"
	"github.com/oguzhany/health-reminder/internal/scheduler"
	"github.com/oguzhany/health-reminder/internal/service"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

type WebSocketHandler struct {
	hub         *notify.Hub
	manager     *scheduler.Manager
	authService *service.AuthService
}

func NewWebSocketHandler(hub *notify.Hub, manager *scheduler.Manager, authService *service.AuthService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		manager:     manager,
		authService: authService,
	}
}

// Handle upgrades an authenticated request to a notification push channel.
// Connecting starts (or joins) the user's reminder scheduler; the last
// disconnect stops it.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.AuthCookieName)
	if err != nil || cookie.Value == "" {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	claims, err := h.authService.VerifyToken(cookie.Value)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	userID := claims.UserID

	if err := h.manager.Attach(r.Context(), userID); err != nil {
		log.Printf("ERROR [handlers.WebSocket] scheduler attach failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [handlers.WebSocket] upgrade error: %v", err)
		h.manager.Detach(userID)
		return
	}

	client := notify.NewClient(h.hub, conn, userID,
		func(state domain.PermissionState) {
			h.manager.SetPermission(userID, state)
		},
		func() {
			h.manager.Detach(userID)
		},
	)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
