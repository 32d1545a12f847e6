// Package notify is the websocket push channel that carries reminder
// notifications from the server-side scheduler to the user's open pages.
package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
)

// Hub tracks connected clients grouped by user.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			clients := h.clients
			h.clients = make(map[uuid.UUID]map[*Client]bool)
			h.mu.Unlock()

			for _, conns := range clients {
				for client := range conns {
					client.close()
				}
			}
			return

		case client := <-h.register:
			h.mu.Lock()
			conns, ok := h.clients[client.userID]
			if !ok {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if _, present := conns[client]; present {
					delete(conns, client)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}
			h.mu.Unlock()

			// The teardown hook can re-enter the hub (it stops the user's
			// scheduler, whose tick may be mid-Notify), so it must run
			// without the hub lock held.
			client.close()
		}
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// Register hands the client to the hub loop. After Stop the loop is gone;
// a late client from an in-flight upgrade is torn down instead of parking
// its handler goroutine forever.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

// Notify pushes a reminder notification to every open connection of the
// user. Satisfies scheduler.Notifier.
func (h *Hub) Notify(userID uuid.UUID, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	data, err := json.Marshal(Message{Type: MessageTypeNotification, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	h.mu.RLock()
	conns := h.clients[userID]
	targets := make([]*Client, 0, len(conns))
	for client := range conns {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return fmt.Errorf("no connected clients for user %s", userID)
	}

	for _, client := range targets {
		select {
		case client.send <- data:
		case <-client.done:
			// Connection is tearing down; nothing left to deliver to.
		default:
			// Slow consumer; drop rather than block the scheduler.
			log.Printf("ERROR [notify.Notify] send buffer full, dropping for user %s", userID)
		}
	}
	return nil
}
