package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/api/middleware"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/service"
)

type ReminderHandler struct {
	reminderService *service.ReminderService
}

func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

type CreateReminderRequest struct {
	Title string `json:"title"`
	Time  string `json:"time"`
	Type  string `json:"type"`
}

type UpdateReminderRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	reminders, err := h.reminderService.List(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reminders)
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Time == "" || req.Type == "" {
		http.Error(w, "Title, time and type are required", http.StatusBadRequest)
		return
	}

	reminder, err := h.reminderService.Create(r.Context(), userID, service.CreateReminderInput{
		Title: req.Title,
		Time:  req.Time,
		Type:  domain.ReminderType(req.Type),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReminderType), errors.Is(err, domain.ErrInvalidReminderTime):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reminder)
}

func (h *ReminderHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	reminderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid reminder ID", http.StatusBadRequest)
		return
	}

	var req UpdateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		http.Error(w, "isActive is required", http.StatusBadRequest)
		return
	}

	if err := h.reminderService.SetActive(r.Context(), userID, reminderID, *req.IsActive); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Reminder not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	reminderID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid reminder ID", http.StatusBadRequest)
		return
	}

	if err := h.reminderService.Delete(r.Context(), userID, reminderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Reminder not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
