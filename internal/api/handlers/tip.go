package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/service"
)

type TipHandler struct {
	tipService *service.TipService
}

func NewTipHandler(tipService *service.TipService) *TipHandler {
	return &TipHandler{tipService: tipService}
}

type TipRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

func (req TipRequest) input() service.TipInput {
	return service.TipInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
	}
}

func (h *TipHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	tips, err := h.tipService.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tips)
}

func (h *TipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid tip ID", http.StatusBadRequest)
		return
	}

	tip, err := h.tipService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Tip not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tip)
}

func (h *TipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tip, err := h.tipService.Create(r.Context(), req.input())
	if err != nil {
		if errors.Is(err, service.ErrMissingTipFields) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tip)
}

func (h *TipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid tip ID", http.StatusBadRequest)
		return
	}

	var req TipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tip, err := h.tipService.Update(r.Context(), id, req.input())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingTipFields):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrNotFound):
			http.Error(w, "Tip not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tip)
}

func (h *TipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid tip ID", http.StatusBadRequest)
		return
	}

	if err := h.tipService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Tip not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
