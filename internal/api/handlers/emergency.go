package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oguzhany/health-reminder/internal/repository"
)

type EmergencyHandler struct {
	repo repository.EmergencyServiceRepository
}

func NewEmergencyHandler(repo repository.EmergencyServiceRepository) *EmergencyHandler {
	return &EmergencyHandler{repo: repo}
}

func (h *EmergencyHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services)
}
