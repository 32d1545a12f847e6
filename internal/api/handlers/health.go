package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oguzhany/health-reminder/internal/api/middleware"
	"github.com/oguzhany/health-reminder/internal/service"
)

type HealthDataHandler struct {
	healthService *service.HealthService
}

func NewHealthDataHandler(healthService *service.HealthService) *HealthDataHandler {
	return &HealthDataHandler{healthService: healthService}
}

type HealthEntryRequest struct {
	Date         string  `json:"date"`
	Steps        int     `json:"steps"`
	WaterIntake  int     `json:"waterIntake"`
	SleepHours   float64 `json:"sleepHours"`
	SleepQuality int     `json:"sleepQuality"`
}

// Record upserts one day's metrics. The user is always the authenticated
// one; a userId in the body is ignored.
func (h *HealthDataHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var req HealthEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.healthService.Record(r.Context(), userID, service.HealthEntryInput{
		Date:         req.Date,
		Steps:        req.Steps,
		WaterIntake:  req.WaterIntake,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate),
			errors.Is(err, service.ErrInvalidSleepQuality),
			errors.Is(err, service.ErrNegativeMetric):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	entries, err := h.healthService.History(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "saved",
		"data":    entries,
	})
}

func (h *HealthDataHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	entries, err := h.healthService.History(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": entries})
}
