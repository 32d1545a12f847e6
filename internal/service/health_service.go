package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/repository"
)

var (
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrInvalidSleepQuality = errors.New("sleep quality must be between 1 and 5")
	ErrNegativeMetric      = errors.New("metrics must be non-negative")
)

type HealthService struct {
	healthRepo repository.HealthEntryRepository
}

func NewHealthService(healthRepo repository.HealthEntryRepository) *HealthService {
	return &HealthService{healthRepo: healthRepo}
}

type HealthEntryInput struct {
	Date         string
	Steps        int
	WaterIntake  int
	SleepHours   float64
	SleepQuality int
}

// Record upserts the metrics for one day. The owning user always comes from
// the verified session, never from the request body.
func (s *HealthService) Record(ctx context.Context, userID uuid.UUID, input HealthEntryInput) error {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return ErrInvalidDate
	}
	if input.SleepQuality < 1 || input.SleepQuality > 5 {
		return ErrInvalidSleepQuality
	}
	if input.Steps < 0 || input.WaterIntake < 0 || input.SleepHours < 0 {
		return ErrNegativeMetric
	}

	entry := &domain.HealthEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         input.Date,
		Steps:        input.Steps,
		WaterIntake:  input.WaterIntake,
		SleepHours:   input.SleepHours,
		SleepQuality: input.SleepQuality,
		CreatedAt:    time.Now(),
	}

	return s.healthRepo.Upsert(ctx, entry)
}

func (s *HealthService) History(ctx context.Context, userID uuid.UUID) ([]*domain.HealthEntry, error) {
	return s.healthRepo.ListByUser(ctx, userID)
}
