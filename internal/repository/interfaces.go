package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Reminder, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Reminder, error)
	SetActive(ctx context.Context, userID, reminderID uuid.UUID, active bool) error
	Delete(ctx context.Context, userID, reminderID uuid.UUID) error
}

type TipRepository interface {
	Create(ctx context.Context, tip *domain.Tip) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tip, error)
	GetAll(ctx context.Context) ([]*domain.Tip, error)
	Update(ctx context.Context, tip *domain.Tip) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HealthEntryRepository interface {
	Upsert(ctx context.Context, entry *domain.HealthEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.HealthEntry, error)
}

type EmergencyServiceRepository interface {
	GetAll(ctx context.Context) ([]*domain.EmergencyService, error)
	UpsertMany(ctx context.Context, services []*domain.EmergencyService) error
}

type Repositories struct {
	User             UserRepository
	Reminder         ReminderRepository
	Tip              TipRepository
	HealthEntry      HealthEntryRepository
	EmergencyService EmergencyServiceRepository
}
