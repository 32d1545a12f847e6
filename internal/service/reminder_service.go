package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/repository"
)

// ReminderChangeListener is notified whenever a user's reminder set changes
// so running notification schedulers can reload their active set.
type ReminderChangeListener interface {
	ReminderSetChanged(userID uuid.UUID)
}

type ReminderService struct {
	reminderRepo repository.ReminderRepository
	listener     ReminderChangeListener
}

func NewReminderService(reminderRepo repository.ReminderRepository) *ReminderService {
	return &ReminderService{reminderRepo: reminderRepo}
}

// SetChangeListener wires the scheduler manager in after construction; the
// manager itself depends on this service, so the cycle is broken here.
func (s *ReminderService) SetChangeListener(l ReminderChangeListener) {
	s.listener = l
}

type CreateReminderInput struct {
	Title string
	Time  string
	Type  domain.ReminderType
}

func (s *ReminderService) Create(ctx context.Context, userID uuid.UUID, input CreateReminderInput) (*domain.Reminder, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidReminderType
	}
	if !domain.ValidReminderTime(input.Time) {
		return nil, domain.ErrInvalidReminderTime
	}

	reminder := &domain.Reminder{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Time:      input.Time,
		Type:      input.Type,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	s.notifyChanged(userID)
	return reminder, nil
}

func (s *ReminderService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Reminder, error) {
	return s.reminderRepo.ListByUser(ctx, userID)
}

func (s *ReminderService) ListActive(ctx context.Context, userID uuid.UUID) ([]*domain.Reminder, error) {
	return s.reminderRepo.ListActiveByUser(ctx, userID)
}

func (s *ReminderService) SetActive(ctx context.Context, userID, reminderID uuid.UUID, active bool) error {
	if err := s.reminderRepo.SetActive(ctx, userID, reminderID, active); err != nil {
		return err
	}
	s.notifyChanged(userID)
	return nil
}

func (s *ReminderService) Delete(ctx context.Context, userID, reminderID uuid.UUID) error {
	if err := s.reminderRepo.Delete(ctx, userID, reminderID); err != nil {
		return err
	}
	s.notifyChanged(userID)
	return nil
}

func (s *ReminderService) notifyChanged(userID uuid.UUID) {
	if s.listener != nil {
		s.listener.ReminderSetChanged(userID)
	}
}
