package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *reminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Reminder, error) {
	var reminders []*domain.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// SetActive toggles a reminder owned by userID. Scoping the update by owner
// makes a foreign reminder indistinguishable from a missing one.
func (r *reminderRepository) SetActive(ctx context.Context, userID, reminderID uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Reminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, userID, reminderID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&domain.Reminder{}, "id = ? AND user_id = ?", reminderID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
