package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type healthEntryRepository struct {
	db *gorm.DB
}

func NewHealthEntryRepository(db *gorm.DB) *healthEntryRepository {
	return &healthEntryRepository{db: db}
}

// Upsert inserts or replaces the metrics for (user, date).
func (r *healthEntryRepository) Upsert(ctx context.Context, entry *domain.HealthEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps", "water_intake", "sleep_hours", "sleep_quality",
		}),
	}).Create(entry).Error
}

func (r *healthEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.HealthEntry, error) {
	var entries []*domain.HealthEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
