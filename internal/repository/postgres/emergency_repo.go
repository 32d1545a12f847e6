package postgres

import (
	"context"

	"github.com/oguzhany/health-reminder/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type emergencyServiceRepository struct {
	db *gorm.DB
}

func NewEmergencyServiceRepository(db *gorm.DB) *emergencyServiceRepository {
	return &emergencyServiceRepository{db: db}
}

func (r *emergencyServiceRepository) GetAll(ctx context.Context) ([]*domain.EmergencyService, error) {
	var services []*domain.EmergencyService
	err := r.db.WithContext(ctx).Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *emergencyServiceRepository) UpsertMany(ctx context.Context, services []*domain.EmergencyService) error {
	if len(services) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(services).Error
}
