package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"gorm.io/gorm"
)

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) *tipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(ctx context.Context, tip *domain.Tip) error {
	return r.db.WithContext(ctx).Create(tip).Error
}

func (r *tipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tip, error) {
	var tip domain.Tip
	err := r.db.WithContext(ctx).First(&tip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tip, nil
}

func (r *tipRepository) GetAll(ctx context.Context) ([]*domain.Tip, error) {
	var tips []*domain.Tip
	err := r.db.WithContext(ctx).Order("date DESC").Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *tipRepository) Update(ctx context.Context, tip *domain.Tip) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Tip{}).
		Where("id = ?", tip.ID).
		Updates(map[string]interface{}{
			"title":    tip.Title,
			"content":  tip.Content,
			"category": tip.Category,
			"date":     tip.Date,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Tip{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
