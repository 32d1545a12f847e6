package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/repository"
)

var ErrMissingTipFields = errors.New("title, content, category and date are required")

type TipService struct {
	tipRepo repository.TipRepository
}

func NewTipService(tipRepo repository.TipRepository) *TipService {
	return &TipService{tipRepo: tipRepo}
}

type TipInput struct {
	Title    string
	Content  string
	Category string
	Date     string
}

func (in TipInput) validate() error {
	if in.Title == "" || in.Content == "" || in.Category == "" || in.Date == "" {
		return ErrMissingTipFields
	}
	return nil
}

func (s *TipService) Create(ctx context.Context, input TipInput) (*domain.Tip, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tip := &domain.Tip{
		ID:       uuid.New(),
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Date:     input.Date,
	}

	if err := s.tipRepo.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *TipService) GetAll(ctx context.Context) ([]*domain.Tip, error) {
	return s.tipRepo.GetAll(ctx)
}

func (s *TipService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tip, error) {
	return s.tipRepo.GetByID(ctx, id)
}

func (s *TipService) Update(ctx context.Context, id uuid.UUID, input TipInput) (*domain.Tip, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	tip := &domain.Tip{
		ID:       id,
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Date:     input.Date,
	}

	if err := s.tipRepo.Update(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *TipService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tipRepo.Delete(ctx, id)
}
