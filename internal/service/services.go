package service

import (
	"github.com/oguzhany/health-reminder/internal/config"
	"github.com/oguzhany/health-reminder/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Reminder *ReminderService
	Tip      *TipService
	Health   *HealthService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		Reminder: NewReminderService(repos.Reminder),
		Tip:      NewTipService(repos.Tip),
		Health:   NewHealthService(repos.HealthEntry),
	}
}
