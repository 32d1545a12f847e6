package postgres

import (
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Reminder{},
		&domain.Tip{},
		&domain.HealthEntry{},
		&domain.EmergencyService{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:             NewUserRepository(db),
		Reminder:         NewReminderRepository(db),
		Tip:              NewTipRepository(db),
		HealthEntry:      NewHealthEntryRepository(db),
		EmergencyService: NewEmergencyServiceRepository(db),
	}
}
