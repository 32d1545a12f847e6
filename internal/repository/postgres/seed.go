package postgres

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed fills empty tables with starter content: a default admin account,
// a handful of tips and the emergency services directory.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedAdmin(ctx, db); err != nil {
		return err
	}
	if err := seedTips(ctx, db); err != nil {
		return err
	}
	return seedEmergencyServices(ctx, db)
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}

	log.Printf("seeded default admin user %s", admin.Email)
	return nil
}

func seedTips(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Tip{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tips := []*domain.Tip{
		{
			ID:       uuid.New(),
			Title:    "Wash Your Hands Regularly",
			Content:  "Wash your hands with soap and water for at least 20 seconds, especially before and after meals, after using the bathroom and after coming home.",
			Category: "hygiene",
			Date:     "2024-03-20",
		},
		{
			ID:       uuid.New(),
			Title:    "Get Enough Sleep",
			Content:  "Adults need 7-9 hours of sleep per night for optimal health. A consistent sleep schedule strengthens your immune system.",
			Category: "health",
			Date:     "2024-03-21",
		},
		{
			ID:       uuid.New(),
			Title:    "Eat a Balanced Diet",
			Content:  "Balance protein, carbohydrates and healthy fats in your daily meals, and don't skip vegetables and fruit.",
			Category: "health",
			Date:     "2024-03-22",
		},
	}
	return db.WithContext(ctx).Create(tips).Error
}

func seedEmergencyServices(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.EmergencyService{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []*domain.EmergencyService{
		{
			ID:       uuid.New(),
			Name:     "City Central Hospital",
			Kind:     "hospital",
			Phone:    "112",
			Address:  "1 Hospital Ave",
			Location: datatypes.JSON([]byte(`{"lat":41.0082,"lng":28.9784}`)),
		},
		{
			ID:       uuid.New(),
			Name:     "Night Pharmacy",
			Kind:     "pharmacy",
			Phone:    "+90 212 000 0000",
			Address:  "14 Market St",
			Location: datatypes.JSON([]byte(`{"lat":41.0151,"lng":28.9795}`)),
		},
		{
			ID:       uuid.New(),
			Name:     "Downtown Clinic",
			Kind:     "clinic",
			Phone:    "+90 212 111 1111",
			Address:  "3 Wellness Rd",
			Location: datatypes.JSON([]byte(`{"lat":41.0021,"lng":28.9700}`)),
		},
	}
	return db.WithContext(ctx).Create(services).Error
}
