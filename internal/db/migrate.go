package db

import (
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
)

// Migrate runs schema migrations and installs the database-side routines
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Category{},
		&model.Book{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusHistory{},
		&model.Favorite{},
		&model.Review{},
		&model.AdminNotification{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := InstallRoutines(DB); err != nil {
		logger.Error("Failed to install database routines", err)
		return err
	}

	if err := seedCategories(); err != nil {
		logger.Error("Failed to seed categories during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// seedCategories inserts the static category reference data once
func seedCategories() error {
	var count int64
	if err := DB.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Categories already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding category data...")

	categories := []model.Category{
		{Name: "Novel"},
		{Name: "Science Fiction"},
		{Name: "History"},
		{Name: "Children"},
		{Name: "Poetry"},
		{Name: "Philosophy"},
		{Name: "Biography"},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			logger.Error("Failed to create category", err, map[string]interface{}{
				"category": category.Name,
			})
			return err
		}
	}

	logger.Info("Categories seeded successfully", map[string]interface{}{
		"total_categories": len(categories),
	})
	return nil
}
