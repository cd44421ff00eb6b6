package main

import (
	"errors"

	"github.com/ekaracan/kitapkurdu/config"
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/ekaracan/kitapkurdu/pkg/util"
	"gorm.io/gorm"
)

// Seeds the database with demo accounts, a starter catalog and a welcome
// announcement. Safe to run repeatedly; existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{Level: "info", Format: "console", EnableColor: true})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run database migrations", err)
	}

	gormDB := db.GetDB()

	seedUsers(gormDB)
	seedBooks(gormDB)
	seedAnnouncements(gormDB)

	logger.Info("Seeding complete")
}

func seedUsers(gormDB *gorm.DB) {
	users := []struct {
		fullName string
		email    string
		password string
		role     model.UserRole
	}{
		{"Demo Customer", "customer@kitapkurdu.dev", "customer123", model.RoleCustomer},
		{"Demo Seller", "seller@kitapkurdu.dev", "seller123", model.RoleSeller},
	}

	for _, u := range users {
		var existing model.User
		err := gormDB.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Fatal("Failed to check existing user", err)
		}

		hash, err := util.HashPassword(u.password)
		if err != nil {
			logger.Fatal("Failed to hash seed password", err)
		}

		user := model.User{FullName: u.fullName, Email: u.email, PasswordHash: hash, Role: u.role}
		if err := gormDB.Create(&user).Error; err != nil {
			logger.Fatal("Failed to create seed user", err)
		}
		logger.Info("Seed user created", map[string]interface{}{
			"email": u.email,
			"role":  u.role,
		})
	}
}

func seedBooks(gormDB *gorm.DB) {
	var count int64
	gormDB.Model(&model.Book{}).Count(&count)
	if count > 0 {
		return
	}

	categoryID := func(name string) uint {
		var category model.Category
		if err := gormDB.Where("name = ?", name).First(&category).Error; err != nil {
			logger.Fatal("Seed category missing, run migrations first", err)
		}
		return category.ID
	}

	books := []model.Book{
		{Name: "Kurk Mantolu Madonna", Author: "Sabahattin Ali", CategoryID: categoryID("Novel"), Price: 48.50, Stock: 25, IsActive: true},
		{Name: "Tutunamayanlar", Author: "Oguz Atay", CategoryID: categoryID("Novel"), Price: 96.00, Stock: 12, IsActive: true},
		{Name: "Ince Memed", Author: "Yasar Kemal", CategoryID: categoryID("Novel"), Price: 72.00, Stock: 18, IsActive: true},
		{Name: "Dune", Author: "Frank Herbert", CategoryID: categoryID("Science Fiction"), Price: 120.00, Stock: 9, IsActive: true},
		{Name: "Nutuk", Author: "Mustafa Kemal Ataturk", CategoryID: categoryID("History"), Price: 65.00, Stock: 30, IsActive: true},
		{Name: "Kucuk Prens", Author: "Antoine de Saint-Exupery", CategoryID: categoryID("Children"), Price: 54.00, Stock: 20, IsActive: true},
	}
	if err := gormDB.Create(&books).Error; err != nil {
		logger.Fatal("Failed to create seed books", err)
	}

	logger.Info("Seed catalog created", map[string]interface{}{
		"book_count": len(books),
	})
}

func seedAnnouncements(gormDB *gorm.DB) {
	var count int64
	gormDB.Model(&model.AdminNotification{}).Count(&count)
	if count > 0 {
		return
	}

	notification := model.AdminNotification{Message: "Welcome to KitapKurdu! Free shipping on orders over 200 TL."}
	if err := gormDB.Create(&notification).Error; err != nil {
		logger.Fatal("Failed to create seed announcement", err)
	}
}
