package repository

import (
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *model.Favorite) error
	Delete(id uint) error
	FindByUserAndBook(userID, bookID uint) (*model.Favorite, error)
	FindBookIDsByUser(userID uint) ([]uint, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		logger.Error("Failed to create favorite", err, map[string]interface{}{
			"user_id": favorite.UserID,
			"book_id": favorite.BookID,
		})
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Favorite{}, id).Error; err != nil {
		logger.Error("Failed to delete favorite", err, map[string]interface{}{
			"favorite_id": id,
		})
		return err
	}
	return nil
}

func (r *favoriteRepository) FindByUserAndBook(userID, bookID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindBookIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
