package service

import (
	"errors"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteService interface {
	Toggle(userID, bookID uint) (bool, error)
	ListBooks(userID uint) ([]model.Book, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	bookRepo     repository.BookRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, bookRepo repository.BookRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, bookRepo: bookRepo}
}

// Toggle flips the favorite mark and reports whether the book is now
// favorited. Two toggles in a row always return to the starting state.
func (s *favoriteService) Toggle(userID, bookID uint) (bool, error) {
	existing, err := s.favoriteRepo.FindByUserAndBook(userID, bookID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(existing.ID); err != nil {
			return false, err
		}
		logger.Debug("Favorite removed", map[string]interface{}{
			"user_id": userID,
			"book_id": bookID,
		})
		return false, nil
	}

	favorite := &model.Favorite{UserID: userID, BookID: bookID}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return false, err
	}

	logger.Debug("Favorite added", map[string]interface{}{
		"user_id": userID,
		"book_id": bookID,
	})
	return true, nil
}

func (s *favoriteService) ListBooks(userID uint) ([]model.Book, error) {
	ids, err := s.favoriteRepo.FindBookIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.bookRepo.FindByIDs(ids)
}
