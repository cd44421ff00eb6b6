package repository

import (
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *model.Book) error
	Update(book *model.Book) error
	FindByID(id uint) (*model.Book, error)
	FindByIDs(ids []uint) ([]model.Book, error)
	FindAll(categoryID *uint) ([]model.Book, error)
	FindNewestFirst() ([]model.Book, error)
	Search(query string) ([]model.Book, error)
	FindRelated(categoryID, excludeBookID uint, limit int) ([]model.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *model.Book) error {
	logger.Debug("Creating book in database", map[string]interface{}{
		"name":        book.Name,
		"author":      book.Author,
		"category_id": book.CategoryID,
	})

	if err := r.db.Create(book).Error; err != nil {
		logger.Error("Failed to create book in database", err, map[string]interface{}{
			"name": book.Name,
		})
		return err
	}
	return nil
}

func (r *bookRepository) Update(book *model.Book) error {
	if err := r.db.Save(book).Error; err != nil {
		logger.Error("Failed to update book in database", err, map[string]interface{}{
			"book_id": book.ID,
		})
		return err
	}
	return nil
}

func (r *bookRepository) FindByID(id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.Preload("Category").First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByIDs(ids []uint) ([]model.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var books []model.Book
	if err := r.db.Where("id IN ?", ids).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// FindAll lists active books, optionally restricted to one category
func (r *bookRepository) FindAll(categoryID *uint) ([]model.Book, error) {
	query := r.db.Where("is_active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var books []model.Book
	if err := query.Order("id").Find(&books).Error; err != nil {
		logger.Error("Failed to list books", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	return books, nil
}

// FindNewestFirst lists the full inventory for the seller pages
func (r *bookRepository) FindNewestFirst() ([]model.Book, error) {
	var books []model.Book
	if err := r.db.Preload("Category").Order("id DESC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Search matches the query as a substring of the book name or author
func (r *bookRepository) Search(query string) ([]model.Book, error) {
	pattern := "%" + query + "%"

	var books []model.Book
	err := r.db.
		Where("is_active = ?", true).
		Where("name LIKE ? OR author LIKE ?", pattern, pattern).
		Find(&books).Error
	if err != nil {
		logger.Error("Failed to search books", err, map[string]interface{}{
			"query": query,
		})
		return nil, err
	}
	return books, nil
}

// FindRelated returns other active books of the same category
func (r *bookRepository) FindRelated(categoryID, excludeBookID uint, limit int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.
		Where("category_id = ? AND id <> ? AND is_active = ?", categoryID, excludeBookID, true).
		Limit(limit).
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}
