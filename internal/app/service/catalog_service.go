package service

import (
	"errors"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"gorm.io/gorm"
)

const relatedBooksLimit = 4

// CatalogPage is the storefront listing: categories for the sidebar plus
// the visible books, optionally narrowed by category or search query.
type CatalogPage struct {
	Categories     []model.Category
	Books          []model.Book
	ActiveCategory *model.Category
	SearchQuery    string
}

// BookDetailPage carries everything the detail template renders: the book,
// masked reviews, same-category recommendations and the viewer's favorite
// state.
type BookDetailPage struct {
	Book        *model.Book
	Reviews     []model.BookReview
	Related     []model.Book
	IsFavorite  bool
}

type CatalogService interface {
	BrowseBooks(categoryID *uint, query string) (*CatalogPage, error)
	BookDetail(bookID uint, viewerID uint) (*BookDetailPage, error)
}

type catalogService struct {
	bookRepo     repository.BookRepository
	categoryRepo repository.CategoryRepository
	favoriteRepo repository.FavoriteRepository
	gateway      repository.ProcGateway
}

func NewCatalogService(
	bookRepo repository.BookRepository,
	categoryRepo repository.CategoryRepository,
	favoriteRepo repository.FavoriteRepository,
	gateway repository.ProcGateway,
) CatalogService {
	return &catalogService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		favoriteRepo: favoriteRepo,
		gateway:      gateway,
	}
}

func (s *catalogService) BrowseBooks(categoryID *uint, query string) (*CatalogPage, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	page := &CatalogPage{Categories: categories, SearchQuery: query}

	if query != "" {
		page.Books, err = s.bookRepo.Search(query)
		return page, err
	}

	if categoryID != nil {
		page.ActiveCategory, err = s.categoryRepo.FindByID(*categoryID)
		if err != nil {
			return nil, err
		}
	}

	page.Books, err = s.bookRepo.FindAll(categoryID)
	return page, err
}

// BookDetail assembles the detail page. viewerID of zero means an anonymous
// visitor; favorite state is skipped for them.
func (s *catalogService) BookDetail(bookID uint, viewerID uint) (*BookDetailPage, error) {
	book, err := s.bookRepo.FindByID(bookID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.gateway.ListBookReviews(bookID)
	if err != nil {
		return nil, err
	}

	related, err := s.bookRepo.FindRelated(book.CategoryID, book.ID, relatedBooksLimit)
	if err != nil {
		return nil, err
	}

	page := &BookDetailPage{Book: book, Reviews: reviews, Related: related}

	if viewerID != 0 {
		_, err := s.favoriteRepo.FindByUserAndBook(viewerID, bookID)
		if err == nil {
			page.IsFavorite = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return page, nil
}
