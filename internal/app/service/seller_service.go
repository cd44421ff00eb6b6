package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/storage"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNegativeStock = errors.New("stock cannot be negative")
	ErrInvalidPrice  = errors.New("price must be positive")
)

type AddBookInput struct {
	Name       string
	Author     string
	CategoryID uint
	Price      float64
	Stock      int
	Cover      *multipart.FileHeader
}

type SellerService interface {
	Products() ([]model.Book, error)
	AddBook(ctx context.Context, input AddBookInput) (*model.Book, error)
	UpdateListing(bookID uint, price float64, stock int) error
	ExportInventory() ([]byte, error)
}

type sellerService struct {
	bookRepo repository.BookRepository
	gateway  repository.ProcGateway
	uploader storage.Uploader
}

func NewSellerService(bookRepo repository.BookRepository, gateway repository.ProcGateway, uploader storage.Uploader) SellerService {
	return &sellerService{
		bookRepo: bookRepo,
		gateway:  gateway,
		uploader: uploader,
	}
}

func (s *sellerService) Products() ([]model.Book, error) {
	return s.bookRepo.FindNewestFirst()
}

func (s *sellerService) AddBook(ctx context.Context, input AddBookInput) (*model.Book, error) {
	book := &model.Book{
		Name:       input.Name,
		Author:     input.Author,
		CategoryID: input.CategoryID,
		Price:      input.Price,
		Stock:      input.Stock,
		IsActive:   true,
	}

	if input.Cover != nil && s.uploader != nil {
		url, err := s.uploadCover(ctx, input.Cover)
		if err != nil {
			// a missing cover should not block the listing
			logger.Warn("Cover upload failed, book saved without image", map[string]interface{}{
				"name": input.Name,
			})
		} else {
			book.ImageURL = url
		}
	}

	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *sellerService) uploadCover(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return s.uploader.UploadCover(ctx, header.Filename, file, header.Size)
}

// UpdateListing adjusts the catalog price directly and delegates the stock
// change to the database routine.
func (s *sellerService) UpdateListing(bookID uint, price float64, stock int) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}

	book, err := s.bookRepo.FindByID(bookID)
	if err != nil {
		return err
	}

	if book.Price != price {
		book.Price = price
		if err := s.bookRepo.Update(book); err != nil {
			return err
		}
	}
	return s.gateway.UpdateStock(bookID, stock)
}

// ExportInventory renders the full catalog as an xlsx workbook
func (s *sellerService) ExportInventory() ([]byte, error) {
	books, err := s.bookRepo.FindNewestFirst()
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	headers := []string{"ID", "Name", "Author", "Category", "Price", "Stock", "Rating", "Active"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		workbook.SetCellValue(sheet, cell, header)
	}

	for row, book := range books {
		values := []interface{}{
			book.ID, book.Name, book.Author, book.Category.Name,
			book.Price, book.Stock, book.AverageRating, book.IsActive,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			workbook.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write inventory workbook: %w", err)
	}

	logger.Info("Inventory exported", map[string]interface{}{
		"book_count": len(books),
	})
	return buf.Bytes(), nil
}
