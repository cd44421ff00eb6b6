package service

import (
	"sort"
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
)

// CartLine is one row of the cart page, priced at the current catalog price
type CartLine struct {
	Book     model.Book
	Quantity int
	Subtotal float64
}

type CartView struct {
	Lines      []CartLine
	GrandTotal float64
}

type CartService interface {
	BuildView(sessionCart map[string]int) (*CartView, error)
	BookExists(bookID uint) (bool, error)
}

type cartService struct {
	bookRepo repository.BookRepository
}

func NewCartService(bookRepo repository.BookRepository) CartService {
	return &cartService{bookRepo: bookRepo}
}

// BuildView resolves the session cart mapping against the catalog. Entries
// whose book no longer exists are silently dropped from the view.
func (s *cartService) BuildView(sessionCart map[string]int) (*CartView, error) {
	quantities := make(map[uint]int, len(sessionCart))
	ids := make([]uint, 0, len(sessionCart))
	for key, qty := range sessionCart {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			logger.Warn("Dropping malformed cart entry", map[string]interface{}{
				"key": key,
			})
			continue
		}
		quantities[uint(id)] = qty
		ids = append(ids, uint(id))
	}

	books, err := s.bookRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	view := &CartView{}
	for _, book := range books {
		qty := quantities[book.ID]
		line := CartLine{
			Book:     book,
			Quantity: qty,
			Subtotal: book.Price * float64(qty),
		}
		view.Lines = append(view.Lines, line)
		view.GrandTotal += line.Subtotal
	}

	sort.Slice(view.Lines, func(i, j int) bool {
		return view.Lines[i].Book.ID < view.Lines[j].Book.ID
	})
	return view, nil
}

func (s *cartService) BookExists(bookID uint) (bool, error) {
	_, err := s.bookRepo.FindByID(bookID)
	if err != nil {
		return false, nil
	}
	return true, nil
}
