package service

import (
	"errors"
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutResult reports the order the workflow produced
type CheckoutResult struct {
	OrderID uint
	Total   float64
}

type CheckoutService interface {
	Checkout(userID uint, address string, sessionCart map[string]int) (*CheckoutResult, error)
}

type checkoutService struct {
	db       *gorm.DB
	cartRepo repository.CartRepository
	gateway  repository.ProcGateway
}

func NewCheckoutService(db *gorm.DB, cartRepo repository.CartRepository, gateway repository.ProcGateway) CheckoutService {
	return &checkoutService{db: db, cartRepo: cartRepo, gateway: gateway}
}

// Checkout snapshots the session cart into the persisted container, prices
// it and materializes the order, all inside one transaction. The caller
// clears the session cart only after a nil error.
func (s *checkoutService) Checkout(userID uint, address string, sessionCart map[string]int) (*CheckoutResult, error) {
	items := make([]model.CartItem, 0, len(sessionCart))
	for key, qty := range sessionCart {
		bookID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			continue
		}
		items = append(items, model.CartItem{BookID: uint(bookID), Quantity: qty})
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	logger.Info("Starting checkout", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(items),
	})

	var result CheckoutResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		gateway := s.gateway.WithTx(tx)

		cart, err := cartRepo.FindOrCreateByUserID(userID)
		if err != nil {
			return err
		}
		if err := cartRepo.ReplaceItems(cart.ID, items); err != nil {
			return err
		}

		total, err := gateway.CalculateCartTotal(userID)
		if err != nil {
			return err
		}

		orderID, err := gateway.CreateOrder(userID, address, total)
		if err != nil {
			return err
		}

		result = CheckoutResult{OrderID: orderID, Total: total}
		return nil
	})
	if err != nil {
		logger.Error("Checkout failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Checkout completed", map[string]interface{}{
		"user_id":  userID,
		"order_id": result.OrderID,
		"total":    result.Total,
	})
	return &result, nil
}
