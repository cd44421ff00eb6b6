package repository

import (
	"time"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"gorm.io/gorm"
)

// CartRepository manages the persisted cart container and its line items.
// The container exists only as a checkout-time snapshot of the session cart.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	FindOrCreateByUserID(userID uint) (*model.Cart, error)
	ReplaceItems(cartID uint, items []model.CartItem) error
	FindItemsByCartID(cartID uint) ([]model.CartItem, error)
	DeleteStale(olderThan time.Time) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) WithTx(tx *gorm.DB) CartRepository {
	return &cartRepository{db: tx}
}

func (r *cartRepository) FindOrCreateByUserID(userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		logger.Error("Failed to look up cart container", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	cart = model.Cart{UserID: userID}
	if err := r.db.Create(&cart).Error; err != nil {
		logger.Error("Failed to create cart container", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Debug("Cart container created", map[string]interface{}{
		"cart_id": cart.ID,
		"user_id": userID,
	})
	return &cart, nil
}

// ReplaceItems swaps the container's line items wholesale. Delete-then-insert
// keeps repeated checkout attempts from accumulating duplicate rows.
func (r *cartRepository) ReplaceItems(cartID uint, items []model.CartItem) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to clear cart items", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	for i := range items {
		items[i].CartID = cartID
	}
	if len(items) == 0 {
		return nil
	}

	if err := r.db.Create(&items).Error; err != nil {
		logger.Error("Failed to insert cart items", err, map[string]interface{}{
			"cart_id":    cartID,
			"item_count": len(items),
		})
		return err
	}
	return nil
}

func (r *cartRepository) FindItemsByCartID(cartID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.Where("cart_id = ?", cartID).Preload("Book").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteStale removes cart containers (and their items) left behind by
// checkout attempts that never produced an order.
func (r *cartRepository) DeleteStale(olderThan time.Time) (int64, error) {
	var carts []model.Cart
	if err := r.db.Where("created_at < ?", olderThan).Find(&carts).Error; err != nil {
		return 0, err
	}
	if len(carts) == 0 {
		return 0, nil
	}

	ids := make([]uint, 0, len(carts))
	for _, cart := range carts {
		ids = append(ids, cart.ID)
	}

	if err := r.db.Where("cart_id IN ?", ids).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to delete stale cart items", err, map[string]interface{}{
			"cart_count": len(ids),
		})
		return 0, err
	}

	result := r.db.Where("id IN ?", ids).Delete(&model.Cart{})
	if result.Error != nil {
		logger.Error("Failed to delete stale carts", result.Error, map[string]interface{}{
			"cart_count": len(ids),
		})
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
