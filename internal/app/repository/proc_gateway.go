package repository

import (
	"fmt"
	"time"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/ekaracan/kitapkurdu/pkg/util"
	"gorm.io/gorm"
)

// deliveryLeadTime mirrors the estimated_delivery database function
const deliveryLeadTime = 3 * 24 * time.Hour

// ProcGateway is the application-side contract over the database routines
// (calculate_cart_total, create_order, add_review, update_stock,
// update_order_status and the order_details view). Services never embed
// this logic themselves; they call through the gateway so the rules stay
// in one place regardless of which implementation backs them.
type ProcGateway interface {
	WithTx(tx *gorm.DB) ProcGateway
	CalculateCartTotal(userID uint) (float64, error)
	CreateOrder(userID uint, address string, total float64) (uint, error)
	AddReview(orderID, userID, bookID uint, star int, comment string) (bool, error)
	UpdateStock(bookID uint, stock int) error
	UpdateOrderStatus(orderID uint, status model.OrderStatus) error
	ListOrderDetails(customerID uint) ([]model.OrderDetail, error)
	ListAllOrderDetails() ([]model.OrderDetail, error)
	ListBookReviews(bookID uint) ([]model.BookReview, error)
}

// NewProcGateway picks the implementation for the connected dialect:
// PostgreSQL calls the installed routines, anything else gets the portable
// ORM implementation with the same semantics.
func NewProcGateway(db *gorm.DB) ProcGateway {
	if db.Dialector.Name() == "postgres" {
		return &postgresGateway{db: db}
	}
	return &ormGateway{db: db}
}

// postgresGateway delegates to the plpgsql functions and the
// order_details view installed by db.InstallRoutines.
type postgresGateway struct {
	db *gorm.DB
}

func (g *postgresGateway) WithTx(tx *gorm.DB) ProcGateway {
	return &postgresGateway{db: tx}
}

func (g *postgresGateway) CalculateCartTotal(userID uint) (float64, error) {
	var total float64
	err := g.db.Raw("SELECT calculate_cart_total(?)", userID).Scan(&total).Error
	if err != nil {
		logger.Error("calculate_cart_total failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return 0, err
	}
	return total, nil
}

func (g *postgresGateway) CreateOrder(userID uint, address string, total float64) (uint, error) {
	var orderID uint
	err := g.db.Raw("SELECT create_order(?, ?, ?)", userID, address, total).Scan(&orderID).Error
	if err != nil {
		logger.Error("create_order failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return 0, err
	}

	logger.Info("Order created by database routine", map[string]interface{}{
		"order_id": orderID,
		"user_id":  userID,
		"total":    total,
	})
	return orderID, nil
}

func (g *postgresGateway) AddReview(orderID, userID, bookID uint, star int, comment string) (bool, error) {
	var result int
	err := g.db.Raw("SELECT add_review(?, ?, ?, ?, ?)", orderID, userID, bookID, star, comment).
		Scan(&result).Error
	if err != nil {
		logger.Error("add_review failed", err, map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
			"book_id":  bookID,
		})
		return false, err
	}
	return result == 1, nil
}

func (g *postgresGateway) UpdateStock(bookID uint, stock int) error {
	err := g.db.Exec("SELECT update_stock(?, ?)", bookID, stock).Error
	if err != nil {
		logger.Error("update_stock failed", err, map[string]interface{}{
			"book_id": bookID,
			"stock":   stock,
		})
	}
	return err
}

func (g *postgresGateway) UpdateOrderStatus(orderID uint, status model.OrderStatus) error {
	err := g.db.Exec("SELECT update_order_status(?, ?)", orderID, string(status)).Error
	if err != nil {
		logger.Error("update_order_status failed", err, map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
	}
	return err
}

const orderDetailsSelect = `SELECT od.*, estimated_delivery(od.order_date) AS estimated_delivery
FROM order_details od`

func (g *postgresGateway) ListOrderDetails(customerID uint) ([]model.OrderDetail, error) {
	var details []model.OrderDetail
	err := g.db.Raw(orderDetailsSelect+" WHERE od.customer_id = ? ORDER BY od.order_id DESC", customerID).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (g *postgresGateway) ListAllOrderDetails() ([]model.OrderDetail, error) {
	var details []model.OrderDetail
	err := g.db.Raw(orderDetailsSelect + " ORDER BY od.order_id DESC").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (g *postgresGateway) ListBookReviews(bookID uint) ([]model.BookReview, error) {
	var reviews []model.BookReview
	err := g.db.Raw(`SELECT r.comment, r.star, mask_name(u.full_name) AS masked_name
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.book_id = ?
ORDER BY r.created_at DESC`, bookID).Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ormGateway reimplements the routine semantics with GORM so the SQLite
// test database and local development behave like production.
type ormGateway struct {
	db *gorm.DB
}

func (g *ormGateway) WithTx(tx *gorm.DB) ProcGateway {
	return &ormGateway{db: tx}
}

func (g *ormGateway) CalculateCartTotal(userID uint) (float64, error) {
	var cart model.Cart
	err := g.db.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var items []model.CartItem
	if err := g.db.Where("cart_id = ?", cart.ID).Preload("Book").Find(&items).Error; err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Book.Price * float64(item.Quantity)
	}
	return total, nil
}

func (g *ormGateway) CreateOrder(userID uint, address string, total float64) (uint, error) {
	var cart model.Cart
	if err := g.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, fmt.Errorf("no cart for user %d", userID)
		}
		return 0, err
	}

	var items []model.CartItem
	if err := g.db.Where("cart_id = ?", cart.ID).Preload("Book").Find(&items).Error; err != nil {
		return 0, err
	}

	order := model.Order{
		CustomerID:      userID,
		Status:          model.OrderStatusPending,
		OrderDate:       time.Now(),
		TotalAmount:     total,
		ShippingAddress: address,
	}
	if err := g.db.Create(&order).Error; err != nil {
		return 0, err
	}

	for _, item := range items {
		orderItem := model.OrderItem{
			OrderID:   order.ID,
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.Book.Price,
		}
		if err := g.db.Create(&orderItem).Error; err != nil {
			return 0, err
		}

		err := g.db.Model(&model.Book{}).
			Where("id = ?", item.BookID).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error
		if err != nil {
			return 0, err
		}
	}

	if err := g.db.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
		return 0, err
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    total,
	})
	return order.ID, nil
}

func (g *ormGateway) AddReview(orderID, userID, bookID uint, star int, comment string) (bool, error) {
	var count int64
	err := g.db.Model(&model.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.id = ? AND orders.customer_id = ? AND order_items.book_id = ? AND orders.status = ?",
			orderID, userID, bookID, model.OrderStatusDelivered).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}

	review := model.Review{
		UserID:  userID,
		BookID:  bookID,
		Star:    star,
		Comment: comment,
	}
	if err := g.db.Create(&review).Error; err != nil {
		return false, err
	}

	var avg float64
	err = g.db.Model(&model.Review{}).
		Where("book_id = ?", bookID).
		Select("AVG(star)").Scan(&avg).Error
	if err != nil {
		return false, err
	}

	err = g.db.Model(&model.Book{}).
		Where("id = ?", bookID).
		UpdateColumn("average_rating", avg).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *ormGateway) UpdateStock(bookID uint, stock int) error {
	return g.db.Model(&model.Book{}).
		Where("id = ?", bookID).
		Updates(map[string]interface{}{"stock": stock, "updated_at": time.Now()}).Error
}

func (g *ormGateway) UpdateOrderStatus(orderID uint, status model.OrderStatus) error {
	var order model.Order
	if err := g.db.First(&order, orderID).Error; err != nil {
		return err
	}

	err := g.db.Model(&model.Order{}).
		Where("id = ?", orderID).
		UpdateColumn("status", status).Error
	if err != nil {
		return err
	}

	history := model.OrderStatusHistory{
		OrderID:    orderID,
		OldStatus:  string(order.Status),
		NewStatus:  string(status),
		ChangeDate: time.Now(),
	}
	return g.db.Create(&history).Error
}

func (g *ormGateway) ListOrderDetails(customerID uint) ([]model.OrderDetail, error) {
	return g.listOrderDetails(&customerID)
}

func (g *ormGateway) ListAllOrderDetails() ([]model.OrderDetail, error) {
	return g.listOrderDetails(nil)
}

func (g *ormGateway) listOrderDetails(customerID *uint) ([]model.OrderDetail, error) {
	query := g.db.Model(&model.Order{}).Preload("Items.Book").Preload("Customer")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var orders []model.Order
	if err := query.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	var details []model.OrderDetail
	for _, order := range orders {
		for _, item := range order.Items {
			details = append(details, model.OrderDetail{
				OrderID:           order.ID,
				OrderDate:         order.OrderDate,
				CustomerID:        order.CustomerID,
				CustomerName:      order.Customer.FullName,
				Status:            order.Status,
				BookID:            item.BookID,
				BookName:          item.Book.Name,
				Quantity:          item.Quantity,
				UnitPrice:         item.UnitPrice,
				TotalAmount:       item.UnitPrice * float64(item.Quantity),
				EstimatedDelivery: order.OrderDate.Add(deliveryLeadTime),
			})
		}
	}
	return details, nil
}

func (g *ormGateway) ListBookReviews(bookID uint) ([]model.BookReview, error) {
	var reviews []model.Review
	err := g.db.Where("book_id = ?", bookID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.BookReview, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, model.BookReview{
			Comment:    review.Comment,
			Star:       review.Star,
			MaskedName: util.MaskName(review.User.FullName),
		})
	}
	return result, nil
}
