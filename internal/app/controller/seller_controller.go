package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SellerController backs the seller area: order management, inventory and
// announcements. Every route here sits behind the seller role check.
type SellerController struct {
	sellerService       service.SellerService
	orderService        service.OrderService
	notificationService service.NotificationService
	categoryRepo        repository.CategoryRepository
}

func NewSellerController(
	sellerService service.SellerService,
	orderService service.OrderService,
	notificationService service.NotificationService,
	categoryRepo repository.CategoryRepository,
) *SellerController {
	return &SellerController{
		sellerService:       sellerService,
		orderService:        orderService,
		notificationService: notificationService,
		categoryRepo:        categoryRepo,
	}
}

func (ctrl *SellerController) Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "seller_dashboard.html", nil)
}

func (ctrl *SellerController) Orders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.AllOrders()
	if err != nil {
		log.Error("Failed to load seller orders", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Orders are temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "seller_orders.html", gin.H{
		"Orders":   orders,
		"Statuses": []model.OrderStatus{model.OrderStatusPending, model.OrderStatusPreparing, model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled},
	})
}

func (ctrl *SellerController) UpdateOrderStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orderID, err := strconv.ParseUint(c.PostForm("order_id"), 10, 64)
	if err != nil {
		flashError(c, "Unknown order.", "/seller/orders")
		return
	}
	status := model.OrderStatus(c.PostForm("status"))

	err = ctrl.orderService.UpdateStatus(uint(orderID), status)
	switch {
	case errors.Is(err, service.ErrInvalidOrderStatus):
		flashError(c, "Unknown order status.", "/seller/orders")
	case err != nil:
		log.Error("Failed to update order status", err, map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
		flashFailure(c, err, "order", "/seller/orders")
	default:
		flashSuccess(c, fmt.Sprintf("Order #%d is now %s.", orderID, status), "/seller/orders")
	}
}

func (ctrl *SellerController) Products(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	books, err := ctrl.sellerService.Products()
	if err != nil {
		log.Error("Failed to load products", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Products are temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "seller_products.html", gin.H{
		"Books": books,
	})
}

func (ctrl *SellerController) ShowAddBook(c *gin.Context) {
	categories, err := ctrl.categoryRepo.FindAll()
	if err != nil {
		flashError(c, "Categories are temporarily unavailable.", "/seller/products")
		return
	}

	render(c, http.StatusOK, "seller_add_book.html", gin.H{
		"Categories": categories,
	})
}

func (ctrl *SellerController) AddBook(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
	if err != nil {
		flashError(c, "Please pick a category.", "/seller/products/new")
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		flashError(c, "Price must be a positive number.", "/seller/products/new")
		return
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil || stock < 0 {
		flashError(c, "Stock must be zero or more.", "/seller/products/new")
		return
	}

	input := service.AddBookInput{
		Name:       c.PostForm("name"),
		Author:     c.PostForm("author"),
		CategoryID: uint(categoryID),
		Price:      price,
		Stock:      stock,
	}
	if input.Name == "" || input.Author == "" {
		flashError(c, "Name and author are required.", "/seller/products/new")
		return
	}

	// cover image is optional
	if cover, err := c.FormFile("cover"); err == nil {
		input.Cover = cover
	}

	book, err := ctrl.sellerService.AddBook(c.Request.Context(), input)
	if err != nil {
		log.Error("Failed to add book", err, map[string]interface{}{
			"name": input.Name,
		})
		flashFailure(c, err, "book", "/seller/products/new")
		return
	}

	flashSuccess(c, fmt.Sprintf("%q is now listed.", book.Name), "/seller/products")
}

func (ctrl *SellerController) UpdateListing(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	bookID, err := strconv.ParseUint(c.PostForm("book_id"), 10, 64)
	if err != nil {
		flashError(c, "Unknown book.", "/seller/products")
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		flashError(c, "Price must be a number.", "/seller/products")
		return
	}
	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil {
		flashError(c, "Stock must be a number.", "/seller/products")
		return
	}

	err = ctrl.sellerService.UpdateListing(uint(bookID), price, stock)
	switch {
	case errors.Is(err, service.ErrInvalidPrice):
		flashError(c, "Price must be positive.", "/seller/products")
	case errors.Is(err, service.ErrNegativeStock):
		flashError(c, "Stock cannot be negative.", "/seller/products")
	case err != nil:
		log.Error("Failed to update listing", err, map[string]interface{}{
			"book_id": bookID,
			"price":   price,
			"stock":   stock,
		})
		flashFailure(c, err, "book", "/seller/products")
	default:
		flashSuccess(c, "Listing updated.", "/seller/products")
	}
}

// ExportProducts streams the inventory as an xlsx download
func (ctrl *SellerController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.sellerService.ExportInventory()
	if err != nil {
		log.Error("Failed to export inventory", err)
		flashError(c, "The export could not be generated.", "/seller/products")
		return
	}

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Announce publishes a storefront announcement
func (ctrl *SellerController) Announce(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	message := c.PostForm("message")
	if message == "" {
		flashError(c, "The announcement text is required.", "/seller")
		return
	}

	if _, err := ctrl.notificationService.Announce(message); err != nil {
		log.Error("Failed to publish announcement", err)
		flashError(c, "The announcement could not be published.", "/seller")
		return
	}

	flashSuccess(c, "Announcement published.", "/seller")
}
