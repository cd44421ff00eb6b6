package repository

import (
	"testing"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type gatewayFixture struct {
	db      *gorm.DB
	gateway ProcGateway
	user    model.User
	book    model.Book
}

func setupGatewayTest(t *testing.T) *gatewayFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	fixture := &gatewayFixture{
		db:      testDB,
		gateway: NewProcGateway(testDB),
		user:    model.User{FullName: "Yusuf Kaya", Email: "yusuf@example.com", PasswordHash: "x"},
	}
	require.NoError(t, testDB.Create(&fixture.user).Error)

	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	fixture.book = model.Book{Name: "Kurk Mantolu Madonna", Author: "Sabahattin Ali", CategoryID: category.ID, Price: 50, Stock: 10, IsActive: true}
	require.NoError(t, testDB.Create(&fixture.book).Error)

	return fixture
}

func (f *gatewayFixture) fillCart(t *testing.T, quantity int) {
	cart := model.Cart{UserID: f.user.ID}
	require.NoError(t, f.db.Create(&cart).Error)
	require.NoError(t, f.db.Create(&model.CartItem{CartID: cart.ID, BookID: f.book.ID, Quantity: quantity}).Error)
}

func TestProcGateway_CalculateCartTotal(t *testing.T) {
	f := setupGatewayTest(t)

	total, err := f.gateway.CalculateCartTotal(f.user.ID)
	require.NoError(t, err)
	assert.Zero(t, total, "no cart means zero total")

	f.fillCart(t, 3)

	total, err = f.gateway.CalculateCartTotal(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)
}

func TestProcGateway_CreateOrder(t *testing.T) {
	f := setupGatewayTest(t)
	f.fillCart(t, 2)

	orderID, err := f.gateway.CreateOrder(f.user.ID, "Ankara", 100)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	var order model.Order
	require.NoError(t, f.db.Preload("Items").First(&order, orderID).Error)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, 100.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 50.0, order.Items[0].UnitPrice, "unit price captured from the catalog")

	var book model.Book
	require.NoError(t, f.db.First(&book, f.book.ID).Error)
	assert.Equal(t, 8, book.Stock)

	var itemCount int64
	f.db.Model(&model.CartItem{}).Count(&itemCount)
	assert.Zero(t, itemCount, "cart rows consumed by the order")
}

func TestProcGateway_CreateOrder_NoCart(t *testing.T) {
	f := setupGatewayTest(t)

	_, err := f.gateway.CreateOrder(f.user.ID, "Ankara", 100)
	assert.Error(t, err)
}

func TestProcGateway_AddReview_RequiresDeliveredOrder(t *testing.T) {
	f := setupGatewayTest(t)

	order := model.Order{CustomerID: f.user.ID, Status: model.OrderStatusShipped, TotalAmount: 50}
	require.NoError(t, f.db.Create(&order).Error)
	require.NoError(t, f.db.Create(&model.OrderItem{OrderID: order.ID, BookID: f.book.ID, Quantity: 1, UnitPrice: 50}).Error)

	ok, err := f.gateway.AddReview(order.ID, f.user.ID, f.book.ID, 5, "Harika")
	require.NoError(t, err)
	assert.False(t, ok, "undelivered order is not reviewable")

	var count int64
	f.db.Model(&model.Review{}).Count(&count)
	assert.Zero(t, count)

	require.NoError(t, f.db.Model(&model.Order{}).Where("id = ?", order.ID).
		UpdateColumn("status", model.OrderStatusDelivered).Error)

	ok, err = f.gateway.AddReview(order.ID, f.user.ID, f.book.ID, 4, "Harika")
	require.NoError(t, err)
	assert.True(t, ok)

	var book model.Book
	require.NoError(t, f.db.First(&book, f.book.ID).Error)
	assert.Equal(t, 4.0, book.AverageRating)
}

func TestProcGateway_AddReview_WrongUser(t *testing.T) {
	f := setupGatewayTest(t)

	other := model.User{FullName: "Baska Biri", Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Create(&other).Error)

	order := model.Order{CustomerID: f.user.ID, Status: model.OrderStatusDelivered, TotalAmount: 50}
	require.NoError(t, f.db.Create(&order).Error)
	require.NoError(t, f.db.Create(&model.OrderItem{OrderID: order.ID, BookID: f.book.ID, Quantity: 1, UnitPrice: 50}).Error)

	ok, err := f.gateway.AddReview(order.ID, other.ID, f.book.ID, 5, "Harika")
	require.NoError(t, err)
	assert.False(t, ok, "only the order owner may review")
}

func TestProcGateway_UpdateOrderStatus(t *testing.T) {
	f := setupGatewayTest(t)

	order := model.Order{CustomerID: f.user.ID, Status: model.OrderStatusPending, TotalAmount: 50}
	require.NoError(t, f.db.Create(&order).Error)

	err := f.gateway.UpdateOrderStatus(order.ID, model.OrderStatusShipped)
	require.NoError(t, err)

	var updated model.Order
	require.NoError(t, f.db.First(&updated, order.ID).Error)
	assert.Equal(t, model.OrderStatusShipped, updated.Status)

	var history model.OrderStatusHistory
	require.NoError(t, f.db.Where("order_id = ?", order.ID).First(&history).Error)
	assert.Equal(t, "pending", history.OldStatus)
	assert.Equal(t, "shipped", history.NewStatus)
}

func TestProcGateway_UpdateStock(t *testing.T) {
	f := setupGatewayTest(t)

	require.NoError(t, f.gateway.UpdateStock(f.book.ID, 42))

	var book model.Book
	require.NoError(t, f.db.First(&book, f.book.ID).Error)
	assert.Equal(t, 42, book.Stock)
}

func TestProcGateway_ListOrderDetails(t *testing.T) {
	f := setupGatewayTest(t)
	f.fillCart(t, 2)

	orderID, err := f.gateway.CreateOrder(f.user.ID, "Istanbul", 100)
	require.NoError(t, err)

	details, err := f.gateway.ListOrderDetails(f.user.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, orderID, details[0].OrderID)
	assert.Equal(t, "Kurk Mantolu Madonna", details[0].BookName)
	assert.Equal(t, 100.0, details[0].TotalAmount)
	assert.Equal(t, details[0].OrderDate.Add(deliveryLeadTime), details[0].EstimatedDelivery)

	other, err := f.gateway.ListOrderDetails(f.user.ID + 99)
	require.NoError(t, err)
	assert.Empty(t, other)

	all, err := f.gateway.ListAllOrderDetails()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProcGateway_ListBookReviews_MasksNames(t *testing.T) {
	f := setupGatewayTest(t)

	require.NoError(t, f.db.Create(&model.Review{UserID: f.user.ID, BookID: f.book.ID, Star: 5, Comment: "Cok iyi"}).Error)

	reviews, err := f.gateway.ListBookReviews(f.book.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Y**** K***", reviews[0].MaskedName)
	assert.Equal(t, 5, reviews[0].Star)
}
