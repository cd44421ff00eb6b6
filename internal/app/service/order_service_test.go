package service

import (
	"testing"
	"time"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gorm.DB, OrderService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewOrderService(repository.NewProcGateway(testDB))
}

func TestOrderService_CustomerOrders_GroupsLineItems(t *testing.T) {
	testDB, svc := setupOrderTest(t)

	user := model.User{FullName: "Fatma Sen", Email: "fatma@example.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(&user).Error)
	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	books := []model.Book{
		{Name: "Kitap Bir", Author: "Yazar", CategoryID: category.ID, Price: 20, Stock: 5, IsActive: true},
		{Name: "Kitap Iki", Author: "Yazar", CategoryID: category.ID, Price: 30, Stock: 5, IsActive: true},
	}
	require.NoError(t, testDB.Create(&books).Error)

	order := model.Order{CustomerID: user.ID, Status: model.OrderStatusPending, OrderDate: time.Now(), TotalAmount: 70}
	require.NoError(t, testDB.Create(&order).Error)
	require.NoError(t, testDB.Create(&model.OrderItem{OrderID: order.ID, BookID: books[0].ID, Quantity: 2, UnitPrice: 20}).Error)
	require.NoError(t, testDB.Create(&model.OrderItem{OrderID: order.ID, BookID: books[1].ID, Quantity: 1, UnitPrice: 30}).Error)

	summaries, err := svc.CustomerOrders(user.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1, "two line items fold into one order")
	assert.Len(t, summaries[0].Items, 2)
	assert.Equal(t, 70.0, summaries[0].GrandTotal)
	assert.Equal(t, "Fatma Sen", summaries[0].CustomerName)
	assert.WithinDuration(t, order.OrderDate.Add(72*time.Hour), summaries[0].EstimatedDelivery, time.Second)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	testDB, svc := setupOrderTest(t)

	user := model.User{FullName: "Fatma Sen", Email: "fatma2@example.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(&user).Error)
	order := model.Order{CustomerID: user.ID, Status: model.OrderStatusPending, TotalAmount: 10}
	require.NoError(t, testDB.Create(&order).Error)

	err := svc.UpdateStatus(order.ID, model.OrderStatusPreparing)
	require.NoError(t, err)

	var updated model.Order
	require.NoError(t, testDB.First(&updated, order.ID).Error)
	assert.Equal(t, model.OrderStatusPreparing, updated.Status)
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	_, svc := setupOrderTest(t)

	err := svc.UpdateStatus(1, model.OrderStatus("teleported"))
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}
