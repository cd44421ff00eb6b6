package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupSellerTest(t *testing.T) (*gorm.DB, SellerService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	svc := NewSellerService(
		repository.NewBookRepository(testDB),
		repository.NewProcGateway(testDB),
		nil, // no uploader in tests
	)
	return testDB, svc
}

func TestSellerService_AddBook(t *testing.T) {
	testDB, svc := setupSellerTest(t)

	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)

	book, err := svc.AddBook(context.Background(), AddBookInput{
		Name:       "Yeni Kitap",
		Author:     "Yeni Yazar",
		CategoryID: category.ID,
		Price:      75,
		Stock:      12,
	})
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.True(t, book.IsActive, "new listings start active")
	assert.Empty(t, book.ImageURL)
}

func TestSellerService_UpdateListing(t *testing.T) {
	testDB, svc := setupSellerTest(t)

	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	book := model.Book{Name: "Kitap", Author: "Yazar", CategoryID: category.ID, Price: 20, Stock: 1, IsActive: true}
	require.NoError(t, testDB.Create(&book).Error)

	require.NoError(t, svc.UpdateListing(book.ID, 35.50, 25))

	var updated model.Book
	require.NoError(t, testDB.First(&updated, book.ID).Error)
	assert.Equal(t, 35.50, updated.Price)
	assert.Equal(t, 25, updated.Stock)
}

func TestSellerService_UpdateListing_Invalid(t *testing.T) {
	_, svc := setupSellerTest(t)

	assert.ErrorIs(t, svc.UpdateListing(1, 10, -5), ErrNegativeStock)
	assert.ErrorIs(t, svc.UpdateListing(1, 0, 5), ErrInvalidPrice)
	assert.Error(t, svc.UpdateListing(9999, 10, 5), "unknown book is rejected")
}

func TestSellerService_ExportInventory(t *testing.T) {
	testDB, svc := setupSellerTest(t)

	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	book := model.Book{Name: "Disa Aktarilan", Author: "Yazar", CategoryID: category.ID, Price: 20, Stock: 3, IsActive: true}
	require.NoError(t, testDB.Create(&book).Error)

	data, err := svc.ExportInventory()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	header, err := workbook.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	name, err := workbook.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Disa Aktarilan", name)
}
