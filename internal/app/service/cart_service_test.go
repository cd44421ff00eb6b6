package service

import (
	"fmt"
	"testing"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*gorm.DB, CartService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewCartService(repository.NewBookRepository(testDB))
}

func TestCartService_BuildView(t *testing.T) {
	testDB, svc := setupCartServiceTest(t)

	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	books := []model.Book{
		{Name: "Ucuz Kitap", Author: "Yazar", CategoryID: category.ID, Price: 10, Stock: 5, IsActive: true},
		{Name: "Pahali Kitap", Author: "Yazar", CategoryID: category.ID, Price: 100, Stock: 5, IsActive: true},
	}
	require.NoError(t, testDB.Create(&books).Error)

	view, err := svc.BuildView(map[string]int{
		fmt.Sprint(books[0].ID): 3,
		fmt.Sprint(books[1].ID): 1,
	})
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 130.0, view.GrandTotal)
	assert.Equal(t, 30.0, view.Lines[0].Subtotal)
}

func TestCartService_BuildView_DropsUnknownEntries(t *testing.T) {
	_, svc := setupCartServiceTest(t)

	view, err := svc.BuildView(map[string]int{
		"9999":         2, // no such book
		"not-a-number": 1,
	})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.GrandTotal)
}

func TestCartService_BuildView_EmptyCart(t *testing.T) {
	_, svc := setupCartServiceTest(t)

	view, err := svc.BuildView(map[string]int{})
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.GrandTotal)
}
