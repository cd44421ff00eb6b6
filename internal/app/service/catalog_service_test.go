package service

import (
	"testing"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogTest(t *testing.T) (*gorm.DB, CatalogService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	svc := NewCatalogService(
		repository.NewBookRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewFavoriteRepository(testDB),
		repository.NewProcGateway(testDB),
	)
	return testDB, svc
}

func seedCatalogService(t *testing.T, testDB *gorm.DB) (model.Category, []model.Book) {
	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	other := model.Category{Name: "Tarih"}
	require.NoError(t, testDB.Create(&other).Error)

	books := []model.Book{
		{Name: "Birinci", Author: "Yazar Bir", CategoryID: category.ID, Price: 20, Stock: 5, IsActive: true},
		{Name: "Ikinci", Author: "Yazar Iki", CategoryID: category.ID, Price: 30, Stock: 5, IsActive: true},
		{Name: "Tarihli", Author: "Yazar Uc", CategoryID: other.ID, Price: 40, Stock: 5, IsActive: true},
	}
	require.NoError(t, testDB.Create(&books).Error)
	return category, books
}

func TestCatalogService_BrowseBooks(t *testing.T) {
	testDB, svc := setupCatalogTest(t)
	category, _ := seedCatalogService(t, testDB)

	page, err := svc.BrowseBooks(nil, "")
	require.NoError(t, err)
	assert.Len(t, page.Books, 3)
	assert.Len(t, page.Categories, 2)
	assert.Nil(t, page.ActiveCategory)

	page, err = svc.BrowseBooks(&category.ID, "")
	require.NoError(t, err)
	assert.Len(t, page.Books, 2)
	require.NotNil(t, page.ActiveCategory)
	assert.Equal(t, "Roman", page.ActiveCategory.Name)
}

func TestCatalogService_BrowseBooks_Search(t *testing.T) {
	testDB, svc := setupCatalogTest(t)
	seedCatalogService(t, testDB)

	page, err := svc.BrowseBooks(nil, "Yazar Iki")
	require.NoError(t, err)
	require.Len(t, page.Books, 1)
	assert.Equal(t, "Ikinci", page.Books[0].Name)
	assert.Equal(t, "Yazar Iki", page.SearchQuery)
}

func TestCatalogService_BookDetail(t *testing.T) {
	testDB, svc := setupCatalogTest(t)
	_, books := seedCatalogService(t, testDB)

	user := model.User{FullName: "Deniz Koc", Email: "deniz@example.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(&user).Error)
	require.NoError(t, testDB.Create(&model.Review{UserID: user.ID, BookID: books[0].ID, Star: 4, Comment: "Guzel"}).Error)
	require.NoError(t, testDB.Create(&model.Favorite{UserID: user.ID, BookID: books[0].ID}).Error)

	page, err := svc.BookDetail(books[0].ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, books[0].ID, page.Book.ID)
	assert.True(t, page.IsFavorite)

	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "D**** K**", page.Reviews[0].MaskedName, "reviewer names arrive masked")

	require.Len(t, page.Related, 1, "same category only, excluding the book itself")
	assert.Equal(t, books[1].ID, page.Related[0].ID)
}

func TestCatalogService_BookDetail_AnonymousViewer(t *testing.T) {
	testDB, svc := setupCatalogTest(t)
	_, books := seedCatalogService(t, testDB)

	page, err := svc.BookDetail(books[0].ID, 0)
	require.NoError(t, err)
	assert.False(t, page.IsFavorite)
}
