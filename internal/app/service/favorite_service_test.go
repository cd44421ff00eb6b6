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

func setupFavoriteTest(t *testing.T) (*gorm.DB, FavoriteService, model.User, model.Book) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	svc := NewFavoriteService(
		repository.NewFavoriteRepository(testDB),
		repository.NewBookRepository(testDB),
	)

	user := model.User{FullName: "Zeynep Ak", Email: "zeynep@example.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(&user).Error)
	category := model.Category{Name: "Roman"}
	require.NoError(t, testDB.Create(&category).Error)
	book := model.Book{Name: "Saatleri Ayarlama Enstitusu", Author: "A. H. Tanpinar", CategoryID: category.ID, Price: 65, Stock: 4, IsActive: true}
	require.NoError(t, testDB.Create(&book).Error)

	return testDB, svc, user, book
}

func TestFavoriteService_Toggle(t *testing.T) {
	testDB, svc, user, book := setupFavoriteTest(t)

	favorited, err := svc.Toggle(user.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.Toggle(user.ID, book.ID)
	require.NoError(t, err)
	assert.False(t, favorited, "second toggle restores the starting state")

	var count int64
	testDB.Model(&model.Favorite{}).Count(&count)
	assert.Zero(t, count)
}

func TestFavoriteService_ListBooks(t *testing.T) {
	_, svc, user, book := setupFavoriteTest(t)

	books, err := svc.ListBooks(user.ID)
	require.NoError(t, err)
	assert.Empty(t, books)

	_, err = svc.Toggle(user.ID, book.ID)
	require.NoError(t, err)

	books, err = svc.ListBooks(user.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, book.ID, books[0].ID)
}
