package repository

import (
	"testing"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBookRepoTest(t *testing.T) (*gorm.DB, BookRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewBookRepository(testDB)
}

func seedCatalog(t *testing.T, testDB *gorm.DB) (model.Category, model.Category) {
	novels := model.Category{Name: "Roman"}
	scifi := model.Category{Name: "Bilim Kurgu"}
	require.NoError(t, testDB.Create(&novels).Error)
	require.NoError(t, testDB.Create(&scifi).Error)

	books := []model.Book{
		{Name: "Kuyucakli Yusuf", Author: "Sabahattin Ali", CategoryID: novels.ID, Price: 45, Stock: 10, IsActive: true},
		{Name: "Madonna", Author: "Sabahattin Ali", CategoryID: novels.ID, Price: 50, Stock: 5, IsActive: true},
		{Name: "Dune", Author: "Frank Herbert", CategoryID: scifi.ID, Price: 120, Stock: 3, IsActive: true},
		{Name: "Eski Baski", Author: "Bilinmeyen", CategoryID: novels.ID, Price: 10, Stock: 0, IsActive: false},
	}
	require.NoError(t, testDB.Create(&books).Error)
	return novels, scifi
}

func TestBookRepository_FindAll(t *testing.T) {
	testDB, repo := setupBookRepoTest(t)
	novels, _ := seedCatalog(t, testDB)

	all, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3, "inactive books stay hidden")

	filtered, err := repo.FindAll(&novels.ID)
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, book := range filtered {
		assert.Equal(t, novels.ID, book.CategoryID)
	}
}

func TestBookRepository_Search(t *testing.T) {
	testDB, repo := setupBookRepoTest(t)
	seedCatalog(t, testDB)

	byAuthor, err := repo.Search("Sabahattin")
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byName, err := repo.Search("Dune")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Frank Herbert", byName[0].Author)

	none, err := repo.Search("yok boyle kitap")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookRepository_FindRelated(t *testing.T) {
	testDB, repo := setupBookRepoTest(t)
	novels, _ := seedCatalog(t, testDB)

	var anchor model.Book
	require.NoError(t, testDB.Where("name = ?", "Kuyucakli Yusuf").First(&anchor).Error)

	related, err := repo.FindRelated(novels.ID, anchor.ID, 4)
	require.NoError(t, err)
	require.Len(t, related, 1, "same category, excluding the book itself and inactive rows")
	assert.Equal(t, "Madonna", related[0].Name)
}

func TestBookRepository_FindByIDs(t *testing.T) {
	testDB, repo := setupBookRepoTest(t)
	seedCatalog(t, testDB)

	var dune model.Book
	require.NoError(t, testDB.Where("name = ?", "Dune").First(&dune).Error)

	books, err := repo.FindByIDs([]uint{dune.ID})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, dune.ID, books[0].ID)

	empty, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
