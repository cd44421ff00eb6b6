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

func setupAuthTest(t *testing.T) (*gorm.DB, AuthService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewAuthService(repository.NewUserRepository(testDB))
}

func TestAuthService_Register(t *testing.T) {
	_, svc := setupAuthTest(t)

	user, err := svc.Register(RegisterInput{
		FullName: "Ayse Demir",
		Email:    "Ayse@Example.com",
		Password: "gizli-sifre-123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ayse@example.com", user.Email, "email normalized to lowercase")
	assert.Equal(t, model.RoleCustomer, user.Role, "role defaults to customer")
	assert.NotEqual(t, "gizli-sifre-123", user.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, svc := setupAuthTest(t)

	input := RegisterInput{FullName: "Ayse Demir", Email: "ayse@example.com", Password: "gizli-sifre-123"}
	_, err := svc.Register(input)
	require.NoError(t, err)

	_, err = svc.Register(input)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	_, svc := setupAuthTest(t)

	_, err := svc.Register(RegisterInput{
		FullName: "Ayse Demir",
		Email:    "ayse@example.com",
		Password: "gizli-sifre-123",
		Role:     model.RoleSeller,
	})
	require.NoError(t, err)

	user, err := svc.Login("ayse@example.com", "gizli-sifre-123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleSeller, user.Role)

	_, err = svc.Login("ayse@example.com", "yanlis-sifre")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("yok@example.com", "gizli-sifre-123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email and wrong password are indistinguishable")
}
