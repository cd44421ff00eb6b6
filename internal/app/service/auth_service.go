package service

import (
	"errors"
	"strings"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/ekaracan/kitapkurdu/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     model.UserRole
}

type AuthService interface {
	Register(input RegisterInput) (*model.User, error)
	Login(email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(input RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	logger.Info("Registering new user", map[string]interface{}{
		"email": email,
		"role":  input.Role,
	})

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing email", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Registration rejected, email taken", map[string]interface{}{
			"email": email,
		})
		return nil, ErrEmailAlreadyExists
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = model.RoleCustomer
	}

	user := &model.User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

func (s *authService) Login(email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed, unknown email", map[string]interface{}{
				"email": email,
			})
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed, wrong password", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, ErrInvalidCredentials
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return user, nil
}
