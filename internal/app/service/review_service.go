package service

import (
	"errors"
	"strings"

	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
)

var (
	ErrInvalidStar      = errors.New("star must be between 1 and 5")
	ErrReviewIneligible = errors.New("order not eligible for review")
)

type ReviewService interface {
	Add(orderID, userID, bookID uint, star int, comment string) error
}

type reviewService struct {
	gateway repository.ProcGateway
}

func NewReviewService(gateway repository.ProcGateway) ReviewService {
	return &reviewService{gateway: gateway}
}

// Add submits a review. Eligibility (order ownership, book membership and
// delivered status) is decided by the database routine.
func (s *reviewService) Add(orderID, userID, bookID uint, star int, comment string) error {
	if star < 1 || star > 5 {
		return ErrInvalidStar
	}

	ok, err := s.gateway.AddReview(orderID, userID, bookID, star, strings.TrimSpace(comment))
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("Review rejected by eligibility check", map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
			"book_id":  bookID,
		})
		return ErrReviewIneligible
	}

	logger.Info("Review added", map[string]interface{}{
		"order_id": orderID,
		"user_id":  userID,
		"book_id":  bookID,
		"star":     star,
	})
	return nil
}
