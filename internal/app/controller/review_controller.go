package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Add submits a review from the order history page
func (ctrl *ReviewController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	orderID, err1 := strconv.ParseUint(c.PostForm("order_id"), 10, 64)
	bookID, err2 := strconv.ParseUint(c.PostForm("book_id"), 10, 64)
	star, err3 := strconv.Atoi(c.PostForm("star"))
	if err1 != nil || err2 != nil || err3 != nil {
		flashError(c, "Invalid review submission.", "/orders")
		return
	}

	comment := c.PostForm("comment")
	bookPage := fmt.Sprintf("/books/%d", bookID)

	err := ctrl.reviewService.Add(uint(orderID), userID, uint(bookID), star, comment)
	switch {
	case errors.Is(err, service.ErrInvalidStar):
		flashError(c, "Rating must be between 1 and 5 stars.", "/orders")
	case errors.Is(err, service.ErrReviewIneligible):
		flashError(c, "You can only review books from your delivered orders.", "/orders")
	case err != nil:
		log.Error("Failed to add review", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
			"book_id":  bookID,
		})
		flashFailure(c, err, "order", "/orders")
	default:
		flashSuccess(c, "Thank you for your review!", bookPage)
	}
}
