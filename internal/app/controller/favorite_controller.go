package controller

import (
	"net/http"
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// Toggle flips the favorite mark and returns to the page the click came from
func (ctrl *FavoriteController) Toggle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	bookID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		flashError(c, "Book not found.", "/")
		return
	}

	userID, _ := middleware.GetUserID(c)

	favorited, err := ctrl.favoriteService.Toggle(userID, uint(bookID))
	if err != nil {
		log.Error("Failed to toggle favorite", err, map[string]interface{}{
			"user_id": userID,
			"book_id": bookID,
		})
		flashFailure(c, err, "book", "/")
		return
	}

	sess := middleware.GetSession(c)
	if favorited {
		sess.AddFlash(session.FlashSuccess, "Added to your favorites.")
	} else {
		sess.AddFlash(session.FlashSuccess, "Removed from your favorites.")
	}
	c.Redirect(http.StatusSeeOther, backTo(c, "/favorites"))
}

func (ctrl *FavoriteController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	books, err := ctrl.favoriteService.ListBooks(userID)
	if err != nil {
		log.Error("Failed to list favorites", err, map[string]interface{}{
			"user_id": userID,
		})
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Your favorites are temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "my_favorites.html", gin.H{
		"Books": books,
	})
}
