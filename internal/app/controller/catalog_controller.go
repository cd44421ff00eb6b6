package controller

import (
	"net/http"
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Index is the storefront: all books, a category filter or a search
func (ctrl *CatalogController) Index(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			flashError(c, "Unknown category.", "/")
			return
		}
		parsed := uint(id)
		categoryID = &parsed
	}

	query := c.Query("q")

	page, err := ctrl.catalogService.BrowseBooks(categoryID, query)
	if err != nil {
		log.Error("Failed to build catalog page", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "The catalog is temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Categories":     page.Categories,
		"Books":          page.Books,
		"ActiveCategory": page.ActiveCategory,
		"SearchQuery":    page.SearchQuery,
	})
}

func (ctrl *CatalogController) BookDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	bookID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		flashError(c, "Book not found.", "/")
		return
	}

	viewerID, _ := middleware.GetUserID(c)

	page, err := ctrl.catalogService.BookDetail(uint(bookID), viewerID)
	if err != nil {
		log.Warn("Book detail lookup failed", map[string]interface{}{
			"book_id": bookID,
			"error":   err.Error(),
		})
		flashError(c, "Book not found.", "/")
		return
	}

	render(c, http.StatusOK, "book_detail.html", gin.H{
		"Book":       page.Book,
		"Reviews":    page.Reviews,
		"Related":    page.Related,
		"IsFavorite": page.IsFavorite,
	})
}
