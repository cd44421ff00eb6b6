package controller

import (
	"net/http"
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/gin-gonic/gin"
)

// CartController mutates the session cart. Nothing here touches the
// database for writes; the cart is persisted only at checkout.
type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (ctrl *CartController) ShowCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	view, err := ctrl.cartService.BuildView(sess.CartItems())
	if err != nil {
		log.Error("Failed to build cart view", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Your cart is temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "cart.html", gin.H{
		"Lines":      view.Lines,
		"GrandTotal": view.GrandTotal,
	})
}

// Add puts one copy into the cart, or one more if already present
func (ctrl *CartController) Add(c *gin.Context) {
	bookID, ok := ctrl.parseBookID(c)
	if !ok {
		return
	}

	exists, _ := ctrl.cartService.BookExists(bookID)
	if !exists {
		flashError(c, "Book not found.", "/")
		return
	}

	sess := middleware.GetSession(c)
	sess.CartAdd(bookID)
	sess.AddFlash(session.FlashSuccess, "Added to your cart.")
	c.Redirect(http.StatusSeeOther, backTo(c, "/"))
}

func (ctrl *CartController) Increase(c *gin.Context) {
	bookID, ok := ctrl.parseBookID(c)
	if !ok {
		return
	}

	middleware.GetSession(c).CartIncrease(bookID)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (ctrl *CartController) Decrease(c *gin.Context) {
	bookID, ok := ctrl.parseBookID(c)
	if !ok {
		return
	}

	middleware.GetSession(c).CartDecrease(bookID)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (ctrl *CartController) Remove(c *gin.Context) {
	bookID, ok := ctrl.parseBookID(c)
	if !ok {
		return
	}

	middleware.GetSession(c).CartRemove(bookID)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (ctrl *CartController) parseBookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		flashError(c, "Book not found.", "/cart")
		return 0, false
	}
	return uint(id), true
}

// backTo returns the referer when it is a local path, else the fallback
func backTo(c *gin.Context, fallback string) string {
	ref := c.Request.Referer()
	if len(ref) > 0 && ref[0] == '/' {
		return ref
	}
	return fallback
}
