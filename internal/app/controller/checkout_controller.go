package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

func NewCheckoutController(cartService service.CartService, checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

func (ctrl *CheckoutController) ShowCheckout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	if sess.CartCount() == 0 {
		flashError(c, "Your cart is empty.", "/cart")
		return
	}

	view, err := ctrl.cartService.BuildView(sess.CartItems())
	if err != nil {
		log.Error("Failed to build checkout view", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Checkout is temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "checkout.html", gin.H{
		"Lines":      view.Lines,
		"GrandTotal": view.GrandTotal,
	})
}

// Checkout places the order. The session cart survives any failure and is
// cleared only once the order exists.
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sess := middleware.GetSession(c)

	address := strings.TrimSpace(c.PostForm("address"))
	if address == "" {
		flashError(c, "A shipping address is required.", "/checkout")
		return
	}

	result, err := ctrl.checkoutService.Checkout(sess.Data.UserID, address, sess.CartItems())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			flashError(c, "Your cart is empty.", "/cart")
			return
		}
		log.Error("Checkout failed", err, map[string]interface{}{
			"user_id": sess.Data.UserID,
		})
		flashFailure(c, err, "order", "/checkout")
		return
	}

	sess.CartClear()
	sess.AddFlash(session.FlashSuccess,
		fmt.Sprintf("Order #%d placed successfully.", result.OrderID))
	c.Redirect(http.StatusSeeOther, "/orders")
}
