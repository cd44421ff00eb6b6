package router

import (
	"github.com/ekaracan/kitapkurdu/config"
	"github.com/ekaracan/kitapkurdu/internal/app/controller"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/websocket"
	"github.com/ekaracan/kitapkurdu/web"
	"github.com/gin-gonic/gin"
)

// Controllers bundles every page controller the router mounts
type Controllers struct {
	Auth         *controller.AuthController
	Catalog      *controller.CatalogController
	Cart         *controller.CartController
	Checkout     *controller.CheckoutController
	Order        *controller.OrderController
	Favorite     *controller.FavoriteController
	Review       *controller.ReviewController
	Notification *controller.NotificationController
	Seller       *controller.SellerController
}

// Setup builds the gin engine with middleware, templates and all routes
func Setup(cfg *config.Config, sessionMW *middleware.SessionMiddleware, hub *websocket.Hub, ctrl Controllers) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware())
	r.Use(sessionMW.Load())

	r.SetHTMLTemplate(web.Templates())

	// storefront
	r.GET("/", ctrl.Catalog.Index)
	r.GET("/books/:id", ctrl.Catalog.BookDetail)

	// auth
	r.GET("/login", ctrl.Auth.ShowLogin)
	r.POST("/login", ctrl.Auth.Login)
	r.GET("/register", ctrl.Auth.ShowRegister)
	r.POST("/register", ctrl.Auth.Register)
	r.GET("/logout", ctrl.Auth.Logout)

	// session cart, available to anonymous visitors too
	r.GET("/cart", ctrl.Cart.ShowCart)
	r.POST("/cart/add/:id", ctrl.Cart.Add)
	r.POST("/cart/increase/:id", ctrl.Cart.Increase)
	r.POST("/cart/decrease/:id", ctrl.Cart.Decrease)
	r.POST("/cart/remove/:id", ctrl.Cart.Remove)

	// announcements
	r.GET("/notifications", ctrl.Notification.List)
	r.GET("/notifications/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	// customer area
	authed := r.Group("/", sessionMW.RequireLogin())
	{
		authed.GET("/checkout", ctrl.Checkout.ShowCheckout)
		authed.POST("/checkout", ctrl.Checkout.Checkout)
		authed.GET("/orders", ctrl.Order.MyOrders)
		authed.POST("/reviews", ctrl.Review.Add)
		authed.GET("/favorites", ctrl.Favorite.List)
		authed.POST("/favorites/toggle/:id", ctrl.Favorite.Toggle)
	}

	// seller area
	seller := r.Group("/seller", sessionMW.RequireSeller())
	{
		seller.GET("", ctrl.Seller.Dashboard)
		seller.GET("/orders", ctrl.Seller.Orders)
		seller.POST("/orders/status", ctrl.Seller.UpdateOrderStatus)
		seller.GET("/products", ctrl.Seller.Products)
		seller.GET("/products/new", ctrl.Seller.ShowAddBook)
		seller.POST("/products", ctrl.Seller.AddBook)
		seller.POST("/products/update", ctrl.Seller.UpdateListing)
		seller.GET("/products/export", ctrl.Seller.ExportProducts)
		seller.POST("/announcements", ctrl.Seller.Announce)
	}

	return r
}
