package controller

import (
	"net/http"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// MyOrders shows the customer's order history with delivery estimates
func (ctrl *OrderController) MyOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID, _ := middleware.GetUserID(c)

	orders, err := ctrl.orderService.CustomerOrders(userID)
	if err != nil {
		log.Error("Failed to load customer orders", err, map[string]interface{}{
			"user_id": userID,
		})
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Your orders are temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "my_orders.html", gin.H{
		"Orders": orders,
	})
}
