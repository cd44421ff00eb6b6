package controller

import (
	"net/http"

	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List renders the announcement board; the page also opens a websocket for
// announcements published while it is open.
func (ctrl *NotificationController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	notifications, err := ctrl.notificationService.List()
	if err != nil {
		log.Error("Failed to list notifications", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Announcements are temporarily unavailable.",
		})
		return
	}

	render(c, http.StatusOK, "notifications.html", gin.H{
		"Notifications": notifications,
	})
}
