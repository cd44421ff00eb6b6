package controller

import (
	"net/http"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	apperrors "github.com/ekaracan/kitapkurdu/internal/errors"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/gin-gonic/gin"
)

// render executes an HTML template with the shared page context merged in:
// the viewer's identity, the cart badge count and any queued flash messages.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if sess := middleware.GetSession(c); sess != nil {
		data["LoggedIn"] = sess.LoggedIn()
		data["UserName"] = sess.Data.UserName
		data["IsSeller"] = sess.Data.UserRole == model.RoleSeller
		data["CartCount"] = sess.CartCount()
		data["Flashes"] = sess.ConsumeFlashes()
	}

	c.HTML(status, name, data)
}

// flashAndRedirect queues a one-shot message and sends the browser elsewhere
func flashAndRedirect(c *gin.Context, level, message, location string) {
	if sess := middleware.GetSession(c); sess != nil {
		sess.AddFlash(level, message)
	}
	c.Redirect(http.StatusSeeOther, location)
}

func flashError(c *gin.Context, message, location string) {
	flashAndRedirect(c, session.FlashError, message, location)
}

func flashSuccess(c *gin.Context, message, location string) {
	flashAndRedirect(c, session.FlashSuccess, message, location)
}

// flashFailure classifies an unexpected error and flashes its user-safe
// message. The context hint picks the right not-found wording.
func flashFailure(c *gin.Context, err error, context, location string) {
	info := apperrors.ParseError(err, context)
	flashAndRedirect(c, session.FlashError, info.Message+".", location)
}
