package controller

import (
	"errors"
	"net/http"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/app/service"
	"github.com/ekaracan/kitapkurdu/internal/middleware"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		flashError(c, "Email and password are required.", "/login")
		return
	}

	user, err := ctrl.authService.Login(email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			flashError(c, "Invalid email or password.", "/login")
			return
		}
		flashFailure(c, err, "user", "/login")
		return
	}

	sess := middleware.GetSession(c)
	sess.SetUser(user.ID, user.FullName, user.Role)
	sess.AddFlash(session.FlashSuccess, "Welcome back, "+user.FullName+"!")

	if user.Role == model.RoleSeller {
		c.Redirect(http.StatusSeeOther, "/seller")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

func (ctrl *AuthController) Register(c *gin.Context) {
	input := service.RegisterInput{
		FullName: c.PostForm("full_name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if input.FullName == "" || input.Email == "" || input.Password == "" {
		flashError(c, "All fields are required.", "/register")
		return
	}
	if len(input.Password) < 8 {
		flashError(c, "Password must be at least 8 characters.", "/register")
		return
	}

	user, err := ctrl.authService.Register(input)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			flashError(c, "This email is already registered.", "/register")
			return
		}
		flashFailure(c, err, "user", "/register")
		return
	}

	sess := middleware.GetSession(c)
	sess.SetUser(user.ID, user.FullName, user.Role)
	sess.AddFlash(session.FlashSuccess, "Your account has been created.")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout drops the whole session, cart included
func (ctrl *AuthController) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.Reset()
	sess.AddFlash(session.FlashSuccess, "You have been logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}
