package middleware

import (
	"errors"
	"net/http"

	"github.com/ekaracan/kitapkurdu/config"
	"github.com/ekaracan/kitapkurdu/internal/app/model"
	"github.com/ekaracan/kitapkurdu/internal/session"
	"github.com/ekaracan/kitapkurdu/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session"

type SessionMiddleware struct {
	store session.Store
	cfg   config.SessionConfig
}

func NewSessionMiddleware(store session.Store, cfg config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{store: store, cfg: cfg}
}

// Load resolves the browser session from the signed cookie, makes it
// available to handlers, and writes it back after the request when modified.
// A missing or invalid cookie yields a fresh anonymous session.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var (
			sid     string
			data    session.Data
			started bool
		)

		if cookie, err := c.Cookie(m.cfg.CookieName); err == nil && cookie != "" {
			if id, err := util.ValidateSessionToken(cookie, m.cfg.Secret); err == nil {
				stored, err := m.store.Get(c.Request.Context(), id)
				switch {
				case err == nil:
					sid = id
					data = stored
					started = true
				case errors.Is(err, session.ErrNotFound):
					// Expired server-side; reuse the id so the cookie stays valid
					sid = id
					started = true
				default:
					log.Error("Failed to load session from store", err, map[string]interface{}{
						"session_id": id,
					})
				}
			} else {
				log.Debug("Rejecting invalid session cookie", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		if sid == "" {
			sid = uuid.NewString()
		}

		sess := session.New(sid, data, started)
		c.Set(sessionContextKey, sess)

		c.Next()

		if !sess.Modified() {
			return
		}

		if err := m.store.Save(c.Request.Context(), sess.ID, sess.Data, m.cfg.TTL); err != nil {
			log.Error("Failed to persist session", err, map[string]interface{}{
				"session_id": sess.ID,
			})
			return
		}

		if !sess.Started() {
			token, err := util.GenerateSessionToken(sess.ID, m.cfg.Secret, m.cfg.TTL)
			if err != nil {
				log.Error("Failed to sign session cookie", err, map[string]interface{}{
					"session_id": sess.ID,
				})
				return
			}
			c.SetCookie(m.cfg.CookieName, token, int(m.cfg.TTL.Seconds()), "/", "", false, true)
		}
	}
}

// RequireLogin redirects anonymous visitors to the login page
func (m *SessionMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.LoggedIn() {
			if sess != nil {
				sess.AddFlash(session.FlashWarning, "You must be logged in to view this page.")
			}
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSeller restricts a route group to seller accounts
func (m *SessionMiddleware) RequireSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		sess := GetSession(c)
		if sess == nil || !sess.LoggedIn() {
			if sess != nil {
				sess.AddFlash(session.FlashWarning, "You must be logged in to view this page.")
			}
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		if sess.Data.UserRole != model.RoleSeller {
			log.Warn("Non-seller attempted to access seller area", map[string]interface{}{
				"user_id": sess.Data.UserID,
				"role":    sess.Data.UserRole,
				"path":    c.Request.URL.Path,
			})
			sess.AddFlash(session.FlashError, "You do not have access to the seller area.")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSession extracts the request session from the gin context
func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(sessionContextKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// GetUserID extracts the authenticated user id from the session, if any
func GetUserID(c *gin.Context) (uint, bool) {
	sess := GetSession(c)
	if sess == nil || !sess.LoggedIn() {
		return 0, false
	}
	return sess.Data.UserID, true
}
