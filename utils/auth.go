// utils/auth.go
package utils

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonpro-web/apiclient"
	"salonpro-web/models"
	"salonpro-web/services"
)

const (
	ctxSessionID = "sessionId"
	ctxSession   = "session"
	ctxAuthState = "authState"
	ctxCookie    = "sessionCookie"
)

type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int // seconds
}

// SessionMiddleware resolves who is calling before any handler or guard runs.
// Every browser gets a session id cookie, logged in or not.
func SessionMiddleware(m *services.SessionManager, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookie.Name)
		if err != nil || uuid.Validate(sid) != nil {
			sid = m.NewID()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie.Name, sid, cookie.MaxAge, "/", "", cookie.Secure, true)

		c.Set(ctxSessionID, sid)
		c.Set(ctxCookie, cookie)
		c.Set(ctxAuthState, services.StateInitializing)
		state, sess := m.Bootstrap(c.Request.Context(), sid)
		c.Set(ctxAuthState, state)
		if sess != nil {
			c.Set(ctxSession, sess)
		}
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

func AuthState(c *gin.Context) services.AuthState {
	if v, ok := c.Get(ctxAuthState); ok {
		if s, ok := v.(services.AuthState); ok {
			return s
		}
	}
	return services.StateInitializing
}

func CurrentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

func CurrentUser(c *gin.Context) *models.User {
	if s := CurrentSession(c); s != nil {
		return &s.User
	}
	return nil
}

// SetSession records a freshly adopted session for the rest of the request.
func SetSession(c *gin.Context, sess *models.Session) {
	c.Set(ctxSession, sess)
	c.Set(ctxAuthState, services.StateAuthenticated)
}

// RotateSession moves the request onto a new session id and re-issues the
// cookie so a pre-login id never carries an authenticated session.
func RotateSession(c *gin.Context, sess *models.Session) {
	if v, ok := c.Get(ctxCookie); ok {
		if cookie, ok := v.(CookieConfig); ok {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, sess.ID, cookie.MaxAge, "/", "", cookie.Secure, true)
		}
	}
	c.Set(ctxSessionID, sess.ID)
	SetSession(c, sess)
}

// ClearSession marks the request anonymous after logout or expiry.
func ClearSession(c *gin.Context) {
	c.Set(ctxSession, (*models.Session)(nil))
	c.Set(ctxAuthState, services.StateAnonymous)
}

// APIContext carries the caller's bearer token into API calls.
func APIContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if s := CurrentSession(c); s != nil {
		ctx = apiclient.WithToken(ctx, s.AccessToken)
	}
	return ctx
}

// RequireSession lets authenticated callers through. Others are sent to the
// login page, or get a 401 when they asked for JSON.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthState(c) != services.StateAuthenticated || CurrentSession(c) == nil {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Debes iniciar sesión"})
				return
			}
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole must run after RequireSession. Callers with another role are
// sent to their own home page.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.Is(roles...) {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para acceder a esta página"})
				return
			}
			home := "/login"
			if u != nil {
				home = u.Role.HomePath()
			}
			c.Redirect(http.StatusSeeOther, home)
			c.Abort()
			return
		}
		c.Next()
	}
}
