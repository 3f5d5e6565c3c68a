package middleware

import (
	"net/http"

	"studio-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const adminKey = "admin"

// Authenticator maps a request to the admin behind it. A nil user with a nil
// error means the request is anonymous.
type Authenticator interface {
	Authenticate(r *http.Request) (*models.User, error)
}

// AuthenticatorFunc adapts a plain function to Authenticator.
type AuthenticatorFunc func(r *http.Request) (*models.User, error)

func (f AuthenticatorFunc) Authenticate(r *http.Request) (*models.User, error) {
	return f(r)
}

// RequireAdmin aborts with 401 unless the request carries a valid admin
// session. The handler chain never runs for anonymous callers.
func RequireAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request)
		if err != nil {
			log.Error().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		SetAdmin(c, user)
		c.Next()
	}
}

func SetAdmin(c *gin.Context, user *models.User) {
	c.Set(adminKey, user)
}

// AdminFrom returns the admin attached by RequireAdmin, or nil.
func AdminFrom(c *gin.Context) *models.User {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
