package controllers

import (
	"net/http"
	"strings"

	"studio-backend/middleware"
	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	Users        *services.UserService
	Sessions     *services.SessionService
	Logs         *services.AdminLogService
	CookieSecure bool
}

func NewAuthController(users *services.UserService, sessions *services.SessionService, logs *services.AdminLogService, cookieSecure bool) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, Logs: logs, CookieSecure: cookieSecure}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, value, maxAge, "/", "", ac.CookieSecure, true)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ac.Users.VerifyPassword(c.Request.Context(), strings.TrimSpace(payload.Username), payload.Password)
	if err != nil {
		utils.RespondError(c, err, "Failed to sign in")
		return
	}
	if user == nil {
		log.Info().Str("username", payload.Username).Str("client_ip", c.ClientIP()).Msg("failed admin login")
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session, err := ac.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		utils.RespondError(c, err, "Failed to sign in")
		return
	}

	ac.setSessionCookie(c, session.Token, int(ac.Sessions.TTL.Seconds()))
	middleware.SetAdmin(c, user)
	recordAdminAction(c, ac.Logs, "auth.login", nil)

	c.JSON(http.StatusOK, gin.H{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
		"user":      user,
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sessions.Destroy(c.Request.Context(), services.TokenFromRequest(c.Request)); err != nil {
		utils.RespondError(c, err, "Failed to sign out")
		return
	}
	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.AdminFrom(c))
}
