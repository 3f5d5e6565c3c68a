package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"unicode/utf8"

	"studio-backend/middleware"
	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	hhmmPattern       = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	registerValidator sync.Once
)

// RegisterValidators adds the custom binding tags used by the request
// payloads. Safe to call more than once.
func RegisterValidators() {
	registerValidator.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return hhmmPattern.MatchString(fl.Field().String())
		})
		if err != nil {
			log.Fatal().Err(err).Str("tag", "hhmm").Msg("register validator")
		}
	})
}

// truncateRunes shortens s to at most n characters without splitting a
// multi-byte rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// parseID reads a numeric path parameter. On failure it writes a 400 and
// returns false.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parseOptionalID reads an optional numeric query parameter. Absent means nil;
// present but malformed writes a 400.
func parseOptionalID(c *gin.Context, name string) (*uint, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// recordAdminAction appends to the audit trail for the admin on the request.
// The mutation already happened, so a failure here is only logged.
func recordAdminAction(c *gin.Context, logs *services.AdminLogService, action string, details any) {
	admin := middleware.AdminFrom(c)
	if admin == nil || logs == nil {
		return
	}
	if _, err := logs.Create(c.Request.Context(), admin.ID, action, details); err != nil {
		log.Warn().Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("action", action).
			Msg("failed to write admin log")
	}
}
