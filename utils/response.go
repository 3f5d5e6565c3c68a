package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondError writes err using its AppError kind. Store failures and other
// unclassified errors become a 500 carrying fallback, the route's own message.
func RespondError(c *gin.Context, err error, fallback string) {
	status, appErr := StatusFor(err)
	if status == http.StatusInternalServerError || appErr == nil {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.FullPath()).
			Msg(fallback)
		JSONError(c, http.StatusInternalServerError, fallback)
		return
	}
	JSONError(c, status, appErr.Message)
}
