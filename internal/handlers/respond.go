package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"invoicing-backend/internal/apperror"
)

// respondError renders any service error as a structured JSON body with the
// status the error suggests. Internal causes are logged, never exposed.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperror.AsAppError(err); ok {
		if appErr.Err != nil {
			log.Error().Err(appErr.Err).Str("code", appErr.Code).Msg("request failed")
		}
		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		})
		return
	}

	log.Error().Err(err).Msg("unhandled request error")
	c.JSON(500, gin.H{
		"code":    apperror.CodeInternal,
		"message": "Internal server error",
	})
}
