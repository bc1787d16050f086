package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zachkp/folio/internal/dto"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: message})
}

// storeError maps repository errors onto API statuses.
func storeError(c *gin.Context, err error) {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
	case errors.Is(err, dto.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("store error")
		writeError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
