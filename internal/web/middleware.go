package web

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-ID"

func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Error().
					Interface("panic", rvr).
					Str("method", c.Request.Method).
					Str("url", c.Request.URL.String()).
					Str("stack_trace", string(debug.Stack())).
					Msg("recovered from panic")

				writeError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}

// requestLogger tags each request with an id and logs it on completion.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		begin := time.Now()
		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(begin)).
			Msg("completed request")
	}
}
