package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Require aborts with 401 unless the request carries a valid token.
func Require(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.Verify(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": err.Error(),
			})
			return
		}

		WithIdentity(c, id)
		c.Next()
	}
}

// Optional attaches the identity when the token is valid and never aborts.
func Optional(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token != "" {
			if id, err := v.Verify(c.Request.Context(), token); err == nil {
				WithIdentity(c, id)
			} else {
				log.Debug().Err(err).Msg("ignoring invalid session token")
			}
		}
		c.Next()
	}
}
