// Package auth verifies identity-provider tokens and carries the caller's identity through gin.
package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is where the identity provider's browser SDK keeps the session JWT.
const SessionCookie = "__session"

const identityKey = "identity"

var ErrNoToken = errors.New("missing authorization")

type Identity struct {
	UserID string
	Email  string
}

// TokenFromRequest reads a bearer token from the Authorization header, falling back to the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}

	return ""
}

func WithIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func FromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok && id.UserID != ""
}
