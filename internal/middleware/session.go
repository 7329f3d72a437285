package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/session"
	"github.com/uci-sgcd/panel-api/internal/store"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// Context keys for the authenticated request state.
const (
	ContextIdentityKey = "currentIdentity"
	ContextSessionKey  = "currentSession"
	ContextStoreKey    = "currentStore"
	ContextUpstreamKey = "currentUpstream"
)

// Session protects routes by requiring a valid panel session token. It
// validates the token, restores the identity from the durable store, and
// attaches the session's data store to the request context.
func Session(sessions *session.Service, stores *store.Registry, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := sessions.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		identity, err := sessions.Restore(c.Request.Context(), claims.SessionID)
		if err != nil {
			stores.Drop(claims.SessionID)
			response.Error(c, err)
			c.Abort()
			return
		}

		upstream := gw.Session(sessions.Credentials(claims.SessionID))
		st := stores.Obtain(claims.SessionID, *identity, upstream)

		c.Set(ContextIdentityKey, identity)
		c.Set(ContextSessionKey, claims.SessionID)
		c.Set(ContextStoreKey, st)
		c.Set(ContextUpstreamKey, upstream)
		c.Next()
	}
}
