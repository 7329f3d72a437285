package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/middleware"
	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/internal/store"
)

func identityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(middleware.ContextIdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

func sessionFromContext(c *gin.Context) string {
	value, exists := c.Get(middleware.ContextSessionKey)
	if !exists {
		return ""
	}
	id, ok := value.(string)
	if !ok {
		return ""
	}
	return id
}

func storeFromContext(c *gin.Context) *store.Store {
	value, exists := c.Get(middleware.ContextStoreKey)
	if !exists {
		return nil
	}
	st, ok := value.(*store.Store)
	if !ok {
		return nil
	}
	return st
}

func upstreamFromContext(c *gin.Context) *gateway.Session {
	value, exists := c.Get(middleware.ContextUpstreamKey)
	if !exists {
		return nil
	}
	s, ok := value.(*gateway.Session)
	if !ok {
		return nil
	}
	return s
}
