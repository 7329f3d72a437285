package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/internal/permissions"
	"github.com/uci-sgcd/panel-api/internal/session"
	"github.com/uci-sgcd/panel-api/internal/store"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the session service.
type AuthHandler struct {
	sessions *session.Service
	stores   *store.Registry
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(sessions *session.Service, stores *store.Registry) *AuthHandler {
	return &AuthHandler{sessions: sessions, stores: stores}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate against the upstream API and open a panel session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.sessions.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res, nil)
}

// Register godoc
// @Summary Register account
// @Description Create an upstream account and open a panel session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Register payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}

	res, err := h.sessions.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, res)
}

// Logout godoc
// @Summary Logout current session
// @Description Clear the session credentials and drop the data store
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := sessionFromContext(c)
	if sessionID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	h.stores.Drop(sessionID)

	response.NoContent(c)
}

// Me godoc
// @Summary Get current user
// @Description Returns the session identity and its permission set
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity := identityFromContext(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"user":        identity,
		"permissions": permissions.PermissionsFor(identity.Role),
	}, nil)
}
