package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uci-sgcd/panel-api/internal/models"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// CommentHandler wires HTTP endpoints to the audit trail.
type CommentHandler struct{}

// NewCommentHandler creates a new handler.
func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List godoc
// @Summary List comments
// @Description Returns the audit trail, optionally only the unread entries
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread comments"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var comments []models.Comment
	if c.Query("unread") == "true" {
		comments = st.UnreadComments()
	} else {
		comments = st.Comments()
	}

	response.JSON(c, http.StatusOK, comments, map[string]interface{}{"total": len(comments)})
}

// Create godoc
// @Summary Add comment
// @Description Posts an audit comment, backend first with a local fallback
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	st := storeFromContext(c)
	identity := identityFromContext(c)
	if st == nil || identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid comment payload"))
		return
	}

	comment, err := st.AddComment(c.Request.Context(), req, identity.FullName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, comment)
}

// MarkRead godoc
// @Summary Mark comment read
// @Description Flags a comment as read; the upstream call is best effort
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /comments/{id}/read [post]
func (h *CommentHandler) MarkRead(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid comment id"))
		return
	}

	if err := st.MarkCommentRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
