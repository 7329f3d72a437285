package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// AssignmentHandler serves the teaching load bindings. Reads come from the
// session store; writes pass through to the upstream.
type AssignmentHandler struct{}

// NewAssignmentHandler creates a new handler.
func NewAssignmentHandler() *AssignmentHandler {
	return &AssignmentHandler{}
}

// List godoc
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	assignments := st.Assignments()
	response.JSON(c, http.StatusOK, assignments, map[string]interface{}{"total": len(assignments)})
}

// Create godoc
// @Summary Create assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body object true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	assignment, err := upstream.CreateAssignment(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, assignment)
}

// Update godoc
// @Summary Update assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param payload body object true "Assignment payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) Update(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid assignment id"))
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	assignment, err := upstream.UpdateAssignment(c.Request.Context(), id, payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, assignment, nil)
}

// Delete godoc
// @Summary Delete assignment
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid assignment id"))
		return
	}

	if err := upstream.DeleteAssignment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// History godoc
// @Summary Assignment change log
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /assignments/{id}/history [get]
func (h *AssignmentHandler) History(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid assignment id"))
		return
	}

	history, err := upstream.AssignmentHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, history, nil)
}

// Types godoc
// @Summary List assignment type choices
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /assignments/types [get]
func (h *AssignmentHandler) Types(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	types, err := upstream.AssignmentTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, types, nil)
}

// ExportCSV godoc
// @Summary Export assignments CSV
// @Tags Assignments
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 502 {object} response.Envelope
// @Router /assignments/export [get]
func (h *AssignmentHandler) ExportCSV(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	content, contentType, err := upstream.ExportAssignmentsCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if contentType == "" {
		contentType = "text/csv"
	}

	response.Blob(c, contentType, "asignaciones.csv", content)
}
