package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uci-sgcd/panel-api/internal/models"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// ProfessorHandler wires HTTP endpoints to the roster operations.
type ProfessorHandler struct{}

// NewProfessorHandler creates a new handler.
func NewProfessorHandler() *ProfessorHandler {
	return &ProfessorHandler{}
}

// List godoc
// @Summary List professors
// @Description Returns the roster, optionally filtered by discipline, faculty or subject
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Param discipline query string false "Filter by discipline"
// @Param faculty query string false "Filter by faculty"
// @Param subject query string false "Filter by subject"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /professors [get]
func (h *ProfessorHandler) List(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var professors []models.Professor
	switch {
	case c.Query("discipline") != "":
		professors = st.ProfessorsByDiscipline(c.Query("discipline"))
	case c.Query("faculty") != "":
		professors = st.ProfessorsByFaculty(c.Query("faculty"))
	case c.Query("subject") != "":
		professors = st.ProfessorsBySubject(c.Query("subject"))
	default:
		professors = st.Professors()
	}

	response.JSON(c, http.StatusOK, professors, map[string]interface{}{"total": len(professors)})
}

// Get godoc
// @Summary Get professor
// @Description Returns one roster record
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /professors/{id} [get]
func (h *ProfessorHandler) Get(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid professor id"))
		return
	}

	for _, p := range st.Professors() {
		if p.ID == id {
			response.JSON(c, http.StatusOK, p, nil)
			return
		}
	}
	response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "professor not found"))
}

// Create godoc
// @Summary Add professor
// @Description Creates a roster record, backend first with a local fallback
// @Tags Professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateProfessorRequest true "Professor payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /professors [post]
func (h *ProfessorHandler) Create(c *gin.Context) {
	st := storeFromContext(c)
	identity := identityFromContext(c)
	if st == nil || identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professor payload"))
		return
	}

	professor, err := st.AddProfessor(c.Request.Context(), req, identity.FullName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, professor)
}

// Update godoc
// @Summary Update professor
// @Description Applies a partial update, backend first with a local fallback
// @Tags Professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Param payload body models.UpdateProfessorRequest true "Professor payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /professors/{id} [put]
func (h *ProfessorHandler) Update(c *gin.Context) {
	st := storeFromContext(c)
	identity := identityFromContext(c)
	if st == nil || identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid professor id"))
		return
	}

	var req models.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professor payload"))
		return
	}

	professor, err := st.UpdateProfessor(c.Request.Context(), id, req, identity.FullName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, professor, nil)
}

// Delete godoc
// @Summary Delete professor
// @Description Removes a roster record, backend first with a local fallback
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /professors/{id} [delete]
func (h *ProfessorHandler) Delete(c *gin.Context) {
	st := storeFromContext(c)
	identity := identityFromContext(c)
	if st == nil || identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid professor id"))
		return
	}

	if err := st.DeleteProfessor(c.Request.Context(), id, identity.FullName); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Stats godoc
// @Summary Roster statistics
// @Description Professor headcounts grouped by faculty, discipline and subject
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /professors/stats [get]
func (h *ProfessorHandler) Stats(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"by_faculty":    st.CountByFaculty(),
		"by_discipline": st.CountByDiscipline(),
		"by_subject":    st.CountBySubject(),
	}, nil)
}

// Enums godoc
// @Summary Professor field choices
// @Description Returns the upstream category, degree and contract choices
// @Tags Professors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /professors/enums [get]
func (h *ProfessorHandler) Enums(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	categories, err := upstream.ProfessorCategories(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	degrees, err := upstream.ScientificDegrees(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	contracts, err := upstream.ContractTypes(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"categories":         categories,
		"scientific_degrees": degrees,
		"contract_types":     contracts,
	}, nil)
}

// ExportCSV godoc
// @Summary Export roster CSV
// @Description Streams the upstream roster export
// @Tags Professors
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 502 {object} response.Envelope
// @Router /professors/export [get]
func (h *ProfessorHandler) ExportCSV(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	content, contentType, err := upstream.ExportProfessorsCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if contentType == "" {
		contentType = "text/csv"
	}

	response.Blob(c, contentType, "profesores.csv", content)
}
