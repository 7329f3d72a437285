package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// AcademicHandler serves the faculty, discipline and subject reference lists.
type AcademicHandler struct{}

// NewAcademicHandler creates a new handler.
func NewAcademicHandler() *AcademicHandler {
	return &AcademicHandler{}
}

// Faculties godoc
// @Summary List faculties
// @Tags Academic
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /faculties [get]
func (h *AcademicHandler) Faculties(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	faculties, err := upstream.Faculties(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, faculties, map[string]interface{}{"total": len(faculties)})
}

// Disciplines godoc
// @Summary List disciplines
// @Description Returns the discipline collection from the session store
// @Tags Academic
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /disciplines [get]
func (h *AcademicHandler) Disciplines(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	disciplines := st.Disciplines()
	response.JSON(c, http.StatusOK, disciplines, map[string]interface{}{"total": len(disciplines)})
}

// Subjects godoc
// @Summary List subjects
// @Tags Academic
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /subjects [get]
func (h *AcademicHandler) Subjects(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	subjects, err := upstream.Subjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, subjects, map[string]interface{}{"total": len(subjects)})
}

// GetFaculty godoc
// @Summary Get faculty
// @Tags Academic
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /faculties/{id} [get]
func (h *AcademicHandler) GetFaculty(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid faculty id"))
		return
	}

	faculty, err := upstream.GetFaculty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, faculty, nil)
}

// GetDiscipline godoc
// @Summary Get discipline
// @Tags Academic
// @Produce json
// @Security BearerAuth
// @Param id path int true "Discipline ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /disciplines/{id} [get]
func (h *AcademicHandler) GetDiscipline(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid discipline id"))
		return
	}

	discipline, err := upstream.GetDiscipline(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, discipline, nil)
}

// GetSubject godoc
// @Summary Get subject
// @Tags Academic
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subjects/{id} [get]
func (h *AcademicHandler) GetSubject(c *gin.Context) {
	upstream := upstreamFromContext(c)
	if upstream == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid subject id"))
		return
	}

	subject, err := upstream.GetSubject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, subject, nil)
}
