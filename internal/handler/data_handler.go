package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// DataHandler serves the session's collection snapshot.
type DataHandler struct{}

// NewDataHandler creates a new handler.
func NewDataHandler() *DataHandler {
	return &DataHandler{}
}

// Snapshot godoc
// @Summary Get session data snapshot
// @Description Returns every loaded collection plus the load state
// @Tags Data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /data [get]
func (h *DataHandler) Snapshot(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"professors":  st.Professors(),
		"disciplines": st.Disciplines(),
		"comments":    st.Comments(),
		"assignments": st.Assignments(),
		"loading":     st.Loading(),
		"error":       st.Err(),
	}, nil)
}

// Load godoc
// @Summary Load session data
// @Description Fetches every collection from the upstream; partial failures keep the rest
// @Tags Data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /data/load [post]
func (h *DataHandler) Load(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	st.LoadData(c.Request.Context())

	response.JSON(c, http.StatusOK, gin.H{
		"professors":  st.Professors(),
		"disciplines": st.Disciplines(),
		"comments":    st.Comments(),
		"assignments": st.Assignments(),
		"error":       st.Err(),
	}, nil)
}

// Refresh godoc
// @Summary Refresh session data
// @Description Reloads every collection from the upstream
// @Tags Data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /data/refresh [post]
func (h *DataHandler) Refresh(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	st.Refresh(c.Request.Context())

	response.JSON(c, http.StatusOK, gin.H{
		"professors":  st.Professors(),
		"disciplines": st.Disciplines(),
		"comments":    st.Comments(),
		"assignments": st.Assignments(),
		"error":       st.Err(),
	}, nil)
}
