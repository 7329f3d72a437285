package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/middleware"
	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/internal/store"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

type stubGateway struct {
	professors []models.ProfessorRecord
	createErr  error
}

func (s *stubGateway) ListProfessors(ctx context.Context) ([]models.ProfessorRecord, error) {
	return s.professors, nil
}

func (s *stubGateway) Disciplines(ctx context.Context) ([]models.Discipline, error) {
	return nil, nil
}

func (s *stubGateway) ListComments(ctx context.Context) ([]models.CommentRecord, error) {
	return nil, nil
}

func (s *stubGateway) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return nil, nil
}

func (s *stubGateway) CreateProfessor(ctx context.Context, payload gateway.ProfessorPayload) (*models.ProfessorRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.ProfessorRecord{ID: 50, FirstName: payload.FirstName, LastName: payload.LastName, Email: payload.Email}, nil
}

func (s *stubGateway) PatchProfessor(ctx context.Context, id int64, fields map[string]interface{}) (*models.ProfessorRecord, error) {
	return nil, appErrors.Clone(appErrors.ErrUpstream, "down")
}

func (s *stubGateway) DeleteProfessor(ctx context.Context, id int64) error {
	return nil
}

func (s *stubGateway) CreateComment(ctx context.Context, payload gateway.CommentPayload) (*models.CommentRecord, error) {
	return &models.CommentRecord{ID: 1, CommentType: payload.CommentType, Message: payload.Message}, nil
}

func (s *stubGateway) MarkCommentRead(ctx context.Context, id int64) error {
	return nil
}

func setupRequest(t *testing.T, st *store.Store, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	identity := &models.Identity{ID: 7, FullName: "Ana Pérez", Role: models.RoleJefeDisciplina}
	c.Set(middleware.ContextIdentityKey, identity)
	c.Set(middleware.ContextSessionKey, "s1")
	c.Set(middleware.ContextStoreKey, st)
	return c, recorder
}

func loadedStore(t *testing.T, gw *stubGateway) *store.Store {
	t.Helper()
	st := store.New(models.Identity{ID: 7, FullName: "Ana Pérez", Role: models.RoleJefeDisciplina}, gw, nil, zap.NewNop(), nil)
	st.LoadData(context.Background())
	return st
}

func TestProfessorListFiltersByFaculty(t *testing.T) {
	gw := &stubGateway{professors: []models.ProfessorRecord{
		{ID: 1, FullName: "Juan García", Faculties: []string{"FTI"}},
		{ID: 2, FullName: "Luisa Martín", Faculties: []string{"CITEC"}},
	}}
	st := loadedStore(t, gw)
	h := NewProfessorHandler()

	c, recorder := setupRequest(t, st, http.MethodGet, "/professors?faculty=FTI", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	items, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestProfessorCreateReturnsCreated(t *testing.T) {
	gw := &stubGateway{}
	st := loadedStore(t, gw)
	h := NewProfessorHandler()

	c, recorder := setupRequest(t, st, http.MethodPost, "/professors", models.CreateProfessorRequest{
		Name:  "Luisa Martín",
		Email: "lm@uci.cu",
	})
	h.Create(c)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, st.Professors(), 1)
	assert.Len(t, st.Comments(), 1)
}

func TestProfessorCreateRejectsBadPayload(t *testing.T) {
	st := loadedStore(t, &stubGateway{})
	h := NewProfessorHandler()

	c, recorder := setupRequest(t, st, http.MethodPost, "/professors", map[string]string{"email": "lm@uci.cu"})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, st.Professors())
}

func TestProfessorGetNotFound(t *testing.T) {
	st := loadedStore(t, &stubGateway{})
	h := NewProfessorHandler()

	c, recorder := setupRequest(t, st, http.MethodGet, "/professors/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
