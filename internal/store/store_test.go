package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/models"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

type mockGateway struct {
	professors    []models.ProfessorRecord
	professorErr  error
	disciplines   []models.Discipline
	disciplineErr error
	comments      []models.CommentRecord
	commentErr    error
	assignments   []models.Assignment
	assignmentErr error

	listCalls int

	created       *models.ProfessorRecord
	createErr     error
	patched       *models.ProfessorRecord
	patchErr      error
	patchedFields map[string]interface{}
	deleteErr     error

	createdComment   *models.CommentRecord
	createCommentErr error
	commentPayloads  []gateway.CommentPayload

	markReadErr error
	markedRead  []int64
}

func (m *mockGateway) ListProfessors(ctx context.Context) ([]models.ProfessorRecord, error) {
	m.listCalls++
	return m.professors, m.professorErr
}

func (m *mockGateway) Disciplines(ctx context.Context) ([]models.Discipline, error) {
	return m.disciplines, m.disciplineErr
}

func (m *mockGateway) ListComments(ctx context.Context) ([]models.CommentRecord, error) {
	return m.comments, m.commentErr
}

func (m *mockGateway) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return m.assignments, m.assignmentErr
}

func (m *mockGateway) CreateProfessor(ctx context.Context, payload gateway.ProfessorPayload) (*models.ProfessorRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockGateway) PatchProfessor(ctx context.Context, id int64, fields map[string]interface{}) (*models.ProfessorRecord, error) {
	m.patchedFields = fields
	if m.patchErr != nil {
		return nil, m.patchErr
	}
	return m.patched, nil
}

func (m *mockGateway) DeleteProfessor(ctx context.Context, id int64) error {
	return m.deleteErr
}

func (m *mockGateway) CreateComment(ctx context.Context, payload gateway.CommentPayload) (*models.CommentRecord, error) {
	m.commentPayloads = append(m.commentPayloads, payload)
	if m.createCommentErr != nil {
		return nil, m.createCommentErr
	}
	if m.createdComment != nil {
		return m.createdComment, nil
	}
	return &models.CommentRecord{
		ID:          900,
		AuthorName:  "Sistema",
		CommentType: "MODIFICATION",
		Subject:     payload.Subject,
		Message:     payload.Message,
		CreatedAt:   time.Now(),
	}, nil
}

func (m *mockGateway) MarkCommentRead(ctx context.Context, id int64) error {
	m.markedRead = append(m.markedRead, id)
	return m.markReadErr
}

func testIdentity() models.Identity {
	return models.Identity{ID: 7, Email: "jefe@uci.cu", FullName: "Ana Pérez", Role: models.RoleJefeDisciplina}
}

func newTestStore(gw dataGateway) *Store {
	return New(testIdentity(), gw, nil, zap.NewNop(), nil)
}

func TestLoadDataPopulatesCollections(t *testing.T) {
	gw := &mockGateway{
		professors: []models.ProfessorRecord{
			{ID: 1, FirstName: "Juan", LastName: "García", Email: "jg@uci.cu", Specialty: "Programación"},
		},
		disciplines: []models.Discipline{{ID: 1, Name: "Programación", Faculty: "FTI"}},
		comments: []models.CommentRecord{
			{ID: 10, AuthorName: "Ana", CommentType: "ASSIGNMENT", Message: "hola"},
		},
		assignments: []models.Assignment{
			{ID: 5, ProfessorID: 1, Subject: "Estructura de Datos", Faculty: "FTI"},
		},
	}
	st := newTestStore(gw)

	st.LoadData(context.Background())

	require.Len(t, st.Professors(), 1)
	assert.Equal(t, "Juan García", st.Professors()[0].Name)
	assert.Equal(t, []string{"Estructura de Datos"}, st.Professors()[0].Subjects)
	assert.Equal(t, []string{"FTI"}, st.Professors()[0].Faculties)
	assert.Len(t, st.Disciplines(), 1)
	require.Len(t, st.Comments(), 1)
	assert.Equal(t, models.CommentAdd, st.Comments()[0].Type)
	assert.Empty(t, st.Err())
	assert.False(t, st.Loading())
}

func TestLoadDataPartialFailureKeepsRest(t *testing.T) {
	gw := &mockGateway{
		professorErr: appErrors.Clone(appErrors.ErrUpstream, "down"),
		disciplines:  []models.Discipline{{ID: 1, Name: "Programación"}},
		comments:     []models.CommentRecord{{ID: 1, Message: "x"}},
		assignments:  []models.Assignment{{ID: 1, ProfessorID: 2}},
	}
	st := newTestStore(gw)

	st.LoadData(context.Background())

	assert.Empty(t, st.Err())
	assert.Empty(t, st.Professors())
	assert.Len(t, st.Disciplines(), 1)
	assert.Len(t, st.Comments(), 1)
	assert.Len(t, st.Assignments(), 1)
}

func TestLoadDataTotalFailureKeepsStaleData(t *testing.T) {
	gw := &mockGateway{
		professors:  []models.ProfessorRecord{{ID: 1, FirstName: "Juan", LastName: "García"}},
		disciplines: []models.Discipline{{ID: 1, Name: "Programación"}},
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())
	require.Len(t, st.Professors(), 1)

	failure := appErrors.Clone(appErrors.ErrUpstream, "down")
	gw.professorErr = failure
	gw.disciplineErr = failure
	gw.commentErr = failure
	gw.assignmentErr = failure

	st.LoadData(context.Background())

	assert.NotEmpty(t, st.Err())
	assert.Len(t, st.Professors(), 1)
	assert.Len(t, st.Disciplines(), 1)
}

func TestLoadDataWithoutIdentityIsNoop(t *testing.T) {
	gw := &mockGateway{}
	st := New(models.Identity{}, gw, nil, zap.NewNop(), nil)

	st.LoadData(context.Background())

	assert.Zero(t, gw.listCalls)
	assert.Empty(t, st.Err())
}

func TestInlineListsPreferredOverDerived(t *testing.T) {
	gw := &mockGateway{
		professors: []models.ProfessorRecord{
			{ID: 1, FullName: "Juan García", Subjects: []string{"Redes"}, Faculties: []string{"CITEC"}},
		},
		assignments: []models.Assignment{
			{ID: 5, ProfessorID: 1, Subject: "Estructura de Datos", Faculty: "FTI"},
		},
	}
	st := newTestStore(gw)

	st.LoadData(context.Background())

	require.Len(t, st.Professors(), 1)
	assert.Equal(t, []string{"Redes"}, st.Professors()[0].Subjects)
	assert.Equal(t, []string{"CITEC"}, st.Professors()[0].Faculties)
}

func TestAddProfessorBackendFirst(t *testing.T) {
	gw := &mockGateway{
		created: &models.ProfessorRecord{ID: 42, FirstName: "Luisa", LastName: "Martín", Email: "lm@uci.cu"},
	}
	st := newTestStore(gw)

	professor, err := st.AddProfessor(context.Background(), models.CreateProfessorRequest{
		Name:  "Luisa Martín",
		Email: "lm@uci.cu",
	}, "Ana Pérez")

	require.NoError(t, err)
	assert.Equal(t, int64(42), professor.ID)
	require.Len(t, st.Professors(), 1)
	require.Len(t, st.Comments(), 1)
	require.Len(t, gw.commentPayloads, 1)
	assert.Equal(t, "ASSIGNMENT", gw.commentPayloads[0].CommentType)
}

func TestAddProfessorFallbackSynthesizesID(t *testing.T) {
	failure := appErrors.Clone(appErrors.ErrUpstream, "down")
	gw := &mockGateway{
		professors: []models.ProfessorRecord{
			{ID: 3, FullName: "Uno"},
			{ID: 9, FullName: "Dos"},
		},
		createErr:        failure,
		createCommentErr: failure,
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())
	require.Len(t, st.Professors(), 2)

	professor, err := st.AddProfessor(context.Background(), models.CreateProfessorRequest{
		Name:  "Luisa Martín",
		Email: "lm@uci.cu",
	}, "Ana Pérez")

	require.NoError(t, err)
	assert.Equal(t, int64(10), professor.ID)
	assert.Len(t, st.Professors(), 3)
	require.Len(t, st.Comments(), 1)
	assert.Equal(t, models.CommentAdd, st.Comments()[0].Type)
	assert.Equal(t, "Ana Pérez", st.Comments()[0].Author)
}

func TestAddProfessorValidation(t *testing.T) {
	st := newTestStore(&mockGateway{})

	_, err := st.AddProfessor(context.Background(), models.CreateProfessorRequest{Email: "no-name@uci.cu"}, "Ana")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, st.Professors())
	assert.Empty(t, st.Comments())
}

func TestUpdateProfessorFallbackKeepsID(t *testing.T) {
	failure := appErrors.Clone(appErrors.ErrUpstream, "down")
	gw := &mockGateway{
		professors: []models.ProfessorRecord{{ID: 5, FullName: "Juan García", Email: "jg@uci.cu"}},
		patchErr:   failure,
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())

	newName := "Juan A. García"
	professor, err := st.UpdateProfessor(context.Background(), 5, models.UpdateProfessorRequest{Name: &newName}, "Ana Pérez")

	require.NoError(t, err)
	assert.Equal(t, int64(5), professor.ID)
	assert.Equal(t, "Juan A. García", professor.Name)
	require.Len(t, st.Professors(), 1)
	assert.Equal(t, "Juan A. García", st.Professors()[0].Name)
	require.Len(t, st.Comments(), 1)
	assert.Equal(t, models.CommentEdit, st.Comments()[0].Type)
}

func TestUpdateProfessorAppliesSubjectEditOnSuccess(t *testing.T) {
	gw := &mockGateway{
		professors: []models.ProfessorRecord{
			{ID: 5, FullName: "Juan García", Email: "jg@uci.cu", Subjects: []string{"Redes"}, Faculties: []string{"FTI"}},
		},
		patched: &models.ProfessorRecord{ID: 5, FullName: "Juan García", Email: "jg@uci.cu"},
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())

	faculty := "CITEC"
	professor, err := st.UpdateProfessor(context.Background(), 5, models.UpdateProfessorRequest{
		Subjects: []string{"Python"},
		Faculty:  &faculty,
	}, "Ana Pérez")

	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, professor.Subjects)
	assert.Equal(t, []string{"CITEC"}, professor.Faculties)
	require.Len(t, st.Professors(), 1)
	assert.Equal(t, []string{"Python"}, st.Professors()[0].Subjects)

	require.NotNil(t, gw.patchedFields)
	assert.Equal(t, []string{"Python"}, gw.patchedFields["subjects"])
	assert.Equal(t, []string{"CITEC"}, gw.patchedFields["faculties"])
}

func TestUpdateProfessorNotFound(t *testing.T) {
	st := newTestStore(&mockGateway{})

	name := "Nadie"
	_, err := st.UpdateProfessor(context.Background(), 99, models.UpdateProfessorRequest{Name: &name}, "Ana")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, st.Comments())
}

func TestDeleteProfessorRemovesLocallyOnUpstreamFailure(t *testing.T) {
	failure := appErrors.Clone(appErrors.ErrUpstream, "down")
	gw := &mockGateway{
		professors: []models.ProfessorRecord{{ID: 5, FullName: "Juan García"}},
		deleteErr:  failure,
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())

	err := st.DeleteProfessor(context.Background(), 5, "Ana Pérez")

	require.NoError(t, err)
	assert.Empty(t, st.Professors())
	require.Len(t, st.Comments(), 1)
}

func TestMutationAppendsExactlyOneComment(t *testing.T) {
	gw := &mockGateway{
		created: &models.ProfessorRecord{ID: 1, FullName: "Luisa Martín"},
	}
	st := newTestStore(gw)

	_, err := st.AddProfessor(context.Background(), models.CreateProfessorRequest{
		Name:  "Luisa Martín",
		Email: "lm@uci.cu",
	}, "Ana Pérez")
	require.NoError(t, err)

	assert.Len(t, st.Comments(), 1)
	assert.Len(t, gw.commentPayloads, 1)
}

func TestAddCommentFallback(t *testing.T) {
	failure := appErrors.Clone(appErrors.ErrUpstream, "down")
	gw := &mockGateway{
		comments:         []models.CommentRecord{{ID: 30, Message: "previo"}},
		createCommentErr: failure,
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())

	comment, err := st.AddComment(context.Background(), models.CreateCommentRequest{Message: "nuevo"}, "Ana Pérez")

	require.NoError(t, err)
	assert.Equal(t, int64(31), comment.ID)
	assert.Equal(t, models.CommentEdit, comment.Type)
	assert.Len(t, st.Comments(), 2)
}

func TestMarkCommentReadLocalFirst(t *testing.T) {
	failure := appErrors.Clone(appErrors.ErrUpstream, "down")
	gw := &mockGateway{
		comments:    []models.CommentRecord{{ID: 12, Message: "x"}},
		markReadErr: failure,
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())

	err := st.MarkCommentRead(context.Background(), 12)

	require.NoError(t, err)
	assert.True(t, st.Comments()[0].Read)
	assert.Equal(t, []int64{12}, gw.markedRead)
}

func TestMarkCommentReadNotFound(t *testing.T) {
	st := newTestStore(&mockGateway{})

	err := st.MarkCommentRead(context.Background(), 99)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestQueriesAreNilSafe(t *testing.T) {
	gw := &mockGateway{
		professors: []models.ProfessorRecord{
			{ID: 1, FullName: "Juan García", Specialty: "Programación"},
			{ID: 2, FullName: "Luisa Martín", Specialty: "Matemática"},
		},
		assignments: []models.Assignment{
			{ID: 1, ProfessorID: 1, Subject: "Redes", Faculty: "FTI"},
		},
	}
	st := newTestStore(gw)
	st.LoadData(context.Background())

	assert.Len(t, st.ProfessorsByDiscipline("Programación"), 1)
	assert.Len(t, st.ProfessorsByFaculty("FTI"), 1)
	assert.Len(t, st.ProfessorsBySubject("Redes"), 1)
	assert.NotNil(t, st.ProfessorsByFaculty("no-existe"))
	assert.Empty(t, st.ProfessorsByFaculty("no-existe"))
	assert.Equal(t, map[string]int{"FTI": 1}, st.CountByFaculty())
	assert.Equal(t, map[string]int{"Programación": 1, "Matemática": 1}, st.CountByDiscipline())
}

func TestRegistryLifecycle(t *testing.T) {
	reg := NewRegistry(nil, zap.NewNop(), nil, nil)
	gw := &mockGateway{}

	st := reg.Obtain("s1", testIdentity(), gw)
	require.NotNil(t, st)
	again := reg.Obtain("s1", testIdentity(), gw)
	assert.Same(t, st, again)
	assert.Equal(t, 1, reg.Len())

	found, ok := reg.Lookup("s1")
	require.True(t, ok)
	assert.Same(t, st, found)

	reg.Drop("s1")
	_, ok = reg.Lookup("s1")
	assert.False(t, ok)
	reg.Drop("s1")
	assert.Zero(t, reg.Len())
}
