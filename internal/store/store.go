package store

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/models"
)

// dataGateway is the slice of the backend gateway the store consumes.
type dataGateway interface {
	ListProfessors(ctx context.Context) ([]models.ProfessorRecord, error)
	Disciplines(ctx context.Context) ([]models.Discipline, error)
	ListComments(ctx context.Context) ([]models.CommentRecord, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	CreateProfessor(ctx context.Context, payload gateway.ProfessorPayload) (*models.ProfessorRecord, error)
	PatchProfessor(ctx context.Context, id int64, fields map[string]interface{}) (*models.ProfessorRecord, error)
	DeleteProfessor(ctx context.Context, id int64) error
	CreateComment(ctx context.Context, payload gateway.CommentPayload) (*models.CommentRecord, error)
	MarkCommentRead(ctx context.Context, id int64) error
}

// FallbackObserver counts mutations that had to complete locally because the
// upstream call failed.
type FallbackObserver interface {
	ObserveFallbackMutation(operation string)
}

// Store is the single source of truth for one session's collections. All
// writes go through its operations under one mutex; handlers never touch the
// collections directly. Collections are replaced wholesale on load, so the
// UI always sees a coherent snapshot even when the backend is unreachable.
type Store struct {
	mu sync.Mutex

	identity models.Identity
	gw       dataGateway

	professors  []models.Professor
	disciplines []models.Discipline
	comments    []models.Comment
	assignments []models.Assignment

	loading bool
	loadErr string

	validator *validator.Validate
	logger    *zap.Logger
	fallbacks FallbackObserver
}

// New constructs a store bound to one session identity.
func New(identity models.Identity, gw dataGateway, validate *validator.Validate, logger *zap.Logger, fallbacks FallbackObserver) *Store {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		identity:    identity,
		gw:          gw,
		professors:  []models.Professor{},
		disciplines: []models.Discipline{},
		comments:    []models.Comment{},
		assignments: []models.Assignment{},
		validator:   validate,
		logger:      logger,
		fallbacks:   fallbacks,
	}
}

// Identity returns the session identity the store serves.
func (s *Store) Identity() models.Identity {
	return s.identity
}

// LoadData fetches the four collections concurrently. Each fetch settles
// independently: one failing resource never prevents the others from
// populating. Only when every fetch fails is the store-level error set, and
// previously loaded data is kept in place of an empty screen.
func (s *Store) LoadData(ctx context.Context) {
	if s.identity.ID == 0 {
		// No session yet; an expected idle state, not an error.
		return
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		wg sync.WaitGroup

		professors    []models.ProfessorRecord
		disciplines   []models.Discipline
		comments      []models.CommentRecord
		assignments   []models.Assignment
		professorErr  error
		disciplineErr error
		commentErr    error
		assignmentErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		professors, professorErr = s.gw.ListProfessors(ctx)
	}()
	go func() {
		defer wg.Done()
		disciplines, disciplineErr = s.gw.Disciplines(ctx)
	}()
	go func() {
		defer wg.Done()
		comments, commentErr = s.gw.ListComments(ctx)
	}()
	go func() {
		defer wg.Done()
		assignments, assignmentErr = s.gw.ListAssignments(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	failures := 0
	for _, err := range []error{professorErr, disciplineErr, commentErr, assignmentErr} {
		if err != nil {
			failures++
		}
	}
	if failures == 4 {
		s.loadErr = "failed to load data from the backend"
		s.logger.Error("all collection fetches failed",
			zap.Error(professorErr),
			zap.NamedError("disciplines", disciplineErr),
			zap.NamedError("comments", commentErr),
			zap.NamedError("assignments", assignmentErr),
		)
		return
	}
	s.loadErr = ""

	if assignmentErr == nil {
		s.assignments = assignments
	} else {
		s.logger.Warn("assignments fetch failed, keeping previous snapshot", zap.Error(assignmentErr))
	}

	if professorErr == nil {
		normalized := make([]models.Professor, 0, len(professors))
		for _, record := range professors {
			normalized = append(normalized, normalizeProfessor(record, s.assignments))
		}
		s.professors = normalized
	} else {
		s.logger.Warn("professors fetch failed, keeping previous snapshot", zap.Error(professorErr))
	}

	if disciplineErr == nil {
		s.disciplines = disciplines
	} else {
		s.logger.Warn("disciplines fetch failed, keeping previous snapshot", zap.Error(disciplineErr))
	}

	if commentErr == nil {
		normalized := make([]models.Comment, 0, len(comments))
		for _, record := range comments {
			normalized = append(normalized, normalizeComment(record))
		}
		s.comments = normalized
	} else {
		s.logger.Warn("comments fetch failed, keeping previous snapshot", zap.Error(commentErr))
	}
}

// Refresh reloads every collection, picking up changes made elsewhere.
func (s *Store) Refresh(ctx context.Context) {
	s.LoadData(ctx)
}

// Professors returns a copy of the professor collection.
func (s *Store) Professors() []models.Professor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Professor, len(s.professors))
	copy(out, s.professors)
	return out
}

// Disciplines returns a copy of the discipline collection.
func (s *Store) Disciplines() []models.Discipline {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Discipline, len(s.disciplines))
	copy(out, s.disciplines)
	return out
}

// Comments returns a copy of the audit trail.
func (s *Store) Comments() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// Assignments returns a copy of the assignment collection.
func (s *Store) Assignments() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

// Loading reports whether a load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the store-level load error message, empty when healthy.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *Store) observeFallback(operation string) {
	if s.fallbacks != nil {
		s.fallbacks.ObserveFallbackMutation(operation)
	}
}
