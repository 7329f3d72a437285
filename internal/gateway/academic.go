package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// Faculties lists the upstream faculties.
func (s *Session) Faculties(ctx context.Context) ([]models.Faculty, error) {
	raw, err := s.get(ctx, "/academic/faculties/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Faculty](raw)
}

// Disciplines lists the upstream disciplines. Read-only for the panel.
func (s *Session) Disciplines(ctx context.Context) ([]models.Discipline, error) {
	raw, err := s.get(ctx, "/academic/disciplines/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Discipline](raw)
}

// Subjects lists the upstream subjects.
func (s *Session) Subjects(ctx context.Context) ([]models.Subject, error) {
	raw, err := s.get(ctx, "/academic/subjects/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Subject](raw)
}

// GetFaculty fetches a single faculty.
func (s *Session) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	var out models.Faculty
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/academic/faculties/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDiscipline fetches a single discipline.
func (s *Session) GetDiscipline(ctx context.Context, id int64) (*models.Discipline, error) {
	var out models.Discipline
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/academic/disciplines/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSubject fetches a single subject.
func (s *Session) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	var out models.Subject
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/academic/subjects/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
