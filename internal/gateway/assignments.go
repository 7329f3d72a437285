package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// ListAssignments returns the teaching load bindings.
func (s *Session) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	raw, err := s.get(ctx, "/assignments/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Assignment](raw)
}

// CreateAssignment forwards an assignment creation payload untouched.
func (s *Session) CreateAssignment(ctx context.Context, payload map[string]interface{}) (*models.Assignment, error) {
	var out models.Assignment
	if err := s.do(ctx, http.MethodPost, "/assignments/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAssignment forwards an assignment update untouched.
func (s *Session) UpdateAssignment(ctx context.Context, id int64, payload map[string]interface{}) (*models.Assignment, error) {
	var out models.Assignment
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("/assignments/%d/", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAssignment removes an assignment.
func (s *Session) DeleteAssignment(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/assignments/%d/", id), nil, nil)
}

// ExportAssignmentsCSV downloads the upstream assignments export blob.
func (s *Session) ExportAssignmentsCSV(ctx context.Context) ([]byte, string, error) {
	return s.doRaw(ctx, http.MethodGet, "/assignments/export_csv/")
}

// AssignmentHistory returns the change log entries for one assignment. The
// entries are forwarded opaque; the panel does not interpret them.
func (s *Session) AssignmentHistory(ctx context.Context, id int64) ([]json.RawMessage, error) {
	raw, err := s.get(ctx, fmt.Sprintf("/assignments/%d/history/", id))
	if err != nil {
		return nil, err
	}
	return decodeList[json.RawMessage](raw)
}

// AssignmentTypes lists the activity type choices.
func (s *Session) AssignmentTypes(ctx context.Context) ([]models.EnumOption, error) {
	raw, err := s.get(ctx, "/assignments/assignment_types/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.EnumOption](raw)
}
