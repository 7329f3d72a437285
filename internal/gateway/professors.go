package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// ProfessorPayload is the upstream field set for professor writes. The panel
// translates its own request shape into this one.
type ProfessorPayload struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Identification   string `json:"identification,omitempty"`
	Specialty        string `json:"specialty,omitempty"`
	Category         string `json:"category,omitempty"`
	ScientificDegree string `json:"scientific_degree,omitempty"`
	ContractType     string `json:"contract_type,omitempty"`
	YearsExperience  int    `json:"years_of_experience"`
	IsActive         *bool  `json:"is_active,omitempty"`
}

// ListProfessors returns the full upstream roster.
func (s *Session) ListProfessors(ctx context.Context) ([]models.ProfessorRecord, error) {
	raw, err := s.get(ctx, "/professors/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.ProfessorRecord](raw)
}

// GetProfessor fetches a single professor record.
func (s *Session) GetProfessor(ctx context.Context, id int64) (*models.ProfessorRecord, error) {
	var out models.ProfessorRecord
	if err := s.do(ctx, http.MethodGet, fmt.Sprintf("/professors/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProfessor creates an upstream record and returns the authoritative
// server copy.
func (s *Session) CreateProfessor(ctx context.Context, payload ProfessorPayload) (*models.ProfessorRecord, error) {
	var out models.ProfessorRecord
	if err := s.do(ctx, http.MethodPost, "/professors/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfessor replaces an upstream record.
func (s *Session) UpdateProfessor(ctx context.Context, id int64, payload ProfessorPayload) (*models.ProfessorRecord, error) {
	var out models.ProfessorRecord
	if err := s.do(ctx, http.MethodPut, fmt.Sprintf("/professors/%d/", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchProfessor applies a partial update with the upstream field names.
func (s *Session) PatchProfessor(ctx context.Context, id int64, fields map[string]interface{}) (*models.ProfessorRecord, error) {
	var out models.ProfessorRecord
	if err := s.do(ctx, http.MethodPatch, fmt.Sprintf("/professors/%d/", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProfessor removes an upstream record.
func (s *Session) DeleteProfessor(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/professors/%d/", id), nil, nil)
}

// ExportProfessorsCSV downloads the upstream roster export blob.
func (s *Session) ExportProfessorsCSV(ctx context.Context) ([]byte, string, error) {
	return s.doRaw(ctx, http.MethodGet, "/professors/export_csv/")
}

// ProfessorCategories lists the teaching category choices.
func (s *Session) ProfessorCategories(ctx context.Context) ([]models.EnumOption, error) {
	raw, err := s.get(ctx, "/professors/categories/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.EnumOption](raw)
}

// ScientificDegrees lists the scientific degree choices.
func (s *Session) ScientificDegrees(ctx context.Context) ([]models.EnumOption, error) {
	raw, err := s.get(ctx, "/professors/scientific_degrees/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.EnumOption](raw)
}

// ContractTypes lists the contract type choices.
func (s *Session) ContractTypes(ctx context.Context) ([]models.EnumOption, error) {
	raw, err := s.get(ctx, "/professors/contract_types/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.EnumOption](raw)
}

// get fetches raw bytes for list endpoints whose shape varies.
func (s *Session) get(ctx context.Context, path string) ([]byte, error) {
	_, raw, err := s.exchange(ctx, http.MethodGet, path, nil, "")
	return raw, err
}
