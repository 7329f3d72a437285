package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/models"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

// AddProfessor creates a roster record, backend first. When the upstream call
// fails the record is created locally with a synthesized id so the session
// keeps working; the change is lost on the next successful reload. Every
// mutation appends exactly one audit comment.
func (s *Store) AddProfessor(ctx context.Context, req models.CreateProfessorRequest, author string) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	first, last := splitName(req.Name)
	identification := req.Identification
	if identification == "" {
		identification = placeholderIdentification(time.Now())
	}
	payload := gateway.ProfessorPayload{
		FirstName:        first,
		LastName:         last,
		Email:            req.Email,
		Identification:   identification,
		Specialty:        req.Department,
		Category:         req.Category,
		ScientificDegree: req.ScientificDeg,
		ContractType:     req.ContractType,
		YearsExperience:  req.YearsExperience,
	}

	var professor models.Professor
	record, err := s.gw.CreateProfessor(ctx, payload)
	if err != nil {
		s.logger.Warn("professor create failed upstream, applying locally",
			zap.String("email", req.Email), zap.Error(err))
		s.observeFallback("professor_create")

		s.mu.Lock()
		professor = professorFromRequest(req, s.maxProfessorID()+1)
		s.professors = append(s.professors, professor)
		s.mu.Unlock()
	} else {
		s.mu.Lock()
		professor = normalizeProfessor(*record, s.assignments)
		if len(professor.Subjects) == 0 && len(req.Subjects) > 0 {
			professor.Subjects = append([]string{}, req.Subjects...)
		}
		if len(professor.Faculties) == 0 && req.Faculty != "" {
			professor.Faculties = []string{req.Faculty}
		}
		s.professors = append(s.professors, professor)
		s.mu.Unlock()
	}

	s.appendAudit(ctx, models.CommentAdd, professor.Name, author,
		fmt.Sprintf("Se agregó el profesor %s", professor.Name))

	return &professor, nil
}

// UpdateProfessor applies a partial update, backend first with a local
// fallback. The professor id never changes.
func (s *Store) UpdateProfessor(ctx context.Context, id int64, req models.UpdateProfessorRequest, author string) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	s.mu.Lock()
	idx := s.indexOfProfessor(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
	}
	current := s.professors[idx]
	s.mu.Unlock()

	fields := upstreamFields(req)

	var professor models.Professor
	record, err := s.gw.PatchProfessor(ctx, id, fields)
	if err != nil {
		s.logger.Warn("professor update failed upstream, applying locally",
			zap.Int64("professor_id", id), zap.Error(err))
		s.observeFallback("professor_update")
		professor = applyUpdate(current, req)
	} else {
		professor = normalizeProfessor(*record, s.Assignments())
		if req.Subjects != nil {
			professor.Subjects = append([]string{}, req.Subjects...)
		} else if len(professor.Subjects) == 0 {
			professor.Subjects = current.Subjects
		}
		if req.Faculty != nil {
			professor.Faculties = []string{*req.Faculty}
		} else if len(professor.Faculties) == 0 {
			professor.Faculties = current.Faculties
		}
	}
	professor.ID = id

	s.mu.Lock()
	if idx = s.indexOfProfessor(id); idx >= 0 {
		s.professors[idx] = professor
	}
	s.mu.Unlock()

	s.appendAudit(ctx, models.CommentEdit, professor.Name, author,
		fmt.Sprintf("Se modificaron los datos del profesor %s", professor.Name))

	return &professor, nil
}

// DeleteProfessor removes a roster record. The local removal happens even
// when the upstream call fails, keeping the session's view consistent with
// the action the user took.
func (s *Store) DeleteProfessor(ctx context.Context, id int64, author string) error {
	s.mu.Lock()
	idx := s.indexOfProfessor(id)
	if idx < 0 {
		s.mu.Unlock()
		return appErrors.Clone(appErrors.ErrNotFound, "professor not found")
	}
	name := s.professors[idx].Name
	s.mu.Unlock()

	if err := s.gw.DeleteProfessor(ctx, id); err != nil {
		s.logger.Warn("professor delete failed upstream, applying locally",
			zap.Int64("professor_id", id), zap.Error(err))
		s.observeFallback("professor_delete")
	}

	s.mu.Lock()
	if idx = s.indexOfProfessor(id); idx >= 0 {
		s.professors = append(s.professors[:idx], s.professors[idx+1:]...)
	}
	s.mu.Unlock()

	s.appendAudit(ctx, models.CommentEdit, name, author,
		fmt.Sprintf("Se eliminó el profesor %s", name))

	return nil
}

// AddComment posts a free-form audit comment.
func (s *Store) AddComment(ctx context.Context, req models.CreateCommentRequest, author string) (*models.Comment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comment payload")
	}

	kind := req.Type
	if kind == "" {
		kind = models.CommentEdit
	}
	comment := s.appendAudit(ctx, kind, req.Subject, author, req.Message)
	return &comment, nil
}

// MarkCommentRead flags a comment as read. The local flag flips immediately;
// the upstream call is best-effort and a failure is only logged.
func (s *Store) MarkCommentRead(ctx context.Context, id int64) error {
	s.mu.Lock()
	found := false
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].Read = true
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "comment not found")
	}

	if err := s.gw.MarkCommentRead(ctx, id); err != nil {
		s.logger.Warn("mark comment read failed upstream", zap.Int64("comment_id", id), zap.Error(err))
	}
	return nil
}

// appendAudit records one audit comment, backend first with a local fallback.
func (s *Store) appendAudit(ctx context.Context, kind models.CommentType, subject, author, message string) models.Comment {
	upstreamType := "MODIFICATION"
	if kind == models.CommentAdd {
		upstreamType = "ASSIGNMENT"
	}

	record, err := s.gw.CreateComment(ctx, gateway.CommentPayload{
		CommentType: upstreamType,
		Subject:     subject,
		Message:     message,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	var comment models.Comment
	if err != nil {
		s.logger.Warn("comment create failed upstream, applying locally", zap.Error(err))
		s.observeFallback("comment_create")
		comment = models.Comment{
			ID:        s.maxCommentID() + 1,
			Author:    author,
			Subject:   subject,
			Message:   message,
			Type:      kind,
			Timestamp: time.Now().UTC(),
		}
	} else {
		comment = normalizeComment(*record)
		if comment.Author == "" {
			comment.Author = author
		}
	}
	s.comments = append(s.comments, comment)
	return comment
}

// indexOfProfessor must be called with the mutex held.
func (s *Store) indexOfProfessor(id int64) int {
	for i := range s.professors {
		if s.professors[i].ID == id {
			return i
		}
	}
	return -1
}

// maxProfessorID must be called with the mutex held.
func (s *Store) maxProfessorID() int64 {
	var max int64
	for _, p := range s.professors {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// maxCommentID must be called with the mutex held.
func (s *Store) maxCommentID() int64 {
	var max int64
	for _, c := range s.comments {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

func professorFromRequest(req models.CreateProfessorRequest, id int64) models.Professor {
	subjects := append([]string{}, req.Subjects...)
	faculties := []string{}
	if req.Faculty != "" {
		faculties = append(faculties, req.Faculty)
	}
	return models.Professor{
		ID:               id,
		Name:             req.Name,
		Email:            req.Email,
		Department:       req.Department,
		Subjects:         subjects,
		Faculties:        faculties,
		Category:         req.Category,
		ScientificDegree: req.ScientificDeg,
		ContractType:     req.ContractType,
		YearsExperience:  req.YearsExperience,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}
}

func applyUpdate(current models.Professor, req models.UpdateProfessorRequest) models.Professor {
	out := current
	if req.Name != nil {
		out.Name = *req.Name
	}
	if req.Email != nil {
		out.Email = *req.Email
	}
	if req.Department != nil {
		out.Department = *req.Department
	}
	if req.Subjects != nil {
		out.Subjects = append([]string{}, req.Subjects...)
	}
	if req.Faculty != nil {
		out.Faculties = []string{*req.Faculty}
	}
	if req.Category != nil {
		out.Category = *req.Category
	}
	if req.ScientificDeg != nil {
		out.ScientificDegree = *req.ScientificDeg
	}
	if req.ContractType != nil {
		out.ContractType = *req.ContractType
	}
	if req.YearsExperience != nil {
		out.YearsExperience = *req.YearsExperience
	}
	if req.Active != nil {
		out.Active = *req.Active
	}
	return out
}

func upstreamFields(req models.UpdateProfessorRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Name != nil {
		first, last := splitName(*req.Name)
		fields["first_name"] = first
		fields["last_name"] = last
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Department != nil {
		fields["specialty"] = *req.Department
	}
	if req.Subjects != nil {
		fields["subjects"] = append([]string{}, req.Subjects...)
	}
	if req.Faculty != nil {
		fields["faculties"] = []string{*req.Faculty}
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ScientificDeg != nil {
		fields["scientific_degree"] = *req.ScientificDeg
	}
	if req.ContractType != nil {
		fields["contract_type"] = *req.ContractType
	}
	if req.YearsExperience != nil {
		fields["years_of_experience"] = *req.YearsExperience
	}
	if req.Active != nil {
		fields["is_active"] = *req.Active
	}
	return fields
}
