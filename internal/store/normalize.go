package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// normalizeProfessor converts an upstream record into the panel shape. When
// the record carries no inline subject or faculty lists they are derived from
// the assignment collection, grouping by professor id and collecting the
// distinct subject and faculty names.
func normalizeProfessor(record models.ProfessorRecord, assignments []models.Assignment) models.Professor {
	name := strings.TrimSpace(record.FullName)
	if name == "" {
		name = strings.TrimSpace(record.FirstName + " " + record.LastName)
	}

	subjects := record.Subjects
	faculties := record.Faculties
	if len(subjects) == 0 {
		subjects = derivedNames(assignments, record.ID, func(a models.Assignment) string { return a.Subject })
	}
	if len(faculties) == 0 {
		faculties = derivedNames(assignments, record.ID, func(a models.Assignment) string { return a.Faculty })
	}
	if subjects == nil {
		subjects = []string{}
	}
	if faculties == nil {
		faculties = []string{}
	}

	return models.Professor{
		ID:               record.ID,
		Name:             name,
		Email:            record.Email,
		Department:       record.Specialty,
		Subjects:         subjects,
		Faculties:        faculties,
		Category:         record.Category,
		ScientificDegree: record.ScientificDegree,
		ContractType:     record.ContractType,
		YearsExperience:  record.YearsExperience,
		Active:           record.IsActive,
		CreatedAt:        record.CreatedAt,
	}
}

// derivedNames collects the distinct non-empty values of one assignment field
// for a professor, preserving first-seen order.
func derivedNames(assignments []models.Assignment, professorID int64, field func(models.Assignment) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, a := range assignments {
		if a.ProfessorID != professorID {
			continue
		}
		name := field(a)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// normalizeComment converts an upstream comment into the panel shape.
func normalizeComment(record models.CommentRecord) models.Comment {
	return models.Comment{
		ID:        record.ID,
		Author:    record.AuthorName,
		Subject:   record.Subject,
		Message:   record.Message,
		Type:      models.NormalizeCommentType(record.CommentType),
		Read:      record.IsRead,
		Timestamp: record.CreatedAt,
	}
}

// splitName breaks a display name into the upstream first/last pair at the
// first whitespace run. A single token becomes the first name.
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

// placeholderIdentification synthesizes a unique identification for records
// created without one. The upstream rejects duplicates, so the value is
// derived from the current time.
func placeholderIdentification(now time.Time) string {
	return fmt.Sprintf("CI-%d", now.UnixMilli())
}
