package store

import "github.com/uci-sgcd/panel-api/internal/models"

// ProfessorsByDiscipline filters the roster by department name.
func (s *Store) ProfessorsByDiscipline(name string) []models.Professor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Professor{}
	for _, p := range s.professors {
		if p.Department == name {
			out = append(out, p)
		}
	}
	return out
}

// ProfessorsByFaculty filters the roster by faculty membership.
func (s *Store) ProfessorsByFaculty(name string) []models.Professor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Professor{}
	for _, p := range s.professors {
		if contains(p.Faculties, name) {
			out = append(out, p)
		}
	}
	return out
}

// ProfessorsBySubject filters the roster by taught subject.
func (s *Store) ProfessorsBySubject(name string) []models.Professor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Professor{}
	for _, p := range s.professors {
		if contains(p.Subjects, name) {
			out = append(out, p)
		}
	}
	return out
}

// CountByFaculty tallies professors per faculty. A professor attached to
// several faculties counts once in each.
func (s *Store) CountByFaculty() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, p := range s.professors {
		for _, f := range p.Faculties {
			counts[f]++
		}
	}
	return counts
}

// CountByDiscipline tallies professors per department.
func (s *Store) CountByDiscipline() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, p := range s.professors {
		if p.Department != "" {
			counts[p.Department]++
		}
	}
	return counts
}

// CountBySubject tallies professors per subject.
func (s *Store) CountBySubject() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, p := range s.professors {
		for _, subject := range p.Subjects {
			counts[subject]++
		}
	}
	return counts
}

// UnreadComments returns the comments still flagged unread.
func (s *Store) UnreadComments() []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if !c.Read {
			out = append(out, c)
		}
	}
	return out
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
