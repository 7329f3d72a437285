package models

import "time"

// Professor is the normalized roster record the panel works with. Subjects
// and Faculties are always non-nil so list operations stay total.
type Professor struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Department       string    `json:"department,omitempty"`
	Subjects         []string  `json:"subjects"`
	Faculties        []string  `json:"faculties"`
	Category         string    `json:"category,omitempty"`
	ScientificDegree string    `json:"scientific_degree,omitempty"`
	ContractType     string    `json:"contract_type,omitempty"`
	YearsExperience  int       `json:"years_of_experience"`
	Active           bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// Faculty returns the professor's primary faculty, by convention the first
// of the faculty list.
func (p Professor) Faculty() string {
	if len(p.Faculties) == 0 {
		return ""
	}
	return p.Faculties[0]
}

// ProfessorRecord is the upstream wire shape. Older upstream versions carry
// no inline subject/faculty lists, newer ones do; both must normalize.
type ProfessorRecord struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name,omitempty"`
	Email            string    `json:"email"`
	Identification   string    `json:"identification,omitempty"`
	Specialty        string    `json:"specialty,omitempty"`
	Category         string    `json:"category,omitempty"`
	ScientificDegree string    `json:"scientific_degree,omitempty"`
	ContractType     string    `json:"contract_type,omitempty"`
	YearsExperience  int       `json:"years_of_experience"`
	IsActive         bool      `json:"is_active"`
	Subjects         []string  `json:"subjects,omitempty"`
	Faculties        []string  `json:"faculties,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateProfessorRequest is the panel-facing payload for adding a professor.
type CreateProfessorRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Email           string   `json:"email" validate:"required,email"`
	Department      string   `json:"department" validate:"omitempty,max=200"`
	Subjects        []string `json:"subjects"`
	Faculty         string   `json:"faculty" validate:"omitempty,max=200"`
	Category        string   `json:"category" validate:"omitempty,max=20"`
	ScientificDeg   string   `json:"scientific_degree" validate:"omitempty,max=20"`
	ContractType    string   `json:"contract_type" validate:"omitempty,max=20"`
	YearsExperience int      `json:"years_of_experience" validate:"gte=0"`
	Identification  string   `json:"identification" validate:"omitempty,max=20"`
}

// UpdateProfessorRequest carries a partial update; nil fields are untouched.
type UpdateProfessorRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=200"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Department      *string  `json:"department" validate:"omitempty,max=200"`
	Subjects        []string `json:"subjects"`
	Faculty         *string  `json:"faculty" validate:"omitempty,max=200"`
	Category        *string  `json:"category" validate:"omitempty,max=20"`
	ScientificDeg   *string  `json:"scientific_degree" validate:"omitempty,max=20"`
	ContractType    *string  `json:"contract_type" validate:"omitempty,max=20"`
	YearsExperience *int     `json:"years_of_experience" validate:"omitempty,gte=0"`
	Active          *bool    `json:"is_active"`
}
