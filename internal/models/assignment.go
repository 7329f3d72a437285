package models

import "time"

// Assignment binds a professor to a subject and faculty with a teaching load.
type Assignment struct {
	ID          int64     `json:"id"`
	ProfessorID int64     `json:"professor"`
	Subject     string    `json:"subject_name"`
	Faculty     string    `json:"faculty_name"`
	Discipline  string    `json:"discipline_name,omitempty"`
	Hours       int       `json:"hours_per_week"`
	Active      bool      `json:"is_active"`
	Date        time.Time `json:"created_at"`
}
