package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uci-sgcd/panel-api/internal/models"
)

func TestSplitName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
	}{
		{"Juan García", "Juan", "García"},
		{"Juan Alberto García Díaz", "Juan", "Alberto García Díaz"},
		{"Juan", "Juan", ""},
		{"  Juan   García  ", "Juan", "García"},
		{"", "", ""},
	}

	for _, tc := range cases {
		first, last := splitName(tc.name)
		assert.Equal(t, tc.first, first, tc.name)
		assert.Equal(t, tc.last, last, tc.name)
	}
}

func TestPlaceholderIdentification(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "CI-1772366400000", placeholderIdentification(now))
}

func TestDerivedNamesDeduplicates(t *testing.T) {
	assignments := []models.Assignment{
		{ProfessorID: 1, Subject: "Redes", Faculty: "FTI"},
		{ProfessorID: 1, Subject: "Redes", Faculty: "FTI"},
		{ProfessorID: 1, Subject: "Sistemas", Faculty: ""},
		{ProfessorID: 2, Subject: "Otra", Faculty: "CITEC"},
	}

	subjects := derivedNames(assignments, 1, func(a models.Assignment) string { return a.Subject })
	faculties := derivedNames(assignments, 1, func(a models.Assignment) string { return a.Faculty })

	assert.Equal(t, []string{"Redes", "Sistemas"}, subjects)
	assert.Equal(t, []string{"FTI"}, faculties)
}

func TestNormalizeProfessorPrefersFullName(t *testing.T) {
	p := normalizeProfessor(models.ProfessorRecord{
		ID:        1,
		FullName:  "Dra. Luisa Martín",
		FirstName: "Luisa",
		LastName:  "Martín",
	}, nil)

	assert.Equal(t, "Dra. Luisa Martín", p.Name)
	assert.NotNil(t, p.Subjects)
	assert.NotNil(t, p.Faculties)
}
