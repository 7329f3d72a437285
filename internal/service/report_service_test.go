package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/pkg/config"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

func testReportService() *ReportService {
	return NewReportService(zap.NewNop(), config.ReportsConfig{Enabled: true, Title: "Reporte de Carga Docente"})
}

func sampleRoster() []models.Professor {
	return []models.Professor{
		{
			ID:         1,
			Name:       "Juan García",
			Email:      "jg@uci.cu",
			Department: "Programación",
			Subjects:   []string{"Redes", "Sistemas"},
			Faculties:  []string{"FTI"},
			Category:   "TITULAR",
		},
	}
}

func TestRosterReportCSV(t *testing.T) {
	svc := testReportService()

	result, err := svc.RosterReport(sampleRoster(), FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "profesores_"))

	body := string(result.Content)
	assert.Contains(t, body, "Nombre")
	assert.Contains(t, body, "Juan García")
	assert.Contains(t, body, "Redes, Sistemas")
}

func TestRosterReportPDF(t *testing.T) {
	svc := testReportService()

	result, err := svc.RosterReport(sampleRoster(), FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestRosterReportUnknownFormat(t *testing.T) {
	svc := testReportService()

	_, err := svc.RosterReport(sampleRoster(), ReportFormat("xlsx"))

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportsDisabled(t *testing.T) {
	svc := NewReportService(zap.NewNop(), config.ReportsConfig{Enabled: false})

	_, err := svc.RosterReport(sampleRoster(), FormatCSV)

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestWorkloadReportCSV(t *testing.T) {
	svc := testReportService()

	result, err := svc.WorkloadReport(map[string]int{"FTI": 3, "CITEC": 1}, FormatCSV)

	require.NoError(t, err)
	body := string(result.Content)
	assert.Contains(t, body, "Facultad")
	assert.Contains(t, body, "FTI,3")
	assert.Contains(t, body, "CITEC,1")
}
