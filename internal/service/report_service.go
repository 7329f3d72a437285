package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/pkg/config"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/export"
)

// ReportFormat selects the rendered document type.
type ReportFormat string

const (
	FormatCSV ReportFormat = "csv"
	FormatPDF ReportFormat = "pdf"
)

// ReportResult carries a rendered document ready to stream.
type ReportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportService renders roster reports from the session's loaded collections.
// Reports reflect the session view, local fallback records included, which is
// the point: the user downloads exactly what they see.
type ReportService struct {
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	cfg    config.ReportsConfig
}

// NewReportService constructs the report service.
func NewReportService(logger *zap.Logger, cfg config.ReportsConfig) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
		cfg:    cfg,
	}
}

// RosterReport renders the professor roster in the requested format.
func (s *ReportService) RosterReport(professors []models.Professor, format ReportFormat) (*ReportResult, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "reports are disabled")
	}

	dataset := rosterDataset(professors)
	stamp := time.Now().Format("2006-01-02")

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &ReportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("profesores_%s.csv", stamp),
		}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset, s.cfg.Title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &ReportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("profesores_%s.pdf", stamp),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}
}

// WorkloadReport renders a per-faculty headcount summary.
func (s *ReportService) WorkloadReport(counts map[string]int, format ReportFormat) (*ReportResult, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "reports are disabled")
	}

	dataset := export.Dataset{Headers: []string{"Facultad", "Profesores"}}
	for faculty, count := range counts {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Facultad":   faculty,
			"Profesores": strconv.Itoa(count),
		})
	}
	stamp := time.Now().Format("2006-01-02")

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &ReportResult{Content: content, ContentType: "text/csv", Filename: fmt.Sprintf("carga_%s.csv", stamp)}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset, s.cfg.Title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &ReportResult{Content: content, ContentType: "application/pdf", Filename: fmt.Sprintf("carga_%s.pdf", stamp)}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}
}

func rosterDataset(professors []models.Professor) export.Dataset {
	headers := []string{"Nombre", "Correo", "Departamento", "Facultades", "Asignaturas", "Categoría", "Grado Científico", "Contrato", "Experiencia"}
	rows := make([]map[string]string, 0, len(professors))
	for _, p := range professors {
		rows = append(rows, map[string]string{
			"Nombre":           p.Name,
			"Correo":           p.Email,
			"Departamento":     p.Department,
			"Facultades":       strings.Join(p.Faculties, ", "),
			"Asignaturas":      strings.Join(p.Subjects, ", "),
			"Categoría":        p.Category,
			"Grado Científico": p.ScientificDegree,
			"Contrato":         p.ContractType,
			"Experiencia":      strconv.Itoa(p.YearsExperience),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
