package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
)

type ReportService struct {
	api *apiclient.Client
}

func NewReportService(api *apiclient.Client) *ReportService {
	return &ReportService{api: api}
}

func (s *ReportService) Monthly(ctx context.Context, q models.ReportQuery) (*models.MonthlyReport, error) {
	var out models.MonthlyReport
	if err := s.get(ctx, "/reports/monthly", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReportService) Appointments(ctx context.Context, q models.ReportQuery) (*models.AppointmentReport, error) {
	var out models.AppointmentReport
	if err := s.get(ctx, "/reports/appointments", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReportService) Services(ctx context.Context, q models.ReportQuery) (*models.ServiceReport, error) {
	var out models.ServiceReport
	if err := s.get(ctx, "/reports/services", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Export downloads the report as a binary blob.
func (s *ReportService) Export(ctx context.Context, format ExportFormat, q models.ReportQuery) (*apiclient.Blob, error) {
	if format != ExportPDF && format != ExportExcel {
		return nil, validationError(fmt.Errorf("format: %q no soportado", format))
	}
	if err := models.Validate(q); err != nil {
		return nil, validationError(err)
	}
	return s.api.Download(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/reports/export/" + string(format),
		Query:    reportQuery(q),
		Fallback: "No se pudo descargar el reporte",
	})
}

func (s *ReportService) get(ctx context.Context, path string, q models.ReportQuery, out any) error {
	if err := models.Validate(q); err != nil {
		return validationError(err)
	}
	return s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     path,
		Query:    reportQuery(q),
		Fallback: "No se pudo cargar el reporte",
	}, out)
}

func reportQuery(q models.ReportQuery) url.Values {
	v := url.Values{}
	if q.Period != "" {
		v.Set("period", q.Period)
	}
	if q.Year != 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	return v
}
