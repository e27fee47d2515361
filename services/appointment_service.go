package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

// ErrIllegalTransition is returned before any network call when a status change
// is not one of the forward transitions of the current status.
type ErrIllegalTransition struct {
	From, To string
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("no se puede pasar de %s a %s", e.From, e.To)
}

type AppointmentService struct {
	api *apiclient.Client
}

func NewAppointmentService(api *apiclient.Client) *AppointmentService {
	return &AppointmentService{api: api}
}

func (s *AppointmentService) Create(ctx context.Context, in models.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.Appointment
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/appointments",
		Body:     in,
		Fallback: "No se pudo crear la cita",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.list(ctx, "/appointments", nil)
}

// Mine lists the appointments of the logged-in client.
func (s *AppointmentService) Mine(ctx context.Context) ([]models.Appointment, error) {
	return s.list(ctx, "/appointments/my-appointments", nil)
}

func (s *AppointmentService) ByStaff(ctx context.Context, staffID int64) ([]models.Appointment, error) {
	return s.list(ctx, idPath("/appointments/by-staff/%d", staffID), nil)
}

// ByDateRange lists appointments between two YYYY-MM-DD dates, both inclusive.
func (s *AppointmentService) ByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error) {
	q := url.Values{"startDate": {from}, "endDate": {to}}
	return s.list(ctx, "/appointments/by-date-range", q)
}

func (s *AppointmentService) Statistics(ctx context.Context) (*models.AppointmentStatistics, error) {
	var out models.AppointmentStatistics
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/appointments/statistics",
		Fallback: "No se pudieron cargar las estadísticas",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus requests a status transition. current is the status the caller
// last saw; transitions outside NextStatuses never reach the server.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, current, next models.AppointmentStatus) (*models.Appointment, error) {
	if !current.CanTransition(next) {
		return nil, &ErrIllegalTransition{From: string(current), To: string(next)}
	}
	var out models.Appointment
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Path:     idPath("/appointments/%d/status", id),
		Body:     models.UpdateAppointmentStatusRequest{Status: next},
		Fallback: "No se pudo actualizar el estado de la cita",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AppointmentService) Cancel(ctx context.Context, id int64, reason string) (*models.Appointment, error) {
	in := models.CancelAppointmentRequest{Reason: reason}
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.Appointment
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     idPath("/appointments/%d/cancel", id),
		Body:     in,
		Fallback: "No se pudo cancelar la cita",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AppointmentService) list(ctx context.Context, path string, q url.Values) ([]models.Appointment, error) {
	out := []models.Appointment{}
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     path,
		Query:    q,
		Fallback: "No se pudieron cargar las citas",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
