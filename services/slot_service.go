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

type SlotService struct {
	api *apiclient.Client
}

func NewSlotService(api *apiclient.Client) *SlotService {
	return &SlotService{api: api}
}

// Generate asks the server to create slots for a service over a time window.
// A nil DurationMinutes lets the server fall back to the service duration.
func (s *SlotService) Generate(ctx context.Context, in models.GenerateSlotsRequest) ([]models.ServiceSlot, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	out := []models.ServiceSlot{}
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/service-slots/generate",
		Body:     in,
		Fallback: "No se pudieron generar los horarios",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Mine lists the logged-in provider's slots for a date (all dates when empty).
func (s *SlotService) Mine(ctx context.Context, date string) ([]models.ServiceSlot, error) {
	var q url.Values
	if date != "" {
		q = url.Values{"date": {date}}
	}
	return s.list(ctx, "/service-slots/mine", q)
}

func (s *SlotService) Available(ctx context.Context, serviceID int64, date string) ([]models.ServiceSlot, error) {
	q := url.Values{
		"serviceId": {strconv.FormatInt(serviceID, 10)},
		"date":      {date},
	}
	return s.list(ctx, "/service-slots/available", q)
}

// UpdateStatus moves a slot among the staff-editable statuses.
func (s *SlotService) UpdateStatus(ctx context.Context, id int64, in models.UpdateSlotStatusRequest) (*models.ServiceSlot, error) {
	if !in.Status.StaffEditable() {
		return nil, validationError(fmt.Errorf("status: %s no se puede asignar manualmente", in.Status))
	}
	var out models.ServiceSlot
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Path:     idPath("/service-slots/%d/status", id),
		Body:     in,
		Fallback: "No se pudo actualizar el horario",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SlotService) Delete(ctx context.Context, id int64) error {
	return s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodDelete,
		Path:     idPath("/service-slots/%d", id),
		Fallback: "No se pudo eliminar el horario",
	}, nil)
}

func (s *SlotService) list(ctx context.Context, path string, q url.Values) ([]models.ServiceSlot, error) {
	out := []models.ServiceSlot{}
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     path,
		Query:    q,
		Fallback: "No se pudieron cargar los horarios",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
