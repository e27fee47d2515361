package services

import (
	"context"
	"net/http"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

// CatalogService wraps the /services resource. Services are never deleted from
// the UI, only toggled inactive.
type CatalogService struct {
	api *apiclient.Client
}

func NewCatalogService(api *apiclient.Client) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) Create(ctx context.Context, in models.CreateServiceRequest) (*models.Service, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.Service
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/services",
		Body:     in,
		Fallback: "No se pudo crear el servicio",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.list(ctx, "/services")
}

func (s *CatalogService) Active(ctx context.Context) ([]models.Service, error) {
	return s.list(ctx, "/services/active")
}

func (s *CatalogService) Update(ctx context.Context, id int64, in models.UpdateServiceRequest) (*models.Service, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.Service
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Path:     idPath("/services/%d", id),
		Body:     in,
		Fallback: "No se pudo actualizar el servicio",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActive flips the active flag from the value the caller last saw.
func (s *CatalogService) ToggleActive(ctx context.Context, id int64, current bool) (*models.Service, error) {
	next := !current
	return s.Update(ctx, id, models.UpdateServiceRequest{IsActive: &next})
}

func (s *CatalogService) list(ctx context.Context, path string) ([]models.Service, error) {
	out := []models.Service{}
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     path,
		Fallback: "No se pudieron cargar los servicios",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
