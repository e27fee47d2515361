package services

import (
	"context"
	"net/http"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

type UserService struct {
	api *apiclient.Client
}

func NewUserService(api *apiclient.Client) *UserService {
	return &UserService{api: api}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/users",
		Fallback: "No se pudieron cargar los usuarios",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     idPath("/users/%d", id),
		Fallback: "No se pudo cargar el usuario",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) Create(ctx context.Context, in models.CreateUserRequest) (*models.User, error) {
	if in.Role != models.RoleProvider {
		in.Specialty = nil
	}
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.User
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/users",
		Body:     in,
		Fallback: "No se pudo crear el usuario",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in models.UpdateUserRequest) (*models.User, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.User
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Path:     idPath("/users/%d", id),
		Body:     in,
		Fallback: "No se pudo actualizar el usuario",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) SetActive(ctx context.Context, id int64, active bool) (*models.User, error) {
	return s.Update(ctx, id, models.UpdateUserRequest{IsActive: &active})
}
