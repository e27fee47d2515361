package services

import (
	"context"
	"net/http"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

type ReviewService struct {
	api *apiclient.Client
}

func NewReviewService(api *apiclient.Client) *ReviewService {
	return &ReviewService{api: api}
}

func (s *ReviewService) Create(ctx context.Context, in models.CreateReviewRequest) (*models.Review, error) {
	if err := models.Validate(in); err != nil {
		return nil, validationError(err)
	}
	var out models.Review
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/reviews",
		Body:     in,
		Fallback: "No se pudo publicar la reseña",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReviewService) ByService(ctx context.Context, serviceID int64) ([]models.Review, error) {
	return s.list(ctx, idPath("/reviews/by-service/%d", serviceID))
}

func (s *ReviewService) ServiceStats(ctx context.Context, serviceID int64) (*models.ReviewStats, error) {
	var out models.ReviewStats
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     idPath("/reviews/service-stats/%d", serviceID),
		Fallback: "No se pudieron cargar las valoraciones",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReviewService) Mine(ctx context.Context) ([]models.Review, error) {
	return s.list(ctx, "/reviews/my-reviews")
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.list(ctx, "/reviews")
}

func (s *ReviewService) list(ctx context.Context, path string) ([]models.Review, error) {
	out := []models.Review{}
	err := s.api.Do(ctx, apiclient.Request{
		Method:   http.MethodGet,
		Path:     path,
		Fallback: "No se pudieron cargar las reseñas",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
