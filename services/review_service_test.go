package services

import (
	"net/http"
	"testing"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

func TestReviewLifecycle(t *testing.T) {
	fake, api := newFake(t)
	client := seedUser(fake, "cliente@test.com", models.RoleClient)
	svc := fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true})
	reviews := NewReviewService(api)
	ctx := authed(fake, client)

	if _, err := reviews.Create(ctx, models.CreateReviewRequest{ServiceID: svc.ID, Rating: 4, Comment: "Muy bien"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := reviews.Create(ctx, models.CreateReviewRequest{ServiceID: svc.ID, Rating: 2}); !apiclient.IsKind(err, apiclient.KindConflict) {
		t.Fatalf("second review err = %v, want conflict", err)
	}

	mine, err := reviews.Mine(ctx)
	if err != nil || len(mine) != 1 {
		t.Fatalf("Mine = %v, %v", mine, err)
	}
	if mine[0].Client == nil || mine[0].Client.ID != client.ID {
		t.Errorf("review client not embedded: %+v", mine[0])
	}

	stats, err := reviews.ServiceStats(ctx, svc.ID)
	if err != nil {
		t.Fatalf("ServiceStats: %v", err)
	}
	if stats.TotalReviews != 1 || stats.AverageRating != 4 {
		t.Errorf("stats = %+v", stats)
	}
	list, err := reviews.ByService(ctx, svc.ID)
	if err != nil || len(list) != 1 {
		t.Errorf("ByService = %v, %v", list, err)
	}
}

func TestReviewRatingCheckedLocally(t *testing.T) {
	fake, api := newFake(t)
	client := seedUser(fake, "cliente@test.com", models.RoleClient)
	reviews := NewReviewService(api)

	_, err := reviews.Create(authed(fake, client), models.CreateReviewRequest{ServiceID: 1, Rating: 6})
	if !apiclient.IsKind(err, apiclient.KindValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
	if n := fake.Calls(http.MethodPost, "/reviews"); n != 0 {
		t.Errorf("server calls = %d, want 0", n)
	}
}
