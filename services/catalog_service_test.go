package services

import (
	"errors"
	"net/http"
	"testing"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

func TestToggleActiveTwiceRestoresState(t *testing.T) {
	fake, api := newFake(t)
	catalog := NewCatalogService(api)
	admin := seedUser(fake, "admin@salon.test", models.RoleAdmin)
	ctx := authed(fake, admin)

	svc, err := catalog.Create(ctx, models.CreateServiceRequest{Name: "Corte", Price: 15000, Duration: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !svc.IsActive {
		t.Fatal("new service should be active")
	}
	off, err := catalog.ToggleActive(ctx, svc.ID, svc.IsActive)
	if err != nil || off.IsActive {
		t.Fatalf("expected inactive, got %+v %v", off, err)
	}
	active, err := catalog.Active(ctx)
	if err != nil || len(active) != 0 {
		t.Fatalf("inactive service listed as active: %+v %v", active, err)
	}
	on, err := catalog.ToggleActive(ctx, svc.ID, off.IsActive)
	if err != nil || !on.IsActive {
		t.Fatalf("expected active again, got %+v %v", on, err)
	}
}

func TestCreateServiceValidatesLocally(t *testing.T) {
	fake, api := newFake(t)
	catalog := NewCatalogService(api)
	admin := seedUser(fake, "admin@salon.test", models.RoleAdmin)

	_, err := catalog.Create(authed(fake, admin), models.CreateServiceRequest{Name: "", Duration: 0})
	if !apiclient.IsKind(err, apiclient.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := fake.Calls(http.MethodPost, "/services"); n != 0 {
		t.Fatalf("invalid payload reached the API %d times", n)
	}
}

func TestDuplicateServiceNameIsConflict(t *testing.T) {
	fake, api := newFake(t)
	catalog := NewCatalogService(api)
	admin := seedUser(fake, "admin@salon.test", models.RoleAdmin)
	ctx := authed(fake, admin)
	in := models.CreateServiceRequest{Name: "Tinte", Price: 40000, Duration: 90}

	if _, err := catalog.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := catalog.Create(ctx, in)
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != apiclient.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}
