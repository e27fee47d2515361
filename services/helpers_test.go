package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"salonpro-web/apiclient"
	"salonpro-web/internal/fakeapi"
	"salonpro-web/models"
)

const testSecret = "0123456789abcdef-test"

func newFake(t *testing.T) (*fakeapi.Server, *apiclient.Client) {
	t.Helper()
	fake := fakeapi.New()
	srv := fake.Start()
	t.Cleanup(srv.Close)
	api, err := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 5 * time.Second, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("api client: %v", err)
	}
	return fake, api
}

func newSealer(t *testing.T) *TokenSealer {
	t.Helper()
	s, err := NewTokenSealer(testSecret)
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}
	return s
}

func seedUser(fake *fakeapi.Server, email string, role models.Role) models.User {
	return fake.AddUser(models.User{
		Email: email, FirstName: "Ana", LastName: "Pérez", Role: role,
		IsActive: true, EmailVerified: true,
	}, "secreto123")
}

func authed(fake *fakeapi.Server, u models.User) context.Context {
	return apiclient.WithToken(context.Background(), fake.TokenFor(u.ID, time.Hour))
}
