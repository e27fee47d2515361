package utils

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"salonpro-web/apiclient"
)

func TestValidatePhone(t *testing.T) {
	good := []string{"+57 300 123 4567", "(601) 555-1234", "3001234567"}
	bad := []string{"", "abc", "+0123456", "12345"}
	for _, p := range good {
		if !ValidatePhone(p) {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range bad {
		if ValidatePhone(p) {
			t.Errorf("%q should be invalid", p)
		}
	}
	if got := NormalizePhone(" +57 (300) 123-4567 "); got != "+573001234567" {
		t.Fatalf("unexpected normalized phone %q", got)
	}
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"2025-06-10": "Hoy",
		"2025-06-11": "Mañana",
		"2025-06-09": "Ayer",
		"2025-06-13": "En 3 días",
		"2025-07-01": "01/07/2025",
		"nope":       "nope",
	}
	for in, want := range cases {
		if got := RelativeDay(in, now); got != want {
			t.Errorf("%s: expected %q got %q", in, want, got)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&apiclient.Error{Kind: apiclient.KindConflict, Status: http.StatusConflict}, http.StatusConflict},
		{&apiclient.Error{Kind: apiclient.KindNetwork}, http.StatusBadGateway},
		{&apiclient.Error{Kind: apiclient.KindValidation}, http.StatusBadRequest},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("%v: expected %d got %d", tc.err, tc.want, got)
		}
	}
}
