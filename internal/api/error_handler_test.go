package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidDateRange, http.StatusBadRequest},
		{domain.ErrPastCheckIn, http.StatusBadRequest},
		{domain.ErrRoomUnavailable, http.StatusBadRequest},
		{domain.ErrDateConflict, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidTransition, http.StatusBadRequest},
		{domain.ErrInvalidPaymentStatus, http.StatusBadRequest},
		{domain.ErrUserExists, http.StatusBadRequest},
		{domain.ErrRoomExists, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrReservationNotFound, http.StatusNotFound},
		{domain.ErrHotelNotFound, http.StatusNotFound},
		{domain.ErrRoomNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatalf("expected error message in envelope")
			}
		})
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "authentication required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}

// Wrapped domain errors must still map to their status.
func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("while booking"), domain.ErrDateConflict)
	code, _ := renderError(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped conflict, got %d", code)
	}
}
