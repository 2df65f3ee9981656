package api

import (
	"io"
	"net/http"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/hotelhub/booking-system/internal/pkg/config"
	"github.com/hotelhub/booking-system/pkg/logger"
)

// newTestRouter wires the router against a dry-run database. Mongo and
// Redis handles stay nil; nothing in route registration touches them.
func newTestRouter(t *testing.T) routeSet {
	t.Helper()
	logger.Init(logger.Options{Output: io.Discard})

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:   "test-secret",
			Issuer:   "hotelhub-booking-api",
			Audience: "hotelhub-clients",
		},
	}

	e := NewRouter(cfg, db, nil, nil)

	routes := routeSet{}
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

type routeSet map[string]bool

func TestRouter_RouteTable(t *testing.T) {
	routes := newTestRouter(t)

	want := []string{
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodPut + " /api/auth/change-password",
		http.MethodGet + " /api/auth/profile",
		http.MethodGet + " /api/auth/my-reservations",
		http.MethodPost + " /api/reservations",
		http.MethodGet + " /api/reservations/available-rooms",
		http.MethodPut + " /api/reservations/:id/status",
		http.MethodPut + " /api/reservations/:id/payment",
		http.MethodPost + " /api/hotels/:id/rooms",
		http.MethodPut + " /api/admin/users/:id/role",
		http.MethodGet + " /health",
		http.MethodGet + " /health/ready",
		http.MethodGet + " /metrics",
	}
	for _, route := range want {
		if !routes[route] {
			t.Errorf("route %q not registered", route)
		}
	}

	// Change-password is a PUT, matching its documented contract.
	if routes[http.MethodPost+" /api/auth/change-password"] {
		t.Error("change-password must not accept POST")
	}
}
