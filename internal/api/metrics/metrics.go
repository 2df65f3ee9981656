// Package metrics defines and registers all custom Prometheus metrics for the
// hotel booking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ReservationsCreatedTotal counts successfully created reservations.
// Label:
//   - room_type: the booked room's type (e.g. "Double", "Suite")
var ReservationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations successfully created.",
	},
	[]string{"room_type"},
)

// BookingRejectionsTotal counts reservation creations rejected by the
// availability engine.
// Label:
//   - reason: "invalid_range", "past_date", "room_unavailable", "date_conflict"
var BookingRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_rejections_total",
		Help:      "Total number of reservation requests rejected, by reason.",
	},
	[]string{"reason"},
)

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - operation: "register", "login", "change_password"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication operations, by result.",
	},
	[]string{"operation", "result"},
)

// RoomSearchDuration measures the end-to-end duration of available-room searches.
var RoomSearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "room_search_duration_seconds",
		Help:      "Duration of available-room search requests.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ReservationStatusUpdatesTotal counts state-machine transitions applied.
// Label:
//   - status: the new reservation status
var ReservationStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_status_updates_total",
		Help:      "Total number of reservation status transitions applied.",
	},
	[]string{"status"},
)
