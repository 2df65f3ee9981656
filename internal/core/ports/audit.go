package ports

import (
	"context"
	"time"
)

// AuditEntry records a single reservation status or payment-status change.
type AuditEntry struct {
	ReservationID uint
	Field         string // "status" or "payment_status"
	From          string
	To            string
	ActorID       uint   // 0 for system/guest
	ActorRole     string
	Timestamp     time.Time
}

// ReservationAuditLog is an append-only trail of reservation mutations.
// Writes are best-effort: failures must not fail the business operation.
type ReservationAuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
	ListByReservation(ctx context.Context, reservationID uint) ([]AuditEntry, error)
}
