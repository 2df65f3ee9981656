package ports

import (
	"context"
	"time"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	// CreateIfAvailable inserts the reservation only if no non-Cancelled
	// reservation for the same room overlaps [CheckInDate, CheckOutDate).
	// The overlap check and the insert are serialized per room, so two
	// concurrent overlapping creates cannot both succeed; the loser gets
	// domain.ErrDateConflict.
	CreateIfAvailable(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	FindByID(ctx context.Context, id uint) (*domain.Reservation, error)
	// List returns all reservations, newest first, with room/hotel/user
	// fields denormalized.
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]*domain.Reservation, error)
	// HasOverlap reports whether any non-Cancelled reservation for roomID
	// overlaps [checkIn, checkOut).
	HasOverlap(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error)
	// OverlappingRoomIDs returns the ids of rooms that have at least one
	// non-Cancelled reservation overlapping [checkIn, checkOut).
	OverlappingRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[uint]struct{}, error)
	UpdateStatus(ctx context.Context, id uint, status domain.ReservationStatus) error
	UpdatePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error
	Delete(ctx context.Context, id uint) error
}

// DashboardStats is the admin dashboard rollup.
type DashboardStats struct {
	TotalHotels        int64
	TotalRooms         int64
	AvailableRooms     int64
	TotalReservations  int64
	ActiveReservations int64
	TotalUsers         int64
	TodayRevenue       float64
	MonthlyRevenue     float64
	TotalRevenue       float64
}

// MonthlyRevenue is one revenue-chart data point.
type MonthlyRevenue struct {
	Year    int
	Month   time.Month
	Revenue float64
}

// StatsRepository serves the read-only dashboard aggregations.
type StatsRepository interface {
	DashboardStats(ctx context.Context, now time.Time) (*DashboardStats, error)
	RecentReservations(ctx context.Context, limit int) ([]*domain.Reservation, error)
	RevenueByMonth(ctx context.Context, since time.Time) ([]MonthlyRevenue, error)
}
