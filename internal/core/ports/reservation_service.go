package ports

import (
	"context"
	"time"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// CreateReservationInput carries all data needed to book a room.
// Requester fields are zero for unauthenticated guest bookings.
type CreateReservationInput struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	RoomID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests string
	// UserID from the request body; overridden by the authenticated subject
	// when a valid token is present.
	UserID *uint
}

// Availability is the result of an availability check.
type Availability struct {
	Nights     int
	TotalPrice float64
}

// UpdateStatusInput identifies the reservation, the target status and the requester.
type UpdateStatusInput struct {
	ReservationID uint
	Status        domain.ReservationStatus
	RequesterID   uint
	RequesterRole string
}

// SearchRoomsInput carries the available-rooms query. Omitted dates default
// to tomorrow / the day after.
type SearchRoomsInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	RoomType string
	HotelID  uint
}

// ReservationService defines the booking use cases.
type ReservationService interface {
	// CheckAvailability applies the full creation-time predicate: valid range,
	// no past check-in, room exists and is enabled, no overlapping
	// non-Cancelled reservation. On success it returns the computed price.
	CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*Availability, error)
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	// Get enforces the ownership gate: owner or admin.
	Get(ctx context.Context, id uint, requesterID uint, requesterRole string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, in UpdateStatusInput) error
	// UpdatePaymentStatus is admin-only; the handler enforces the role, the
	// service revalidates.
	UpdatePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus, requesterRole string) error
	Delete(ctx context.Context, id uint) error
	// SearchAvailableRooms has no "today" floor: any future range is valid
	// for planning queries.
	SearchAvailableRooms(ctx context.Context, in SearchRoomsInput) ([]*domain.Room, error)
}
