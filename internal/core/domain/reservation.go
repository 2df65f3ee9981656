package domain

import (
	"errors"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "Confirmed"
	StatusCheckedIn  ReservationStatus = "CheckedIn"
	StatusCheckedOut ReservationStatus = "CheckedOut"
	StatusCompleted  ReservationStatus = "Completed"
	StatusCancelled  ReservationStatus = "Cancelled"
)

// PaymentStatus is independent of the reservation status and has no
// enforced ordering. Mutable by admins only.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

// validTransitions defines the allowed state machine transitions.
// Completed and Cancelled are terminal.
var validTransitions = map[ReservationStatus][]ReservationStatus{
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {StatusCompleted},
}

var ErrReservationNotFound = errors.New("reservation not found")
var ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
var ErrPastCheckIn = errors.New("check-in date cannot be in the past")
var ErrRoomUnavailable = errors.New("room is not available")
var ErrDateConflict = errors.New("room is already booked for these dates")
var ErrInvalidStatus = errors.New("invalid status")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidPaymentStatus = errors.New("invalid payment status")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to next is legal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a member of the fixed status set.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether p is a member of the fixed payment status set.
func ValidPaymentStatus(p PaymentStatus) bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Reservation books a room over a half-open [CheckInDate, CheckOutDate)
// interval. Guest contact details are always present, even when the booking
// belongs to an account; UserID is nil for guest bookings.
type Reservation struct {
	ID              uint              `json:"id"`
	GuestName       string            `json:"guest_name"`
	GuestEmail      string            `json:"guest_email"`
	GuestPhone      string            `json:"guest_phone"`
	RoomID          uint              `json:"room_id"`
	UserID          *uint             `json:"user_id,omitempty"`
	CheckInDate     time.Time         `json:"check_in_date"`
	CheckOutDate    time.Time         `json:"check_out_date"`
	NumberOfGuests  int               `json:"number_of_guests"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	TotalPrice      float64           `json:"total_price"`
	Status          ReservationStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`

	// Denormalized for read views.
	RoomNumber string `json:"room_number,omitempty"`
	RoomType   string `json:"room_type,omitempty"`
	HotelID    uint   `json:"hotel_id,omitempty"`
	HotelName  string `json:"hotel_name,omitempty"`
	UserName   string `json:"user_name,omitempty"`
}

// Overlaps reports whether the reservation's interval intersects
// [checkIn, checkOut) using half-open semantics: the checkout day is free
// for a new check-in.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckInDate.Before(checkOut) && r.CheckOutDate.After(checkIn)
}

// Nights returns the billable night count for a date range, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n <= 0 {
		n = 1
	}
	return n
}
