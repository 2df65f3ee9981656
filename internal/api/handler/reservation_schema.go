package handler

import (
	"fmt"
	"time"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

const dateLayout = "2006-01-02"

// parseDate accepts a plain date or a full RFC 3339 timestamp and normalises
// it to midnight UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

type createReservationRequest struct {
	GuestName       string `json:"guestName"       validate:"required,max=100"`
	GuestEmail      string `json:"guestEmail"      validate:"required,email"`
	GuestPhone      string `json:"guestPhone"      validate:"required,max=20"`
	RoomID          uint   `json:"roomId"          validate:"required"`
	CheckInDate     string `json:"checkInDate"     validate:"required"`
	CheckOutDate    string `json:"checkOutDate"    validate:"required"`
	NumberOfGuests  int    `json:"numberOfGuests"  validate:"gte=0"`
	SpecialRequests string `json:"specialRequests" validate:"max=500"`
	// UserID attaches a guest booking to an account; ignored when the
	// request carries a valid bearer token.
	UserID *uint `json:"userId,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type reservationResponse struct {
	ID              uint       `json:"id"`
	GuestName       string     `json:"guestName"`
	GuestEmail      string     `json:"guestEmail"`
	GuestPhone      string     `json:"guestPhone"`
	RoomID          uint       `json:"roomId"`
	RoomNumber      string     `json:"roomNumber,omitempty"`
	RoomType        string     `json:"roomType,omitempty"`
	HotelID         uint       `json:"hotelId,omitempty"`
	HotelName       string     `json:"hotelName,omitempty"`
	CheckInDate     string     `json:"checkInDate"`
	CheckOutDate    string     `json:"checkOutDate"`
	NumberOfGuests  int        `json:"numberOfGuests"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	TotalPrice      float64    `json:"totalPrice"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	CreatedAt       time.Time  `json:"createdAt"`
	UserID          *uint      `json:"userId,omitempty"`
	UserName        string     `json:"userName,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type roomResponse struct {
	ID            uint    `json:"id"`
	HotelID       uint    `json:"hotelId"`
	HotelName     string  `json:"hotelName,omitempty"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	Description   string  `json:"description,omitempty"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"pricePerNight"`
	IsAvailable   bool    `json:"isAvailable"`
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	name := r.UserName
	if r.UserID == nil {
		name = "Guest"
	}
	return reservationResponse{
		ID:              r.ID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		RoomID:          r.RoomID,
		RoomNumber:      r.RoomNumber,
		RoomType:        r.RoomType,
		HotelID:         r.HotelID,
		HotelName:       r.HotelName,
		CheckInDate:     r.CheckInDate.Format(dateLayout),
		CheckOutDate:    r.CheckOutDate.Format(dateLayout),
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
		TotalPrice:      r.TotalPrice,
		Status:          string(r.Status),
		PaymentStatus:   string(r.PaymentStatus),
		CreatedAt:       r.CreatedAt,
		UserID:          r.UserID,
		UserName:        name,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toReservationResponses(rs []*domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationResponse(r))
	}
	return out
}

func toRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		HotelName:     r.HotelName,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		Description:   r.Description,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		IsAvailable:   r.IsAvailable,
	}
}

func toRoomResponses(rs []*domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRoomResponse(r))
	}
	return out
}
