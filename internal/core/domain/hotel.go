package domain

import (
	"errors"
	"time"
)

var ErrHotelNotFound = errors.New("hotel not found")
var ErrRoomNotFound = errors.New("room not found")
var ErrRoomExists = errors.New("room number already exists in hotel")

// Hotel owns a collection of rooms. Deleting a hotel cascades to its rooms.
type Hotel struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	Rooms     []Room    `json:"rooms,omitempty"`
}

// Room belongs to exactly one hotel.
type Room struct {
	ID            uint      `json:"id"`
	HotelID       uint      `json:"hotel_id"`
	HotelName     string    `json:"hotel_name,omitempty"`
	RoomNumber    string    `json:"room_number"`
	RoomType      string    `json:"room_type"`
	Description   string    `json:"description"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"price_per_night"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}
