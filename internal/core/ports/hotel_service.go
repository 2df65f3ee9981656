package ports

import (
	"context"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// HotelInput carries hotel create/update fields.
type HotelInput struct {
	Name    string
	Address string
	City    string
	Country string
	Phone   string
	Email   string
	Rating  float64
}

// RoomInput carries room create/update fields.
type RoomInput struct {
	RoomNumber    string
	RoomType      string
	Description   string
	Capacity      int
	PricePerNight float64
	IsAvailable   bool
}

// HotelService defines the hotel and room management use cases.
type HotelService interface {
	CreateHotel(ctx context.Context, in HotelInput) (*domain.Hotel, error)
	GetHotel(ctx context.Context, id uint) (*domain.Hotel, error)
	ListHotels(ctx context.Context) ([]*domain.Hotel, error)
	UpdateHotel(ctx context.Context, id uint, in HotelInput) (*domain.Hotel, error)
	DeleteHotel(ctx context.Context, id uint) error

	CreateRoom(ctx context.Context, hotelID uint, in RoomInput) (*domain.Room, error)
	GetRoom(ctx context.Context, id uint) (*domain.Room, error)
	ListRooms(ctx context.Context, hotelID uint) ([]*domain.Room, error)
	UpdateRoom(ctx context.Context, id uint, in RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
}
