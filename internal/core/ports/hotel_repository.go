package ports

import (
	"context"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// HotelRepository defines persistence operations for hotels.
type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error)
	FindByID(ctx context.Context, id uint) (*domain.Hotel, error)
	List(ctx context.Context) ([]*domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	// Delete removes the hotel and cascades to its rooms.
	Delete(ctx context.Context, id uint) error
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id uint) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID uint) ([]*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, id uint) error
	// Search returns rooms matching the static filters, isAvailable only.
	Search(ctx context.Context, filter RoomSearchFilter) ([]*domain.Room, error)
}

// RoomSearchFilter carries the static (non-date) room search criteria.
// Zero values mean "no filter".
type RoomSearchFilter struct {
	HotelID  uint
	RoomType string
	Guests   int
}
