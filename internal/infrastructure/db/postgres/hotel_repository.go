package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	m := toHotelModel(h)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert hotel: %w", err)
	}
	return m.toDomain(), nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uint) (*domain.Hotel, error) {
	var m hotelModel
	err := r.db.WithContext(ctx).Preload("Rooms").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	return m.toDomain(), nil
}

func (r *HotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	var models []hotelModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	hotels := make([]*domain.Hotel, 0, len(models))
	for i := range models {
		hotels = append(hotels, models[i].toDomain())
	}
	return hotels, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	res := r.db.WithContext(ctx).Model(&hotelModel{ID: m.ID}).
		Select("Name", "Address", "City", "Country", "Phone", "Email", "Rating").
		Updates(m)
	if res.Error != nil {
		return fmt.Errorf("update hotel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

// Delete removes the hotel; the rooms FK cascades.
func (r *HotelRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&hotelModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete hotel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrHotelNotFound
	}
	return nil
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (*domain.Room, error) {
	var m roomModel
	err := r.db.WithContext(ctx).Preload("Hotel").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID uint) ([]*domain.Room, error) {
	var models []roomModel
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("room_number").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	rooms := make([]*domain.Room, 0, len(models))
	for i := range models {
		rooms = append(rooms, models[i].toDomain())
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	res := r.db.WithContext(ctx).Model(&roomModel{ID: m.ID}).
		Select("RoomNumber", "RoomType", "Description", "Capacity",
			"PricePerNight", "IsAvailable").
		Updates(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("update room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// Search applies the static filters over rooms flagged available for booking.
func (r *RoomRepository) Search(ctx context.Context, filter ports.RoomSearchFilter) ([]*domain.Room, error) {
	q := r.db.WithContext(ctx).Preload("Hotel").Where("is_available = ?", true)
	if filter.HotelID != 0 {
		q = q.Where("hotel_id = ?", filter.HotelID)
	}
	if filter.RoomType != "" {
		q = q.Where("room_type = ?", filter.RoomType)
	}
	if filter.Guests > 0 {
		q = q.Where("capacity >= ?", filter.Guests)
	}

	var models []roomModel
	if err := q.Order("price_per_night").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}
	rooms := make([]*domain.Room, 0, len(models))
	for i := range models {
		rooms = append(rooms, models[i].toDomain())
	}
	return rooms, nil
}
