package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

// HotelService implements hotel and room management.
type HotelService struct {
	hotels ports.HotelRepository
	rooms  ports.RoomRepository
	log    zerolog.Logger
}

func NewHotelService(hotels ports.HotelRepository, rooms ports.RoomRepository, log zerolog.Logger) *HotelService {
	return &HotelService{hotels: hotels, rooms: rooms, log: log}
}

func (s *HotelService) CreateHotel(ctx context.Context, in ports.HotelInput) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Country:   in.Country,
		Phone:     in.Phone,
		Email:     in.Email,
		Rating:    in.Rating,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.hotels.Create(ctx, hotel)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("hotel_id", created.ID).Str("name", created.Name).Msg("hotel created")
	return created, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id uint) (*domain.Hotel, error) {
	return s.hotels.FindByID(ctx, id)
}

func (s *HotelService) ListHotels(ctx context.Context) ([]*domain.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *HotelService) UpdateHotel(ctx context.Context, id uint, in ports.HotelInput) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hotel.Name = in.Name
	hotel.Address = in.Address
	hotel.City = in.City
	hotel.Country = in.Country
	hotel.Phone = in.Phone
	hotel.Email = in.Email
	hotel.Rating = in.Rating
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// DeleteHotel removes the hotel and, through the cascade, all of its rooms.
func (s *HotelService) DeleteHotel(ctx context.Context, id uint) error {
	if _, err := s.hotels.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.hotels.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("hotel_id", id).Msg("hotel deleted")
	return nil
}

func (s *HotelService) CreateRoom(ctx context.Context, hotelID uint, in ports.RoomInput) (*domain.Room, error) {
	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		HotelID:       hotelID,
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		Description:   in.Description,
		Capacity:      in.Capacity,
		PricePerNight: in.PricePerNight,
		IsAvailable:   in.IsAvailable,
		CreatedAt:     time.Now().UTC(),
	}
	return s.rooms.Create(ctx, room)
}

func (s *HotelService) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *HotelService) ListRooms(ctx context.Context, hotelID uint) ([]*domain.Room, error) {
	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *HotelService) UpdateRoom(ctx context.Context, id uint, in ports.RoomInput) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.RoomNumber = in.RoomNumber
	room.RoomType = in.RoomType
	room.Description = in.Description
	room.Capacity = in.Capacity
	room.PricePerNight = in.PricePerNight
	room.IsAvailable = in.IsAvailable
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *HotelService) DeleteRoom(ctx context.Context, id uint) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}
