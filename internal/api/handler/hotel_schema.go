package handler

import (
	"time"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

type hotelRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Address string  `json:"address" validate:"max=200"`
	City    string  `json:"city"    validate:"max=100"`
	Country string  `json:"country" validate:"max=100"`
	Phone   string  `json:"phone"   validate:"max=20"`
	Email   string  `json:"email"   validate:"omitempty,email"`
	Rating  float64 `json:"rating"  validate:"gte=0,lte=5"`
}

type roomRequest struct {
	RoomNumber    string  `json:"roomNumber"    validate:"required,max=10"`
	RoomType      string  `json:"roomType"      validate:"required,max=50"`
	Description   string  `json:"description"   validate:"max=500"`
	Capacity      int     `json:"capacity"      validate:"required,gt=0"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gt=0"`
	IsAvailable   bool    `json:"isAvailable"`
}

type hotelResponse struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	City      string         `json:"city"`
	Country   string         `json:"country"`
	Phone     string         `json:"phone,omitempty"`
	Email     string         `json:"email,omitempty"`
	Rating    float64        `json:"rating"`
	CreatedAt time.Time      `json:"createdAt"`
	Rooms     []roomResponse `json:"rooms,omitempty"`
}

func toHotelResponse(h *domain.Hotel) hotelResponse {
	resp := hotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		City:      h.City,
		Country:   h.Country,
		Phone:     h.Phone,
		Email:     h.Email,
		Rating:    h.Rating,
		CreatedAt: h.CreatedAt,
	}
	for i := range h.Rooms {
		resp.Rooms = append(resp.Rooms, toRoomResponse(&h.Rooms[i]))
	}
	return resp
}

func toHotelResponses(hs []*domain.Hotel) []hotelResponse {
	out := make([]hotelResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, toHotelResponse(h))
	}
	return out
}
