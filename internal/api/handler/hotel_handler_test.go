package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

type stubHotelService struct {
	createHotelFn func(ctx context.Context, in ports.HotelInput) (*domain.Hotel, error)
	getHotelFn    func(ctx context.Context, id uint) (*domain.Hotel, error)
	listHotelsFn  func(ctx context.Context) ([]*domain.Hotel, error)
	updateHotelFn func(ctx context.Context, id uint, in ports.HotelInput) (*domain.Hotel, error)
	deleteHotelFn func(ctx context.Context, id uint) error
	createRoomFn  func(ctx context.Context, hotelID uint, in ports.RoomInput) (*domain.Room, error)
	getRoomFn     func(ctx context.Context, id uint) (*domain.Room, error)
	listRoomsFn   func(ctx context.Context, hotelID uint) ([]*domain.Room, error)
	updateRoomFn  func(ctx context.Context, id uint, in ports.RoomInput) (*domain.Room, error)
	deleteRoomFn  func(ctx context.Context, id uint) error
}

func (s *stubHotelService) CreateHotel(ctx context.Context, in ports.HotelInput) (*domain.Hotel, error) {
	return s.createHotelFn(ctx, in)
}

func (s *stubHotelService) GetHotel(ctx context.Context, id uint) (*domain.Hotel, error) {
	return s.getHotelFn(ctx, id)
}

func (s *stubHotelService) ListHotels(ctx context.Context) ([]*domain.Hotel, error) {
	return s.listHotelsFn(ctx)
}

func (s *stubHotelService) UpdateHotel(ctx context.Context, id uint, in ports.HotelInput) (*domain.Hotel, error) {
	return s.updateHotelFn(ctx, id, in)
}

func (s *stubHotelService) DeleteHotel(ctx context.Context, id uint) error {
	return s.deleteHotelFn(ctx, id)
}

func (s *stubHotelService) CreateRoom(ctx context.Context, hotelID uint, in ports.RoomInput) (*domain.Room, error) {
	return s.createRoomFn(ctx, hotelID, in)
}

func (s *stubHotelService) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	return s.getRoomFn(ctx, id)
}

func (s *stubHotelService) ListRooms(ctx context.Context, hotelID uint) ([]*domain.Room, error) {
	return s.listRoomsFn(ctx, hotelID)
}

func (s *stubHotelService) UpdateRoom(ctx context.Context, id uint, in ports.RoomInput) (*domain.Room, error) {
	return s.updateRoomFn(ctx, id, in)
}

func (s *stubHotelService) DeleteRoom(ctx context.Context, id uint) error {
	return s.deleteRoomFn(ctx, id)
}

func TestHotelHandler_CreateHotel(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		createHotelFn: func(_ context.Context, in ports.HotelInput) (*domain.Hotel, error) {
			if in.Name != "Grand Plaza Hotel" || in.City != "Amsterdam" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Hotel{ID: 1, Name: in.Name, City: in.City, Rating: in.Rating}, nil
		},
	}
	handler := NewHotelHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/hotels",
		`{"name":"Grand Plaza Hotel","city":"Amsterdam","country":"Netherlands","rating":4.5}`)

	if err := handler.CreateHotel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp hotelResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || resp.Name != "Grand Plaza Hotel" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHotelHandler_CreateHotel_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	handler := NewHotelHandler(&stubHotelService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"city":"Amsterdam"}`},
		{"rating out of range", `{"name":"Plaza","rating":9}`},
		{"bad email", `{"name":"Plaza","email":"not-an-email"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := jsonContext(e, http.MethodPost, "/api/hotels", tc.body)
			err := handler.CreateHotel(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("err = %v, want 400 HTTPError", err)
			}
		})
	}
}

func TestHotelHandler_GetHotel_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewHotelHandler(&stubHotelService{})

	c, _ := jsonContext(e, http.MethodGet, "/api/hotels/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.GetHotel(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestHotelHandler_GetHotel_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		getHotelFn: func(_ context.Context, id uint) (*domain.Hotel, error) {
			return nil, domain.ErrHotelNotFound
		},
	}
	handler := NewHotelHandler(stub)

	c, _ := jsonContext(e, http.MethodGet, "/api/hotels/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.GetHotel(c); !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("err = %v, want ErrHotelNotFound", err)
	}
}

func TestHotelHandler_CreateRoom(t *testing.T) {
	e := newTestEcho()
	stub := &stubHotelService{
		createRoomFn: func(_ context.Context, hotelID uint, in ports.RoomInput) (*domain.Room, error) {
			if hotelID != 3 {
				t.Fatalf("hotelID = %d, want 3", hotelID)
			}
			return &domain.Room{ID: 10, HotelID: hotelID, RoomNumber: in.RoomNumber, RoomType: in.RoomType, Capacity: in.Capacity, PricePerNight: in.PricePerNight, IsAvailable: in.IsAvailable}, nil
		},
	}
	handler := NewHotelHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/hotels/3/rooms",
		`{"roomNumber":"101","roomType":"Double","capacity":2,"pricePerNight":129,"isAvailable":true}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.CreateRoom(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp roomResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.HotelID != 3 || resp.RoomNumber != "101" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHotelHandler_DeleteHotel(t *testing.T) {
	e := newTestEcho()
	var deleted uint
	stub := &stubHotelService{
		deleteHotelFn: func(_ context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	handler := NewHotelHandler(stub)

	c, rec := jsonContext(e, http.MethodDelete, "/api/hotels/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.DeleteHotel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if deleted != 7 {
		t.Fatalf("deleted id = %d, want 7", deleted)
	}
}
