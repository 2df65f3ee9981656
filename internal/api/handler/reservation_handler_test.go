package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

type stubReservationService struct {
	checkFn         func(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*ports.Availability, error)
	createFn        func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error)
	getFn           func(ctx context.Context, id, requesterID uint, requesterRole string) (*domain.Reservation, error)
	listFn          func(ctx context.Context) ([]*domain.Reservation, error)
	listByUserFn    func(ctx context.Context, userID uint) ([]*domain.Reservation, error)
	updateStatusFn  func(ctx context.Context, in ports.UpdateStatusInput) error
	updatePaymentFn func(ctx context.Context, id uint, status domain.PaymentStatus, role string) error
	deleteFn        func(ctx context.Context, id uint) error
	searchFn        func(ctx context.Context, in ports.SearchRoomsInput) ([]*domain.Room, error)
}

func (s *stubReservationService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*ports.Availability, error) {
	return s.checkFn(ctx, roomID, checkIn, checkOut)
}

func (s *stubReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	return s.createFn(ctx, in)
}

func (s *stubReservationService) Get(ctx context.Context, id, requesterID uint, requesterRole string) (*domain.Reservation, error) {
	return s.getFn(ctx, id, requesterID, requesterRole)
}

func (s *stubReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.listFn(ctx)
}

func (s *stubReservationService) ListByUser(ctx context.Context, userID uint) ([]*domain.Reservation, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubReservationService) UpdateStatus(ctx context.Context, in ports.UpdateStatusInput) error {
	return s.updateStatusFn(ctx, in)
}

func (s *stubReservationService) UpdatePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus, role string) error {
	return s.updatePaymentFn(ctx, id, status, role)
}

func (s *stubReservationService) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubReservationService) SearchAvailableRooms(ctx context.Context, in ports.SearchRoomsInput) ([]*domain.Room, error) {
	return s.searchFn(ctx, in)
}

const createBody = `{
	"guestName": "John Doe",
	"guestEmail": "john@example.com",
	"guestPhone": "+1 555 0100",
	"roomId": 3,
	"checkInDate": "2024-06-10",
	"checkOutDate": "2024-06-12",
	"numberOfGuests": 2
}`

func TestReservationHandler_Create_Guest(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(_ context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
			if in.UserID != nil {
				t.Fatalf("guest booking must have no user id, got %v", *in.UserID)
			}
			if !in.CheckInDate.Equal(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("check-in not parsed to midnight UTC: %v", in.CheckInDate)
			}
			return &domain.Reservation{
				ID:           1,
				GuestName:    in.GuestName,
				RoomID:       in.RoomID,
				CheckInDate:  in.CheckInDate,
				CheckOutDate: in.CheckOutDate,
				TotalPrice:   240,
				Status:       domain.StatusConfirmed,
			}, nil
		},
	}
	handler := NewReservationHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/reservations", createBody)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["userName"] != "Guest" {
		t.Fatalf("guest bookings must render as Guest, got %v", resp["userName"])
	}
	if resp["totalPrice"] != float64(240) {
		t.Fatalf("unexpected total: %v", resp["totalPrice"])
	}
}

// A valid token overrides whatever userId the body claims.
func TestReservationHandler_Create_TokenOverridesBodyUser(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(_ context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
			if in.UserID == nil || *in.UserID != 7 {
				t.Fatalf("expected authenticated user 7, got %v", in.UserID)
			}
			return &domain.Reservation{ID: 1, UserID: in.UserID}, nil
		},
	}
	handler := NewReservationHandler(stub)

	body := `{
		"guestName": "John Doe",
		"guestEmail": "john@example.com",
		"guestPhone": "+1 555 0100",
		"roomId": 3,
		"checkInDate": "2024-06-10",
		"checkOutDate": "2024-06-12",
		"userId": 999
	}`
	c, rec := jsonContext(e, http.MethodPost, "/api/reservations", body)
	authenticate(c, 7, domain.RoleUser)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestReservationHandler_Create_BadDates(t *testing.T) {
	e := newTestEcho()
	handler := NewReservationHandler(&stubReservationService{})

	body := `{
		"guestName": "John Doe",
		"guestEmail": "john@example.com",
		"guestPhone": "+1 555 0100",
		"roomId": 3,
		"checkInDate": "next tuesday",
		"checkOutDate": "2024-06-12"
	}`
	c, _ := jsonContext(e, http.MethodPost, "/api/reservations", body)
	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unparseable date, got %v", err)
	}
}

func TestReservationHandler_Create_ConflictPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		createFn: func(_ context.Context, _ ports.CreateReservationInput) (*domain.Reservation, error) {
			return nil, domain.ErrDateConflict
		},
	}
	handler := NewReservationHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/reservations", createBody)
	if err := handler.Create(c); err != domain.ErrDateConflict {
		t.Fatalf("expected ErrDateConflict to propagate, got %v", err)
	}
}

func TestReservationHandler_UpdateStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		updateStatusFn: func(_ context.Context, in ports.UpdateStatusInput) error {
			if in.ReservationID != 5 || in.Status != domain.StatusCheckedIn {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.RequesterID != 7 || in.RequesterRole != domain.RoleUser {
				t.Fatalf("requester not threaded through: %+v", in)
			}
			return nil
		},
	}
	handler := NewReservationHandler(stub)

	c, rec := jsonContext(e, http.MethodPut, "/api/reservations/5/status", `{"status":"CheckedIn"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	authenticate(c, 7, domain.RoleUser)

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReservationHandler_UpdatePayment(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		updatePaymentFn: func(_ context.Context, id uint, status domain.PaymentStatus, role string) error {
			if id != 5 || status != domain.PaymentPaid || role != domain.RoleAdmin {
				t.Fatalf("unexpected input: %d %s %s", id, status, role)
			}
			return nil
		},
	}
	handler := NewReservationHandler(stub)

	c, rec := jsonContext(e, http.MethodPut, "/api/reservations/5/payment", `"Paid"`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	authenticate(c, 1, domain.RoleAdmin)

	if err := handler.UpdatePayment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReservationHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		deleteFn: func(_ context.Context, id uint) error {
			if id != 5 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	handler := NewReservationHandler(stub)

	c, rec := jsonContext(e, http.MethodDelete, "/api/reservations/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestReservationHandler_AvailableRooms(t *testing.T) {
	e := newTestEcho()
	stub := &stubReservationService{
		searchFn: func(_ context.Context, in ports.SearchRoomsInput) ([]*domain.Room, error) {
			if in.Guests != 2 || in.RoomType != "Double" || in.HotelID != 1 {
				t.Fatalf("filters not threaded through: %+v", in)
			}
			if !in.CheckIn.Equal(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected check-in: %v", in.CheckIn)
			}
			return []*domain.Room{{ID: 9, RoomNumber: "101", RoomType: "Double", PricePerNight: 120, IsAvailable: true}}, nil
		},
	}
	handler := NewReservationHandler(stub)

	c, rec := jsonContext(e, http.MethodGet,
		"/api/reservations/available-rooms?checkIn=2024-06-10&checkOut=2024-06-12&guests=2&roomType=Double&hotelId=1", "")

	if err := handler.AvailableRooms(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rooms []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rooms) != 1 || rooms[0]["roomNumber"] != "101" {
		t.Fatalf("unexpected payload: %+v", rooms)
	}
}

func TestReservationHandler_AvailableRooms_BadQuery(t *testing.T) {
	e := newTestEcho()
	handler := NewReservationHandler(&stubReservationService{})

	for _, query := range []string{"?guests=0", "?guests=abc", "?hotelId=abc", "?checkIn=garbage"} {
		c, _ := jsonContext(e, http.MethodGet, "/api/reservations/available-rooms"+query, "")
		err := handler.AvailableRooms(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %v", query, err)
		}
	}
}
