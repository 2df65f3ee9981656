package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

const recentReservationsLimit = 10

// ReservationService implements the booking use cases: availability checks,
// creation, status transitions, payment updates and the available-room search.
type ReservationService struct {
	reservations ports.ReservationRepository
	rooms        ports.RoomRepository
	audit        ports.ReservationAuditLog
	log          zerolog.Logger
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewReservationService(
	reservations ports.ReservationRepository,
	rooms ports.RoomRepository,
	audit ports.ReservationAuditLog,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		audit:        audit,
		log:          log,
		now:          time.Now,
	}
}

// today returns midnight of the current day in UTC, the floor for new check-ins.
func (s *ReservationService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckAvailability evaluates the full creation-time predicate and computes
// the price. The overlap rule uses half-open [checkIn, checkOut) semantics:
// a reservation ending on checkIn does not conflict.
func (s *ReservationService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*ports.Availability, error) {
	if !checkIn.Before(checkOut) {
		return nil, domain.ErrInvalidDateRange
	}
	if checkIn.Before(s.today()) {
		return nil, domain.ErrPastCheckIn
	}

	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		if err == domain.ErrRoomNotFound {
			return nil, domain.ErrRoomUnavailable
		}
		return nil, err
	}
	if !room.IsAvailable {
		return nil, domain.ErrRoomUnavailable
	}

	overlap, err := s.reservations.HasOverlap(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrDateConflict
	}

	nights := domain.Nights(checkIn, checkOut)
	return &ports.Availability{
		Nights:     nights,
		TotalPrice: room.PricePerNight * float64(nights),
	}, nil
}

// Create books the room. The in-memory availability check is advisory; the
// repository re-evaluates the overlap while holding a per-room lock, so two
// concurrent overlapping requests cannot both succeed.
func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	avail, err := s.CheckAvailability(ctx, in.RoomID, in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	guests := in.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	reservation := &domain.Reservation{
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		GuestPhone:      in.GuestPhone,
		RoomID:          in.RoomID,
		UserID:          in.UserID,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
		NumberOfGuests:  guests,
		SpecialRequests: in.SpecialRequests,
		TotalPrice:      avail.TotalPrice,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentPending,
		CreatedAt:       s.now().UTC(),
	}

	created, err := s.reservations.CreateIfAvailable(ctx, reservation)
	if err != nil {
		if err != domain.ErrDateConflict {
			s.log.Error().Err(err).Uint("room_id", in.RoomID).Msg("failed to create reservation")
		}
		return nil, err
	}

	s.log.Info().
		Uint("reservation_id", created.ID).
		Uint("room_id", created.RoomID).
		Float64("total_price", created.TotalPrice).
		Msg("reservation created")

	return created, nil
}

// Get returns the reservation if the requester owns it or is an admin.
func (s *ReservationService) Get(ctx context.Context, id uint, requesterID uint, requesterRole string) (*domain.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(requesterID, requesterRole, reservation.UserID) {
		return nil, domain.ErrForbidden
	}
	return reservation, nil
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID uint) ([]*domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// UpdateStatus moves a reservation through the state machine. Unknown values
// are rejected before the transition graph is consulted. Only the owner or an
// admin may update.
func (s *ReservationService) UpdateStatus(ctx context.Context, in ports.UpdateStatusInput) error {
	if !domain.ValidStatus(in.Status) {
		return domain.ErrInvalidStatus
	}

	reservation, err := s.reservations.FindByID(ctx, in.ReservationID)
	if err != nil {
		return err
	}
	if !domain.CanAccess(in.RequesterID, in.RequesterRole, reservation.UserID) {
		return domain.ErrForbidden
	}
	if !reservation.Status.CanTransitionTo(in.Status) {
		return domain.ErrInvalidTransition
	}

	if err := s.reservations.UpdateStatus(ctx, in.ReservationID, in.Status); err != nil {
		return err
	}

	s.recordAudit(ctx, ports.AuditEntry{
		ReservationID: in.ReservationID,
		Field:         "status",
		From:          string(reservation.Status),
		To:            string(in.Status),
		ActorID:       in.RequesterID,
		ActorRole:     in.RequesterRole,
		Timestamp:     s.now().UTC(),
	})

	s.log.Info().
		Uint("reservation_id", in.ReservationID).
		Str("from", string(reservation.Status)).
		Str("to", string(in.Status)).
		Msg("reservation status updated")

	return nil
}

// UpdatePaymentStatus is restricted to admins. Payment states have no
// enforced ordering.
func (s *ReservationService) UpdatePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus, requesterRole string) error {
	if requesterRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if !domain.ValidPaymentStatus(status) {
		return domain.ErrInvalidPaymentStatus
	}

	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reservations.UpdatePaymentStatus(ctx, id, status); err != nil {
		return err
	}

	s.recordAudit(ctx, ports.AuditEntry{
		ReservationID: id,
		Field:         "payment_status",
		From:          string(reservation.PaymentStatus),
		To:            string(status),
		ActorRole:     requesterRole,
		Timestamp:     s.now().UTC(),
	})

	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.reservations.FindByID(ctx, id); err != nil {
		return err
	}
	return s.reservations.Delete(ctx, id)
}

// SearchAvailableRooms lists enabled rooms matching the filters that have no
// overlapping non-Cancelled reservation in the range. Unlike creation, past
// ranges are not rejected here as long as the range itself is valid; the
// endpoint serves planning queries.
func (s *ReservationService) SearchAvailableRooms(ctx context.Context, in ports.SearchRoomsInput) ([]*domain.Room, error) {
	checkIn, checkOut := in.CheckIn, in.CheckOut
	if checkIn.IsZero() {
		checkIn = s.today().AddDate(0, 0, 1)
	}
	if checkOut.IsZero() {
		checkOut = s.today().AddDate(0, 0, 2)
	}
	if !checkIn.Before(checkOut) {
		return nil, domain.ErrInvalidDateRange
	}

	rooms, err := s.rooms.Search(ctx, ports.RoomSearchFilter{
		HotelID:  in.HotelID,
		RoomType: in.RoomType,
		Guests:   in.Guests,
	})
	if err != nil {
		return nil, err
	}

	booked, err := s.reservations.OverlappingRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	available := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, conflict := booked[room.ID]; !conflict {
			available = append(available, room)
		}
	}
	return available, nil
}

// recordAudit appends to the trail; failures are logged, never fatal.
func (s *ReservationService) recordAudit(ctx context.Context, entry ports.AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.log.Warn().Err(err).Uint("reservation_id", entry.ReservationID).Msg("failed to record audit entry")
	}
}
