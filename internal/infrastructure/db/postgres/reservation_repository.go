package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// advisoryLockClass namespaces the per-room booking locks so they cannot
// collide with other advisory lock users in the same database.
const advisoryLockClass = 4217

// CreateIfAvailable inserts the reservation inside a transaction that holds
// a per-room advisory lock. The overlap check rerun under the lock closes
// the race where two overlapping requests both pass the service-level check.
func (r *ReservationRepository) CreateIfAvailable(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	m := toReservationModel(res)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", advisoryLockClass, int64(m.RoomID)).Error; err != nil {
			return fmt.Errorf("acquire room lock: %w", err)
		}

		var count int64
		err := tx.Model(&reservationModel{}).
			Where("room_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
				m.RoomID, string(domain.StatusCancelled), m.CheckOutDate, m.CheckInDate).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("recheck overlap: %w", err)
		}
		if count > 0 {
			return domain.ErrDateConflict
		}

		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, m.ID)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	var m reservationModel
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Room.Hotel").Preload("User").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	var models []reservationModel
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Room.Hotel").Preload("User").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return toDomainReservations(models), nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Reservation, error) {
	var models []reservationModel
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Room.Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	return toDomainReservations(models), nil
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("room_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
			roomID, string(domain.StatusCancelled), checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count overlapping reservations: %w", err)
	}
	return count > 0, nil
}

func (r *ReservationRepository) OverlappingRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[uint]struct{}, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Distinct("room_id").
		Where("status <> ? AND check_in_date < ? AND check_out_date > ?",
			string(domain.StatusCancelled), checkOut, checkIn).
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("collect overlapping room ids: %w", err)
	}
	booked := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		booked[id] = struct{}{}
	}
	return booked, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uint, status domain.ReservationStatus) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("update reservation status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, id uint, status domain.PaymentStatus) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"payment_status": string(status), "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&reservationModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete reservation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func toDomainReservations(models []reservationModel) []*domain.Reservation {
	out := make([]*domain.Reservation, 0, len(models))
	for i := range models {
		out = append(out, models[i].toDomain())
	}
	return out
}
