package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

// StatsRepository serves the dashboard aggregations straight from SQL.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) DashboardStats(ctx context.Context, now time.Time) (*ports.DashboardStats, error) {
	stats := &ports.DashboardStats{}
	db := r.db.WithContext(ctx)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalHotels, db.Model(&hotelModel{})},
		{&stats.TotalRooms, db.Model(&roomModel{})},
		{&stats.AvailableRooms, db.Model(&roomModel{}).Where("is_available = ?", true)},
		{&stats.TotalReservations, db.Model(&reservationModel{})},
		{&stats.ActiveReservations, db.Model(&reservationModel{}).
			Where("status IN ?", []string{string(domain.StatusConfirmed), string(domain.StatusCheckedIn)})},
		{&stats.TotalUsers, db.Model(&userModel{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("dashboard counts: %w", err)
		}
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var err error
	if stats.TodayRevenue, err = r.revenueSince(ctx, today); err != nil {
		return nil, err
	}
	if stats.MonthlyRevenue, err = r.revenueSince(ctx, monthStart); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = r.revenueSince(ctx, time.Time{}); err != nil {
		return nil, err
	}

	return stats, nil
}

// paidRevenue narrows a reservation query to rows whose payment has been
// collected, optionally created at or after since. Revenue rollups count
// paid money only; unpaid and refunded bookings do not contribute.
func paidRevenue(since time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("payment_status = ?", string(domain.PaymentPaid))
		if !since.IsZero() {
			db = db.Where("created_at >= ?", since)
		}
		return db
	}
}

// revenueSince sums the price of paid reservations created at or after
// since. The zero time means all time.
func (r *StatsRepository) revenueSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Scopes(paidRevenue(since)).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) RecentReservations(ctx context.Context, limit int) ([]*domain.Reservation, error) {
	var models []reservationModel
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Room.Hotel").Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("recent reservations: %w", err)
	}
	return toDomainReservations(models), nil
}

func (r *StatsRepository) RevenueByMonth(ctx context.Context, since time.Time) ([]ports.MonthlyRevenue, error) {
	rows := []struct {
		Year    int
		Month   int
		Revenue float64
	}{}
	err := r.db.WithContext(ctx).Model(&reservationModel{}).
		Select("EXTRACT(YEAR FROM created_at)::int AS year, EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(total_price), 0) AS revenue").
		Scopes(paidRevenue(since)).
		Group("1, 2").
		Order("1, 2").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("revenue by month: %w", err)
	}

	points := make([]ports.MonthlyRevenue, 0, len(rows))
	for _, row := range rows {
		points = append(points, ports.MonthlyRevenue{
			Year:    row.Year,
			Month:   time.Month(row.Month),
			Revenue: row.Revenue,
		})
	}
	return points, nil
}
