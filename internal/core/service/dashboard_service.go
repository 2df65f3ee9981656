package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

const revenueChartMonths = 6

// StatsCache abstracts the short-TTL dashboard cache (Redis).
type StatsCache interface {
	GetStats(ctx context.Context) (*ports.DashboardStats, bool)
	SetStats(ctx context.Context, stats *ports.DashboardStats)
}

// DashboardService serves the admin read models. The rollups are read-only
// and tolerate slightly stale data, so stats go through a short-TTL cache.
type DashboardService struct {
	stats ports.StatsRepository
	cache StatsCache
	log   zerolog.Logger
	now   func() time.Time
}

func NewDashboardService(stats ports.StatsRepository, cache StatsCache, log zerolog.Logger) *DashboardService {
	return &DashboardService{stats: stats, cache: cache, log: log, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetStats(ctx); ok {
			return cached, nil
		}
	}

	stats, err := s.stats.DashboardStats(ctx, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetStats(ctx, stats)
	}
	return stats, nil
}

func (s *DashboardService) RecentReservations(ctx context.Context) ([]*domain.Reservation, error) {
	return s.stats.RecentReservations(ctx, recentReservationsLimit)
}

// RevenueChart returns one point per month for the trailing window, oldest
// first. Months without any paid bookings appear with zero revenue so the
// chart axis keeps its shape.
func (s *DashboardService) RevenueChart(ctx context.Context) ([]ports.MonthlyRevenue, error) {
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(revenueChartMonths - 1), 0)

	points, err := s.stats.RevenueByMonth(ctx, start)
	if err != nil {
		return nil, err
	}

	revenue := make(map[time.Time]float64, len(points))
	for _, p := range points {
		revenue[time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)] = p.Revenue
	}

	out := make([]ports.MonthlyRevenue, 0, revenueChartMonths)
	for i := 0; i < revenueChartMonths; i++ {
		m := start.AddDate(0, i, 0)
		out = append(out, ports.MonthlyRevenue{
			Year:    m.Year(),
			Month:   m.Month(),
			Revenue: revenue[m],
		})
	}
	return out, nil
}
