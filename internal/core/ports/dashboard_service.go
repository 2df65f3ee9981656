package ports

import (
	"context"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// DashboardService serves the admin dashboard read models.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	RecentReservations(ctx context.Context) ([]*domain.Reservation, error)
	RevenueChart(ctx context.Context) ([]MonthlyRevenue, error)
}
