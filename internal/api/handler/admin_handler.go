package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/core/ports"
)

// AdminHandler serves the admin dashboard and user management endpoints.
// All routes behind it are mounted under the Admin RBAC gate.
type AdminHandler struct {
	dashboard ports.DashboardService
	auth      ports.AuthService
}

func NewAdminHandler(dashboard ports.DashboardService, auth ports.AuthService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, auth: auth}
}

type dashboardStatsResponse struct {
	TotalHotels        int64   `json:"totalHotels"`
	TotalRooms         int64   `json:"totalRooms"`
	AvailableRooms     int64   `json:"availableRooms"`
	TotalReservations  int64   `json:"totalReservations"`
	ActiveReservations int64   `json:"activeReservations"`
	TotalUsers         int64   `json:"totalUsers"`
	TodayRevenue       float64 `json:"todayRevenue"`
	MonthlyRevenue     float64 `json:"monthlyRevenue"`
	TotalRevenue       float64 `json:"totalRevenue"`
}

type revenuePointResponse struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=User Admin"`
}

type setStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// Stats returns the dashboard rollup.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardStatsResponse
// @Router       /admin/dashboard/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardStatsResponse{
		TotalHotels:        stats.TotalHotels,
		TotalRooms:         stats.TotalRooms,
		AvailableRooms:     stats.AvailableRooms,
		TotalReservations:  stats.TotalReservations,
		ActiveReservations: stats.ActiveReservations,
		TotalUsers:         stats.TotalUsers,
		TodayRevenue:       stats.TodayRevenue,
		MonthlyRevenue:     stats.MonthlyRevenue,
		TotalRevenue:       stats.TotalRevenue,
	})
}

// RecentReservations returns the ten newest reservations.
//
// @Summary      Recent reservations
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  reservationResponse
// @Router       /admin/dashboard/recent-reservations [get]
func (h *AdminHandler) RecentReservations(c echo.Context) error {
	reservations, err := h.dashboard.RecentReservations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationResponses(reservations))
}

// RevenueChart returns paid revenue grouped by month for the last six
// months, zero-filled for months without paid bookings.
//
// @Summary      Revenue chart
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  revenuePointResponse
// @Router       /admin/dashboard/revenue-chart [get]
func (h *AdminHandler) RevenueChart(c echo.Context) error {
	points, err := h.dashboard.RevenueChart(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]revenuePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, revenuePointResponse{
			Year:    p.Year,
			Month:   int(p.Month),
			Revenue: p.Revenue,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// ListUsers returns all accounts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  userResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.auth.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// SetUserRole changes an account's role.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "User id"
// @Param        body  body      setRoleRequest  true  "Target role"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/role [put]
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.SetUserRole(c.Request().Context(), id, req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user role updated successfully"})
}

// SetUserStatus enables or disables an account.
//
// @Summary      Change a user's active status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "User id"
// @Param        body  body      setStatusRequest  true  "Active flag"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/status [put]
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.auth.SetUserActive(c.Request().Context(), id, req.IsActive); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user status updated successfully"})
}
