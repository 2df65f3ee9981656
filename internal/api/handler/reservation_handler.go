package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hotelhub/booking-system/internal/api/metrics"
	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

// ReservationHandler handles HTTP requests for booking operations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// Create books a room. Open to guests; an authenticated caller's identity
// overrides any userId in the body.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  reservationResponse
// @Failure      400   {object}  errorResponse
// @Router       /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := req.UserID
	if authenticated := optionalIdentity(c); authenticated != nil {
		userID = authenticated
	}

	reservation, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		RoomID:          req.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
		UserID:          userID,
	})
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			metrics.BookingRejectionsTotal.WithLabelValues(reason).Inc()
		}
		return err
	}

	metrics.ReservationsCreatedTotal.WithLabelValues(reservation.RoomType).Inc()
	return c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func rejectionReason(err error) string {
	switch err {
	case domain.ErrInvalidDateRange:
		return "invalid_range"
	case domain.ErrPastCheckIn:
		return "past_date"
	case domain.ErrRoomUnavailable:
		return "room_unavailable"
	case domain.ErrDateConflict:
		return "date_conflict"
	}
	return ""
}

// Get returns a single reservation to its owner or an admin.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  reservationResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	reservation, err := h.service.Get(c.Request().Context(), id, userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationResponse(reservation))
}

// List returns all reservations, newest first. Admin only.
//
// @Summary      List all reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  reservationResponse
// @Router       /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationResponses(reservations))
}

// UpdateStatus moves a reservation through the state machine.
//
// @Summary      Update reservation status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Reservation id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reservations/{id}/status [put]
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ReservationID: id,
		Status:        domain.ReservationStatus(req.Status),
		RequesterID:   userID,
		RequesterRole: role,
	}); err != nil {
		return err
	}

	metrics.ReservationStatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "reservation status updated successfully"})
}

// UpdatePayment sets the payment status. Admin only; the body is the raw
// payment status string.
//
// @Summary      Update payment status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "Reservation id"
// @Param        body  body      string  true  "Payment status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /reservations/{id}/payment [put]
func (h *ReservationHandler) UpdatePayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var paymentStatus string
	if err := c.Bind(&paymentStatus); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.UpdatePaymentStatus(c.Request().Context(), id, domain.PaymentStatus(paymentStatus), role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "payment status updated successfully"})
}

// Delete removes a reservation. Admin only.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  int  true  "Reservation id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AvailableRooms searches rooms free over a date range. Public.
//
// @Summary      Search available rooms
// @Tags         reservations
// @Produce      json
// @Param        checkIn   query     string  false  "Check-in date (YYYY-MM-DD), defaults to tomorrow"
// @Param        checkOut  query     string  false  "Check-out date (YYYY-MM-DD), defaults to the day after"
// @Param        guests    query     int     false  "Minimum capacity"
// @Param        roomType  query     string  false  "Room type filter"
// @Param        hotelId   query     int     false  "Hotel filter"
// @Success      200       {array}   roomResponse
// @Failure      400       {object}  errorResponse
// @Router       /reservations/available-rooms [get]
func (h *ReservationHandler) AvailableRooms(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.RoomSearchDuration)
	defer timer.ObserveDuration()

	var in ports.SearchRoomsInput
	var err error

	if s := c.QueryParam("checkIn"); s != "" {
		if in.CheckIn, err = parseDate(s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if s := c.QueryParam("checkOut"); s != "" {
		if in.CheckOut, err = parseDate(s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if s := c.QueryParam("guests"); s != "" {
		guests, err := strconv.Atoi(s)
		if err != nil || guests < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid guests")
		}
		in.Guests = guests
	}
	if s := c.QueryParam("hotelId"); s != "" {
		hotelID, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid hotelId")
		}
		in.HotelID = uint(hotelID)
	}
	in.RoomType = c.QueryParam("roomType")

	rooms, err := h.service.SearchAvailableRooms(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponses(rooms))
}
