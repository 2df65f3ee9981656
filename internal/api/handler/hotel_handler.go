package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/core/ports"
)

// HotelHandler handles HTTP requests for hotel and room management.
type HotelHandler struct {
	service ports.HotelService
}

func NewHotelHandler(service ports.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// ListHotels returns all hotels.
//
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {array}  hotelResponse
// @Router       /hotels [get]
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.service.ListHotels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHotelResponses(hotels))
}

// GetHotel returns one hotel with its rooms.
//
// @Summary      Get a hotel
// @Tags         hotels
// @Produce      json
// @Param        id   path      int  true  "Hotel id"
// @Success      200  {object}  hotelResponse
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	hotel, err := h.service.GetHotel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHotelResponse(hotel))
}

// CreateHotel creates a hotel. Admin only.
//
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hotelRequest  true  "Hotel details"
// @Success      201   {object}  hotelResponse
// @Failure      400   {object}  errorResponse
// @Router       /hotels [post]
func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hotel, err := h.service.CreateHotel(c.Request().Context(), ports.HotelInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		Phone:   req.Phone,
		Email:   req.Email,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toHotelResponse(hotel))
}

// UpdateHotel updates a hotel. Admin only.
//
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Hotel id"
// @Param        body  body      hotelRequest  true  "Hotel details"
// @Success      200   {object}  hotelResponse
// @Failure      404   {object}  errorResponse
// @Router       /hotels/{id} [put]
func (h *HotelHandler) UpdateHotel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req hotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hotel, err := h.service.UpdateHotel(c.Request().Context(), id, ports.HotelInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		Phone:   req.Phone,
		Email:   req.Email,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHotelResponse(hotel))
}

// DeleteHotel removes a hotel and all of its rooms. Admin only.
//
// @Summary      Delete a hotel
// @Tags         hotels
// @Security     BearerAuth
// @Param        id  path  int  true  "Hotel id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteHotel(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRooms returns a hotel's rooms.
//
// @Summary      List a hotel's rooms
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Hotel id"
// @Success      200  {array}   roomResponse
// @Failure      404  {object}  errorResponse
// @Router       /hotels/{id}/rooms [get]
func (h *HotelHandler) ListRooms(c echo.Context) error {
	hotelID, err := pathID(c)
	if err != nil {
		return err
	}
	rooms, err := h.service.ListRooms(c.Request().Context(), hotelID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// GetRoom returns one room.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [get]
func (h *HotelHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	room, err := h.service.GetRoom(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// CreateRoom adds a room to a hotel. Admin only.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Hotel id"
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /hotels/{id}/rooms [post]
func (h *HotelHandler) CreateRoom(c echo.Context) error {
	hotelID, err := pathID(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.CreateRoom(c.Request().Context(), hotelID, ports.RoomInput{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		Description:   req.Description,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// UpdateRoom updates a room. Admin only.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Room id"
// @Param        body  body      roomRequest  true  "Room details"
// @Success      200   {object}  roomResponse
// @Failure      404   {object}  errorResponse
// @Router       /rooms/{id} [put]
func (h *HotelHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.UpdateRoom(c.Request().Context(), id, ports.RoomInput{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		Description:   req.Description,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// DeleteRoom removes a room. Admin only.
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id  path  int  true  "Room id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [delete]
func (h *HotelHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteRoom(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
