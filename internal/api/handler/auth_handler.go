package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/api/metrics"
	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

// AuthHandler handles HTTP requests for registration, login and account operations.
type AuthHandler struct {
	auth         ports.AuthService
	reservations ports.ReservationService
}

func NewAuthHandler(auth ports.AuthService, reservations ports.ReservationService) *AuthHandler {
	return &AuthHandler{auth: auth, reservations: reservations}
}

// Register creates a new account and returns a fresh token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token:   result.Token,
		Expires: result.Expires,
		User:    toUserResponse(result.User),
	})
}

// Login authenticates by username or email and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token:   result.Token,
		Expires: result.Expires,
		User:    toUserResponse(result.User),
	})
}

// ChangePassword replaces the caller's password after verifying the current one.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("change_password", "failure").Inc()
		if err == domain.ErrInvalidCredentials {
			// Wrong current password is a 400 here, not a 401: the caller
			// is already authenticated.
			return echo.NewHTTPError(http.StatusBadRequest, "current password is incorrect")
		}
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("change_password", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "password changed successfully"})
}

// Profile returns the authenticated user's account.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.auth.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// MyReservations lists the caller's reservations, newest first.
//
// @Summary      List own reservations
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  reservationResponse
// @Router       /auth/my-reservations [get]
func (h *AuthHandler) MyReservations(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservations.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReservationResponses(reservations))
}
