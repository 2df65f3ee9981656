package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/hotelhub/booking-system/internal/api/handler"
	"github.com/hotelhub/booking-system/internal/api/middleware"
	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/service"
	mongodb "github.com/hotelhub/booking-system/internal/infrastructure/db/mongo"
	"github.com/hotelhub/booking-system/internal/infrastructure/db/postgres"
	rediscache "github.com/hotelhub/booking-system/internal/infrastructure/db/redis"
	"github.com/hotelhub/booking-system/internal/pkg/config"
	"github.com/hotelhub/booking-system/pkg/logger"

	_ "github.com/hotelhub/booking-system/docs"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, mdb *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	log := logger.Get()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	auditLog := mongodb.NewAuditRepository(mdb)
	statsCache := rediscache.NewStatsCache(rdb, 30*time.Second)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, 0)
	authService := service.NewAuthService(userRepo, tokenService, log)
	reservationService := service.NewReservationService(reservationRepo, roomRepo, auditLog, log)
	hotelService := service.NewHotelService(hotelRepo, roomRepo, log)
	dashboardService := service.NewDashboardService(statsRepo, statsCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, reservationService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	adminHandler := handler.NewAdminHandler(dashboardService, authService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, mdb, rdb)

	// Identity extraction is best-effort on every request. Routes that need
	// a caller use RequireAuth or RBAC on top of it.
	e.Use(middleware.Auth(tokenService))

	// --- Auth ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.PUT("/change-password", authHandler.ChangePassword, middleware.RequireAuth())
	auth.GET("/profile", authHandler.Profile, middleware.RequireAuth())
	auth.GET("/my-reservations", authHandler.MyReservations, middleware.RequireAuth())

	// --- Reservations ---
	reservations := e.Group("/api/reservations")
	reservations.POST("", reservationHandler.Create) // guests may book without an account
	reservations.GET("/available-rooms", reservationHandler.AvailableRooms)
	reservations.GET("", reservationHandler.List, middleware.RBAC(domain.RoleAdmin))
	reservations.GET("/:id", reservationHandler.Get, middleware.RequireAuth())
	reservations.PUT("/:id/status", reservationHandler.UpdateStatus, middleware.RequireAuth())
	reservations.PUT("/:id/payment", reservationHandler.UpdatePayment, middleware.RBAC(domain.RoleAdmin))
	reservations.DELETE("/:id", reservationHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Hotels and rooms (public reads, admin mutations) ---
	hotels := e.Group("/api/hotels")
	hotels.GET("", hotelHandler.ListHotels)
	hotels.GET("/:id", hotelHandler.GetHotel)
	hotels.GET("/:id/rooms", hotelHandler.ListRooms)
	hotels.POST("", hotelHandler.CreateHotel, middleware.RBAC(domain.RoleAdmin))
	hotels.POST("/:id/rooms", hotelHandler.CreateRoom, middleware.RBAC(domain.RoleAdmin))
	hotels.PUT("/:id", hotelHandler.UpdateHotel, middleware.RBAC(domain.RoleAdmin))
	hotels.DELETE("/:id", hotelHandler.DeleteHotel, middleware.RBAC(domain.RoleAdmin))

	rooms := e.Group("/api/rooms")
	rooms.GET("/:id", hotelHandler.GetRoom)
	rooms.PUT("/:id", hotelHandler.UpdateRoom, middleware.RBAC(domain.RoleAdmin))
	rooms.DELETE("/:id", hotelHandler.DeleteRoom, middleware.RBAC(domain.RoleAdmin))

	// --- Admin ---
	admin := e.Group("/api/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/dashboard/stats", adminHandler.Stats)
	admin.GET("/dashboard/recent-reservations", adminHandler.RecentReservations)
	admin.GET("/dashboard/revenue-chart", adminHandler.RevenueChart)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.SetUserRole)
	admin.PUT("/users/:id/status", adminHandler.SetUserStatus)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
