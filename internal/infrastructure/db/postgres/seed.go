package postgres

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

// Seed loads a default admin account and a demo hotel with a handful of
// rooms. Idempotent: rows that already exist are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedDemoHotel(db)
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&userModel{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("seed: check admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	admin := userModel{
		Username:     "admin",
		Email:        "admin@hotelhub.local",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		FullName:     "System Administrator",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed: insert admin: %w", err)
	}
	return nil
}

func seedDemoHotel(db *gorm.DB) error {
	var count int64
	if err := db.Model(&hotelModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: check hotels: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	hotel := hotelModel{
		Name:      "Grand Plaza Hotel",
		Address:   "123 Main Street",
		City:      "Amsterdam",
		Country:   "Netherlands",
		Phone:     "+31 20 555 0100",
		Email:     "info@grandplaza.example",
		Rating:    4.5,
		CreatedAt: now,
		Rooms: []roomModel{
			{RoomNumber: "101", RoomType: "Single", Description: "Cozy single room with city view", Capacity: 1, PricePerNight: 89, IsAvailable: true, CreatedAt: now},
			{RoomNumber: "102", RoomType: "Double", Description: "Comfortable double room", Capacity: 2, PricePerNight: 129, IsAvailable: true, CreatedAt: now},
			{RoomNumber: "201", RoomType: "Double", Description: "Double room with balcony", Capacity: 2, PricePerNight: 149, IsAvailable: true, CreatedAt: now},
			{RoomNumber: "202", RoomType: "Suite", Description: "Junior suite with lounge area", Capacity: 3, PricePerNight: 229, IsAvailable: true, CreatedAt: now},
			{RoomNumber: "301", RoomType: "Suite", Description: "Penthouse suite", Capacity: 4, PricePerNight: 349, IsAvailable: true, CreatedAt: now},
		},
	}
	if err := db.Create(&hotel).Error; err != nil {
		return fmt.Errorf("seed: insert demo hotel: %w", err)
	}
	return nil
}
