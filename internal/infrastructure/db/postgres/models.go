package postgres

import (
	"time"

	"github.com/hotelhub/booking-system/internal/core/domain"
)

type userModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:User"`
	FullName     string `gorm:"size:100;not null"`
	Phone        string `gorm:"size:20"`
	Address      string `gorm:"size:200"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastLogin    *time.Time
}

func (userModel) TableName() string { return "users" }

type hotelModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Address   string `gorm:"size:200;not null"`
	City      string `gorm:"size:50;not null"`
	Country   string `gorm:"size:50;not null"`
	Phone     string `gorm:"size:20"`
	Email     string `gorm:"size:100"`
	Rating    float64
	CreatedAt time.Time
	Rooms     []roomModel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

func (hotelModel) TableName() string { return "hotels" }

type roomModel struct {
	ID            uint   `gorm:"primaryKey"`
	HotelID       uint   `gorm:"not null;index;uniqueIndex:idx_rooms_hotel_number,priority:1"`
	RoomNumber    string `gorm:"size:10;not null;uniqueIndex:idx_rooms_hotel_number,priority:2"`
	RoomType      string `gorm:"size:20;not null;index"`
	Description   string `gorm:"size:500"`
	Capacity      int    `gorm:"not null"`
	PricePerNight float64 `gorm:"not null"`
	IsAvailable   bool    `gorm:"not null;default:true"`
	CreatedAt     time.Time
	Hotel         *hotelModel `gorm:"foreignKey:HotelID"`
}

func (roomModel) TableName() string { return "rooms" }

type reservationModel struct {
	ID              uint   `gorm:"primaryKey"`
	GuestName       string `gorm:"size:100;not null"`
	GuestEmail      string `gorm:"size:100;not null"`
	GuestPhone      string `gorm:"size:20"`
	RoomID          uint   `gorm:"not null;index"`
	UserID          *uint  `gorm:"index"`
	CheckInDate     time.Time `gorm:"not null;index"`
	CheckOutDate    time.Time `gorm:"not null;index"`
	NumberOfGuests  int       `gorm:"not null"`
	SpecialRequests string    `gorm:"size:500"`
	TotalPrice      float64   `gorm:"not null"`
	Status          string    `gorm:"size:20;not null;index"`
	PaymentStatus   string    `gorm:"size:20;not null"`
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	Room            *roomModel `gorm:"foreignKey:RoomID"`
	User            *userModel `gorm:"foreignKey:UserID"`
}

func (reservationModel) TableName() string { return "reservations" }

func toUserModel(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Address:      u.Address,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastLogin:    u.LastLogin,
	}
}

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		FullName:     m.FullName,
		Phone:        m.Phone,
		Address:      m.Address,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		LastLogin:    m.LastLogin,
	}
}

func toHotelModel(h *domain.Hotel) *hotelModel {
	return &hotelModel{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		City:      h.City,
		Country:   h.Country,
		Phone:     h.Phone,
		Email:     h.Email,
		Rating:    h.Rating,
		CreatedAt: h.CreatedAt,
	}
}

func (m *hotelModel) toDomain() *domain.Hotel {
	h := &domain.Hotel{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		Country:   m.Country,
		Phone:     m.Phone,
		Email:     m.Email,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt,
	}
	for i := range m.Rooms {
		h.Rooms = append(h.Rooms, *m.Rooms[i].toDomain())
	}
	return h
}

func toRoomModel(r *domain.Room) *roomModel {
	return &roomModel{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		Description:   r.Description,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		IsAvailable:   r.IsAvailable,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *roomModel) toDomain() *domain.Room {
	r := &domain.Room{
		ID:            m.ID,
		HotelID:       m.HotelID,
		RoomNumber:    m.RoomNumber,
		RoomType:      m.RoomType,
		Description:   m.Description,
		Capacity:      m.Capacity,
		PricePerNight: m.PricePerNight,
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
	}
	if m.Hotel != nil {
		r.HotelName = m.Hotel.Name
	}
	return r
}

func toReservationModel(r *domain.Reservation) *reservationModel {
	return &reservationModel{
		ID:              r.ID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		RoomID:          r.RoomID,
		UserID:          r.UserID,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
		TotalPrice:      r.TotalPrice,
		Status:          string(r.Status),
		PaymentStatus:   string(r.PaymentStatus),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *reservationModel) toDomain() *domain.Reservation {
	r := &domain.Reservation{
		ID:              m.ID,
		GuestName:       m.GuestName,
		GuestEmail:      m.GuestEmail,
		GuestPhone:      m.GuestPhone,
		RoomID:          m.RoomID,
		UserID:          m.UserID,
		CheckInDate:     m.CheckInDate,
		CheckOutDate:    m.CheckOutDate,
		NumberOfGuests:  m.NumberOfGuests,
		SpecialRequests: m.SpecialRequests,
		TotalPrice:      m.TotalPrice,
		Status:          domain.ReservationStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Room != nil {
		r.RoomNumber = m.Room.RoomNumber
		r.RoomType = m.Room.RoomType
		r.HotelID = m.Room.HotelID
		if m.Room.Hotel != nil {
			r.HotelName = m.Room.Hotel.Name
		}
	}
	if m.User != nil {
		r.UserName = m.User.Username
	}
	return r
}
