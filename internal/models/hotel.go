package models

import (
	"time"

	"github.com/google/uuid"
)

// HotelStatus represents a hotel's availability status
type HotelStatus string

const (
	HotelStatusActive HotelStatus = "ACTIVE"
	HotelStatusClosed HotelStatus = "CLOSED"
)

// RoomTypeStatus represents the availability of a room type
type RoomTypeStatus string

const (
	RoomTypeStatusAvailable   RoomTypeStatus = "AVAILABLE"
	RoomTypeStatusFull        RoomTypeStatus = "FULL"
	RoomTypeStatusMaintenance RoomTypeStatus = "MAINTENANCE"
)

// Hotel owns a collection of room types. Its status is periodically derived
// from the room types' statuses by the status sweeper.
type Hotel struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	PartnerID uuid.UUID   `json:"partner_id" db:"partner_id"`
	Name      string      `json:"name" db:"name"`
	Address   string      `json:"address" db:"address"`
	Status    HotelStatus `json:"status" db:"status"`
	RoomTypes []RoomType  `json:"room_types"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// RoomType represents a bookable category of rooms within a hotel
type RoomType struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	HotelID       uuid.UUID      `json:"hotel_id" db:"hotel_id"`
	Name          string         `json:"name" db:"name"`
	Price         float64        `json:"price" db:"price"`
	NumberOfRooms int            `json:"number_of_rooms" db:"number_of_rooms"`
	Status        RoomTypeStatus `json:"status" db:"status"`
}

// AllRoomTypesFull reports whether every room type is non-AVAILABLE.
// Vacuously true for a hotel with zero room types.
func (h *Hotel) AllRoomTypesFull() bool {
	for _, rt := range h.RoomTypes {
		if rt.Status == RoomTypeStatusAvailable {
			return false
		}
	}
	return true
}

// DerivedStatus computes the status the sweeper should store for this hotel.
// A hotel with availability is only reopened when it is currently CLOSED; a
// manually set ACTIVE status is left untouched.
func (h *Hotel) DerivedStatus() HotelStatus {
	if h.AllRoomTypesFull() {
		return HotelStatusClosed
	}
	if h.Status == HotelStatusClosed {
		return HotelStatusActive
	}
	return h.Status
}

// CreateHotelRequest represents the request to create a hotel
type CreateHotelRequest struct {
	Name      string                  `json:"name" binding:"required"`
	Address   string                  `json:"address" binding:"required"`
	RoomTypes []CreateRoomTypeRequest `json:"room_types"`
}

// CreateRoomTypeRequest represents a room type supplied at hotel creation
type CreateRoomTypeRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"required,min=0"`
	NumberOfRooms int     `json:"number_of_rooms" binding:"required,min=1"`
}

// UpdateHotelRequest is a partial overwrite of hotel fields
type UpdateHotelRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// UpdateHotelStatusRequest represents a hotel status change request
type UpdateHotelStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ParseHotelStatus validates a raw hotel status string
func ParseHotelStatus(raw string) (HotelStatus, bool) {
	switch HotelStatus(raw) {
	case HotelStatusActive, HotelStatusClosed:
		return HotelStatus(raw), true
	default:
		return "", false
	}
}
