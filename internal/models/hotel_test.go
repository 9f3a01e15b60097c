package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  HotelStatus
		rooms    []RoomTypeStatus
		expected HotelStatus
	}{
		{"AllFullCloses", HotelStatusActive, []RoomTypeStatus{RoomTypeStatusFull, RoomTypeStatusFull}, HotelStatusClosed},
		{"MaintenanceIsNotAvailability", HotelStatusActive, []RoomTypeStatus{RoomTypeStatusFull, RoomTypeStatusMaintenance}, HotelStatusClosed},
		{"ZeroRoomTypesCloses", HotelStatusActive, nil, HotelStatusClosed},
		{"ActiveWithAvailabilityStays", HotelStatusActive, []RoomTypeStatus{RoomTypeStatusAvailable, RoomTypeStatusFull}, HotelStatusActive},
		{"ClosedWithAvailabilityReopens", HotelStatusClosed, []RoomTypeStatus{RoomTypeStatusAvailable}, HotelStatusActive},
		{"ClosedAllFullStaysClosed", HotelStatusClosed, []RoomTypeStatus{RoomTypeStatusFull}, HotelStatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotel := Hotel{Status: tt.current}
			for _, rs := range tt.rooms {
				hotel.RoomTypes = append(hotel.RoomTypes, RoomType{Status: rs})
			}
			assert.Equal(t, tt.expected, hotel.DerivedStatus())
		})
	}
}

func TestParseHotelStatus(t *testing.T) {
	status, ok := ParseHotelStatus("ACTIVE")
	assert.True(t, ok)
	assert.Equal(t, HotelStatusActive, status)

	_, ok = ParseHotelStatus("OPEN")
	assert.False(t, ok)
}

func TestParseBookingStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "CONFIRMED", "CANCELLED"} {
		status, err := ParseBookingStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, BookingStatus(raw), status)
	}

	_, err := ParseBookingStatus("EXPIRED")
	assert.Error(t, err, "expiry deletes the booking, it is not a status")
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"ADMIN", "PARTNER", "CUSTOMER"} {
		role, err := ParseRole(raw)
		assert.NoError(t, err)
		assert.Equal(t, Role(raw), role)
	}

	_, err := ParseRole("admin")
	assert.Error(t, err, "roles are case sensitive")
}
