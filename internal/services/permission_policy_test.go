package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
	"github.com/stayhub/hotel-booking-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	policy := NewPermissionPolicy()

	tests := []struct {
		name    string
		role    models.Role
		target  models.BookingStatus
		allowed bool
	}{
		{"AdminToPending", models.RoleAdmin, models.BookingStatusPending, true},
		{"AdminToConfirmed", models.RoleAdmin, models.BookingStatusConfirmed, true},
		{"AdminToCancelled", models.RoleAdmin, models.BookingStatusCancelled, true},
		{"CustomerToCancelled", models.RoleCustomer, models.BookingStatusCancelled, true},
		{"CustomerToConfirmed", models.RoleCustomer, models.BookingStatusConfirmed, false},
		{"CustomerToPending", models.RoleCustomer, models.BookingStatusPending, false},
		{"PartnerToConfirmed", models.RolePartner, models.BookingStatusConfirmed, true},
		{"PartnerToCancelled", models.RolePartner, models.BookingStatusCancelled, false},
		{"PartnerToPending", models.RolePartner, models.BookingStatusPending, false},
		{"UnknownRole", models.Role("MODERATOR"), models.BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CanTransition(tt.role, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			var denied *apperrors.PermissionDeniedError
			require.ErrorAs(t, err, &denied)
		})
	}
}

func TestCanTransition_DenialNamesTarget(t *testing.T) {
	policy := NewPermissionPolicy()

	err := policy.CanTransition(models.RoleCustomer, models.BookingStatusConfirmed)
	var denied *apperrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, string(models.BookingStatusConfirmed), denied.Target)
	assert.Contains(t, denied.Error(), "CONFIRMED")

	err = policy.CanTransition(models.RolePartner, models.BookingStatusPending)
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, string(models.BookingStatusPending), denied.Target)
}

func TestCanViewBookings(t *testing.T) {
	policy := NewPermissionPolicy()

	for _, role := range []models.Role{models.RoleAdmin, models.RolePartner, models.RoleCustomer} {
		assert.NoError(t, policy.CanViewBookings(role))
	}

	err := policy.CanViewBookings(models.Role("MODERATOR"))
	var denied *apperrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, apperrors.KeyViewBookingsDenied, denied.Key)
}

func TestCanSetHotelStatus(t *testing.T) {
	policy := NewPermissionPolicy()

	assert.NoError(t, policy.CanSetHotelStatus(models.RoleAdmin))
	assert.NoError(t, policy.CanSetHotelStatus(models.RolePartner))

	err := policy.CanSetHotelStatus(models.RoleCustomer)
	var denied *apperrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, apperrors.KeyHotelStatusDenied, denied.Key)

	err = policy.CanSetHotelStatus(models.Role(""))
	require.ErrorAs(t, err, &denied)
}
