package services

import (
	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
	"github.com/stayhub/hotel-booking-backend/internal/models"
)

// PermissionPolicy is a pure mapping from (role, requested operation) to
// allowed/denied. It holds no state so a single value can be shared freely.
type PermissionPolicy struct{}

// NewPermissionPolicy creates a new PermissionPolicy
func NewPermissionPolicy() *PermissionPolicy {
	return &PermissionPolicy{}
}

// CanTransition reports whether role may move a booking to target.
// ADMIN may set any status, CUSTOMER may only cancel, PARTNER may only
// confirm. Denials for customers and partners name the rejected target.
func (p *PermissionPolicy) CanTransition(role models.Role, target models.BookingStatus) error {
	switch role {
	case models.RoleAdmin:
		return nil
	case models.RoleCustomer:
		if target == models.BookingStatusCancelled {
			return nil
		}
		return apperrors.NewTransitionDenied(
			apperrors.KeyStatusTargetDenied,
			"customers cannot change booking status to", string(target),
		)
	case models.RolePartner:
		if target == models.BookingStatusConfirmed {
			return nil
		}
		return apperrors.NewTransitionDenied(
			apperrors.KeyStatusTargetDenied,
			"partners cannot change booking status to", string(target),
		)
	default:
		return apperrors.NewPermissionDenied(
			apperrors.KeyStatusChangeDenied,
			"role is not permitted to change booking status",
		)
	}
}

// CanViewBookings reports whether role may list bookings at all. The scope of
// the listing (all, own hotels, own bookings) is decided by the caller.
func (p *PermissionPolicy) CanViewBookings(role models.Role) error {
	switch role {
	case models.RoleAdmin, models.RolePartner, models.RoleCustomer:
		return nil
	default:
		return apperrors.NewPermissionDenied(
			apperrors.KeyViewBookingsDenied,
			"role is not permitted to view bookings",
		)
	}
}

// CanSetHotelStatus reports whether role may set a hotel's status. ADMIN may
// set any status; PARTNER may only close or reopen their own hotel (ownership
// is checked by the caller); customers have no access.
func (p *PermissionPolicy) CanSetHotelStatus(role models.Role) error {
	switch role {
	case models.RoleAdmin, models.RolePartner:
		return nil
	case models.RoleCustomer:
		return apperrors.NewPermissionDenied(
			apperrors.KeyHotelStatusDenied,
			"customers cannot change hotel status",
		)
	default:
		return apperrors.NewPermissionDenied(
			apperrors.KeyHotelStatusDenied,
			"role is not permitted to change hotel status",
		)
	}
}
