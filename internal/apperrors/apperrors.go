package apperrors

import "fmt"

// Stable message keys. The HTTP layer maps these to localized client messages,
// so they must not change between releases.
const (
	KeyBookingNotFound       = "booking.not_found"
	KeyHotelNotFound         = "hotel.not_found"
	KeyRoomTypeNotFound      = "room_type.not_found"
	KeyUserNotFound          = "user.not_found"
	KeyGuestNotFound         = "user.guest_not_found"
	KeyViewBookingsDenied    = "booking.view_denied"
	KeyStatusChangeDenied    = "booking.status_change_denied"
	KeyStatusTargetDenied    = "booking.status_target_denied"
	KeyHotelStatusDenied     = "hotel.status_change_denied"
	KeyInvalidDateRange      = "booking.invalid_date_range"
	KeyInvalidTotalPrice     = "booking.invalid_total_price"
	KeyMissingBookingDetails = "booking.missing_details"
	KeyInvalidCredentials    = "auth.invalid_credentials"
	KeyEmailTaken            = "auth.email_taken"
)

// NotFoundError reports that a required resource does not exist.
type NotFoundError struct {
	Key      string
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFound creates a NotFoundError for the given resource
func NewNotFound(key, resource string) *NotFoundError {
	return &NotFoundError{Key: key, Resource: resource}
}

// PermissionDeniedError reports that the acting role is not authorized for the
// requested operation. Target carries the rejected status for transition errors.
type PermissionDeniedError struct {
	Key    string
	Reason string
	Target string
}

func (e *PermissionDeniedError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Target)
	}
	return e.Reason
}

// NewPermissionDenied creates a PermissionDeniedError
func NewPermissionDenied(key, reason string) *PermissionDeniedError {
	return &PermissionDeniedError{Key: key, Reason: reason}
}

// NewTransitionDenied creates a PermissionDeniedError naming the rejected target status
func NewTransitionDenied(key, reason, target string) *PermissionDeniedError {
	return &PermissionDeniedError{Key: key, Reason: reason, Target: target}
}

// ValidationError reports malformed or inconsistent request input.
type ValidationError struct {
	Key    string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidation creates a ValidationError
func NewValidation(key, detail string) *ValidationError {
	return &ValidationError{Key: key, Detail: detail}
}
