package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
)

// BookingStatus represents the lifecycle status of a booking. A booking whose
// hold expires while still PENDING is deleted rather than given a status.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch BookingStatus(raw) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return BookingStatus(raw), nil
	default:
		return "", apperrors.NewValidation(apperrors.KeyStatusTargetDenied, "unknown booking status: "+raw)
	}
}

// Booking is the aggregate root for a reservation. Contact fields are captured
// at booking time independently of the owning user's profile.
type Booking struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	TotalPrice     float64         `json:"total_price" db:"total_price"`
	CheckInDate    time.Time       `json:"check_in_date" db:"check_in_date"`
	CheckOutDate   time.Time       `json:"check_out_date" db:"check_out_date"`
	Status         BookingStatus   `json:"status" db:"status"`
	CouponID       *uuid.UUID      `json:"coupon_id,omitempty" db:"coupon_id"`
	Note           string          `json:"note" db:"note"`
	PaymentMethod  string          `json:"payment_method" db:"payment_method"`
	FullName       string          `json:"full_name" db:"full_name"`
	PhoneNumber    string          `json:"phone_number" db:"phone_number"`
	Email          string          `json:"email" db:"email"`
	BookingDate    time.Time       `json:"booking_date" db:"booking_date"`
	ExpirationDate time.Time       `json:"expiration_date" db:"expiration_date"`
	Details        []BookingDetail `json:"details"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// BookingDetail is a line item owned by exactly one booking. RoomTypeID is nil
// when the requested room type could not be resolved at creation time.
type BookingDetail struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	BookingID     uuid.UUID  `json:"booking_id" db:"booking_id"`
	RoomTypeID    *uuid.UUID `json:"room_type_id" db:"room_type_id"`
	Price         float64    `json:"price" db:"price"`
	NumberOfRooms int        `json:"number_of_rooms" db:"number_of_rooms"`
	TotalMoney    float64    `json:"total_money" db:"total_money"`
}

// BookingDetailRequest is a caller-supplied line item
type BookingDetailRequest struct {
	RoomTypeID    string  `json:"room_type_id" binding:"required"`
	Price         float64 `json:"price"`
	NumberOfRooms int     `json:"number_of_rooms" binding:"required,min=1"`
	TotalMoney    float64 `json:"total_money"`
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	UserID        *string                `json:"user_id,omitempty"`
	TotalPrice    float64                `json:"total_price"`
	CheckInDate   string                 `json:"check_in_date" binding:"required"`
	CheckOutDate  string                 `json:"check_out_date" binding:"required"`
	CouponID      *string                `json:"coupon_id,omitempty"`
	Note          string                 `json:"note"`
	PaymentMethod string                 `json:"payment_method" binding:"required"`
	FullName      string                 `json:"full_name" binding:"required"`
	PhoneNumber   string                 `json:"phone_number" binding:"required"`
	Email         string                 `json:"email" binding:"required,email"`
	Details       []BookingDetailRequest `json:"details" binding:"required"`
}

// Validate checks the parts of the request gin bindings cannot express
func (r *CreateBookingRequest) Validate() error {
	if r.TotalPrice < 0 {
		return apperrors.NewValidation(apperrors.KeyInvalidTotalPrice, "total_price must be non-negative")
	}
	if len(r.Details) == 0 {
		return apperrors.NewValidation(apperrors.KeyMissingBookingDetails, "at least one booking detail is required")
	}
	return nil
}

// UpdateBookingRequest is a partial overwrite; nil fields are left untouched.
// When Details is present the prior detail set is replaced wholesale.
type UpdateBookingRequest struct {
	TotalPrice    *float64               `json:"total_price,omitempty"`
	CheckInDate   *string                `json:"check_in_date,omitempty"`
	CheckOutDate  *string                `json:"check_out_date,omitempty"`
	CouponID      *string                `json:"coupon_id,omitempty"`
	Note          *string                `json:"note,omitempty"`
	PaymentMethod *string                `json:"payment_method,omitempty"`
	Details       []BookingDetailRequest `json:"details,omitempty"`
}

// UpdateBookingStatusRequest represents a status transition request
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
