package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
	"github.com/stayhub/hotel-booking-backend/internal/models"
	"github.com/stayhub/hotel-booking-backend/pkg/validator"
)

// BookingStore is the persistence surface the lifecycle manager needs
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByID(bookingID uuid.UUID) (*models.Booking, error)
	Update(booking *models.Booking, replaceDetails bool) error
	UpdateStatus(bookingID uuid.UUID, status models.BookingStatus) error
	List(page, size int) ([]models.Booking, error)
	ListByUserID(userID uuid.UUID, page, size int) ([]models.Booking, error)
	ListByPartnerID(partnerID uuid.UUID, page, size int) ([]models.Booking, error)
}

// UserStore resolves users and the canonical guest identity
type UserStore interface {
	GetByID(userID uuid.UUID) (*models.User, error)
	GetGuest() (*models.User, error)
}

// RoomTypeStore resolves booking line item references
type RoomTypeStore interface {
	GetRoomTypeByID(roomTypeID uuid.UUID) (*models.RoomType, error)
}

// BookingService manages the booking lifecycle: creation with a reservation
// hold, role-gated listing and status transitions, and partial updates.
type BookingService struct {
	bookings     BookingStore
	users        UserStore
	roomTypes    RoomTypeStore
	policy       *PermissionPolicy
	dates        *validator.DateRangeValidator
	logger       *logrus.Logger
	holdDuration time.Duration
}

// NewBookingService creates a new BookingService. holdDuration is the single
// source of truth for the reservation hold window.
func NewBookingService(
	bookings BookingStore,
	users UserStore,
	roomTypes RoomTypeStore,
	policy *PermissionPolicy,
	logger *logrus.Logger,
	holdDuration time.Duration,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		users:        users,
		roomTypes:    roomTypes,
		policy:       policy,
		dates:        validator.NewDateRangeValidator(),
		logger:       logger,
		holdDuration: holdDuration,
	}
}

// CreateBooking resolves the acting user (or the canonical guest), builds a
// PENDING booking with an expiration deadline, and persists it together with
// its detail lines. The expiration sweep reclaims it if it is still PENDING
// when the hold lapses.
func (s *BookingService) CreateBooking(req *models.CreateBookingRequest) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	checkIn, checkOut, err := s.dates.ParseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, apperrors.NewValidation(apperrors.KeyInvalidDateRange, err.Error())
	}

	user, err := s.resolveActingUser(req.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		UserID:         user.ID,
		TotalPrice:     req.TotalPrice,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Status:         models.BookingStatusPending,
		Note:           req.Note,
		PaymentMethod:  req.PaymentMethod,
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		BookingDate:    now,
		ExpirationDate: now.Add(s.holdDuration),
	}
	if req.CouponID != nil {
		couponID, parseErr := uuid.Parse(*req.CouponID)
		if parseErr != nil {
			return nil, apperrors.NewValidation(apperrors.KeyMissingBookingDetails, "invalid coupon_id")
		}
		booking.CouponID = &couponID
	}

	details, err := s.buildDetails(req.Details)
	if err != nil {
		return nil, err
	}
	booking.Details = details

	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
		"expires_at": booking.ExpirationDate,
	}).Info("Booking created with reservation hold")

	return booking, nil
}

// resolveActingUser looks up the named user, or falls back to the canonical
// guest when no user id was supplied. Both absences are typed failures.
func (s *BookingService) resolveActingUser(rawUserID *string) (*models.User, error) {
	if rawUserID != nil {
		userID, err := uuid.Parse(*rawUserID)
		if err != nil {
			return nil, apperrors.NewNotFound(apperrors.KeyUserNotFound, "user")
		}
		user, err := s.users.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			s.logger.WithField("user_id", *rawUserID).Error("Booking rejected: user does not exist")
			return nil, apperrors.NewNotFound(apperrors.KeyUserNotFound, "user")
		}
		return user, nil
	}

	guest, err := s.users.GetGuest()
	if err != nil {
		return nil, err
	}
	if guest == nil {
		s.logger.Error("Booking rejected: guest user is not seeded")
		return nil, apperrors.NewNotFound(apperrors.KeyGuestNotFound, "guest user")
	}
	return guest, nil
}

// buildDetails translates caller-supplied line items into detail records. A
// line whose room type cannot be resolved keeps a nil room type reference
// rather than failing the whole booking.
func (s *BookingService) buildDetails(reqs []models.BookingDetailRequest) ([]models.BookingDetail, error) {
	details := make([]models.BookingDetail, 0, len(reqs))
	for _, line := range reqs {
		detail := models.BookingDetail{
			Price:         line.Price,
			NumberOfRooms: line.NumberOfRooms,
			TotalMoney:    line.TotalMoney,
		}
		if roomTypeID, err := uuid.Parse(line.RoomTypeID); err == nil {
			roomType, lookupErr := s.roomTypes.GetRoomTypeByID(roomTypeID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if roomType != nil {
				detail.RoomTypeID = &roomType.ID
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

// GetListBooking returns a page of bookings scoped to the caller's role:
// ADMIN sees all, PARTNER sees bookings for hotels they own, CUSTOMER sees
// their own. An empty page is reported as not-found, per the API contract.
func (s *BookingService) GetListBooking(userID uuid.UUID, role models.Role, page, size int) ([]models.Booking, error) {
	if err := s.policy.CanViewBookings(role); err != nil {
		return nil, err
	}

	var (
		bookings []models.Booking
		err      error
	)
	switch role {
	case models.RoleAdmin:
		bookings, err = s.bookings.List(page, size)
	case models.RolePartner:
		bookings, err = s.bookings.ListByPartnerID(userID, page, size)
	case models.RoleCustomer:
		bookings, err = s.bookings.ListByUserID(userID, page, size)
	default:
		return nil, apperrors.NewPermissionDenied(apperrors.KeyViewBookingsDenied, "role is not permitted to view bookings")
	}
	if err != nil {
		return nil, err
	}

	if len(bookings) == 0 {
		return nil, apperrors.NewNotFound(apperrors.KeyBookingNotFound, "bookings")
	}
	return bookings, nil
}

// GetBookingDetail fetches a booking by id
func (s *BookingService) GetBookingDetail(bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NewNotFound(apperrors.KeyBookingNotFound, "booking")
	}
	return booking, nil
}

// UpdateBooking overwrites the fields present in the patch and leaves the
// rest untouched. Ownership is never reassigned here; when the patch carries
// line items the prior detail set is replaced wholesale.
func (s *BookingService) UpdateBooking(bookingID uuid.UUID, req *models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.GetBookingDetail(bookingID)
	if err != nil {
		return nil, err
	}

	if req.TotalPrice != nil {
		if *req.TotalPrice < 0 {
			return nil, apperrors.NewValidation(apperrors.KeyInvalidTotalPrice, "total_price must be non-negative")
		}
		booking.TotalPrice = *req.TotalPrice
	}
	if req.CheckInDate != nil {
		checkIn, parseErr := s.dates.ParseDate(*req.CheckInDate)
		if parseErr != nil {
			return nil, apperrors.NewValidation(apperrors.KeyInvalidDateRange, parseErr.Error())
		}
		booking.CheckInDate = checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, parseErr := s.dates.ParseDate(*req.CheckOutDate)
		if parseErr != nil {
			return nil, apperrors.NewValidation(apperrors.KeyInvalidDateRange, parseErr.Error())
		}
		booking.CheckOutDate = checkOut
	}
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return nil, apperrors.NewValidation(apperrors.KeyInvalidDateRange, validator.ErrCheckOutNotAfterCheckIn.Error())
	}
	if req.CouponID != nil {
		couponID, parseErr := uuid.Parse(*req.CouponID)
		if parseErr != nil {
			return nil, apperrors.NewValidation(apperrors.KeyMissingBookingDetails, "invalid coupon_id")
		}
		booking.CouponID = &couponID
	}
	if req.Note != nil {
		booking.Note = *req.Note
	}
	if req.PaymentMethod != nil {
		booking.PaymentMethod = *req.PaymentMethod
	}

	replaceDetails := req.Details != nil
	if replaceDetails {
		details, buildErr := s.buildDetails(req.Details)
		if buildErr != nil {
			return nil, buildErr
		}
		booking.Details = details
	}

	if err := s.bookings.Update(booking, replaceDetails); err != nil {
		return nil, err
	}

	s.logger.WithField("booking_id", bookingID).Info("Booking updated")
	return booking, nil
}

// UpdateStatus applies a role-gated status transition
func (s *BookingService) UpdateStatus(bookingID uuid.UUID, rawStatus string, role models.Role) error {
	target, err := models.ParseBookingStatus(rawStatus)
	if err != nil {
		return err
	}

	booking, err := s.GetBookingDetail(bookingID)
	if err != nil {
		return err
	}

	if err := s.policy.CanTransition(role, target); err != nil {
		return err
	}

	if err := s.bookings.UpdateStatus(booking.ID, target); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"status":     target,
		"role":       role,
	}).Info("Booking status updated")
	return nil
}
