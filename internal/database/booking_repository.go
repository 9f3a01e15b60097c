package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayhub/hotel-booking-backend/internal/models"
)

// BookingRepository handles database operations for bookings and their details
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	id, user_id, total_price, check_in_date, check_out_date, status,
	coupon_id, note, payment_method, full_name, phone_number, email,
	booking_date, expiration_date, created_at, updated_at`

// Create inserts a booking and its detail lines in a single transaction
func (r *BookingRepository) Create(booking *models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = tx.Exec(query,
		booking.ID, booking.UserID, booking.TotalPrice,
		booking.CheckInDate, booking.CheckOutDate, booking.Status,
		booking.CouponID, booking.Note, booking.PaymentMethod,
		booking.FullName, booking.PhoneNumber, booking.Email,
		booking.BookingDate, booking.ExpirationDate,
		booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	for i := range booking.Details {
		if err := insertDetail(tx, booking.ID, &booking.Details[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func insertDetail(e execer, bookingID uuid.UUID, detail *models.BookingDetail) error {
	if detail.ID == uuid.Nil {
		detail.ID = uuid.New()
	}
	detail.BookingID = bookingID

	query := `
		INSERT INTO booking_details (id, booking_id, room_type_id, price, number_of_rooms, total_money)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := e.Exec(query,
		detail.ID, detail.BookingID, detail.RoomTypeID,
		detail.Price, detail.NumberOfRooms, detail.TotalMoney,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking detail: %w", err)
	}
	return nil
}

// GetByID retrieves a booking with its details. Returns (nil, nil) when absent.
func (r *BookingRepository) GetByID(bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.Get(&booking, query, bookingID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	details, err := r.getDetails(bookingID)
	if err != nil {
		return nil, err
	}
	booking.Details = details
	return &booking, nil
}

func (r *BookingRepository) getDetails(bookingID uuid.UUID) ([]models.BookingDetail, error) {
	query := `
		SELECT id, booking_id, room_type_id, price, number_of_rooms, total_money
		FROM booking_details
		WHERE booking_id = $1
		ORDER BY id`

	var details []models.BookingDetail
	if err := r.db.Select(&details, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to get booking details: %w", err)
	}
	return details, nil
}

// Update overwrites booking fields. When replaceDetails is true the prior
// detail set is deleted and booking.Details inserted in its place, all within
// one transaction.
func (r *BookingRepository) Update(booking *models.Booking, replaceDetails bool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE bookings
		SET total_price = $2, check_in_date = $3, check_out_date = $4,
			coupon_id = $5, note = $6, payment_method = $7, updated_at = NOW()
		WHERE id = $1`

	_, err = tx.Exec(query,
		booking.ID, booking.TotalPrice, booking.CheckInDate, booking.CheckOutDate,
		booking.CouponID, booking.Note, booking.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if replaceDetails {
		if _, err := tx.Exec(`DELETE FROM booking_details WHERE booking_id = $1`, booking.ID); err != nil {
			return fmt.Errorf("failed to delete booking details: %w", err)
		}
		for i := range booking.Details {
			if err := insertDetail(tx, booking.ID, &booking.Details[i]); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking update: %w", err)
	}
	return nil
}

// UpdateStatus sets a booking's status
func (r *BookingRepository) UpdateStatus(bookingID uuid.UUID, status models.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(query, bookingID, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteIfPending deletes a booking only while it is still PENDING and reports
// whether a row was removed. The status check and the delete execute as one
// statement, so a concurrent confirm that commits first always wins.
func (r *BookingRepository) DeleteIfPending(bookingID uuid.UUID) (bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`DELETE FROM bookings WHERE id = $1 AND status = $2`,
		bookingID, models.BookingStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete pending booking: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.Exec(`DELETE FROM booking_details WHERE booking_id = $1`, bookingID); err != nil {
		return false, fmt.Errorf("failed to delete booking details: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit pending delete: %w", err)
	}
	return true, nil
}

// GetExpiredPendingIDs returns ids of PENDING bookings whose hold has lapsed,
// oldest deadline first, capped at limit.
func (r *BookingRepository) GetExpiredPendingIDs(limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM bookings
		WHERE status = $1 AND expiration_date < NOW()
		ORDER BY expiration_date
		LIMIT $2`

	var ids []uuid.UUID
	if err := r.db.Select(&ids, query, models.BookingStatusPending, limit); err != nil {
		return nil, fmt.Errorf("failed to get expired pending bookings: %w", err)
	}
	return ids, nil
}

// List returns all bookings, newest first, using offset pagination
func (r *BookingRepository) List(page, size int) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date DESC
		LIMIT $1 OFFSET $2`

	return r.selectBookings(query, size, page*size)
}

// ListByUserID returns a user's bookings, newest first
func (r *BookingRepository) ListByUserID(userID uuid.UUID, page, size int) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC
		LIMIT $2 OFFSET $3`

	return r.selectBookings(query, userID, size, page*size)
}

// ListByPartnerID returns bookings whose detail lines reference room types of
// hotels owned by the given partner, newest first.
func (r *BookingRepository) ListByPartnerID(partnerID uuid.UUID, page, size int) ([]models.Booking, error) {
	query := `
		SELECT DISTINCT b.id, b.user_id, b.total_price, b.check_in_date, b.check_out_date, b.status,
			b.coupon_id, b.note, b.payment_method, b.full_name, b.phone_number, b.email,
			b.booking_date, b.expiration_date, b.created_at, b.updated_at
		FROM bookings b
		JOIN booking_details bd ON bd.booking_id = b.id
		JOIN room_types rt ON rt.id = bd.room_type_id
		JOIN hotels h ON h.id = rt.hotel_id
		WHERE h.partner_id = $1
		ORDER BY b.booking_date DESC
		LIMIT $2 OFFSET $3`

	return r.selectBookings(query, partnerID, size, page*size)
}

func (r *BookingRepository) selectBookings(query string, args ...interface{}) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Select(&bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	for i := range bookings {
		details, err := r.getDetails(bookings[i].ID)
		if err != nil {
			return nil, err
		}
		bookings[i].Details = details
	}
	return bookings, nil
}
