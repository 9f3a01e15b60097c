package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stayhub/hotel-booking-backend/internal/models"
)

// HotelRepository handles database operations for hotels and room types
type HotelRepository struct {
	db DB
}

// NewHotelRepository creates a new HotelRepository
func NewHotelRepository(db DB) *HotelRepository {
	return &HotelRepository{db: db}
}

const hotelColumns = `id, partner_id, name, address, status, created_at, updated_at`

// GetAll returns every hotel with its room types loaded
func (r *HotelRepository) GetAll() ([]models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels ORDER BY created_at`

	var hotels []models.Hotel
	if err := r.db.Select(&hotels, query); err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	for i := range hotels {
		roomTypes, err := r.getRoomTypes(hotels[i].ID)
		if err != nil {
			return nil, err
		}
		hotels[i].RoomTypes = roomTypes
	}
	return hotels, nil
}

// GetByID retrieves a hotel with its room types. Returns (nil, nil) when absent.
func (r *HotelRepository) GetByID(hotelID uuid.UUID) (*models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	var hotel models.Hotel
	err := r.db.Get(&hotel, query, hotelID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %w", err)
	}

	roomTypes, err := r.getRoomTypes(hotelID)
	if err != nil {
		return nil, err
	}
	hotel.RoomTypes = roomTypes
	return &hotel, nil
}

func (r *HotelRepository) getRoomTypes(hotelID uuid.UUID) ([]models.RoomType, error) {
	query := `
		SELECT id, hotel_id, name, price, number_of_rooms, status
		FROM room_types
		WHERE hotel_id = $1
		ORDER BY name`

	var roomTypes []models.RoomType
	if err := r.db.Select(&roomTypes, query, hotelID); err != nil {
		return nil, fmt.Errorf("failed to get room types: %w", err)
	}
	return roomTypes, nil
}

// GetRoomTypeByID retrieves a room type. Returns (nil, nil) when absent.
func (r *HotelRepository) GetRoomTypeByID(roomTypeID uuid.UUID) (*models.RoomType, error) {
	query := `
		SELECT id, hotel_id, name, price, number_of_rooms, status
		FROM room_types
		WHERE id = $1`

	var roomType models.RoomType
	err := r.db.Get(&roomType, query, roomTypeID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}
	return &roomType, nil
}

// Create inserts a hotel and its room types in a single transaction
func (r *HotelRepository) Create(hotel *models.Hotel) error {
	if hotel.ID == uuid.Nil {
		hotel.ID = uuid.New()
	}
	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now
	if hotel.Status == "" {
		hotel.Status = models.HotelStatusActive
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO hotels (` + hotelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.Exec(query,
		hotel.ID, hotel.PartnerID, hotel.Name, hotel.Address,
		hotel.Status, hotel.CreatedAt, hotel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert hotel: %w", err)
	}

	for i := range hotel.RoomTypes {
		rt := &hotel.RoomTypes[i]
		if rt.ID == uuid.Nil {
			rt.ID = uuid.New()
		}
		rt.HotelID = hotel.ID
		if rt.Status == "" {
			rt.Status = models.RoomTypeStatusAvailable
		}
		_, err = tx.Exec(`
			INSERT INTO room_types (id, hotel_id, name, price, number_of_rooms, status)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rt.ID, rt.HotelID, rt.Name, rt.Price, rt.NumberOfRooms, rt.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert room type: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit hotel: %w", err)
	}
	return nil
}

// Update overwrites hotel fields
func (r *HotelRepository) Update(hotel *models.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, address = $3, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.Exec(query, hotel.ID, hotel.Name, hotel.Address)
	if err != nil {
		return fmt.Errorf("failed to update hotel: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus sets a hotel's status unconditionally
func (r *HotelRepository) UpdateStatus(hotelID uuid.UUID, status models.HotelStatus) error {
	query := `UPDATE hotels SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(query, hotelID, status)
	if err != nil {
		return fmt.Errorf("failed to update hotel status: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatusIfChanged writes the status only when it differs from the stored
// one and reports whether a row was written. Keeps the sweep from rewriting
// the whole table every cycle.
func (r *HotelRepository) UpdateStatusIfChanged(hotelID uuid.UUID, status models.HotelStatus) (bool, error) {
	query := `
		UPDATE hotels
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status <> $2`

	result, err := r.db.Exec(query, hotelID, status)
	if err != nil {
		return false, fmt.Errorf("failed to update hotel status: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
