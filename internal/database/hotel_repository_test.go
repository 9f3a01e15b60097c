package database

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/hotel-booking-backend/internal/models"
)

var hotelColumnNames = []string{"id", "partner_id", "name", "address", "status", "created_at", "updated_at"}

var roomTypeColumnNames = []string{"id", "hotel_id", "name", "price", "number_of_rooms", "status"}

func TestHotelRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	hotelID := uuid.New()
	partnerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM hotels WHERE id = $1`)).
		WithArgs(hotelID).
		WillReturnRows(sqlmock.NewRows(hotelColumnNames).
			AddRow(hotelID, partnerID, "Seaside Inn", "1 Beach Rd", models.HotelStatusActive, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM room_types`)).
		WithArgs(hotelID).
		WillReturnRows(sqlmock.NewRows(roomTypeColumnNames).
			AddRow(uuid.New(), hotelID, "Double", 120.0, 8, models.RoomTypeStatusAvailable).
			AddRow(uuid.New(), hotelID, "Suite", 340.0, 2, models.RoomTypeStatusFull))

	hotel, err := repo.GetByID(hotelID)
	require.NoError(t, err)
	require.NotNil(t, hotel)
	assert.Equal(t, "Seaside Inn", hotel.Name)
	assert.Len(t, hotel.RoomTypes, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	hotelID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM hotels WHERE id = $1`)).
		WithArgs(hotelID).
		WillReturnError(sql.ErrNoRows)

	hotel, err := repo.GetByID(hotelID)
	assert.NoError(t, err)
	assert.Nil(t, hotel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_GetRoomTypeByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	roomTypeID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM room_types`)).
		WithArgs(roomTypeID).
		WillReturnError(sql.ErrNoRows)

	roomType, err := repo.GetRoomTypeByID(roomTypeID)
	assert.NoError(t, err)
	assert.Nil(t, roomType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	hotel := &models.Hotel{
		PartnerID: uuid.New(),
		Name:      "Seaside Inn",
		Address:   "1 Beach Rd",
		RoomTypes: []models.RoomType{
			{Name: "Double", Price: 120.0, NumberOfRooms: 8},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO hotels`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO room_types`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(hotel))
	assert.NotEqual(t, uuid.Nil, hotel.ID)
	assert.Equal(t, models.HotelStatusActive, hotel.Status, "new hotels default to active")
	assert.Equal(t, models.RoomTypeStatusAvailable, hotel.RoomTypes[0].Status)
	assert.Equal(t, hotel.ID, hotel.RoomTypes[0].HotelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_UpdateStatusIfChanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHotelRepository(db)

	hotelID := uuid.New()

	t.Run("Changed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status <> $2`)).
			WithArgs(hotelID, models.HotelStatusClosed).
			WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := repo.UpdateStatusIfChanged(hotelID, models.HotelStatusClosed)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("AlreadyThere", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status <> $2`)).
			WithArgs(hotelID, models.HotelStatusClosed).
			WillReturnResult(sqlmock.NewResult(0, 0))

		changed, err := repo.UpdateStatusIfChanged(hotelID, models.HotelStatusClosed)
		require.NoError(t, err)
		assert.False(t, changed, "no-op writes are skipped at the database")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
