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

var userColumnNames = []string{"id", "full_name", "phone", "email", "password_hash", "role", "status", "created_at", "updated_at"}

func userRow(userID uuid.UUID, fullName string, role models.Role) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumnNames).AddRow(
		userID, fullName, nil, "jamie@example.com", "$2a$10$hash", role, "active", now, now,
	)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs(userID).
		WillReturnRows(userRow(userID, "Jamie Silva", models.RoleCustomer))

	user, err := repo.GetByID(userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByEmail("ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetGuest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	guestID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE full_name = $1 LIMIT 1`)).
		WithArgs(models.GuestFullName).
		WillReturnRows(userRow(guestID, models.GuestFullName, models.RoleCustomer))

	guest, err := repo.GetGuest()
	require.NoError(t, err)
	require.NotNil(t, guest)
	assert.Equal(t, guestID, guest.ID)
	assert.True(t, guest.IsGuest())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetGuest_NotSeeded(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE full_name = $1 LIMIT 1`)).
		WithArgs(models.GuestFullName).
		WillReturnError(sql.ErrNoRows)

	guest, err := repo.GetGuest()
	assert.NoError(t, err)
	assert.Nil(t, guest)
	assert.NoError(t, mock.ExpectationsWereMet())
}
