package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
	"github.com/stayhub/hotel-booking-backend/internal/models"
	"github.com/stayhub/hotel-booking-backend/pkg/jwt"
)

type fakeAuthUserStore struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeAuthUserStore() *fakeAuthUserStore {
	return &fakeAuthUserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (f *fakeAuthUserStore) add(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		FullName:     "Jamie Silva",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	f.byEmail[email] = user
	f.byID[user.ID] = user
	return user
}

func (f *fakeAuthUserStore) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeAuthUserStore) GetByID(userID uuid.UUID) (*models.User, error) {
	return f.byID[userID], nil
}

func (f *fakeAuthUserStore) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func newTestAuthService(users *fakeAuthUserStore) (*AuthService, *jwt.Service) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	jwtService := jwt.NewService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	return NewAuthService(users, jwtService, logger, bcrypt.MinCost), jwtService
}

func TestLogin(t *testing.T) {
	users := newFakeAuthUserStore()
	seeded := users.add(t, "jamie@example.com", "s3cret", models.RoleCustomer)
	svc, jwtService := newTestAuthService(users)

	user, tokens, err := svc.Login("jamie@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
	require.NotNil(t, tokens)

	claims, err := jwtService.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, string(models.RoleCustomer), claims.Role)

	_, err = jwtService.ValidateRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestRegister(t *testing.T) {
	users := newFakeAuthUserStore()
	svc, _ := newTestAuthService(users)

	user, err := svc.Register(&models.RegisterRequest{
		FullName: "Jamie Silva",
		Email:    "jamie@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role, "self-registration always yields a customer")
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	// The new account can log in straight away.
	_, tokens, err := svc.Login("jamie@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := newFakeAuthUserStore()
	users.add(t, "jamie@example.com", "s3cret", models.RoleCustomer)
	svc, _ := newTestAuthService(users)

	_, err := svc.Register(&models.RegisterRequest{
		FullName: "Other Jamie",
		Email:    "jamie@example.com",
		Password: "another-pass",
	})
	var invalid *apperrors.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, apperrors.KeyEmailTaken, invalid.Key)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeAuthUserStore()
	users.add(t, "jamie@example.com", "s3cret", models.RoleCustomer)
	svc, _ := newTestAuthService(users)

	_, _, err := svc.Login("jamie@example.com", "wrong")
	var denied *apperrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, apperrors.KeyInvalidCredentials, denied.Key)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(newFakeAuthUserStore())

	_, _, err := svc.Login("ghost@example.com", "s3cret")
	var denied *apperrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, apperrors.KeyInvalidCredentials, denied.Key, "unknown email and bad password are indistinguishable")
}

func TestRefresh_PicksUpRoleChange(t *testing.T) {
	users := newFakeAuthUserStore()
	user := users.add(t, "jamie@example.com", "s3cret", models.RoleCustomer)
	svc, jwtService := newTestAuthService(users)

	_, tokens, err := svc.Login("jamie@example.com", "s3cret")
	require.NoError(t, err)

	user.Role = models.RolePartner

	access, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, string(models.RolePartner), claims.Role)
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc, _ := newTestAuthService(newFakeAuthUserStore())

	_, err := svc.Refresh("not-a-token")
	var denied *apperrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
}

func TestRefresh_DeletedUser(t *testing.T) {
	users := newFakeAuthUserStore()
	user := users.add(t, "jamie@example.com", "s3cret", models.RoleCustomer)
	svc, _ := newTestAuthService(users)

	_, tokens, err := svc.Login("jamie@example.com", "s3cret")
	require.NoError(t, err)

	delete(users.byID, user.ID)

	_, err = svc.Refresh(tokens.RefreshToken)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
