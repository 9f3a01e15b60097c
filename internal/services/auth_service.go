package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
	"github.com/stayhub/hotel-booking-backend/internal/models"
	"github.com/stayhub/hotel-booking-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthUserStore looks up and creates accounts for credential flows
type AuthUserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(userID uuid.UUID) (*models.User, error)
	Create(user *models.User) error
}

// TokenPair is an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService verifies credentials, creates accounts and issues tokens
type AuthService struct {
	users      AuthUserStore
	jwtService *jwt.Service
	logger     *logrus.Logger
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(users AuthUserStore, jwtService *jwt.Service, logger *logrus.Logger, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Register creates a customer account with a hashed password
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidation(apperrors.KeyEmailTaken, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login verifies an email/password pair and issues a token pair
func (s *AuthService) Login(email, password string) (*models.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperrors.NewPermissionDenied(apperrors.KeyInvalidCredentials, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("email", email).Warn("Login failed: bad password")
		return nil, nil, apperrors.NewPermissionDenied(apperrors.KeyInvalidCredentials, "invalid email or password")
	}

	access, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in")
	return user, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token and issues a fresh access token. The
// user's current role is re-read so role changes take effect on refresh.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.NewPermissionDenied(apperrors.KeyInvalidCredentials, "invalid refresh token")
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.NewNotFound(apperrors.KeyUserNotFound, "user")
	}

	return s.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
}
