package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExpirationStore is the persistence surface the expiration sweep needs. The
// delete is conditional on the booking still being PENDING, which is the sole
// concurrency safeguard against a racing confirm or cancel.
type ExpirationStore interface {
	GetExpiredPendingIDs(limit int) ([]uuid.UUID, error)
	DeleteIfPending(bookingID uuid.UUID) (bool, error)
}

// BookingExpirationService reclaims unconfirmed reservation holds. It runs a
// single recurring sweep over the deadline index instead of arming one timer
// per booking, so the timer population stays bounded under load.
type BookingExpirationService struct {
	bookings  ExpirationStore
	logger    *logrus.Logger
	stopCh    chan struct{}
	interval  time.Duration
	batchSize int
}

// NewBookingExpirationService creates a new booking expiration service
func NewBookingExpirationService(
	bookings ExpirationStore,
	logger *logrus.Logger,
	interval time.Duration,
	batchSize int,
) *BookingExpirationService {
	return &BookingExpirationService{
		bookings:  bookings,
		logger:    logger,
		stopCh:    make(chan struct{}),
		interval:  interval,
		batchSize: batchSize,
	}
}

// Start begins the background expiration sweep
func (s *BookingExpirationService) Start() {
	s.logger.WithField("interval", s.interval).Info("Starting booking expiration service")
	go s.run()
}

// Stop stops the background expiration sweep
func (s *BookingExpirationService) Stop() {
	s.logger.Info("Stopping booking expiration service")
	close(s.stopCh)
}

func (s *BookingExpirationService) run() {
	// Run immediately on start
	s.processExpiredHolds()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.processExpiredHolds()
		case <-s.stopCh:
			s.logger.Info("Booking expiration service stopped")
			return
		}
	}
}

// processExpiredHolds deletes PENDING bookings whose hold has lapsed. A
// booking confirmed or cancelled between the read and the delete survives
// because the delete re-checks the status atomically.
func (s *BookingExpirationService) processExpiredHolds() {
	expired, err := s.bookings.GetExpiredPendingIDs(s.batchSize)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get expired pending bookings")
		return
	}

	if len(expired) == 0 {
		return
	}

	s.logger.WithField("count", len(expired)).Info("Processing expired reservation holds")

	for _, bookingID := range expired {
		deleted, err := s.bookings.DeleteIfPending(bookingID)
		if err != nil {
			s.logger.WithError(err).WithField("booking_id", bookingID).Error("Failed to expire booking")
			continue
		}
		if deleted {
			s.logger.WithField("booking_id", bookingID).Info("Deleted expired booking")
		}
	}
}

// RunOnce runs a single expiration cycle (useful for testing or manual trigger)
func (s *BookingExpirationService) RunOnce() {
	s.processExpiredHolds()
}
