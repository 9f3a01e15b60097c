package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/hotel-booking-backend/internal/models"
)

// HotelStore is the persistence surface the status sweeper needs
type HotelStore interface {
	GetAll() ([]models.Hotel, error)
	UpdateStatusIfChanged(hotelID uuid.UUID, status models.HotelStatus) (bool, error)
}

// HotelStatusService periodically recomputes every hotel's open/closed status
// from its room types' availability. A hotel whose room types are all full is
// closed; a closed hotel with availability is reopened. Only hotels whose
// derived status differs from the stored one are written.
type HotelStatusService struct {
	hotels   HotelStore
	logger   *logrus.Logger
	cron     *cron.Cron
	interval time.Duration
}

// NewHotelStatusService creates a new hotel status sweeper
func NewHotelStatusService(hotels HotelStore, logger *logrus.Logger, interval time.Duration) *HotelStatusService {
	return &HotelStatusService{
		hotels:   hotels,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start schedules the recurring sweep
func (s *HotelStatusService) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("failed to schedule hotel status sweep: %w", err)
	}
	s.cron.Start()
	s.logger.WithField("interval", s.interval).Info("Hotel status sweeper started")
	return nil
}

// Stop stops the sweep and waits for a running cycle to finish
func (s *HotelStatusService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Hotel status sweeper stopped")
}

func (s *HotelStatusService) sweep() {
	hotels, err := s.hotels.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Hotel status sweep failed to list hotels")
		return
	}

	updated := 0
	for i := range hotels {
		hotel := &hotels[i]
		derived := hotel.DerivedStatus()
		if derived == hotel.Status {
			continue
		}
		changed, err := s.hotels.UpdateStatusIfChanged(hotel.ID, derived)
		if err != nil {
			s.logger.WithError(err).WithField("hotel_id", hotel.ID).Error("Failed to update hotel status")
			continue
		}
		if changed {
			updated++
			s.logger.WithFields(logrus.Fields{
				"hotel_id": hotel.ID,
				"status":   derived,
			}).Info("Hotel status updated by sweep")
		}
	}

	if updated > 0 {
		s.logger.WithField("count", updated).Info("Hotel status sweep cycle complete")
	}
}

// RunOnce runs a single sweep cycle (useful for testing or manual trigger)
func (s *HotelStatusService) RunOnce() {
	s.sweep()
}
