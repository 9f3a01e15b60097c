package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stayhub/hotel-booking-backend/internal/apperrors"
	"github.com/stayhub/hotel-booking-backend/internal/database"
	"github.com/stayhub/hotel-booking-backend/internal/middleware"
	"github.com/stayhub/hotel-booking-backend/internal/models"
	"github.com/stayhub/hotel-booking-backend/internal/services"
)

// HotelHandler handles hotel CRUD operations
type HotelHandler struct {
	hotelRepo *database.HotelRepository
	policy    *services.PermissionPolicy
	logger    *logrus.Logger
}

// NewHotelHandler creates a new HotelHandler
func NewHotelHandler(hotelRepo *database.HotelRepository, policy *services.PermissionPolicy, logger *logrus.Logger) *HotelHandler {
	return &HotelHandler{
		hotelRepo: hotelRepo,
		policy:    policy,
		logger:    logger,
	}
}

// ListHotels returns all hotels with their room types
func (h *HotelHandler) ListHotels(c *gin.Context) {
	hotels, err := h.hotelRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GetHotel returns a single hotel with its room types
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel id"})
		return
	}

	hotel, err := h.hotelRepo.GetByID(hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	if hotel == nil {
		respondError(c, apperrors.NewNotFound(apperrors.KeyHotelNotFound, "hotel"))
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// CreateHotel creates a hotel owned by the calling partner
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	hotel := &models.Hotel{
		PartnerID: userCtx.UserID,
		Name:      req.Name,
		Address:   req.Address,
		Status:    models.HotelStatusActive,
	}
	for _, rt := range req.RoomTypes {
		hotel.RoomTypes = append(hotel.RoomTypes, models.RoomType{
			Name:          rt.Name,
			Price:         rt.Price,
			NumberOfRooms: rt.NumberOfRooms,
			Status:        models.RoomTypeStatusAvailable,
		})
	}

	if err := h.hotelRepo.Create(hotel); err != nil {
		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"hotel_id":   hotel.ID,
		"partner_id": hotel.PartnerID,
	}).Info("Hotel created")

	c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel applies a partial field overwrite to a hotel. Partners may only
// update their own hotels; admins may update any.
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel id"})
		return
	}

	var req models.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	hotel, err := h.hotelRepo.GetByID(hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	if hotel == nil {
		respondError(c, apperrors.NewNotFound(apperrors.KeyHotelNotFound, "hotel"))
		return
	}

	if userCtx.Role != models.RoleAdmin && hotel.PartnerID != userCtx.UserID {
		respondError(c, apperrors.NewPermissionDenied(apperrors.KeyHotelStatusDenied, "hotel belongs to a different partner"))
		return
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}

	if err := h.hotelRepo.Update(hotel); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// UpdateHotelStatus sets a hotel's status, gated by role and ownership
func (h *HotelHandler) UpdateHotelStatus(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel id"})
		return
	}

	var req models.UpdateHotelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	status, ok := models.ParseHotelStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel status: " + req.Status})
		return
	}

	if err := h.policy.CanSetHotelStatus(userCtx.Role); err != nil {
		respondError(c, err)
		return
	}

	hotel, err := h.hotelRepo.GetByID(hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	if hotel == nil {
		respondError(c, apperrors.NewNotFound(apperrors.KeyHotelNotFound, "hotel"))
		return
	}

	if userCtx.Role == models.RolePartner && hotel.PartnerID != userCtx.UserID {
		respondError(c, apperrors.NewPermissionDenied(apperrors.KeyHotelStatusDenied, "hotel belongs to a different partner"))
		return
	}

	if err := h.hotelRepo.UpdateStatus(hotelID, status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hotel status updated"})
}
