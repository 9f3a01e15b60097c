package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stayhub/hotel-booking-backend/internal/middleware"
	"github.com/stayhub/hotel-booking-backend/internal/models"
	"github.com/stayhub/hotel-booking-backend/internal/services"
)

// BookingHandler handles booking lifecycle operations
type BookingHandler struct {
	bookingService  *services.BookingService
	defaultPageSize int
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *services.BookingService, defaultPageSize int) *BookingHandler {
	return &BookingHandler{
		bookingService:  bookingService,
		defaultPageSize: defaultPageSize,
	}
}

// CreateBooking creates a booking with a reservation hold. The endpoint is
// public so guests can book without an account; authenticated callers name
// their user id in the payload.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings returns a page of bookings scoped to the caller's role
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(h.defaultPageSize)))
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = h.defaultPageSize
	}

	bookings, err := h.bookingService.GetListBooking(userCtx.UserID, userCtx.Role, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"page":     page,
		"size":     size,
	})
}

// GetBooking returns a single booking with its detail lines
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetBookingDetail(bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking applies a partial field overwrite to a booking
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBooking(bookingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus applies a role-gated status transition
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.bookingService.UpdateStatus(bookingID, req.Status, userCtx.Role); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}
