// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tablescout/models"
	"tablescout/services/booking"
)

// BookingHandler serves slot availability and reservation CRUD.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{Service: service, Logger: logger}
}

// GetSlotsHandler returns the open slots for a restaurant on a date. The
// optional "exclude" parameter names a reservation being edited so its own
// booking does not count against availability.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	restaurantID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.Service.AvailableSlots(c.Request.Context(), restaurantID, date, c.Query("exclude"))
	if err != nil {
		h.respondError(c, err, "failed to resolve availability")
		return
	}

	// An empty day is a valid result, not an error.
	if slots == nil {
		slots = []models.Slot{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateReservationHandler books a table.
func (h *BookingHandler) CreateReservationHandler(c *gin.Context) {
	var input booking.CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.CreateReservation(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListReservationsHandler returns the diner's reservations partitioned into
// upcoming and past.
func (h *BookingHandler) ListReservationsHandler(c *gin.Context) {
	classified, err := h.Service.ListReservations(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, classified)
}

// UpdateReservationHandler merges the provided fields into an existing
// reservation.
func (h *BookingHandler) UpdateReservationHandler(c *gin.Context) {
	id := c.Param("id")
	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.UpdateReservation(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err, "failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservationHandler flips a reservation to cancelled. The record is
// kept; cancelling twice is a no-op success.
func (h *BookingHandler) CancelReservationHandler(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Service.CancelReservation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to cancel reservation")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ReservationCancelled})
}

func (h *BookingHandler) respondError(c *gin.Context, err error, fallback string) {
	var notFound *booking.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	var invalid *booking.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}
	h.Logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
