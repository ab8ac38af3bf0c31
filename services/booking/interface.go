// File: services/booking/interface.go
package booking

import (
	"context"

	"tablescout/models"
)

// CreateReservationInput carries the fields a diner submits when booking.
type CreateReservationInput struct {
	RestaurantID    string `json:"restaurantId"`
	Date            string `json:"date"` // "YYYY-MM-DD"
	Time            string `json:"time"` // "HH:MM"
	PartySize       int    `json:"partySize"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// ClassifiedReservations is the read-time upcoming/past partition of the
// reservation list. It is derived per call and never stored.
type ClassifiedReservations struct {
	Upcoming []models.Reservation `json:"upcoming"`
	Past     []models.Reservation `json:"past"`
}

// BookingService is the availability and reservation engine.
type BookingService interface {
	// AvailableSlots returns the open slots for a restaurant on a date,
	// sorted ascending by time. excludeReservationID, when non-empty, names
	// a reservation being edited: its own booking does not count against
	// availability and its original slot is re-included on its original
	// date. An empty result is a valid no-availability state, not an error.
	AvailableSlots(ctx context.Context, restaurantID, date, excludeReservationID string) ([]models.Slot, error)

	CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, id string, patch models.ReservationPatch) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id string) (bool, error)
	ListReservations(ctx context.Context) (*ClassifiedReservations, error)
}
