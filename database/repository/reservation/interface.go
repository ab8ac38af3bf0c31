// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"tablescout/models"
)

// ErrReservationNotFound is returned when no record has the given ID.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepository owns the canonical reservation collection. All reads
// and writes go through it; callers never hold a live reference into its
// state. Cancellation is a status flip, never a delete, so history is kept.
type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
	Get(ctx context.Context, id string) (*models.Reservation, error)
	Update(ctx context.Context, id string, patch models.ReservationPatch) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Reservation, error)
	ListByRestaurantAndDate(ctx context.Context, restaurantID, date string) ([]models.Reservation, error)
}
