// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"time"

	catalogRepo "tablescout/database/repository/catalog"
	reservationRepo "tablescout/database/repository/reservation"
	"tablescout/models"

	"go.uber.org/zap"
)

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Catalog      catalogRepo.CatalogRepository
	Reservations reservationRepo.ReservationRepository
	Logger       *zap.Logger

	// WindowDays overrides the rolling availability window; zero means
	// DefaultWindowDays.
	WindowDays int

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return DefaultWindowDays
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// CreateReservation validates the booking fields, resolves the restaurant
// name from the catalog and appends a confirmed record to the store.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	if in.RestaurantID == "" {
		return nil, newValidationError("restaurantId", "is required")
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if err := validateTime(in.Time); err != nil {
		return nil, err
	}
	if in.PartySize <= 0 {
		return nil, newValidationError("partySize", "must be a positive integer")
	}

	restaurant, err := s.Catalog.GetByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, &NotFoundError{Resource: "restaurant", ID: in.RestaurantID}
	}

	res := &models.Reservation{
		RestaurantID:    restaurant.ID,
		RestaurantName:  restaurant.Name,
		Date:            in.Date,
		Time:            in.Time,
		PartySize:       in.PartySize,
		SpecialRequests: in.SpecialRequests,
	}
	if err := s.Reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger().Info("reservation created",
		zap.String("reservationId", res.ID),
		zap.String("restaurantId", res.RestaurantID),
		zap.String("date", res.Date),
		zap.String("time", res.Time),
	)
	return res, nil
}

// UpdateReservation merges the provided fields into an existing record.
// Fields that are present are validated; absent fields are left untouched.
func (s *DefaultBookingService) UpdateReservation(ctx context.Context, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	if patch.Date != nil {
		if err := validateDate(*patch.Date); err != nil {
			return nil, err
		}
	}
	if patch.Time != nil {
		if err := validateTime(*patch.Time); err != nil {
			return nil, err
		}
	}
	if patch.PartySize != nil && *patch.PartySize <= 0 {
		return nil, newValidationError("partySize", "must be a positive integer")
	}

	res, err := s.Reservations.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, &NotFoundError{Resource: "reservation", ID: id}
		}
		return nil, err
	}

	s.logger().Info("reservation updated", zap.String("reservationId", id))
	return res, nil
}

// CancelReservation flips the record to cancelled. Cancelling an already
// cancelled reservation is a no-op success; an unknown id reports found=false.
func (s *DefaultBookingService) CancelReservation(ctx context.Context, id string) (bool, error) {
	found, err := s.Reservations.Cancel(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		s.logger().Info("reservation cancelled", zap.String("reservationId", id))
	}
	return found, nil
}

// ListReservations returns the stored reservations partitioned into upcoming
// and past as of the service clock.
func (s *DefaultBookingService) ListReservations(ctx context.Context) (*ClassifiedReservations, error) {
	all, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	return Classify(all, s.now()), nil
}

func validateDate(date string) error {
	if date == "" {
		return newValidationError("date", "is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return newValidationError("date", "must be formatted YYYY-MM-DD")
	}
	return nil
}

func validateTime(hhmm string) error {
	if hhmm == "" {
		return newValidationError("time", "is required")
	}
	if _, err := minutesOfDay(hhmm); err != nil {
		return newValidationError("time", "must be formatted HH:MM")
	}
	return nil
}
