// File: services/booking/availability.go
package booking

import (
	"context"
	"sort"

	"tablescout/models"
)

// AvailableSlots reconciles the generated slot sequence for (restaurant,
// date) against the reservation store and returns the slots that still have
// a free table, ascending by time.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, restaurantID, date, excludeReservationID string) ([]models.Slot, error) {
	restaurant, err := s.Catalog.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, &NotFoundError{Resource: "restaurant", ID: restaurantID}
	}

	var daySlots []models.Slot
	for _, slot := range GenerateSlots(*restaurant, s.now(), s.windowDays()) {
		if slot.Date == date {
			daySlots = append(daySlots, slot)
		}
	}

	existing, err := s.Reservations.ListByRestaurantAndDate(ctx, restaurantID, date)
	if err != nil {
		return nil, err
	}

	// Count active bookings per start time. The reservation being edited
	// does not count against its own slot.
	booked := make(map[string]int)
	for _, res := range existing {
		if res.ID == excludeReservationID || res.Status == models.ReservationCancelled {
			continue
		}
		booked[res.Time]++
	}

	open := daySlots[:0]
	for _, slot := range daySlots {
		slot.AvailableTables -= booked[slot.Time]
		if slot.AvailableTables < 0 {
			slot.AvailableTables = 0
		}
		if slot.AvailableTables > 0 {
			open = append(open, slot)
		}
	}

	if excludeReservationID != "" {
		open = s.withEditedSlot(ctx, open, restaurantID, date, excludeReservationID)
	}

	// Synthesis appends out of order; "HH:MM" sorts lexically chronological.
	sort.Slice(open, func(i, j int) bool { return open[i].Time < open[j].Time })
	return open, nil
}

// withEditedSlot re-includes the edited reservation's original start time
// when the requested date is its stored date and that time was filtered out
// (it is fully booked by the reservation itself). Done as post-processing so
// the generator stays pure.
func (s *DefaultBookingService) withEditedSlot(ctx context.Context, open []models.Slot, restaurantID, date, reservationID string) []models.Slot {
	edited, err := s.Reservations.Get(ctx, reservationID)
	if err != nil {
		// Unknown exclude IDs simply match no reservation.
		return open
	}
	if edited.RestaurantID != restaurantID || edited.Date != date {
		return open
	}
	for _, slot := range open {
		if slot.Time == edited.Time {
			return open
		}
	}
	return append(open, models.Slot{
		RestaurantID:    restaurantID,
		Date:            date,
		Time:            edited.Time,
		AvailableTables: tablesPerSlot,
	})
}
