// File: services/booking/classify.go
package booking

import (
	"time"

	"tablescout/models"
)

// Classify partitions reservations into upcoming and past as of now. This is
// a read-time view: stored status stays authoritative for confirmed and
// cancelled, and nothing here mutates store state.
//
// A reservation is upcoming when it is not cancelled and starts strictly
// after now; everything else, including one starting exactly at now, is past.
func Classify(reservations []models.Reservation, now time.Time) *ClassifiedReservations {
	out := &ClassifiedReservations{}
	for _, res := range reservations {
		startsAt := res.StartsAt(now.Location())
		if res.Status != models.ReservationCancelled && startsAt.After(now) {
			out.Upcoming = append(out.Upcoming, res)
		} else {
			out.Past = append(out.Past, res)
		}
	}
	return out
}
