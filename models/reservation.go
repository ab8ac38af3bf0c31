package models

import "time"

// Reservation statuses. Confirmed and cancelled are the only transitions this
// system performs; completed appears on historical records asserted by the
// data source.
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Reservation represents a booked table.
type Reservation struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurantId"`
	RestaurantName  string    `json:"restaurantName"`
	Date            string    `json:"date"` // "YYYY-MM-DD"
	Time            string    `json:"time"` // "HH:MM"
	PartySize       int       `json:"partySize"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationPatch carries a partial update. Nil fields are left untouched.
// ID, RestaurantID and RestaurantName are immutable after creation and have
// no patch fields; status moves only through cancellation.
type ReservationPatch struct {
	Date            *string `json:"date,omitempty"`
	Time            *string `json:"time,omitempty"`
	PartySize       *int    `json:"partySize,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// StartsAt resolves the reservation's date and time to a wall-clock instant
// in loc. The zero time is returned when either field is malformed.
func (r Reservation) StartsAt(loc *time.Location) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
