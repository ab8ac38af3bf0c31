package models

// Slot is a candidate reservation start time for a restaurant on a given day.
// Slots are derived on demand and never persisted.
type Slot struct {
	RestaurantID    string `json:"restaurantId"`
	Date            string `json:"date"`            // "YYYY-MM-DD"
	Time            string `json:"time"`            // "HH:MM", 24-hour; lexical order equals chronological order
	AvailableTables int    `json:"availableTables"` // remaining bookable table units at this start time
}
