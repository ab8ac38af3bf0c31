package models

// Restaurant is a catalog entry. Catalog data is reference data: it is seeded
// once at startup and never mutated during the life of the process.
type Restaurant struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Cuisine                 string   `json:"cuisine"`
	PriceRange              string   `json:"priceRange"` // "$".."$$$$"
	Rating                  float64  `json:"rating"`
	ReviewCount             int      `json:"reviewCount"`
	Address                 string   `json:"address"`
	Phone                   string   `json:"phone"`
	Website                 string   `json:"website"`
	Description             string   `json:"description"`
	Hours                   string   `json:"hours"` // display string, e.g. "Mon-Thu: 11:30am-10pm"
	Images                  []string `json:"images"`
	Featured                bool     `json:"featured"`
	Capacity                int      `json:"capacity"`                // max simultaneous covers (stored, not used in slot math)
	ReservationSlotDuration int      `json:"reservationSlotDuration"` // minutes a booking occupies
	OpeningTime             string   `json:"openingTime"`             // "HH:MM", 24-hour
	ClosingTime             string   `json:"closingTime"`             // "HH:MM", 24-hour
	Amenities               []string `json:"amenities"`
	PopularDishes           []string `json:"popularDishes"`
}

// Review is a guest review attached to a catalog entry.
type Review struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	UserName     string `json:"userName"`
	Rating       int    `json:"rating"` // 1..5
	Date         string `json:"date"`   // "YYYY-MM-DD"
	Content      string `json:"content"`
}
