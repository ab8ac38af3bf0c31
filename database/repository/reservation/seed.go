// File: database/repository/reservation/seed.go
package reservationRepo

import (
	"time"

	"tablescout/models"
)

// SeedReservations returns the reference reservation history relative to now:
// two upcoming confirmed bookings and one completed past booking.
func SeedReservations(now time.Time) []models.Reservation {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []models.Reservation{
		{
			ID:              "res-101",
			RestaurantID:    "sakura-sushi",
			RestaurantName:  "Sakura Sushi",
			Date:            day(2),
			Time:            "19:00",
			PartySize:       2,
			SpecialRequests: "Window seat preferred",
			Status:          models.ReservationConfirmed,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "res-102",
			RestaurantID:    "bella-cucina",
			RestaurantName:  "Bella Cucina",
			Date:            day(7),
			Time:            "20:00",
			PartySize:       4,
			SpecialRequests: "Celebrating a birthday",
			Status:          models.ReservationConfirmed,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:             "res-103",
			RestaurantID:   "the-steakhouse",
			RestaurantName: "The Steakhouse",
			Date:           day(-5),
			Time:           "18:30",
			PartySize:      2,
			Status:         models.ReservationCompleted,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}
