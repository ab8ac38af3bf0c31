package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tablescout/models"
)

const (
	// SlotStepMinutes is the cadence at which candidate start times are laid
	// out, beginning at the restaurant's opening time.
	SlotStepMinutes = 30

	// DefaultWindowDays is the rolling availability window.
	DefaultWindowDays = 14

	// tablesPerSlot is the bookable table units each generated slot starts
	// with. Every slot is a single bookable unit; the restaurant's Capacity
	// field is stored catalog data only.
	tablesPerSlot = 1
)

// GenerateSlots lays out every candidate start time for r over the window of
// `days` calendar days beginning at from's date, ordered by date then time.
// It is pure: same inputs, same output, no store access.
//
// Start times tick every 30 minutes from opening time; the last start time t
// satisfies t + ReservationSlotDuration <= closing time. A day whose open
// window is shorter than one booking duration yields no slots. A closing time
// of "00:00" reads as minute zero, so such a restaurant never satisfies the
// bound and yields nothing.
func GenerateSlots(r models.Restaurant, from time.Time, days int) []models.Slot {
	openMinutes, err := minutesOfDay(r.OpeningTime)
	if err != nil {
		return nil
	}
	closeMinutes, err := minutesOfDay(r.ClosingTime)
	if err != nil {
		return nil
	}

	var slots []models.Slot
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		for t := openMinutes; t <= closeMinutes-r.ReservationSlotDuration; t += SlotStepMinutes {
			slots = append(slots, models.Slot{
				RestaurantID:    r.ID,
				Date:            date,
				Time:            formatMinutes(t),
				AvailableTables: tablesPerSlot,
			})
		}
	}
	return slots
}

// minutesOfDay parses an "HH:MM" 24-hour string into minutes from midnight.
func minutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", hhmm)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day %q out of range", hhmm)
	}
	return hour*60 + minute, nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
