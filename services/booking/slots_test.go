package booking

import (
	"testing"
	"time"

	"tablescout/models"
)

func testRestaurant() models.Restaurant {
	return models.Restaurant{
		ID:                      "bella-cucina",
		Name:                    "Bella Cucina",
		OpeningTime:             "11:30",
		ClosingTime:             "22:00",
		ReservationSlotDuration: 90,
	}
}

func TestGenerateSlotsBounds(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	slots := GenerateSlots(testRestaurant(), from, 1)

	if len(slots) == 0 {
		t.Fatal("expected slots, got none")
	}
	if got := slots[0].Time; got != "11:30" {
		t.Errorf("first slot = %s, want 11:30", got)
	}
	// 20:30 + 90min = 22:00 exactly; nothing later fits.
	if got := slots[len(slots)-1].Time; got != "20:30" {
		t.Errorf("last slot = %s, want 20:30", got)
	}
	for _, s := range slots {
		if s.Time >= "21:00" {
			t.Errorf("slot %s starts too late to finish by closing", s.Time)
		}
		if s.AvailableTables != 1 {
			t.Errorf("slot %s availableTables = %d, want 1", s.Time, s.AvailableTables)
		}
	}
}

func TestGenerateSlotsCadence(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	slots := GenerateSlots(testRestaurant(), from, 1)

	for i := 1; i < len(slots); i++ {
		prev, err := minutesOfDay(slots[i-1].Time)
		if err != nil {
			t.Fatalf("bad slot time %q: %v", slots[i-1].Time, err)
		}
		cur, err := minutesOfDay(slots[i].Time)
		if err != nil {
			t.Fatalf("bad slot time %q: %v", slots[i].Time, err)
		}
		if cur-prev != SlotStepMinutes {
			t.Errorf("gap between %s and %s = %d minutes, want %d",
				slots[i-1].Time, slots[i].Time, cur-prev, SlotStepMinutes)
		}
	}
}

func TestGenerateSlotsWindow(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	slots := GenerateSlots(testRestaurant(), from, DefaultWindowDays)

	dates := make(map[string]bool)
	for _, s := range slots {
		dates[s.Date] = true
	}
	if len(dates) != DefaultWindowDays {
		t.Errorf("distinct dates = %d, want %d", len(dates), DefaultWindowDays)
	}
	if !dates["2026-03-02"] {
		t.Error("window should start at the from date")
	}
	if !dates["2026-03-15"] {
		t.Error("window should cover the 14th day")
	}
	if dates["2026-03-16"] {
		t.Error("window should not extend past the 14th day")
	}
}

func TestGenerateSlotsOrdering(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	slots := GenerateSlots(testRestaurant(), from, 3)

	for i := 1; i < len(slots); i++ {
		prev := slots[i-1].Date + " " + slots[i-1].Time
		cur := slots[i].Date + " " + slots[i].Time
		if cur <= prev {
			t.Fatalf("slots out of order: %s before %s", prev, cur)
		}
	}
}

func TestGenerateSlotsShortDay(t *testing.T) {
	r := models.Restaurant{
		ID:                      "pop-up",
		OpeningTime:             "18:00",
		ClosingTime:             "19:00",
		ReservationSlotDuration: 90,
	}
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	if slots := GenerateSlots(r, from, 2); len(slots) != 0 {
		t.Errorf("window shorter than one duration should yield no slots, got %d", len(slots))
	}
}

func TestGenerateSlotsMidnightClose(t *testing.T) {
	// Taco Loco's "00:00" closing time reads as minute zero, so no start
	// time ever satisfies the closing bound.
	r := models.Restaurant{
		ID:                      "taco-loco",
		OpeningTime:             "11:00",
		ClosingTime:             "00:00",
		ReservationSlotDuration: 60,
	}
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	if slots := GenerateSlots(r, from, 14); len(slots) != 0 {
		t.Errorf("a midnight closing time should yield no slots, got %d", len(slots))
	}
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "11:30", want: 690},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := minutesOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("minutesOfDay(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("minutesOfDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("minutesOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
