package booking

import (
	"testing"
	"time"

	"tablescout/models"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.Local)

	tests := []struct {
		name         string
		reservation  models.Reservation
		wantUpcoming bool
	}{
		{
			name: "futureConfirmed",
			reservation: models.Reservation{
				Date: "2026-03-04", Time: "19:00",
				Status: models.ReservationConfirmed,
			},
			wantUpcoming: true,
		},
		{
			name: "laterToday",
			reservation: models.Reservation{
				Date: "2026-03-02", Time: "19:30",
				Status: models.ReservationConfirmed,
			},
			wantUpcoming: true,
		},
		{
			name: "exactlyNowIsPast",
			reservation: models.Reservation{
				Date: "2026-03-02", Time: "19:00",
				Status: models.ReservationConfirmed,
			},
			wantUpcoming: false,
		},
		{
			name: "earlierToday",
			reservation: models.Reservation{
				Date: "2026-03-02", Time: "12:00",
				Status: models.ReservationConfirmed,
			},
			wantUpcoming: false,
		},
		{
			name: "cancelledFutureIsPast",
			reservation: models.Reservation{
				Date: "2026-03-09", Time: "20:00",
				Status: models.ReservationCancelled,
			},
			wantUpcoming: false,
		},
		{
			name: "completedHistorical",
			reservation: models.Reservation{
				Date: "2026-02-20", Time: "18:30",
				Status: models.ReservationCompleted,
			},
			wantUpcoming: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Classify([]models.Reservation{tt.reservation}, now)
			gotUpcoming := len(out.Upcoming) == 1
			if gotUpcoming != tt.wantUpcoming {
				t.Errorf("upcoming = %v, want %v", gotUpcoming, tt.wantUpcoming)
			}
			if len(out.Upcoming)+len(out.Past) != 1 {
				t.Errorf("every reservation must land in exactly one bucket")
			}
		})
	}
}

func TestClassifyKeepsStoredStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 19, 0, 0, 0, time.Local)
	res := models.Reservation{
		Date: "2026-02-01", Time: "19:00",
		Status: models.ReservationConfirmed,
	}

	out := Classify([]models.Reservation{res}, now)
	if len(out.Past) != 1 {
		t.Fatal("expected a past classification")
	}
	// Classification is a view: the stored status is untouched.
	if out.Past[0].Status != models.ReservationConfirmed {
		t.Errorf("status = %q, classification must not rewrite it", out.Past[0].Status)
	}
}
