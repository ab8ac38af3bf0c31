package reservationRepo

import (
	"context"
	"errors"
	"testing"

	"tablescout/models"
)

func TestCreateAssignsIdentity(t *testing.T) {
	store := NewMemoryReservationRepo()
	res := &models.Reservation{
		RestaurantID: "sakura-sushi",
		Date:         "2026-03-05",
		Time:         "19:00",
		PartySize:    2,
	}

	if err := store.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.ID == "" {
		t.Error("expected a generated ID")
	}
	if res.Status != models.ReservationConfirmed {
		t.Errorf("status = %q, want confirmed", res.Status)
	}
	if res.CreatedAt.IsZero() || res.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewMemoryReservationRepo()
	res := &models.Reservation{RestaurantID: "sakura-sushi", Date: "2026-03-05", Time: "19:00", PartySize: 2}
	if err := store.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.PartySize = 99

	again, _ := store.Get(context.Background(), res.ID)
	if again.PartySize != 2 {
		t.Errorf("mutating a returned record leaked into the store: partySize = %d", again.PartySize)
	}
}

func TestGetUnknown(t *testing.T) {
	store := NewMemoryReservationRepo()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("err = %v, want ErrReservationNotFound", err)
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	store := NewMemoryReservationRepo()
	res := &models.Reservation{
		RestaurantID:    "sakura-sushi",
		Date:            "2026-03-05",
		Time:            "19:00",
		PartySize:       2,
		SpecialRequests: "Window seat preferred",
	}
	if err := store.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTime := "20:30"
	updated, err := store.Update(context.Background(), res.ID, models.ReservationPatch{Time: &newTime})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Time != "20:30" {
		t.Errorf("time = %q, want 20:30", updated.Time)
	}
	if updated.Date != "2026-03-05" {
		t.Errorf("date changed by a time-only patch: %q", updated.Date)
	}
	if updated.PartySize != 2 || updated.SpecialRequests != "Window seat preferred" {
		t.Error("untouched fields changed by a time-only patch")
	}
}

func TestUpdateUnknown(t *testing.T) {
	store := NewMemoryReservationRepo()

	size := 4
	_, err := store.Update(context.Background(), "missing", models.ReservationPatch{PartySize: &size})
	if !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("err = %v, want ErrReservationNotFound", err)
	}
}

func TestCancelKeepsHistory(t *testing.T) {
	store := NewMemoryReservationRepo()
	res := &models.Reservation{RestaurantID: "sakura-sushi", Date: "2026-03-05", Time: "19:00", PartySize: 2}
	if err := store.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := store.Cancel(context.Background(), res.ID)
	if err != nil || !found {
		t.Fatalf("Cancel = (%v, %v), want (true, nil)", found, err)
	}

	// Cancel never deletes; the record survives with a flipped status.
	got, err := store.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("Get after Cancel: %v", err)
	}
	if got.Status != models.ReservationCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}

	found, err = store.Cancel(context.Background(), res.ID)
	if err != nil || !found {
		t.Fatalf("second Cancel = (%v, %v), want (true, nil)", found, err)
	}

	found, err = store.Cancel(context.Background(), "missing")
	if err != nil || found {
		t.Fatalf("Cancel of unknown id = (%v, %v), want (false, nil)", found, err)
	}
}

func TestListByRestaurantAndDate(t *testing.T) {
	store := NewMemoryReservationRepo()
	ctx := context.Background()
	seed := []models.Reservation{
		{RestaurantID: "sakura-sushi", Date: "2026-03-05", Time: "19:00", PartySize: 2},
		{RestaurantID: "sakura-sushi", Date: "2026-03-06", Time: "19:00", PartySize: 2},
		{RestaurantID: "bella-cucina", Date: "2026-03-05", Time: "20:00", PartySize: 4},
	}
	for i := range seed {
		if err := store.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := store.ListByRestaurantAndDate(ctx, "sakura-sushi", "2026-03-05")
	if err != nil {
		t.Fatalf("ListByRestaurantAndDate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reservations, want 1", len(got))
	}
	if got[0].Time != "19:00" {
		t.Errorf("time = %q, want 19:00", got[0].Time)
	}
}
