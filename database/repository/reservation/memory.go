// File: database/repository/reservation/memory.go
package reservationRepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tablescout/models"
)

// memoryReservationRepo keeps the reservation collection in process memory.
// A mutex serializes mutations so the store stays consistent if it is ever
// driven by more than one goroutine; each mutation is a single atomic
// append, merge or status flip.
type memoryReservationRepo struct {
	mu           sync.Mutex
	reservations []models.Reservation
}

// NewMemoryReservationRepo constructs an empty in-memory store.
func NewMemoryReservationRepo() ReservationRepository {
	return &memoryReservationRepo{}
}

// NewSeededReservationRepo constructs a store pre-populated with the
// reference reservations.
func NewSeededReservationRepo() ReservationRepository {
	return &memoryReservationRepo{reservations: SeedReservations(time.Now())}
}

func (r *memoryReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.Status = models.ReservationConfirmed
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *memoryReservationRepo) Get(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrReservationNotFound
	}
	res := r.reservations[idx]
	return &res, nil
}

func (r *memoryReservationRepo) Update(ctx context.Context, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrReservationNotFound
	}

	res := &r.reservations[idx]
	if patch.Date != nil {
		res.Date = *patch.Date
	}
	if patch.Time != nil {
		res.Time = *patch.Time
	}
	if patch.PartySize != nil {
		res.PartySize = *patch.PartySize
	}
	if patch.SpecialRequests != nil {
		res.SpecialRequests = *patch.SpecialRequests
	}
	res.UpdatedAt = time.Now()

	out := *res
	return &out, nil
}

func (r *memoryReservationRepo) Cancel(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	// Repeated cancels are no-op successes; the record is kept for history.
	r.reservations[idx].Status = models.ReservationCancelled
	r.reservations[idx].UpdatedAt = time.Now()
	return true, nil
}

func (r *memoryReservationRepo) List(ctx context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}

func (r *memoryReservationRepo) ListByRestaurantAndDate(ctx context.Context, restaurantID, date string) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Reservation
	for _, res := range r.reservations {
		if res.RestaurantID == restaurantID && res.Date == date {
			out = append(out, res)
		}
	}
	return out, nil
}

// indexOf must be called with the mutex held.
func (r *memoryReservationRepo) indexOf(id string) int {
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			return i
		}
	}
	return -1
}
