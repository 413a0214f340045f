package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"tinytally/internal/domain/tracking"
)

// collection guarda una colección de eventos por ID.
// at devuelve el campo de tiempo por el que se filtra y ordena.
type collection[T any] struct {
	byID  map[string]T
	child func(T) string
	id    func(T) string
	at    func(T) time.Time
}

func newCollection[T any](id, child func(T) string, at func(T) time.Time) *collection[T] {
	return &collection[T]{byID: make(map[string]T), id: id, child: child, at: at}
}

func (c *collection[T]) create(e T) error {
	id := c.id(e)
	if strings.TrimSpace(id) == "" {
		return errors.New("event id required")
	}
	if _, exists := c.byID[id]; exists {
		return errors.New("event already exists")
	}
	c.byID[id] = e
	return nil
}

func (c *collection[T]) list(childID string, rng tracking.Range) []T {
	out := make([]T, 0)
	for _, e := range c.byID {
		if c.child(e) != childID {
			continue
		}
		if !rng.Contains(c.at(e)) {
			continue
		}
		out = append(out, e)
	}

	// Orden por tiempo desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return c.at(out[i]).After(c.at(out[j]))
	})
	return out
}

func (c *collection[T]) delete(childID, id string) error {
	e, ok := c.byID[id]
	if !ok || c.child(e) != childID {
		return tracking.ErrNotFound
	}
	delete(c.byID, id)
	return nil
}

type trackingRepo struct {
	mu sync.RWMutex

	feeds      *collection[tracking.FeedEvent]
	diapers    *collection[tracking.DiaperEvent]
	sleeps     *collection[tracking.SleepEvent]
	weights    *collection[tracking.WeightEvent]
	medicines  *collection[tracking.MedicineEvent]
	pumpings   *collection[tracking.PumpingEvent]
	tummyTimes *collection[tracking.TummyTimeEvent]
}

func NewTrackingRepo() tracking.Repository {
	return &trackingRepo{
		feeds: newCollection(
			func(e tracking.FeedEvent) string { return e.ID },
			func(e tracking.FeedEvent) string { return e.ChildID },
			func(e tracking.FeedEvent) time.Time { return e.Timestamp },
		),
		diapers: newCollection(
			func(e tracking.DiaperEvent) string { return e.ID },
			func(e tracking.DiaperEvent) string { return e.ChildID },
			func(e tracking.DiaperEvent) time.Time { return e.Timestamp },
		),
		sleeps: newCollection(
			func(e tracking.SleepEvent) string { return e.ID },
			func(e tracking.SleepEvent) string { return e.ChildID },
			func(e tracking.SleepEvent) time.Time { return e.StartTime },
		),
		weights: newCollection(
			func(e tracking.WeightEvent) string { return e.ID },
			func(e tracking.WeightEvent) string { return e.ChildID },
			func(e tracking.WeightEvent) time.Time { return e.Timestamp },
		),
		medicines: newCollection(
			func(e tracking.MedicineEvent) string { return e.ID },
			func(e tracking.MedicineEvent) string { return e.ChildID },
			func(e tracking.MedicineEvent) time.Time { return e.Timestamp },
		),
		pumpings: newCollection(
			func(e tracking.PumpingEvent) string { return e.ID },
			func(e tracking.PumpingEvent) string { return e.ChildID },
			func(e tracking.PumpingEvent) time.Time { return e.Timestamp },
		),
		tummyTimes: newCollection(
			func(e tracking.TummyTimeEvent) string { return e.ID },
			func(e tracking.TummyTimeEvent) string { return e.ChildID },
			func(e tracking.TummyTimeEvent) time.Time { return e.StartTime },
		),
	}
}

func (r *trackingRepo) CreateFeed(ctx context.Context, e tracking.FeedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feeds.create(e)
}

func (r *trackingRepo) ListFeeds(ctx context.Context, childID string, rng tracking.Range) ([]tracking.FeedEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.feeds.list(childID, rng), nil
}

func (r *trackingRepo) CreateDiaper(ctx context.Context, e tracking.DiaperEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.diapers.create(e)
}

func (r *trackingRepo) ListDiapers(ctx context.Context, childID string, rng tracking.Range) ([]tracking.DiaperEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.diapers.list(childID, rng), nil
}

func (r *trackingRepo) CreateSleep(ctx context.Context, e tracking.SleepEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sleeps.create(e)
}

func (r *trackingRepo) ListSleeps(ctx context.Context, childID string, rng tracking.Range) ([]tracking.SleepEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sleeps.list(childID, rng), nil
}

func (r *trackingRepo) GetSleep(ctx context.Context, id string) (tracking.SleepEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sleeps.byID[id]
	if !ok {
		return tracking.SleepEvent{}, tracking.ErrNotFound
	}
	return e, nil
}

func (r *trackingRepo) EndSleep(ctx context.Context, id string, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sleeps.byID[id]
	if !ok {
		return tracking.ErrNotFound
	}
	e.EndTime = &end
	r.sleeps.byID[id] = e
	return nil
}

func (r *trackingRepo) CreateWeight(ctx context.Context, e tracking.WeightEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.weights.create(e)
}

func (r *trackingRepo) ListWeights(ctx context.Context, childID string, rng tracking.Range) ([]tracking.WeightEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.weights.list(childID, rng), nil
}

func (r *trackingRepo) CreateMedicine(ctx context.Context, e tracking.MedicineEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.medicines.create(e)
}

func (r *trackingRepo) ListMedicines(ctx context.Context, childID string, rng tracking.Range) ([]tracking.MedicineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.medicines.list(childID, rng), nil
}

func (r *trackingRepo) CreatePumping(ctx context.Context, e tracking.PumpingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pumpings.create(e)
}

func (r *trackingRepo) ListPumpings(ctx context.Context, childID string, rng tracking.Range) ([]tracking.PumpingEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pumpings.list(childID, rng), nil
}

func (r *trackingRepo) CreateTummyTime(ctx context.Context, e tracking.TummyTimeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tummyTimes.create(e)
}

func (r *trackingRepo) ListTummyTimes(ctx context.Context, childID string, rng tracking.Range) ([]tracking.TummyTimeEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tummyTimes.list(childID, rng), nil
}

func (r *trackingRepo) Delete(ctx context.Context, kind tracking.Kind, childID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch kind {
	case tracking.KindFeed:
		return r.feeds.delete(childID, id)
	case tracking.KindDiaper:
		return r.diapers.delete(childID, id)
	case tracking.KindSleep:
		return r.sleeps.delete(childID, id)
	case tracking.KindWeight:
		return r.weights.delete(childID, id)
	case tracking.KindMedicine:
		return r.medicines.delete(childID, id)
	case tracking.KindPumping:
		return r.pumpings.delete(childID, id)
	case tracking.KindTummyTime:
		return r.tummyTimes.delete(childID, id)
	default:
		return tracking.ErrInvalidInput
	}
}
