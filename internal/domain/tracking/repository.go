package tracking

import (
	"context"
	"time"
)

// Range es la ventana de consulta; ambos extremos inclusivos.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains aplica los extremos inclusivos.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Repository es el event store. Todas las listas vuelven ordenadas
// DESC por su campo de tiempo (timestamp / start_time).
type Repository interface {
	CreateFeed(ctx context.Context, e FeedEvent) error
	ListFeeds(ctx context.Context, childID string, rng Range) ([]FeedEvent, error)

	CreateDiaper(ctx context.Context, e DiaperEvent) error
	ListDiapers(ctx context.Context, childID string, rng Range) ([]DiaperEvent, error)

	CreateSleep(ctx context.Context, e SleepEvent) error
	ListSleeps(ctx context.Context, childID string, rng Range) ([]SleepEvent, error)
	GetSleep(ctx context.Context, id string) (SleepEvent, error)
	EndSleep(ctx context.Context, id string, end time.Time) error

	CreateWeight(ctx context.Context, e WeightEvent) error
	ListWeights(ctx context.Context, childID string, rng Range) ([]WeightEvent, error)

	CreateMedicine(ctx context.Context, e MedicineEvent) error
	ListMedicines(ctx context.Context, childID string, rng Range) ([]MedicineEvent, error)

	CreatePumping(ctx context.Context, e PumpingEvent) error
	ListPumpings(ctx context.Context, childID string, rng Range) ([]PumpingEvent, error)

	CreateTummyTime(ctx context.Context, e TummyTimeEvent) error
	ListTummyTimes(ctx context.Context, childID string, rng Range) ([]TummyTimeEvent, error)

	// Delete borra un evento de la colección kind que pertenezca a childID.
	Delete(ctx context.Context, kind Kind, childID, id string) error
}
