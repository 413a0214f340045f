package tracking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
)

// WriteHook se invoca después de cada escritura exitosa (create/end/delete).
type WriteHook func(ctx context.Context, childID string)

type Service struct {
	repo  Repository
	now   func() time.Time
	hooks []WriteHook
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// OnWrite registra un hook (p.ej. invalidar el cache de insights).
func (s *Service) OnWrite(h WriteHook) {
	if h != nil {
		s.hooks = append(s.hooks, h)
	}
}

func (s *Service) written(ctx context.Context, childID string) {
	for _, h := range s.hooks {
		h(ctx, childID)
	}
}

func requireChild(childID string) error {
	if strings.TrimSpace(childID) == "" {
		return invalid("child id required")
	}
	return nil
}

func (s *Service) CreateFeed(ctx context.Context, childID string, e FeedEvent) (FeedEvent, error) {
	if err := requireChild(childID); err != nil {
		return FeedEvent{}, err
	}
	if err := validateFeed(e); err != nil {
		return FeedEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()
	if e.Type.IsBreastfeeding() {
		e.Unit = ""
	}

	if err := s.repo.CreateFeed(ctx, e); err != nil {
		return FeedEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

func (s *Service) CreateDiaper(ctx context.Context, childID string, e DiaperEvent) (DiaperEvent, error) {
	if err := requireChild(childID); err != nil {
		return DiaperEvent{}, err
	}
	if err := validateDiaper(e); err != nil {
		return DiaperEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()

	if err := s.repo.CreateDiaper(ctx, e); err != nil {
		return DiaperEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

func (s *Service) CreateSleep(ctx context.Context, childID string, e SleepEvent) (SleepEvent, error) {
	if err := requireChild(childID); err != nil {
		return SleepEvent{}, err
	}
	if err := validateSleep(e); err != nil {
		return SleepEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()

	if err := s.repo.CreateSleep(ctx, e); err != nil {
		return SleepEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

// EndSleep cierra un sueño en curso. end cero = ahora.
func (s *Service) EndSleep(ctx context.Context, childID, id string, end time.Time) (SleepEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SleepEvent{}, ErrInvalidInput
	}

	e, err := s.repo.GetSleep(ctx, id)
	if err != nil {
		return SleepEvent{}, err
	}
	if e.ChildID != childID {
		return SleepEvent{}, ErrNotFound
	}
	if e.EndTime != nil {
		return SleepEvent{}, invalid("sleep already ended")
	}

	if end.IsZero() {
		end = s.now()
	}
	if !end.After(e.StartTime) {
		return SleepEvent{}, invalid("end_time must be after start_time")
	}

	if err := s.repo.EndSleep(ctx, id, end); err != nil {
		return SleepEvent{}, err
	}
	e.EndTime = &end
	s.written(ctx, childID)
	return e, nil
}

func (s *Service) CreateWeight(ctx context.Context, childID string, e WeightEvent) (WeightEvent, error) {
	if err := requireChild(childID); err != nil {
		return WeightEvent{}, err
	}
	if err := validateWeight(e); err != nil {
		return WeightEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()

	if err := s.repo.CreateWeight(ctx, e); err != nil {
		return WeightEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

// CreateMedicine solo persiste; el chequeo de seguridad de dosis lo hace
// el paquete medicine antes de llamar aquí.
func (s *Service) CreateMedicine(ctx context.Context, childID string, e MedicineEvent) (MedicineEvent, error) {
	if err := requireChild(childID); err != nil {
		return MedicineEvent{}, err
	}
	if err := validateMedicine(e); err != nil {
		return MedicineEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Name = strings.TrimSpace(e.Name)
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()

	if err := s.repo.CreateMedicine(ctx, e); err != nil {
		return MedicineEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

func (s *Service) CreatePumping(ctx context.Context, childID string, e PumpingEvent) (PumpingEvent, error) {
	if err := requireChild(childID); err != nil {
		return PumpingEvent{}, err
	}
	if err := validatePumping(e); err != nil {
		return PumpingEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()

	if err := s.repo.CreatePumping(ctx, e); err != nil {
		return PumpingEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

func (s *Service) CreateTummyTime(ctx context.Context, childID string, e TummyTimeEvent) (TummyTimeEvent, error) {
	if err := requireChild(childID); err != nil {
		return TummyTimeEvent{}, err
	}
	if err := validateTummyTime(e); err != nil {
		return TummyTimeEvent{}, err
	}

	e.ID = uuid.NewString()
	e.ChildID = childID
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = s.now()

	if err := s.repo.CreateTummyTime(ctx, e); err != nil {
		return TummyTimeEvent{}, err
	}
	s.written(ctx, childID)
	return e, nil
}

func (s *Service) Delete(ctx context.Context, kind Kind, childID, id string) error {
	if !kind.Valid() || strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, kind, childID, strings.TrimSpace(id)); err != nil {
		return err
	}
	s.written(ctx, childID)
	return nil
}

// Lecturas por ventana. Son la interfaz angosta que consumen insights y medicine.

func (s *Service) ListFeeds(ctx context.Context, childID string, rng Range) ([]FeedEvent, error) {
	return s.repo.ListFeeds(ctx, childID, rng)
}

func (s *Service) ListDiapers(ctx context.Context, childID string, rng Range) ([]DiaperEvent, error) {
	return s.repo.ListDiapers(ctx, childID, rng)
}

func (s *Service) ListSleeps(ctx context.Context, childID string, rng Range) ([]SleepEvent, error) {
	return s.repo.ListSleeps(ctx, childID, rng)
}

func (s *Service) ListWeights(ctx context.Context, childID string, rng Range) ([]WeightEvent, error) {
	return s.repo.ListWeights(ctx, childID, rng)
}

func (s *Service) ListMedicines(ctx context.Context, childID string, rng Range) ([]MedicineEvent, error) {
	return s.repo.ListMedicines(ctx, childID, rng)
}

func (s *Service) ListPumpings(ctx context.Context, childID string, rng Range) ([]PumpingEvent, error) {
	return s.repo.ListPumpings(ctx, childID, rng)
}

func (s *Service) ListTummyTimes(ctx context.Context, childID string, rng Range) ([]TummyTimeEvent, error) {
	return s.repo.ListTummyTimes(ctx, childID, rng)
}
