package medicine

import (
	"context"
	"strings"
	"sync"
	"time"

	"tinytally/internal/domain/tracking"
)

// DoseStore: lectura + alta de dosis (tracking.Service).
type DoseStore interface {
	DoseReader
	CreateMedicine(ctx context.Context, childID string, e tracking.MedicineEvent) (tracking.MedicineEvent, error)
}

type Service struct {
	store   DoseStore
	checker *Checker

	// serializa check + create dentro del proceso
	mu sync.Mutex
}

func NewService(store DoseStore, checker *Checker) *Service {
	return &Service{store: store, checker: checker}
}

// LogResult: Blocked=true significa que no se registró nada.
type LogResult struct {
	Event    *tracking.MedicineEvent
	Warnings []Warning
	Blocked  bool
}

// Log registra una dosis si las reglas lo permiten. Para medicamentos del
// catálogo completa dose/unit/frequency vacíos con los valores del perfil.
func (s *Service) Log(ctx context.Context, childID string, e tracking.MedicineEvent) (LogResult, error) {
	if p, ok := LookupProfile(e.Name); ok {
		if e.Dose == 0 {
			e.Dose = p.DefaultDose
		}
		if strings.TrimSpace(e.Unit) == "" {
			e.Unit = p.Unit
		}
		if strings.TrimSpace(e.Frequency) == "" {
			e.Frequency = p.Frequency
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	warnings, err := s.checker.Check(ctx, childID, e.Name)
	if err != nil {
		return LogResult{}, err
	}
	if Blocking(warnings) {
		return LogResult{Warnings: warnings, Blocked: true}, nil
	}

	created, err := s.store.CreateMedicine(ctx, childID, e)
	if err != nil {
		return LogResult{}, err
	}
	return LogResult{Event: &created, Warnings: warnings}, nil
}

func (s *Service) Check(ctx context.Context, childID, name string) ([]Warning, error) {
	return s.checker.Check(ctx, childID, name)
}

func (s *Service) NextDoseTime(ctx context.Context, childID, name string) (*time.Time, error) {
	return s.checker.NextDoseTime(ctx, childID, name)
}
