package medicine

import (
	"context"
	"fmt"
	"math"
	"time"

	"tinytally/internal/domain/tracking"
	"tinytally/internal/platform/logger"
)

type WarningType string

const (
	WarningDailyLimit WarningType = "daily_limit"
	WarningTooSoon    WarningType = "too_soon"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type Warning struct {
	Type     WarningType `json:"type"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}

// Blocking: cualquier warning high impide registrar la dosis.
func Blocking(warnings []Warning) bool {
	for _, w := range warnings {
		if w.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// DoseReader es la lectura de dosis registradas (tracking.Service la implementa).
type DoseReader interface {
	ListMedicines(ctx context.Context, childID string, rng tracking.Range) ([]tracking.MedicineEvent, error)
}

// Checker evalúa las reglas de dosis sobre el día calendario local.
// No guarda estado: cada llamada relee las dosis de hoy.
type Checker struct {
	reader DoseReader
	now    func() time.Time
	loc    *time.Location
	log    logger.Logger
}

func NewChecker(reader DoseReader, loc *time.Location, log logger.Logger) *Checker {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Checker{reader: reader, now: time.Now, loc: loc, log: log}
}

// todaysDoses devuelve las dosis de hoy con ese nombre, más reciente primero.
func (c *Checker) todaysDoses(ctx context.Context, childID, name string, now time.Time) ([]tracking.MedicineEvent, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
	rng := tracking.Range{From: start, To: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}

	all, err := c.reader.ListMedicines(ctx, childID, rng)
	if err != nil {
		c.log.Error("medicine doses read failed", map[string]any{"child_id": childID, "err": err})
		return nil, fmt.Errorf("list doses: %w", err)
	}

	out := make([]tracking.MedicineEvent, 0, len(all))
	for _, d := range all {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out, nil
}

func latest(doses []tracking.MedicineEvent) time.Time {
	var last time.Time
	for _, d := range doses {
		if d.Timestamp.After(last) {
			last = d.Timestamp
		}
	}
	return last
}

// Check devuelve nil si no hay advertencias o si el medicamento no está en el catálogo.
func (c *Checker) Check(ctx context.Context, childID, name string) ([]Warning, error) {
	p, ok := LookupProfile(name)
	if !ok {
		return nil, nil
	}

	now := c.now().In(c.loc)
	doses, err := c.todaysDoses(ctx, childID, p.Name, now)
	if err != nil {
		return nil, err
	}
	if len(doses) == 0 {
		return nil, nil
	}

	var warnings []Warning
	if len(doses) >= p.MaxDailyDoses {
		warnings = append(warnings, Warning{
			Type:     WarningDailyLimit,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("Daily limit reached: %d of %d doses of %s given today.", len(doses), p.MaxDailyDoses, p.Name),
		})
	}

	elapsed := now.Sub(latest(doses)).Hours()
	if elapsed < p.MinHoursBetween {
		sev := SeverityMedium
		if elapsed < p.MinHoursBetween/2 {
			sev = SeverityHigh
		}
		wait := time.Duration((p.MinHoursBetween - elapsed) * float64(time.Hour))
		warnings = append(warnings, Warning{
			Type:     WarningTooSoon,
			Severity: sev,
			Message:  fmt.Sprintf("Too soon: wait %s before the next dose of %s.", formatWait(wait), p.Name),
		})
	}
	return warnings, nil
}

// NextDoseTime: nil para medicamentos fuera del catálogo; now si no hubo
// dosis hoy; si no, última dosis + intervalo mínimo.
func (c *Checker) NextDoseTime(ctx context.Context, childID, name string) (*time.Time, error) {
	p, ok := LookupProfile(name)
	if !ok {
		return nil, nil
	}

	now := c.now().In(c.loc)
	doses, err := c.todaysDoses(ctx, childID, p.Name, now)
	if err != nil {
		return nil, err
	}
	if len(doses) == 0 {
		return &now, nil
	}

	next := latest(doses).Add(time.Duration(p.MinHoursBetween * float64(time.Hour))).In(c.loc)
	return &next, nil
}

func formatWait(d time.Duration) string {
	mins := int(math.Ceil(d.Minutes()))
	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
