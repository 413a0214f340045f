package tracking

import "time"

type FeedEvent struct {
	ID      string
	ChildID string

	Timestamp time.Time
	Type      FeedType

	// Solo breastfeeding.
	DurationMinutes *float64
	// Solo formula/pumped.
	Amount *float64
	Unit   VolumeUnit

	Notes     string
	CreatedAt time.Time
}

type DiaperEvent struct {
	ID      string
	ChildID string

	Timestamp time.Time
	Type      DiaperType

	Wetness     Wetness
	Consistency Consistency
	Color       StoolColor
	Quantity    Quantity

	Notes     string
	CreatedAt time.Time
}

// SleepEvent con EndTime nil = sueño en curso.
type SleepEvent struct {
	ID      string
	ChildID string

	StartTime time.Time
	EndTime   *time.Time
	Type      SleepType

	Notes     string
	CreatedAt time.Time
}

// Completed indica si la sesión terminó.
func (e SleepEvent) Completed() bool { return e.EndTime != nil }

// Duration de una sesión completada (0 si está en curso).
func (e SleepEvent) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}

type WeightEvent struct {
	ID      string
	ChildID string

	Timestamp time.Time
	Weight    float64
	Unit      WeightUnit

	Notes     string
	CreatedAt time.Time
}

type MedicineEvent struct {
	ID      string
	ChildID string

	Timestamp time.Time
	Name      string
	Dose      float64
	Unit      string // "ml", "mg", "drops", "IU"
	Frequency string // texto libre: "every 4-6 hours"

	Notes     string
	CreatedAt time.Time
}

type PumpingEvent struct {
	ID      string
	ChildID string

	Timestamp       time.Time
	Side            PumpSide
	Amount          float64
	Unit            VolumeUnit
	DurationMinutes *float64

	Notes     string
	CreatedAt time.Time
}

type TummyTimeEvent struct {
	ID      string
	ChildID string

	StartTime       time.Time
	DurationMinutes float64

	Notes     string
	CreatedAt time.Time
}
