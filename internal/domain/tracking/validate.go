package tracking

import (
	"fmt"
	"strings"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func validateFeed(e FeedEvent) error {
	if e.Timestamp.IsZero() {
		return invalid("timestamp required")
	}
	if !e.Type.Valid() {
		return invalid("unknown feed type %q", e.Type)
	}

	// Exactamente uno de {duration, amount} según el tipo.
	if e.Type.IsBreastfeeding() {
		if e.DurationMinutes == nil || *e.DurationMinutes <= 0 {
			return invalid("duration required for breastfeeding")
		}
		if e.Amount != nil {
			return invalid("amount not allowed for breastfeeding")
		}
		return nil
	}

	if e.Amount == nil || *e.Amount <= 0 {
		return invalid("amount required for %s", e.Type)
	}
	if e.DurationMinutes != nil {
		return invalid("duration not allowed for %s", e.Type)
	}
	if !e.Unit.Valid() {
		return invalid("unit must be oz or ml")
	}
	return nil
}

func validateDiaper(e DiaperEvent) error {
	if e.Timestamp.IsZero() {
		return invalid("timestamp required")
	}
	if !e.Type.Valid() {
		return invalid("unknown diaper type %q", e.Type)
	}

	if e.Wetness != "" {
		if !e.Type.IsWet() {
			return invalid("wetness only applies to wet diapers")
		}
		switch e.Wetness {
		case WetnessLight, WetnessMedium, WetnessHeavy:
		default:
			return invalid("unknown wetness %q", e.Wetness)
		}
	}

	if e.Consistency != "" || e.Color != "" || e.Quantity != "" {
		if !e.Type.IsDirty() {
			return invalid("consistency/color/quantity only apply to dirty diapers")
		}
	}
	if e.Consistency != "" {
		switch e.Consistency {
		case ConsistencyWatery, ConsistencyLoose, ConsistencySeedy, ConsistencySoft, ConsistencyFormed, ConsistencyHard:
		default:
			return invalid("unknown consistency %q", e.Consistency)
		}
	}
	if e.Color != "" {
		switch e.Color {
		case ColorYellow, ColorGreen, ColorBrown, ColorBlack, ColorRed, ColorWhite:
		default:
			return invalid("unknown color %q", e.Color)
		}
	}
	if e.Quantity != "" {
		switch e.Quantity {
		case QuantitySmall, QuantityMedium, QuantityLarge:
		default:
			return invalid("unknown quantity %q", e.Quantity)
		}
	}
	return nil
}

func validateSleep(e SleepEvent) error {
	if e.StartTime.IsZero() {
		return invalid("start_time required")
	}
	if !e.Type.Valid() {
		return invalid("unknown sleep type %q", e.Type)
	}
	if e.EndTime != nil && !e.EndTime.After(e.StartTime) {
		return invalid("end_time must be after start_time")
	}
	return nil
}

func validateWeight(e WeightEvent) error {
	if e.Timestamp.IsZero() {
		return invalid("timestamp required")
	}
	if e.Weight <= 0 {
		return invalid("weight must be positive")
	}
	if e.Unit != WeightKg && e.Unit != WeightLb {
		return invalid("unit must be kg or lb")
	}
	return nil
}

func validateMedicine(e MedicineEvent) error {
	if e.Timestamp.IsZero() {
		return invalid("timestamp required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return invalid("name required")
	}
	if e.Dose <= 0 {
		return invalid("dose must be positive")
	}
	if strings.TrimSpace(e.Unit) == "" {
		return invalid("unit required")
	}
	return nil
}

func validatePumping(e PumpingEvent) error {
	if e.Timestamp.IsZero() {
		return invalid("timestamp required")
	}
	switch e.Side {
	case PumpLeft, PumpRight, PumpBoth:
	default:
		return invalid("unknown side %q", e.Side)
	}
	if e.Amount < 0 {
		return invalid("amount must not be negative")
	}
	if !e.Unit.Valid() {
		return invalid("unit must be oz or ml")
	}
	if e.DurationMinutes != nil && *e.DurationMinutes <= 0 {
		return invalid("duration must be positive")
	}
	return nil
}

func validateTummyTime(e TummyTimeEvent) error {
	if e.StartTime.IsZero() {
		return invalid("start_time required")
	}
	if e.DurationMinutes <= 0 {
		return invalid("duration must be positive")
	}
	return nil
}
