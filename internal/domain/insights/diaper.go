package insights

import "tinytally/internal/domain/tracking"

// DefaultWetDiaperThreshold: pañales mojados por día considerados normales.
const DefaultWetDiaperThreshold = 6

// AnalyzeDiaperPattern; "both" cuenta como mojado y sucio a la vez.
// wetThreshold <= 0 usa DefaultWetDiaperThreshold.
func AnalyzeDiaperPattern(diapers []tracking.DiaperEvent, days, wetThreshold int) *DiaperInsight {
	if len(diapers) == 0 || days < 1 {
		return nil
	}
	if wetThreshold <= 0 {
		wetThreshold = DefaultWetDiaperThreshold
	}

	var wet, dirty int
	for _, d := range diapers {
		if d.Type.IsWet() {
			wet++
		}
		if d.Type.IsDirty() {
			dirty++
		}
	}

	n := float64(days)
	wetPerDay := round1(float64(wet) / n)
	status := WetStatusLow
	if wetPerDay >= float64(wetThreshold) {
		status = WetStatusNormal
	}

	return &DiaperInsight{
		WetPerDay:       wetPerDay,
		DirtyPerDay:     round1(float64(dirty) / n),
		TotalPerDay:     round1(float64(len(diapers)) / n),
		TotalDiapers:    len(diapers),
		WetDiaperStatus: status,
	}
}
