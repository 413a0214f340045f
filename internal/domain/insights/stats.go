package insights

import (
	"math"
	"sort"

	"tinytally/internal/domain/tracking"
)

// Umbral de ratio entre mitades: >1.2 sube, <0.8 baja.
const (
	trendUpperRatio = 1.2
	trendLowerRatio = 0.8
)

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// direction compara la mitad reciente contra la más antigua.
// 1 = sube, -1 = baja, 0 = estable. Mitad vacía o sin base => 0.
func direction(recent, older float64) int {
	if older <= 0 || recent <= 0 {
		return 0
	}
	if math.IsNaN(recent) || math.IsNaN(older) {
		return 0
	}
	switch {
	case recent > older*trendUpperRatio:
		return 1
	case recent < older*trendLowerRatio:
		return -1
	default:
		return 0
	}
}

// classifyCountTrend: tendencia de conteos (tomas).
func classifyCountTrend(recent, older int) Trend {
	switch direction(float64(recent), float64(older)) {
	case 1:
		return TrendIncreasing
	case -1:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// classifyDurationTrend: tendencia de duración promedio (sueño).
func classifyDurationTrend(recentAvg, olderAvg float64) Trend {
	switch direction(recentAvg, olderAvg) {
	case 1:
		return TrendImproving
	case -1:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// Las listas se copian y ordenan DESC; la primera mitad es la más reciente.

func sortedFeeds(in []tracking.FeedEvent) []tracking.FeedEvent {
	out := append([]tracking.FeedEvent(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

func sortedDiapers(in []tracking.DiaperEvent) []tracking.DiaperEvent {
	out := append([]tracking.DiaperEvent(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

func sortedSleeps(in []tracking.SleepEvent) []tracking.SleepEvent {
	out := append([]tracking.SleepEvent(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out
}
