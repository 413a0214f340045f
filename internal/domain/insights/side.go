package insights

import (
	"time"

	"tinytally/internal/domain/tracking"
)

// SuggestNextBreastSide propone el lado opuesto a la última toma de pecho.
// nil si no hay tomas de pecho en la lista.
func SuggestNextBreastSide(feeds []tracking.FeedEvent, now time.Time) *SideSuggestion {
	for _, f := range sortedFeeds(feeds) {
		if !f.Type.IsBreastfeeding() {
			continue
		}
		side := SideLeft
		if f.Type == tracking.FeedBreastRight {
			side = SideRight
		}
		return &SideSuggestion{
			Side:          side,
			SuggestedSide: side.Opposite(),
			Timestamp:     f.Timestamp,
			TimeSinceMs:   now.Sub(f.Timestamp).Milliseconds(),
		}
	}
	return nil
}
