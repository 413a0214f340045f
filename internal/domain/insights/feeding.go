package insights

import (
	"math"
	"sort"
	"time"

	"tinytally/internal/domain/tracking"
)

const (
	// Una hora es "típica" si aparece en al menos 30% de los días.
	typicalHourShare = 0.3
	maxTypicalHours  = 5

	// Intervalos >= 12h se consideran huecos de registro, no intervalos.
	maxFeedIntervalMinutes = 720
	minFeedsForInterval    = 3
	overdueFactor          = 1.2
)

// AnalyzeFeedingPattern resume las tomas de los últimos days días.
// nil si no hay tomas o days < 1.
func AnalyzeFeedingPattern(feeds []tracking.FeedEvent, days int) *FeedingInsight {
	if len(feeds) == 0 || days < 1 {
		return nil
	}
	sorted := sortedFeeds(feeds)
	n := len(sorted)

	mid := n / 2
	trend := classifyCountTrend(mid, n-mid)

	return &FeedingInsight{
		FeedsPerDay:        round1(float64(n) / float64(days)),
		AvgIntervalMinutes: avgIntervalMinutes(sorted),
		TypicalHours:       typicalHours(sorted, days),
		Trend:              trend,
		TotalFeeds:         n,
	}
}

// avgIntervalMinutes: promedio de gaps consecutivos; 0 con una sola toma.
func avgIntervalMinutes(sorted []tracking.FeedEvent) int {
	if len(sorted) < 2 {
		return 0
	}
	var total float64
	for i := 0; i < len(sorted)-1; i++ {
		total += sorted[i].Timestamp.Sub(sorted[i+1].Timestamp).Minutes()
	}
	return int(math.Round(total / float64(len(sorted)-1)))
}

func typicalHours(feeds []tracking.FeedEvent, days int) []int {
	counts := make(map[int]int, 24)
	for _, f := range feeds {
		counts[f.Timestamp.Hour()]++
	}

	threshold := float64(days) * typicalHourShare
	hours := make([]int, 0, len(counts))
	for h, c := range counts {
		if float64(c) >= threshold {
			hours = append(hours, h)
		}
	}
	sort.Ints(hours)
	if len(hours) > maxTypicalHours {
		hours = hours[:maxTypicalHours]
	}
	return hours
}

// DetectFeedingInterval estima cuándo toca la próxima toma.
// Requiere al menos 3 tomas y al menos un intervalo razonable (< 12h).
func DetectFeedingInterval(feeds []tracking.FeedEvent, days int, now time.Time) *FeedingInterval {
	if len(feeds) < minFeedsForInterval || days < 1 {
		return nil
	}
	sorted := sortedFeeds(feeds)

	var (
		total float64
		count int
	)
	for i := 0; i < len(sorted)-1; i++ {
		gap := sorted[i].Timestamp.Sub(sorted[i+1].Timestamp).Minutes()
		if gap >= maxFeedIntervalMinutes {
			continue
		}
		total += gap
		count++
	}
	if count == 0 {
		return nil
	}

	avg := total / float64(count)
	last := sorted[0].Timestamp
	since := now.Sub(last).Minutes()
	if since < 0 {
		since = 0
	}

	return &FeedingInterval{
		AvgIntervalMinutes:   int(math.Round(avg)),
		AvgIntervalHours:     round1(avg / 60),
		FeedsPerDay:          round1(float64(len(sorted)) / float64(days)),
		LastFeedAt:           last,
		MinutesSinceLastFeed: int(since),
		NextFeedExpected:     last.Add(time.Duration(avg * float64(time.Minute))),
		IsOverdue:            since > avg*overdueFactor,
	}
}
