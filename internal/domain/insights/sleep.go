package insights

import (
	"math"

	"tinytally/internal/domain/tracking"
)

// AnalyzeSleepPattern solo mira sesiones completadas con duración positiva.
func AnalyzeSleepPattern(sleeps []tracking.SleepEvent, days int) *SleepInsight {
	if len(sleeps) == 0 || days < 1 {
		return nil
	}

	type session struct {
		minutes float64
		kind    tracking.SleepType
	}
	var sessions []session
	for _, s := range sortedSleeps(sleeps) {
		if !s.Completed() {
			continue
		}
		m := s.Duration().Minutes()
		if m <= 0 {
			continue
		}
		sessions = append(sessions, session{minutes: m, kind: s.Type})
	}
	if len(sessions) == 0 {
		return nil
	}

	var total, longest float64
	var naps, nights int
	for _, s := range sessions {
		total += s.minutes
		if s.minutes > longest {
			longest = s.minutes
		}
		switch s.kind {
		case tracking.SleepNap:
			naps++
		case tracking.SleepNight:
			nights++
		}
	}

	mid := len(sessions) / 2
	avgOf := func(ss []session) float64 {
		if len(ss) == 0 {
			return 0
		}
		var sum float64
		for _, s := range ss {
			sum += s.minutes
		}
		return sum / float64(len(ss))
	}

	d := float64(days)
	return &SleepInsight{
		TotalHoursPerDay:      round1(total / 60 / d),
		AvgSessionMinutes:     int(math.Round(total / float64(len(sessions)))),
		LongestStretchMinutes: int(math.Round(longest)),
		LongestStretchHours:   round1(longest / 60),
		NapsPerDay:            round1(float64(naps) / d),
		NightSleepsPerDay:     round1(float64(nights) / d),
		TotalSessions:         len(sessions),
		Trend:                 classifyDurationTrend(avgOf(sessions[:mid]), avgOf(sessions[mid:])),
	}
}
