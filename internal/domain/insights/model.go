package insights

import "time"

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendImproving  Trend = "improving"
	TrendDeclining  Trend = "declining"
	TrendStable     Trend = "stable"
)

type WetDiaperStatus string

const (
	WetStatusNormal WetDiaperStatus = "normal"
	WetStatusLow    WetDiaperStatus = "low"
)

type FeedingInsight struct {
	FeedsPerDay        float64 `json:"feeds_per_day"`
	AvgIntervalMinutes int     `json:"avg_interval_minutes"`
	TypicalHours       []int   `json:"typical_hours"`
	Trend              Trend   `json:"trend"`
	TotalFeeds         int     `json:"total_feeds"`
}

// FeedingInterval alimenta la UI de "próxima toma" / "toma atrasada".
type FeedingInterval struct {
	AvgIntervalMinutes   int       `json:"avg_interval_minutes"`
	AvgIntervalHours     float64   `json:"avg_interval_hours"`
	FeedsPerDay          float64   `json:"feeds_per_day"`
	LastFeedAt           time.Time `json:"last_feed_at"`
	MinutesSinceLastFeed int       `json:"minutes_since_last_feed"`
	NextFeedExpected     time.Time `json:"next_feed_expected"`
	IsOverdue            bool      `json:"is_overdue"`
}

type SleepInsight struct {
	TotalHoursPerDay      float64 `json:"total_hours_per_day"`
	AvgSessionMinutes     int     `json:"avg_session_minutes"`
	LongestStretchMinutes int     `json:"longest_stretch_minutes"`
	LongestStretchHours   float64 `json:"longest_stretch_hours"`
	NapsPerDay            float64 `json:"naps_per_day"`
	NightSleepsPerDay     float64 `json:"night_sleeps_per_day"`
	TotalSessions         int     `json:"total_sessions"`
	Trend                 Trend   `json:"trend"`
}

type DiaperInsight struct {
	WetPerDay       float64         `json:"wet_per_day"`
	DirtyPerDay     float64         `json:"dirty_per_day"`
	TotalPerDay     float64         `json:"total_per_day"`
	TotalDiapers    int             `json:"total_diapers"`
	WetDiaperStatus WetDiaperStatus `json:"wet_diaper_status"`
}

type BreastSide string

const (
	SideLeft  BreastSide = "left"
	SideRight BreastSide = "right"
)

func (s BreastSide) Opposite() BreastSide {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

type SideSuggestion struct {
	Side          BreastSide `json:"side"`
	SuggestedSide BreastSide `json:"suggested_side"`
	Timestamp     time.Time  `json:"timestamp"`
	TimeSinceMs   int64      `json:"time_since_ms"`
}

type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertAlert   AlertType = "alert"
	AlertSuccess AlertType = "success"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityNone   Severity = "none"
)

type Alert struct {
	Type       AlertType `json:"type"`
	Icon       string    `json:"icon"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion"`
	Severity   Severity  `json:"severity"`
}

// Report es lo que consume el dashboard. Secciones nil = sin datos suficientes.
type Report struct {
	ChildID     string          `json:"child_id"`
	Days        int             `json:"days"`
	GeneratedAt time.Time       `json:"generated_at"`
	Feeding     *FeedingInsight `json:"feeding"`
	Sleep       *SleepInsight   `json:"sleep"`
	Diaper      *DiaperInsight  `json:"diaper"`
	Alerts      []Alert         `json:"alerts"`
}
