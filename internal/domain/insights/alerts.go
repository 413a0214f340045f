package insights

import (
	"fmt"
	"strings"
	"time"

	"tinytally/internal/domain/tracking"
)

const (
	minWetDiapers24h  = 6
	minFeeds24h       = 6
	healthyFeeds24h   = 8
	lowFeedsAfterHour = 18
	maxStoolAlerts    = 3
)

// AlertInput agrupa la ventana completa y las últimas 24h ya recortadas.
type AlertInput struct {
	Feeds         []tracking.FeedEvent
	Diapers       []tracking.DiaperEvent
	Last24Feeds   []tracking.FeedEvent
	Last24Diapers []tracking.DiaperEvent
	Now           time.Time

	// WetThreshold <= 0 usa el mínimo por defecto (6).
	WetThreshold int
}

// GenerateAlerts aplica las reglas en orden fijo. Nunca devuelve nil.
func GenerateAlerts(in AlertInput) []Alert {
	alerts := make([]Alert, 0, 4)

	wetMin := in.WetThreshold
	if wetMin <= 0 {
		wetMin = minWetDiapers24h
	}

	wet24 := 0
	for _, d := range in.Last24Diapers {
		if d.Type.IsWet() {
			wet24++
		}
	}
	feeds24 := len(in.Last24Feeds)

	if len(in.Diapers) > 0 && wet24 < wetMin {
		alerts = append(alerts, Alert{
			Type:       AlertWarning,
			Icon:       "droplet",
			Title:      "Low Wet Diapers",
			Message:    fmt.Sprintf("Only %d wet diapers in the last 24 hours.", wet24),
			Suggestion: fmt.Sprintf("Babies usually have %d or more wet diapers a day. Offer more feeds and contact your pediatrician if this continues.", wetMin),
			Severity:   SeverityMedium,
		})
	}

	if len(in.Feeds) > 0 && feeds24 < minFeeds24h && in.Now.Hour() > lowFeedsAfterHour {
		alerts = append(alerts, Alert{
			Type:       AlertInfo,
			Icon:       "bottle",
			Title:      "Fewer Feeds Today",
			Message:    fmt.Sprintf("%d feeds logged in the last 24 hours.", feeds24),
			Suggestion: "Newborns typically feed 8-12 times a day. Make sure every feed is being logged.",
			Severity:   SeverityLow,
		})
	}

	stools := 0
	for _, d := range sortedDiapers(in.Diapers) {
		if stools == maxStoolAlerts {
			break
		}
		if !d.Color.IsConcerning() {
			continue
		}
		stools++
		alerts = append(alerts, Alert{
			Type:       AlertAlert,
			Icon:       "alert-triangle",
			Title:      "Concerning Stool Color",
			Message:    fmt.Sprintf("%s stool noted on %s.", capitalize(string(d.Color)), d.Timestamp.Format("Jan 2, 3:04 PM")),
			Suggestion: "Black or red stool can indicate blood. Contact your pediatrician promptly.",
			Severity:   SeverityHigh,
		})
	}

	if wet24 >= wetMin && feeds24 >= healthyFeeds24h {
		alerts = append(alerts, Alert{
			Type:       AlertSuccess,
			Icon:       "check-circle",
			Title:      "Healthy Patterns",
			Message:    fmt.Sprintf("%d feeds and %d wet diapers in the last 24 hours.", feeds24, wet24),
			Suggestion: "Feeding and hydration look on track. Keep it up!",
			Severity:   SeverityNone,
		})
	}

	return alerts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
