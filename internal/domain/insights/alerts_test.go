package insights

import (
	"testing"
	"time"

	"tinytally/internal/domain/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(alerts []Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Title)
	}
	return out
}

func TestGenerateAlerts_Empty(t *testing.T) {
	got := GenerateAlerts(AlertInput{Now: testNow})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerateAlerts_Healthy(t *testing.T) {
	feeds := everyThreeHours(8)
	wet := diapersAt(6, 2*time.Hour, tracking.DiaperWet)

	got := GenerateAlerts(AlertInput{
		Feeds: feeds, Diapers: wet,
		Last24Feeds: feeds, Last24Diapers: wet,
		Now: testNow,
	})
	require.Len(t, got, 1)
	assert.Equal(t, AlertSuccess, got[0].Type)
	assert.Equal(t, SeverityNone, got[0].Severity)
	assert.Equal(t, "check-circle", got[0].Icon)
}

func TestGenerateAlerts_LowWetDiapers(t *testing.T) {
	wet := diapersAt(5, 2*time.Hour, tracking.DiaperWet)

	got := GenerateAlerts(AlertInput{Diapers: wet, Last24Diapers: wet, Now: testNow})
	require.Len(t, got, 1)
	assert.Equal(t, AlertWarning, got[0].Type)
	assert.Equal(t, SeverityMedium, got[0].Severity)
	assert.Equal(t, "droplet", got[0].Icon)
	assert.Contains(t, got[0].Message, "5 wet diapers")

	// "both" cuenta como mojado
	six := append(wet, diapersAt(1, time.Hour, tracking.DiaperBoth)...)
	got = GenerateAlerts(AlertInput{Diapers: six, Last24Diapers: six, Now: testNow})
	assert.NotContains(t, titles(got), "Low Wet Diapers")
}

func TestGenerateAlerts_LowFeedsOnlyInEvening(t *testing.T) {
	feeds := everyThreeHours(4)

	afternoon := GenerateAlerts(AlertInput{Feeds: feeds, Last24Feeds: feeds, Now: testNow})
	assert.Empty(t, afternoon)

	evening := testNow.Add(7 * time.Hour) // 19:00
	got := GenerateAlerts(AlertInput{Feeds: feeds, Last24Feeds: feeds, Now: evening})
	require.Len(t, got, 1)
	assert.Equal(t, AlertInfo, got[0].Type)
	assert.Equal(t, SeverityLow, got[0].Severity)
	assert.Equal(t, "bottle", got[0].Icon)

	// a las 18:00 todavía no
	got = GenerateAlerts(AlertInput{Feeds: feeds, Last24Feeds: feeds, Now: testNow.Add(6 * time.Hour)})
	assert.Empty(t, got)
}

func TestGenerateAlerts_ConcerningStoolCappedAtThree(t *testing.T) {
	var diapers []tracking.DiaperEvent
	for i := 0; i < 5; i++ {
		color := tracking.ColorBlack
		if i%2 == 1 {
			color = tracking.ColorRed
		}
		diapers = append(diapers, tracking.DiaperEvent{
			Timestamp: testNow.Add(-time.Duration(i+1) * 10 * time.Hour),
			Type:      tracking.DiaperDirty,
			Color:     color,
		})
	}
	diapers = append(diapers, tracking.DiaperEvent{Timestamp: testNow.Add(-time.Hour), Type: tracking.DiaperDirty, Color: tracking.ColorYellow})

	got := GenerateAlerts(AlertInput{Diapers: diapers, Now: testNow})

	var stool []Alert
	for _, a := range got {
		if a.Type == AlertAlert {
			stool = append(stool, a)
		}
	}
	require.Len(t, stool, 3)
	for _, a := range stool {
		assert.Equal(t, SeverityHigh, a.Severity)
		assert.Equal(t, "alert-triangle", a.Icon)
	}
	assert.Contains(t, stool[0].Message, "Black stool")
	assert.Contains(t, stool[1].Message, "Red stool")
}

func TestGenerateAlerts_Order(t *testing.T) {
	feeds := everyThreeHours(2)
	diapers := []tracking.DiaperEvent{
		{Timestamp: testNow.Add(-time.Hour), Type: tracking.DiaperBoth, Color: tracking.ColorRed},
	}

	got := GenerateAlerts(AlertInput{
		Feeds: feeds, Diapers: diapers,
		Last24Feeds: feeds, Last24Diapers: diapers,
		Now: testNow.Add(8 * time.Hour),
	})
	assert.Equal(t, []string{"Low Wet Diapers", "Fewer Feeds Today", "Concerning Stool Color"}, titles(got))
}
