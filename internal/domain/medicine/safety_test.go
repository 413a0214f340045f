package medicine

import (
	"context"
	"errors"
	"testing"
	"time"

	"tinytally/internal/adapters/storage/memory"
	"tinytally/internal/domain/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 8, 15, 0, 0, 0, time.UTC)

type fixture struct {
	t        *testing.T
	tracking *tracking.Service
	checker  *Checker
}

func newFixture(t *testing.T) fixture {
	tsvc := tracking.NewService(memory.NewTrackingRepo())
	ch := NewChecker(tsvc, time.UTC, nil)
	ch.now = func() time.Time { return testNow }
	return fixture{t: t, tracking: tsvc, checker: ch}
}

func (f fixture) dose(name string, at time.Time) {
	_, err := f.tracking.CreateMedicine(context.Background(), "c1", tracking.MedicineEvent{
		Timestamp: at, Name: name, Dose: 1, Unit: "ml",
	})
	require.NoError(f.t, err)
}

func findWarning(ws []Warning, typ WarningType) (Warning, bool) {
	for _, w := range ws {
		if w.Type == typ {
			return w, true
		}
	}
	return Warning{}, false
}

func TestLookupProfile(t *testing.T) {
	p, ok := LookupProfile("Ibuprofen")
	require.True(t, ok)
	assert.Equal(t, 6.0, p.MinHoursBetween)
	assert.Equal(t, 4, p.MaxDailyDoses)

	_, ok = LookupProfile("ibuprofen")
	assert.False(t, ok, "match exacto")
	_, ok = LookupProfile(" Ibuprofen ")
	assert.False(t, ok, "sin normalizar espacios")

	all := Profiles()
	all[0].Name = "changed"
	_, ok = LookupProfile("Acetaminophen")
	assert.True(t, ok, "Profiles devuelve una copia")
}

func TestChecker_DailyLimit(t *testing.T) {
	f := newFixture(t)
	f.dose("Vitamin D", testNow.Add(-6*time.Hour))

	ws, err := f.checker.Check(context.Background(), "c1", "Vitamin D")
	require.NoError(t, err)

	w, ok := findWarning(ws, WarningDailyLimit)
	require.True(t, ok)
	assert.Equal(t, SeverityHigh, w.Severity)
	assert.Contains(t, w.Message, "Daily limit reached")
	assert.True(t, Blocking(ws))
}

func TestChecker_TooSoon(t *testing.T) {
	cases := []struct {
		name     string
		ago      time.Duration
		want     Severity
		wantWait string
	}{
		{"under half the interval", 2 * time.Hour, SeverityHigh, "4h"},
		{"over half the interval", 4*time.Hour + 30*time.Minute, SeverityMedium, "1h 30m"},
		{"exactly half", 3 * time.Hour, SeverityMedium, "3h"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.dose("Ibuprofen", testNow.Add(-tc.ago))

			ws, err := f.checker.Check(context.Background(), "c1", "Ibuprofen")
			require.NoError(t, err)
			require.Len(t, ws, 1)
			assert.Equal(t, WarningTooSoon, ws[0].Type)
			assert.Equal(t, tc.want, ws[0].Severity)
			assert.Contains(t, ws[0].Message, "wait "+tc.wantWait)
		})
	}
}

func TestChecker_NoWarnings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.checker.Check(ctx, "c1", "Ibuprofen")
	require.NoError(t, err)
	assert.Nil(t, ws)

	f.dose("Ibuprofen", testNow.Add(-7*time.Hour))
	f.dose("Acetaminophen", testNow.Add(-time.Hour))
	ws, err = f.checker.Check(ctx, "c1", "Ibuprofen")
	require.NoError(t, err)
	assert.Nil(t, ws)
}

func TestChecker_OnlyCountsToday(t *testing.T) {
	f := newFixture(t)
	yesterday := time.Date(2026, 5, 7, 23, 0, 0, 0, time.UTC)
	f.dose("Vitamin D", yesterday)

	ws, err := f.checker.Check(context.Background(), "c1", "Vitamin D")
	require.NoError(t, err)
	assert.Nil(t, ws)

	next, err := f.checker.NextDoseTime(context.Background(), "c1", "Vitamin D")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.True(t, next.Equal(testNow))
}

func TestChecker_UnknownMedicine(t *testing.T) {
	f := newFixture(t)
	f.dose("Grandma's Tea", testNow.Add(-time.Minute))

	ws, err := f.checker.Check(context.Background(), "c1", "Grandma's Tea")
	require.NoError(t, err)
	assert.Nil(t, ws)

	next, err := f.checker.NextDoseTime(context.Background(), "c1", "Grandma's Tea")
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestChecker_NextDoseTime(t *testing.T) {
	f := newFixture(t)
	f.dose("Ibuprofen", testNow.Add(-2*time.Hour))
	f.dose("Ibuprofen", testNow.Add(-9*time.Hour))

	next, err := f.checker.NextDoseTime(context.Background(), "c1", "Ibuprofen")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.True(t, next.Equal(testNow.Add(4*time.Hour)))
}

type brokenReader struct{}

func (brokenReader) ListMedicines(context.Context, string, tracking.Range) ([]tracking.MedicineEvent, error) {
	return nil, errors.New("db unavailable")
}

func TestChecker_ReadErrorIsNotSilenced(t *testing.T) {
	ch := NewChecker(brokenReader{}, time.UTC, nil)
	ch.now = func() time.Time { return testNow }

	_, err := ch.Check(context.Background(), "c1", "Ibuprofen")
	assert.Error(t, err)

	_, err = ch.NextDoseTime(context.Background(), "c1", "Ibuprofen")
	assert.Error(t, err)
}

func TestService_Log(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.tracking, f.checker)
	ctx := context.Background()

	res, err := svc.Log(ctx, "c1", tracking.MedicineEvent{Timestamp: testNow.Add(-time.Hour), Name: "Acetaminophen"})
	require.NoError(t, err)
	require.False(t, res.Blocked)
	require.NotNil(t, res.Event)
	assert.Equal(t, 2.5, res.Event.Dose)
	assert.Equal(t, "ml", res.Event.Unit)
	assert.Equal(t, "every 4-6 hours", res.Event.Frequency)
	assert.Empty(t, res.Warnings)

	// 1h desde la anterior (mínimo 4h): too_soon high => bloqueado
	res, err = svc.Log(ctx, "c1", tracking.MedicineEvent{Timestamp: testNow, Name: "Acetaminophen", Dose: 2.5, Unit: "ml"})
	require.NoError(t, err)
	assert.True(t, res.Blocked)
	assert.Nil(t, res.Event)
	assert.True(t, Blocking(res.Warnings))

	list, err := f.tracking.ListMedicines(ctx, "c1", tracking.Range{From: testNow.Add(-24 * time.Hour), To: testNow})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestService_Log_AdvisoryWarningStillCreates(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.tracking, f.checker)
	f.dose("Ibuprofen", testNow.Add(-4*time.Hour))

	res, err := svc.Log(context.Background(), "c1", tracking.MedicineEvent{Timestamp: testNow, Name: "Ibuprofen"})
	require.NoError(t, err)
	assert.False(t, res.Blocked)
	require.NotNil(t, res.Event)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, SeverityMedium, res.Warnings[0].Severity)
}

func TestService_Log_InvalidCustomMedicine(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.tracking, f.checker)

	_, err := svc.Log(context.Background(), "c1", tracking.MedicineEvent{Timestamp: testNow, Name: "Saline drops"})
	assert.ErrorIs(t, err, tracking.ErrInvalidInput)
}

func TestService_Log_PaddedNameIsCustomMedicine(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.tracking, f.checker)
	f.dose("Ibuprofen", testNow.Add(-time.Hour))

	// fuera del catálogo: sin reglas ni valores por defecto
	res, err := svc.Log(context.Background(), "c1", tracking.MedicineEvent{Timestamp: testNow, Name: " Ibuprofen ", Dose: 2, Unit: "ml"})
	require.NoError(t, err)
	assert.False(t, res.Blocked)
	assert.Empty(t, res.Warnings)
	require.NotNil(t, res.Event)
	assert.Empty(t, res.Event.Frequency)

	_, err = svc.Log(context.Background(), "c1", tracking.MedicineEvent{Timestamp: testNow, Name: " Ibuprofen "})
	assert.ErrorIs(t, err, tracking.ErrInvalidInput)
}
