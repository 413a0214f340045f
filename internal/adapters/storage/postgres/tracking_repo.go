package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"tinytally/internal/domain/tracking"
)

// tables mapea cada Kind a su tabla y columna de tiempo.
var tables = map[tracking.Kind]struct{ name, timeCol string }{
	tracking.KindFeed:      {"feeds", "occurred_at"},
	tracking.KindDiaper:    {"diapers", "occurred_at"},
	tracking.KindSleep:     {"sleeps", "start_time"},
	tracking.KindWeight:    {"weights", "occurred_at"},
	tracking.KindMedicine:  {"medicines", "occurred_at"},
	tracking.KindPumping:   {"pumpings", "occurred_at"},
	tracking.KindTummyTime: {"tummy_times", "start_time"},
}

var (
	feedColumns     = []string{"id", "child_id", "occurred_at", "type", "duration_minutes", "amount", "unit", "notes", "created_at"}
	diaperColumns   = []string{"id", "child_id", "occurred_at", "type", "wetness", "consistency", "color", "quantity", "notes", "created_at"}
	sleepColumns    = []string{"id", "child_id", "start_time", "end_time", "type", "notes", "created_at"}
	weightColumns   = []string{"id", "child_id", "occurred_at", "weight", "unit", "notes", "created_at"}
	medicineColumns = []string{"id", "child_id", "occurred_at", "name", "dose", "unit", "frequency", "notes", "created_at"}
	pumpingColumns  = []string{"id", "child_id", "occurred_at", "side", "amount", "unit", "duration_minutes", "notes", "created_at"}
	tummyColumns    = []string{"id", "child_id", "start_time", "duration_minutes", "notes", "created_at"}
)

type TrackingRepo struct {
	db *sql.DB
}

func NewTrackingRepo(db *sql.DB) *TrackingRepo {
	return &TrackingRepo{db: db}
}

// selectRange arma SELECT ... WHERE child_id AND time BETWEEN ORDER BY time DESC.
func selectRange(kind tracking.Kind, cols []string, childID string, rng tracking.Range) squirrel.SelectBuilder {
	t := tables[kind]
	return psql.Select(cols...).
		From(t.name).
		Where(squirrel.Eq{"child_id": childID}).
		Where(squirrel.GtOrEq{t.timeCol: rng.From}).
		Where(squirrel.LtOrEq{t.timeCol: rng.To}).
		OrderBy(t.timeCol + " DESC")
}

// ---- feeds ----

func (r *TrackingRepo) CreateFeed(ctx context.Context, e tracking.FeedEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("feeds").Columns(feedColumns...).Values(
		e.ID, e.ChildID, e.Timestamp, string(e.Type),
		toNullFloat(e.DurationMinutes), toNullFloat(e.Amount), string(e.Unit),
		e.Notes, e.CreatedAt,
	))
	return err
}

func (r *TrackingRepo) ListFeeds(ctx context.Context, childID string, rng tracking.Range) ([]tracking.FeedEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindFeed, feedColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.FeedEvent, 0)
	for rows.Next() {
		var (
			e              tracking.FeedEvent
			typ, unit      string
			duration, amnt sql.NullFloat64
		)
		if err := rows.Scan(&e.ID, &e.ChildID, &e.Timestamp, &typ, &duration, &amnt, &unit, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = tracking.FeedType(typ)
		e.Unit = tracking.VolumeUnit(unit)
		e.DurationMinutes = fromNullFloat(duration)
		e.Amount = fromNullFloat(amnt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ---- diapers ----

func (r *TrackingRepo) CreateDiaper(ctx context.Context, e tracking.DiaperEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("diapers").Columns(diaperColumns...).Values(
		e.ID, e.ChildID, e.Timestamp, string(e.Type),
		string(e.Wetness), string(e.Consistency), string(e.Color), string(e.Quantity),
		e.Notes, e.CreatedAt,
	))
	return err
}

func (r *TrackingRepo) ListDiapers(ctx context.Context, childID string, rng tracking.Range) ([]tracking.DiaperEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindDiaper, diaperColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.DiaperEvent, 0)
	for rows.Next() {
		var (
			e                   tracking.DiaperEvent
			typ, wetness, color string
			consistency, qty    string
		)
		if err := rows.Scan(&e.ID, &e.ChildID, &e.Timestamp, &typ, &wetness, &consistency, &color, &qty, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = tracking.DiaperType(typ)
		e.Wetness = tracking.Wetness(wetness)
		e.Consistency = tracking.Consistency(consistency)
		e.Color = tracking.StoolColor(color)
		e.Quantity = tracking.Quantity(qty)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ---- sleeps ----

func (r *TrackingRepo) CreateSleep(ctx context.Context, e tracking.SleepEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("sleeps").Columns(sleepColumns...).Values(
		e.ID, e.ChildID, e.StartTime, toNullTime(e.EndTime), string(e.Type), e.Notes, e.CreatedAt,
	))
	return err
}

func scanSleep(rows *sql.Rows) (tracking.SleepEvent, error) {
	var (
		e   tracking.SleepEvent
		end sql.NullTime
		typ string
	)
	if err := rows.Scan(&e.ID, &e.ChildID, &e.StartTime, &end, &typ, &e.Notes, &e.CreatedAt); err != nil {
		return tracking.SleepEvent{}, err
	}
	e.EndTime = fromNullTime(end)
	e.Type = tracking.SleepType(typ)
	return e, nil
}

func (r *TrackingRepo) ListSleeps(ctx context.Context, childID string, rng tracking.Range) ([]tracking.SleepEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindSleep, sleepColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.SleepEvent, 0)
	for rows.Next() {
		e, err := scanSleep(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TrackingRepo) GetSleep(ctx context.Context, id string) (tracking.SleepEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return tracking.SleepEvent{}, tracking.ErrNotFound
	}

	rows, err := query(ctx, r.db, psql.Select(sleepColumns...).From("sleeps").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return tracking.SleepEvent{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return tracking.SleepEvent{}, err
		}
		return tracking.SleepEvent{}, tracking.ErrNotFound
	}
	return scanSleep(rows)
}

// EndSleep solo cierra sesiones abiertas.
func (r *TrackingRepo) EndSleep(ctx context.Context, id string, end time.Time) error {
	res, err := exec(ctx, r.db, psql.Update("sleeps").
		Set("end_time", end).
		Where(squirrel.Eq{"id": id, "end_time": nil}))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tracking.ErrNotFound
	}
	return nil
}

// ---- weights ----

func (r *TrackingRepo) CreateWeight(ctx context.Context, e tracking.WeightEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("weights").Columns(weightColumns...).Values(
		e.ID, e.ChildID, e.Timestamp, e.Weight, string(e.Unit), e.Notes, e.CreatedAt,
	))
	return err
}

func (r *TrackingRepo) ListWeights(ctx context.Context, childID string, rng tracking.Range) ([]tracking.WeightEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindWeight, weightColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.WeightEvent, 0)
	for rows.Next() {
		var (
			e    tracking.WeightEvent
			unit string
		)
		if err := rows.Scan(&e.ID, &e.ChildID, &e.Timestamp, &e.Weight, &unit, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Unit = tracking.WeightUnit(unit)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ---- medicines ----

func (r *TrackingRepo) CreateMedicine(ctx context.Context, e tracking.MedicineEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("medicines").Columns(medicineColumns...).Values(
		e.ID, e.ChildID, e.Timestamp, e.Name, e.Dose, e.Unit, e.Frequency, e.Notes, e.CreatedAt,
	))
	return err
}

func (r *TrackingRepo) ListMedicines(ctx context.Context, childID string, rng tracking.Range) ([]tracking.MedicineEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindMedicine, medicineColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.MedicineEvent, 0)
	for rows.Next() {
		var e tracking.MedicineEvent
		if err := rows.Scan(&e.ID, &e.ChildID, &e.Timestamp, &e.Name, &e.Dose, &e.Unit, &e.Frequency, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ---- pumpings ----

func (r *TrackingRepo) CreatePumping(ctx context.Context, e tracking.PumpingEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("pumpings").Columns(pumpingColumns...).Values(
		e.ID, e.ChildID, e.Timestamp, string(e.Side), e.Amount, string(e.Unit),
		toNullFloat(e.DurationMinutes), e.Notes, e.CreatedAt,
	))
	return err
}

func (r *TrackingRepo) ListPumpings(ctx context.Context, childID string, rng tracking.Range) ([]tracking.PumpingEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindPumping, pumpingColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.PumpingEvent, 0)
	for rows.Next() {
		var (
			e          tracking.PumpingEvent
			side, unit string
			duration   sql.NullFloat64
		)
		if err := rows.Scan(&e.ID, &e.ChildID, &e.Timestamp, &side, &e.Amount, &unit, &duration, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Side = tracking.PumpSide(side)
		e.Unit = tracking.VolumeUnit(unit)
		e.DurationMinutes = fromNullFloat(duration)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ---- tummy time ----

func (r *TrackingRepo) CreateTummyTime(ctx context.Context, e tracking.TummyTimeEvent) error {
	_, err := exec(ctx, r.db, psql.Insert("tummy_times").Columns(tummyColumns...).Values(
		e.ID, e.ChildID, e.StartTime, e.DurationMinutes, e.Notes, e.CreatedAt,
	))
	return err
}

func (r *TrackingRepo) ListTummyTimes(ctx context.Context, childID string, rng tracking.Range) ([]tracking.TummyTimeEvent, error) {
	rows, err := query(ctx, r.db, selectRange(tracking.KindTummyTime, tummyColumns, childID, rng))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracking.TummyTimeEvent, 0)
	for rows.Next() {
		var e tracking.TummyTimeEvent
		if err := rows.Scan(&e.ID, &e.ChildID, &e.StartTime, &e.DurationMinutes, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ---- delete ----

func (r *TrackingRepo) Delete(ctx context.Context, kind tracking.Kind, childID, id string) error {
	t, ok := tables[kind]
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", tracking.ErrInvalidInput, kind)
	}

	res, err := exec(ctx, r.db, psql.Delete(t.name).Where(squirrel.Eq{"id": id, "child_id": childID}))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tracking.ErrNotFound
	}
	return nil
}

var _ tracking.Repository = (*TrackingRepo)(nil)
