package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tinytally/internal/domain/tracking"
	"tinytally/internal/platform/logger"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	DefaultDays         = 7
	DefaultMaxDays      = 90
	DefaultSideLookback = 72 * time.Hour
)

// EventReader es la parte de solo-lectura del event store que usa el agregador.
type EventReader interface {
	ListFeeds(ctx context.Context, childID string, rng tracking.Range) ([]tracking.FeedEvent, error)
	ListDiapers(ctx context.Context, childID string, rng tracking.Range) ([]tracking.DiaperEvent, error)
	ListSleeps(ctx context.Context, childID string, rng tracking.Range) ([]tracking.SleepEvent, error)
}

type Options struct {
	Location     *time.Location
	MaxDays      int
	WetThreshold int
	SideLookback time.Duration
	Cache        *WindowCache
	Logger       logger.Logger
}

type Service struct {
	reader EventReader
	now    func() time.Time

	loc          *time.Location
	maxDays      int
	wetThreshold int
	sideLookback time.Duration
	cache        *WindowCache
	log          logger.Logger
}

func NewService(reader EventReader, opts Options) *Service {
	s := &Service{
		reader:       reader,
		now:          time.Now,
		loc:          opts.Location,
		maxDays:      opts.MaxDays,
		wetThreshold: opts.WetThreshold,
		sideLookback: opts.SideLookback,
		cache:        opts.Cache,
		log:          opts.Logger,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.maxDays <= 0 {
		s.maxDays = DefaultMaxDays
	}
	if s.wetThreshold <= 0 {
		s.wetThreshold = DefaultWetDiaperThreshold
	}
	if s.sideLookback <= 0 {
		s.sideLookback = DefaultSideLookback
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	return s
}

func (s *Service) validate(childID string, days int) error {
	if strings.TrimSpace(childID) == "" {
		return fmt.Errorf("%w: child id required", ErrInvalidInput)
	}
	if days < 1 || days > s.maxDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, s.maxDays)
	}
	return nil
}

// Generate arma el reporte del dashboard para la ventana [now-days, now].
func (s *Service) Generate(ctx context.Context, childID string, days int) (Report, error) {
	if err := s.validate(childID, days); err != nil {
		return Report{}, err
	}

	now := s.now().In(s.loc)
	rng := tracking.Range{From: now.AddDate(0, 0, -days), To: now}

	w, err := s.window(ctx, childID, days, rng)
	if err != nil {
		return Report{}, err
	}
	feeds := s.localFeeds(w.Feeds)
	diapers := s.localDiapers(w.Diapers)
	sleeps := s.localSleeps(w.Sleeps)

	since := now.Add(-24 * time.Hour)
	last24Feeds := make([]tracking.FeedEvent, 0)
	for _, f := range feeds {
		if !f.Timestamp.Before(since) {
			last24Feeds = append(last24Feeds, f)
		}
	}
	last24Diapers := make([]tracking.DiaperEvent, 0)
	for _, d := range diapers {
		if !d.Timestamp.Before(since) {
			last24Diapers = append(last24Diapers, d)
		}
	}

	rep := Report{
		ChildID:     childID,
		Days:        days,
		GeneratedAt: now,
		Feeding:     AnalyzeFeedingPattern(feeds, days),
		Sleep:       AnalyzeSleepPattern(sleeps, days),
		Diaper:      AnalyzeDiaperPattern(diapers, days, s.wetThreshold),
		Alerts: GenerateAlerts(AlertInput{
			Feeds:         feeds,
			Diapers:       diapers,
			Last24Feeds:   last24Feeds,
			Last24Diapers: last24Diapers,
			Now:           now,
			WetThreshold:  s.wetThreshold,
		}),
	}

	s.log.Debug("insights generated", map[string]any{
		"child_id": childID,
		"days":     days,
		"feeds":    len(feeds),
		"diapers":  len(diapers),
		"sleeps":   len(sleeps),
		"alerts":   len(rep.Alerts),
	})

	return rep, nil
}

// window devuelve los eventos de rng. Con cache, la lectura cubre además el
// TTL hacia adelante para que la misma entrada sirva a llamadas posteriores;
// siempre se recorta a rng, así el resultado es idéntico al de leer el store.
func (s *Service) window(ctx context.Context, childID string, days int, rng tracking.Range) (Window, error) {
	var gen string
	if s.cache != nil {
		cached, g, ok, err := s.cache.Get(ctx, childID, days)
		switch {
		case err != nil:
			s.log.Warn("insights cache read failed", map[string]any{"child_id": childID, "err": err})
		case ok && cached.covers(rng):
			return cached.slice(rng), nil
		}
		gen = g
	}

	fetch := rng
	if gen != "" {
		fetch.To = rng.To.Add(s.cache.ttl)
	}
	w, err := s.fetch(ctx, childID, fetch)
	if err != nil {
		s.log.Error("insights fetch failed", map[string]any{"child_id": childID, "err": err})
		return Window{}, fmt.Errorf("fetch events: %w", err)
	}

	if gen != "" {
		if err := s.cache.Set(ctx, childID, gen, days, w); err != nil {
			s.log.Warn("insights cache write failed", map[string]any{"child_id": childID, "err": err})
		}
	}
	return w.slice(rng), nil
}

func (s *Service) fetch(ctx context.Context, childID string, rng tracking.Range) (Window, error) {
	w := Window{From: rng.From, To: rng.To}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		w.Feeds, err = s.reader.ListFeeds(gctx, childID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		w.Diapers, err = s.reader.ListDiapers(gctx, childID, rng)
		return err
	})
	g.Go(func() error {
		var err error
		w.Sleeps, err = s.reader.ListSleeps(gctx, childID, rng)
		return err
	})
	if err := g.Wait(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// NextFeed devuelve nil (sin error) si no hay historia suficiente.
func (s *Service) NextFeed(ctx context.Context, childID string, days int) (*FeedingInterval, error) {
	if err := s.validate(childID, days); err != nil {
		return nil, err
	}
	now := s.now().In(s.loc)
	feeds, err := s.reader.ListFeeds(ctx, childID, tracking.Range{From: now.AddDate(0, 0, -days), To: now})
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return DetectFeedingInterval(s.localFeeds(feeds), days, now), nil
}

func (s *Service) NextSide(ctx context.Context, childID string) (*SideSuggestion, error) {
	if strings.TrimSpace(childID) == "" {
		return nil, fmt.Errorf("%w: child id required", ErrInvalidInput)
	}
	now := s.now().In(s.loc)
	feeds, err := s.reader.ListFeeds(ctx, childID, tracking.Range{From: now.Add(-s.sideLookback), To: now})
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	return SuggestNextBreastSide(s.localFeeds(feeds), now), nil
}

// Invalidate descarta los reportes cacheados del niño. No-op sin cache.
func (s *Service) Invalidate(ctx context.Context, childID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, childID); err != nil {
		s.log.Warn("insights cache invalidate failed", map[string]any{"child_id": childID, "err": err})
	}
}

// Las horas del día se evalúan en la zona configurada.

func (s *Service) localFeeds(in []tracking.FeedEvent) []tracking.FeedEvent {
	for i := range in {
		in[i].Timestamp = in[i].Timestamp.In(s.loc)
	}
	return in
}

func (s *Service) localDiapers(in []tracking.DiaperEvent) []tracking.DiaperEvent {
	for i := range in {
		in[i].Timestamp = in[i].Timestamp.In(s.loc)
	}
	return in
}

func (s *Service) localSleeps(in []tracking.SleepEvent) []tracking.SleepEvent {
	for i := range in {
		in[i].StartTime = in[i].StartTime.In(s.loc)
		if in[i].EndTime != nil {
			end := in[i].EndTime.In(s.loc)
			in[i].EndTime = &end
		}
	}
	return in
}
