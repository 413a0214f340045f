package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tinytally/internal/domain/tracking"
)

// ErrCacheMiss lo devuelve un KVStore cuando la clave no existe.
var ErrCacheMiss = errors.New("cache miss")

const DefaultWindowTTL = 60 * time.Second

// KVStore es el contrato mínimo de un cache clave/valor (redis en producción).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Window es la foto de eventos de un niño para [From, To]. Los reportes se
// recalculan siempre desde now; lo cacheado son solo las lecturas.
type Window struct {
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	Feeds   []tracking.FeedEvent   `json:"feeds"`
	Diapers []tracking.DiaperEvent `json:"diapers"`
	Sleeps  []tracking.SleepEvent  `json:"sleeps"`
}

func (w Window) covers(rng tracking.Range) bool {
	return !w.From.After(rng.From) && !w.To.Before(rng.To)
}

// slice recorta a rng con la misma regla inclusiva que los repositorios.
// Conserva el orden descendente.
func (w Window) slice(rng tracking.Range) Window {
	out := Window{From: rng.From, To: rng.To}
	for _, f := range w.Feeds {
		if rng.Contains(f.Timestamp) {
			out.Feeds = append(out.Feeds, f)
		}
	}
	for _, d := range w.Diapers {
		if rng.Contains(d.Timestamp) {
			out.Diapers = append(out.Diapers, d)
		}
	}
	for _, s := range w.Sleeps {
		if rng.Contains(s.StartTime) {
			out.Sleeps = append(out.Sleeps, s)
		}
	}
	return out
}

// WindowCache guarda ventanas por (niño, generación, days). Cada escritura
// de eventos rota la generación del niño, dejando huérfanas las claves viejas
// hasta que expira su TTL.
type WindowCache struct {
	kv     KVStore
	ttl    time.Duration
	prefix string
}

func NewWindowCache(kv KVStore, ttl time.Duration) *WindowCache {
	if ttl <= 0 {
		ttl = DefaultWindowTTL
	}
	return &WindowCache{kv: kv, ttl: ttl, prefix: "insights"}
}

func (c *WindowCache) genKey(childID string) string {
	return fmt.Sprintf("%s:child:%s:gen", c.prefix, childID)
}

func (c *WindowCache) windowKey(childID, gen string, days int) string {
	return fmt.Sprintf("%s:child:%s:%s:days:%d", c.prefix, childID, gen, days)
}

// generation lee la generación vigente del niño, creándola si falta.
func (c *WindowCache) generation(ctx context.Context, childID string) (string, error) {
	b, err := c.kv.Get(ctx, c.genKey(childID))
	if err == nil {
		return string(b), nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return "", err
	}

	gen := uuid.NewString()
	if err := c.kv.Set(ctx, c.genKey(childID), []byte(gen), 0); err != nil {
		return "", err
	}
	return gen, nil
}

// Get devuelve también la generación leída; Set debe usar esa misma para
// que una ventana leída antes de una invalidación no quede vigente.
func (c *WindowCache) Get(ctx context.Context, childID string, days int) (Window, string, bool, error) {
	gen, err := c.generation(ctx, childID)
	if err != nil {
		return Window{}, "", false, err
	}

	b, err := c.kv.Get(ctx, c.windowKey(childID, gen, days))
	if errors.Is(err, ErrCacheMiss) {
		return Window{}, gen, false, nil
	}
	if err != nil {
		return Window{}, "", false, err
	}

	var w Window
	if err := json.Unmarshal(b, &w); err != nil {
		return Window{}, gen, false, fmt.Errorf("decode cached window: %w", err)
	}
	return w, gen, true, nil
}

func (c *WindowCache) Set(ctx context.Context, childID, gen string, days int, w Window) error {
	if gen == "" {
		return errors.New("cache generation required")
	}
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode window: %w", err)
	}
	return c.kv.Set(ctx, c.windowKey(childID, gen, days), b, c.ttl)
}

// Invalidate rota la generación del niño.
func (c *WindowCache) Invalidate(ctx context.Context, childID string) error {
	return c.kv.Set(ctx, c.genKey(childID), []byte(uuid.NewString()), 0)
}
