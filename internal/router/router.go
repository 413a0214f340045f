package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "tinytally/internal/adapters/storage/memory"
	pg "tinytally/internal/adapters/storage/postgres"
	"tinytally/internal/domain/children"
	"tinytally/internal/domain/insights"
	"tinytally/internal/domain/medicine"
	"tinytally/internal/domain/tracking"
	"tinytally/internal/middleware"
	"tinytally/internal/platform/logger"
	"tinytally/internal/ports/auth"

	_ "tinytally/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type InsightsOptions struct {
	Location     *time.Location
	DefaultDays  int
	MaxDays      int
	WetThreshold int
	SideLookback time.Duration
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: cache de lecturas de insights (redis).
	InsightsCache insights.KVStore
	InsightsTTL   time.Duration

	Insights InsightsOptions
	Logger   logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	loc := opts.Insights.Location
	if loc == nil {
		loc = time.Local
	}
	defaultDays := opts.Insights.DefaultDays
	if defaultDays <= 0 {
		defaultDays = insights.DefaultDays
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		childRepo    children.Repository
		trackingRepo tracking.Repository
	)
	if opts.DB != nil {
		childRepo = pg.NewChildRepo(opts.DB)
		trackingRepo = pg.NewTrackingRepo(opts.DB)
	} else {
		childRepo = mem.NewChildRepo()
		trackingRepo = mem.NewTrackingRepo()
	}

	var cache *insights.WindowCache
	if opts.InsightsCache != nil {
		cache = insights.NewWindowCache(opts.InsightsCache, opts.InsightsTTL)
	}

	// Services por módulo
	childrenSvc := children.NewService(childRepo)
	trackingSvc := tracking.NewService(trackingRepo)
	insightsSvc := insights.NewService(trackingSvc, insights.Options{
		Location:     loc,
		MaxDays:      opts.Insights.MaxDays,
		WetThreshold: opts.Insights.WetThreshold,
		SideLookback: opts.Insights.SideLookback,
		Cache:        cache,
		Logger:       log.With(map[string]any{"module": "insights"}),
	})
	medicineSvc := medicine.NewService(trackingSvc, medicine.NewChecker(trackingSvc, loc, log.With(map[string]any{"module": "medicine"})))

	// cada escritura de eventos invalida los reportes cacheados del niño
	trackingSvc.OnWrite(insightsSvc.Invalidate)

	// Rutas por módulo
	children.RegisterRoutes(r, childrenSvc)
	tracking.RegisterRoutes(r, trackingSvc, childrenSvc, log)
	medicine.RegisterRoutes(r, medicineSvc, trackingSvc, childrenSvc, log)
	insights.RegisterRoutes(r, insightsSvc, childrenSvc, defaultDays, log)

	return r
}
