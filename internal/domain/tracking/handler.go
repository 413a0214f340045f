package tracking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"tinytally/internal/domain/children"
	"tinytally/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const defaultListWindow = 7 * 24 * time.Hour

func RegisterRoutes(r chi.Router, svc *Service, childrenSvc *children.Service, log logger.Logger) {
	h := &handlers{svc: svc, children: childrenSvc, log: log.With(map[string]any{"module": "tracking"})}

	r.Route("/children/{childID}/feeds", func(er chi.Router) {
		er.Post("/", h.createFeed)
		er.Get("/", h.listFeeds)
		er.Delete("/{eventID}", h.deleteEvent(KindFeed))
	})
	r.Route("/children/{childID}/diapers", func(er chi.Router) {
		er.Post("/", h.createDiaper)
		er.Get("/", h.listDiapers)
		er.Delete("/{eventID}", h.deleteEvent(KindDiaper))
	})
	r.Route("/children/{childID}/sleeps", func(er chi.Router) {
		er.Post("/", h.createSleep)
		er.Get("/", h.listSleeps)
		er.Post("/{eventID}/end", h.endSleep)
		er.Delete("/{eventID}", h.deleteEvent(KindSleep))
	})
	r.Route("/children/{childID}/weights", func(er chi.Router) {
		er.Post("/", h.createWeight)
		er.Get("/", h.listWeights)
		er.Delete("/{eventID}", h.deleteEvent(KindWeight))
	})
	r.Route("/children/{childID}/pumpings", func(er chi.Router) {
		er.Post("/", h.createPumping)
		er.Get("/", h.listPumpings)
		er.Delete("/{eventID}", h.deleteEvent(KindPumping))
	})
	r.Route("/children/{childID}/tummy-times", func(er chi.Router) {
		er.Post("/", h.createTummyTime)
		er.Get("/", h.listTummyTimes)
		er.Delete("/{eventID}", h.deleteEvent(KindTummyTime))
	})
}

type handlers struct {
	svc      *Service
	children *children.Service
	log      logger.Logger
}

// ---- requests / responses ----

type feedRequest struct {
	Timestamp       string     `json:"timestamp"` // RFC3339
	Type            FeedType   `json:"type" enums:"breastfeeding-left,breastfeeding-right,formula,pumped"`
	DurationMinutes *float64   `json:"duration_minutes"`
	Amount          *float64   `json:"amount"`
	Unit            VolumeUnit `json:"unit" enums:"oz,ml"`
	Notes           string     `json:"notes"`
}

type feedResponse struct {
	ID              string     `json:"id"`
	ChildID         string     `json:"child_id"`
	Timestamp       time.Time  `json:"timestamp"`
	Type            FeedType   `json:"type"`
	DurationMinutes *float64   `json:"duration_minutes,omitempty"`
	Amount          *float64   `json:"amount,omitempty"`
	Unit            VolumeUnit `json:"unit,omitempty"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
}

type diaperRequest struct {
	Timestamp   string      `json:"timestamp"`
	Type        DiaperType  `json:"type" enums:"wet,dirty,both"`
	Wetness     Wetness     `json:"wetness"`
	Consistency Consistency `json:"consistency"`
	Color       StoolColor  `json:"color"`
	Quantity    Quantity    `json:"quantity"`
	Notes       string      `json:"notes"`
}

type diaperResponse struct {
	ID          string      `json:"id"`
	ChildID     string      `json:"child_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Type        DiaperType  `json:"type"`
	Wetness     Wetness     `json:"wetness,omitempty"`
	Consistency Consistency `json:"consistency,omitempty"`
	Color       StoolColor  `json:"color,omitempty"`
	Quantity    Quantity    `json:"quantity,omitempty"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
}

type sleepRequest struct {
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"` // vacío = en curso
	Type      SleepType `json:"type" enums:"nap,night"`
	Notes     string    `json:"notes"`
}

type endSleepRequest struct {
	EndTime string `json:"end_time"` // vacío = ahora
}

type sleepResponse struct {
	ID        string     `json:"id"`
	ChildID   string     `json:"child_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Type      SleepType  `json:"type"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}

type weightRequest struct {
	Timestamp string     `json:"timestamp"`
	Weight    float64    `json:"weight"`
	Unit      WeightUnit `json:"unit" enums:"kg,lb"`
	Notes     string     `json:"notes"`
}

type weightResponse struct {
	ID        string     `json:"id"`
	ChildID   string     `json:"child_id"`
	Timestamp time.Time  `json:"timestamp"`
	Weight    float64    `json:"weight"`
	Unit      WeightUnit `json:"unit"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
}

type pumpingRequest struct {
	Timestamp       string     `json:"timestamp"`
	Side            PumpSide   `json:"side" enums:"left,right,both"`
	Amount          float64    `json:"amount"`
	Unit            VolumeUnit `json:"unit" enums:"oz,ml"`
	DurationMinutes *float64   `json:"duration_minutes"`
	Notes           string     `json:"notes"`
}

type pumpingResponse struct {
	ID              string     `json:"id"`
	ChildID         string     `json:"child_id"`
	Timestamp       time.Time  `json:"timestamp"`
	Side            PumpSide   `json:"side"`
	Amount          float64    `json:"amount"`
	Unit            VolumeUnit `json:"unit"`
	DurationMinutes *float64   `json:"duration_minutes,omitempty"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
}

type tummyTimeRequest struct {
	StartTime       string  `json:"start_time"`
	DurationMinutes float64 `json:"duration_minutes"`
	Notes           string  `json:"notes"`
}

type tummyTimeResponse struct {
	ID              string    `json:"id"`
	ChildID         string    `json:"child_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes float64   `json:"duration_minutes"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ---- feeds ----

// createFeed godoc
// @Summary Registrar toma
// @Description Breastfeeding requiere duration_minutes; formula/pumped requieren amount + unit.
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body feedRequest true "Toma; timestamp RFC3339"
// @Success 201 {object} feedResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID}/feeds [post]
func (h *handlers) createFeed(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	ts, err := parseTime("timestamp", req.Timestamp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateFeed(r.Context(), c.ID, FeedEvent{
		Timestamp:       ts,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		Amount:          req.Amount,
		Unit:            req.Unit,
		Notes:           req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeedResponse(e))
}

// listFeeds godoc
// @Summary Listar tomas
// @Tags tracking
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param from query string false "Desde (RFC3339). Por defecto hace 7 días"
// @Param to query string false "Hasta (RFC3339). Por defecto ahora"
// @Success 200 {array} feedResponse
// @Router /children/{childID}/feeds [get]
func (h *handlers) listFeeds(w http.ResponseWriter, r *http.Request) {
	c, rng, ok := h.listPrelude(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListFeeds(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]feedResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toFeedResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- diapers ----

// createDiaper godoc
// @Summary Registrar pañal
// @Description wetness solo para wet/both; consistency/color/quantity solo para dirty/both.
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body diaperRequest true "Pañal; timestamp RFC3339"
// @Success 201 {object} diaperResponse
// @Router /children/{childID}/diapers [post]
func (h *handlers) createDiaper(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req diaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	ts, err := parseTime("timestamp", req.Timestamp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateDiaper(r.Context(), c.ID, DiaperEvent{
		Timestamp:   ts,
		Type:        req.Type,
		Wetness:     req.Wetness,
		Consistency: req.Consistency,
		Color:       req.Color,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDiaperResponse(e))
}

// listDiapers godoc
// @Summary Listar pañales
// @Tags tracking
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param from query string false "Desde (RFC3339)"
// @Param to query string false "Hasta (RFC3339)"
// @Success 200 {array} diaperResponse
// @Router /children/{childID}/diapers [get]
func (h *handlers) listDiapers(w http.ResponseWriter, r *http.Request) {
	c, rng, ok := h.listPrelude(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListDiapers(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]diaperResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toDiaperResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- sleeps ----

// createSleep godoc
// @Summary Registrar sueño
// @Description end_time vacío registra un sueño en curso; se cierra con POST /end.
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body sleepRequest true "Sueño; tiempos RFC3339"
// @Success 201 {object} sleepResponse
// @Router /children/{childID}/sleeps [post]
func (h *handlers) createSleep(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req sleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	start, err := parseTime("start_time", req.StartTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var end *time.Time
	if strings.TrimSpace(req.EndTime) != "" {
		t, err := parseTime("end_time", req.EndTime)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		end = &t
	}

	e, err := h.svc.CreateSleep(r.Context(), c.ID, SleepEvent{
		StartTime: start,
		EndTime:   end,
		Type:      req.Type,
		Notes:     req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSleepResponse(e))
}

// endSleep godoc
// @Summary Terminar sueño en curso
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param eventID path string true "ID del sueño"
// @Param payload body endSleepRequest false "end_time RFC3339; vacío = ahora"
// @Success 200 {object} sleepResponse
// @Failure 404 {string} string "event not found"
// @Router /children/{childID}/sleeps/{eventID}/end [post]
func (h *handlers) endSleep(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req endSleepRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
	}
	var end time.Time
	if strings.TrimSpace(req.EndTime) != "" {
		t, err := parseTime("end_time", req.EndTime)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		end = t
	}

	e, err := h.svc.EndSleep(r.Context(), c.ID, chi.URLParam(r, "eventID"), end)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSleepResponse(e))
}

// listSleeps godoc
// @Summary Listar sueños
// @Tags tracking
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param from query string false "Desde (RFC3339)"
// @Param to query string false "Hasta (RFC3339)"
// @Success 200 {array} sleepResponse
// @Router /children/{childID}/sleeps [get]
func (h *handlers) listSleeps(w http.ResponseWriter, r *http.Request) {
	c, rng, ok := h.listPrelude(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListSleeps(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]sleepResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toSleepResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- weights ----

// createWeight godoc
// @Summary Registrar peso
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body weightRequest true "Peso"
// @Success 201 {object} weightResponse
// @Router /children/{childID}/weights [post]
func (h *handlers) createWeight(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req weightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	ts, err := parseTime("timestamp", req.Timestamp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateWeight(r.Context(), c.ID, WeightEvent{
		Timestamp: ts,
		Weight:    req.Weight,
		Unit:      req.Unit,
		Notes:     req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWeightResponse(e))
}

// listWeights godoc
// @Summary Listar pesos
// @Tags tracking
// @Produce json
// @Param childID path string true "ID del bebé"
// @Success 200 {array} weightResponse
// @Router /children/{childID}/weights [get]
func (h *handlers) listWeights(w http.ResponseWriter, r *http.Request) {
	c, rng, ok := h.listPrelude(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListWeights(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]weightResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toWeightResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- pumpings ----

// createPumping godoc
// @Summary Registrar extracción
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body pumpingRequest true "Extracción"
// @Success 201 {object} pumpingResponse
// @Router /children/{childID}/pumpings [post]
func (h *handlers) createPumping(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req pumpingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	ts, err := parseTime("timestamp", req.Timestamp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreatePumping(r.Context(), c.ID, PumpingEvent{
		Timestamp:       ts,
		Side:            req.Side,
		Amount:          req.Amount,
		Unit:            req.Unit,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPumpingResponse(e))
}

// listPumpings godoc
// @Summary Listar extracciones
// @Tags tracking
// @Produce json
// @Param childID path string true "ID del bebé"
// @Success 200 {array} pumpingResponse
// @Router /children/{childID}/pumpings [get]
func (h *handlers) listPumpings(w http.ResponseWriter, r *http.Request) {
	c, rng, ok := h.listPrelude(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListPumpings(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]pumpingResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toPumpingResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- tummy time ----

// createTummyTime godoc
// @Summary Registrar tummy time
// @Tags tracking
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body tummyTimeRequest true "Tummy time"
// @Success 201 {object} tummyTimeResponse
// @Router /children/{childID}/tummy-times [post]
func (h *handlers) createTummyTime(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req tummyTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	start, err := parseTime("start_time", req.StartTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateTummyTime(r.Context(), c.ID, TummyTimeEvent{
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTummyTimeResponse(e))
}

// listTummyTimes godoc
// @Summary Listar tummy time
// @Tags tracking
// @Produce json
// @Param childID path string true "ID del bebé"
// @Success 200 {array} tummyTimeResponse
// @Router /children/{childID}/tummy-times [get]
func (h *handlers) listTummyTimes(w http.ResponseWriter, r *http.Request) {
	c, rng, ok := h.listPrelude(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListTummyTimes(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]tummyTimeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toTummyTimeResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- delete ----

// deleteEvent godoc
// @Summary Borrar evento
// @Tags tracking
// @Param childID path string true "ID del bebé"
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 404 {string} string "event not found"
// @Router /children/{childID}/feeds/{eventID} [delete]
func (h *handlers) deleteEvent(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := children.RequireOwner(w, r, h.children)
		if !ok {
			return
		}
		if err := h.svc.Delete(r.Context(), kind, c.ID, chi.URLParam(r, "eventID")); err != nil {
			h.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---- helpers ----

func (h *handlers) listPrelude(w http.ResponseWriter, r *http.Request) (children.Child, Range, bool) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return children.Child{}, Range{}, false
	}
	rng, err := ParseRange(r, time.Now(), defaultListWindow)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return children.Child{}, Range{}, false
	}
	return c, rng, true
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	default:
		h.log.Error("tracking request failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// ParseRange lee from/to (RFC3339) de la query; por defecto [now-window, now].
func ParseRange(r *http.Request, now time.Time, window time.Duration) (Range, error) {
	rng := Range{From: now.Add(-window), To: now}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Range{}, errors.New("from must be RFC3339")
		}
		rng.From = t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Range{}, errors.New("to must be RFC3339")
		}
		rng.To = t
	}
	if rng.To.Before(rng.From) {
		return Range{}, errors.New("to must not be before from")
	}
	return rng, nil
}

func parseTime(field, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, errors.New(field + " must be RFC3339")
	}
	return t, nil
}

func toFeedResponse(e FeedEvent) feedResponse {
	return feedResponse{
		ID:              e.ID,
		ChildID:         e.ChildID,
		Timestamp:       e.Timestamp,
		Type:            e.Type,
		DurationMinutes: e.DurationMinutes,
		Amount:          e.Amount,
		Unit:            e.Unit,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}

func toDiaperResponse(e DiaperEvent) diaperResponse {
	return diaperResponse{
		ID:          e.ID,
		ChildID:     e.ChildID,
		Timestamp:   e.Timestamp,
		Type:        e.Type,
		Wetness:     e.Wetness,
		Consistency: e.Consistency,
		Color:       e.Color,
		Quantity:    e.Quantity,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

func toSleepResponse(e SleepEvent) sleepResponse {
	return sleepResponse{
		ID:        e.ID,
		ChildID:   e.ChildID,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Type:      e.Type,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

func toWeightResponse(e WeightEvent) weightResponse {
	return weightResponse{
		ID:        e.ID,
		ChildID:   e.ChildID,
		Timestamp: e.Timestamp,
		Weight:    e.Weight,
		Unit:      e.Unit,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

func toPumpingResponse(e PumpingEvent) pumpingResponse {
	return pumpingResponse{
		ID:              e.ID,
		ChildID:         e.ChildID,
		Timestamp:       e.Timestamp,
		Side:            e.Side,
		Amount:          e.Amount,
		Unit:            e.Unit,
		DurationMinutes: e.DurationMinutes,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}

func toTummyTimeResponse(e TummyTimeEvent) tummyTimeResponse {
	return tummyTimeResponse{
		ID:              e.ID,
		ChildID:         e.ChildID,
		StartTime:       e.StartTime,
		DurationMinutes: e.DurationMinutes,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
	}
}

// writeJSON duplicado a propósito (ver children/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
