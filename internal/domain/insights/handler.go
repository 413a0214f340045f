package insights

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tinytally/internal/domain/children"
	"tinytally/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, childrenSvc *children.Service, defaultDays int, log logger.Logger) {
	if defaultDays <= 0 {
		defaultDays = DefaultDays
	}
	h := &handlers{svc: svc, children: childrenSvc, defaultDays: defaultDays, log: log.With(map[string]any{"module": "insights"})}

	r.Route("/children/{childID}/insights", func(ir chi.Router) {
		ir.Get("/", h.getReport)
		ir.Get("/next-feed", h.getNextFeed)
		ir.Get("/next-side", h.getNextSide)
	})
}

type handlers struct {
	svc         *Service
	children    *children.Service
	defaultDays int
	log         logger.Logger
}

// getReport godoc
// @Summary Reporte de patrones
// @Description Resumen de alimentación, sueño y pañales más alertas para los últimos N días. Secciones null = sin datos.
// @Tags insights
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param days query int false "Ventana en días (1..max). Por defecto 7"
// @Success 200 {object} Report
// @Failure 400 {string} string "days inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "child not found"
// @Router /children/{childID}/insights [get]
func (h *handlers) getReport(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}
	days, ok := h.parseDays(w, r)
	if !ok {
		return
	}

	rep, err := h.svc.Generate(r.Context(), c.ID, days)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// getNextFeed godoc
// @Summary Próxima toma estimada
// @Description Intervalo promedio entre tomas y si la próxima está atrasada. 204 si hay menos de 3 tomas.
// @Tags insights
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param days query int false "Ventana en días. Por defecto 7"
// @Success 200 {object} FeedingInterval
// @Success 204
// @Router /children/{childID}/insights/next-feed [get]
func (h *handlers) getNextFeed(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}
	days, ok := h.parseDays(w, r)
	if !ok {
		return
	}

	next, err := h.svc.NextFeed(r.Context(), c.ID, days)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if next == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

// getNextSide godoc
// @Summary Sugerir lado para amamantar
// @Description Lado opuesto a la última toma de pecho reciente. 204 si no hay tomas de pecho.
// @Tags insights
// @Produce json
// @Param childID path string true "ID del bebé"
// @Success 200 {object} SideSuggestion
// @Success 204
// @Router /children/{childID}/insights/next-side [get]
func (h *handlers) getNextSide(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	s, err := h.svc.NextSide(r.Context(), c.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if s == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *handlers) parseDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := strings.TrimSpace(r.URL.Query().Get("days"))
	if v == "" {
		return h.defaultDays, true
	}
	days, err := strconv.Atoi(v)
	if err != nil {
		http.Error(w, "days must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return days, true
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.log.Error("insights request failed", map[string]any{"err": err})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
