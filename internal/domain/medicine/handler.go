package medicine

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"tinytally/internal/domain/children"
	"tinytally/internal/domain/tracking"
	"tinytally/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const defaultListWindow = 7 * 24 * time.Hour

func RegisterRoutes(r chi.Router, svc *Service, trackingSvc *tracking.Service, childrenSvc *children.Service, log logger.Logger) {
	h := &handlers{svc: svc, tracking: trackingSvc, children: childrenSvc, log: log.With(map[string]any{"module": "medicine"})}

	r.Get("/medicines/profiles", h.listProfiles)

	r.Route("/children/{childID}/medicines", func(mr chi.Router) {
		mr.Post("/", h.create)
		mr.Get("/", h.list)
		mr.Get("/safety", h.safety)
		mr.Get("/next-dose", h.nextDose)
		mr.Delete("/{eventID}", h.deleteDose)
	})
}

type handlers struct {
	svc      *Service
	tracking *tracking.Service
	children *children.Service
	log      logger.Logger
}

type medicineRequest struct {
	Timestamp string  `json:"timestamp"` // RFC3339; vacío = ahora
	Name      string  `json:"name"`
	Dose      float64 `json:"dose"` // 0 = dosis por defecto del perfil
	Unit      string  `json:"unit"`
	Frequency string  `json:"frequency"`
	Notes     string  `json:"notes"`
}

type medicineResponse struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"child_id"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Dose      float64   `json:"dose"`
	Unit      string    `json:"unit"`
	Frequency string    `json:"frequency"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type createResponse struct {
	Medicine medicineResponse `json:"medicine"`
	Warnings []Warning        `json:"warnings"`
}

type blockedResponse struct {
	Error    string    `json:"error"`
	Warnings []Warning `json:"warnings"`
}

type safetyResponse struct {
	Name     string    `json:"name"`
	Known    bool      `json:"known"`
	Blocking bool      `json:"blocking"`
	Warnings []Warning `json:"warnings"`
}

type nextDoseResponse struct {
	Name         string     `json:"name"`
	Known        bool       `json:"known"`
	NextDoseTime *time.Time `json:"next_dose_time"`
	SafeNow      bool       `json:"safe_now"`
}

// listProfiles godoc
// @Summary Catálogo de medicamentos
// @Tags medicine
// @Produce json
// @Success 200 {array} Profile
// @Router /medicines/profiles [get]
func (h *handlers) listProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Profiles())
}

// create godoc
// @Summary Registrar dosis
// @Description Evalúa las reglas de dosis antes de guardar. Un warning high bloquea el registro (409).
// @Tags medicine
// @Accept json
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param payload body medicineRequest true "Dosis"
// @Success 201 {object} createResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 409 {object} blockedResponse
// @Router /children/{childID}/medicines [post]
func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}

	var req medicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	ts := time.Now()
	if strings.TrimSpace(req.Timestamp) != "" {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Timestamp))
		if err != nil {
			http.Error(w, "timestamp must be RFC3339", http.StatusBadRequest)
			return
		}
		ts = t
	}

	res, err := h.svc.Log(r.Context(), c.ID, tracking.MedicineEvent{
		Timestamp: ts,
		Name:      req.Name,
		Dose:      req.Dose,
		Unit:      req.Unit,
		Frequency: req.Frequency,
		Notes:     req.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if res.Blocked {
		writeJSON(w, http.StatusConflict, blockedResponse{Error: "dose blocked by safety rules", Warnings: res.Warnings})
		return
	}

	warnings := res.Warnings
	if warnings == nil {
		warnings = []Warning{}
	}
	writeJSON(w, http.StatusCreated, createResponse{Medicine: toMedicineResponse(*res.Event), Warnings: warnings})
}

// list godoc
// @Summary Listar dosis
// @Tags medicine
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param from query string false "Desde (RFC3339). Por defecto hace 7 días"
// @Param to query string false "Hasta (RFC3339). Por defecto ahora"
// @Success 200 {array} medicineResponse
// @Router /children/{childID}/medicines [get]
func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}
	rng, err := tracking.ParseRange(r, time.Now(), defaultListWindow)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.tracking.ListMedicines(r.Context(), c.ID, rng)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]medicineResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toMedicineResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// safety godoc
// @Summary Chequear seguridad de una dosis
// @Tags medicine
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param name query string true "Nombre exacto del medicamento"
// @Success 200 {object} safetyResponse
// @Router /children/{childID}/medicines/safety [get]
func (h *handlers) safety(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}
	name, ok := requireName(w, r)
	if !ok {
		return
	}

	warnings, err := h.svc.Check(r.Context(), c.ID, name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	_, known := LookupProfile(name)
	if warnings == nil {
		warnings = []Warning{}
	}
	writeJSON(w, http.StatusOK, safetyResponse{Name: name, Known: known, Blocking: Blocking(warnings), Warnings: warnings})
}

// nextDose godoc
// @Summary Próxima dosis segura
// @Description next_dose_time null para medicamentos fuera del catálogo.
// @Tags medicine
// @Produce json
// @Param childID path string true "ID del bebé"
// @Param name query string true "Nombre exacto del medicamento"
// @Success 200 {object} nextDoseResponse
// @Router /children/{childID}/medicines/next-dose [get]
func (h *handlers) nextDose(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}
	name, ok := requireName(w, r)
	if !ok {
		return
	}

	next, err := h.svc.NextDoseTime(r.Context(), c.ID, name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := nextDoseResponse{Name: name, Known: next != nil, NextDoseTime: next}
	if next != nil {
		resp.SafeNow = !next.After(time.Now())
	}
	writeJSON(w, http.StatusOK, resp)
}

// deleteDose godoc
// @Summary Borrar dosis
// @Tags medicine
// @Param childID path string true "ID del bebé"
// @Param eventID path string true "ID de la dosis"
// @Success 204
// @Failure 404 {string} string "event not found"
// @Router /children/{childID}/medicines/{eventID} [delete]
func (h *handlers) deleteDose(w http.ResponseWriter, r *http.Request) {
	c, ok := children.RequireOwner(w, r, h.children)
	if !ok {
		return
	}
	if err := h.tracking.Delete(r.Context(), tracking.KindMedicine, c.ID, chi.URLParam(r, "eventID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requireName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return "", false
	}
	return name, true
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, tracking.ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	default:
		h.log.Error("medicine request failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toMedicineResponse(e tracking.MedicineEvent) medicineResponse {
	return medicineResponse{
		ID:        e.ID,
		ChildID:   e.ChildID,
		Timestamp: e.Timestamp,
		Name:      e.Name,
		Dose:      e.Dose,
		Unit:      e.Unit,
		Frequency: e.Frequency,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
