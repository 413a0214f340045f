package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"

	"tinytally/internal/adapters/auth/remote"
	"tinytally/internal/adapters/auth/static"
	rediscache "tinytally/internal/adapters/cache/redis"
	"tinytally/internal/ports/auth"
	"tinytally/internal/router"
)

func TestHTTP_EndToEnd_InsightsAndMedicine(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "parent-1"
	strangerID := "parent-2"
	now := time.Now().UTC()

	// 1) Dueño registra al bebé
	childID := createChild(t, ts.URL, ownerID, map[string]any{"name": "Ada", "sex": "female"})

	// 2) Otro usuario no puede verlo
	{
		st, _ := doReq(t, ts.URL, "GET", "/children/"+childID, strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for stranger, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/children/"+childID+"/insights", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 3) Un día sano: 8 tomas y 6 pañales mojados
	var firstFeedID string
	for i := 0; i < 8; i++ {
		id := createEvent(t, ts.URL, ownerID, "/children/"+childID+"/feeds", map[string]any{
			"timestamp": now.Add(-time.Duration(i) * 170 * time.Minute).Format(time.RFC3339),
			"type":      "formula",
			"amount":    90,
			"unit":      "ml",
		})
		if i == 0 {
			firstFeedID = id
		}
	}
	for i := 0; i < 6; i++ {
		createEvent(t, ts.URL, ownerID, "/children/"+childID+"/diapers", map[string]any{
			"timestamp": now.Add(-10*time.Minute - time.Duration(i)*2*time.Hour).Format(time.RFC3339),
			"type":      "wet",
			"wetness":   "medium",
		})
	}

	// 4) Reporte
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/insights?days=1", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 insights, got %d body=%s", st, string(body))
		}
		var rep struct {
			Feeding *struct {
				TotalFeeds int `json:"total_feeds"`
			} `json:"feeding"`
			Diaper *struct {
				WetDiaperStatus string `json:"wet_diaper_status"`
			} `json:"diaper"`
			Sleep  any `json:"sleep"`
			Alerts []struct {
				Type  string `json:"type"`
				Title string `json:"title"`
			} `json:"alerts"`
		}
		mustJSON(t, body, &rep)
		if rep.Feeding == nil || rep.Feeding.TotalFeeds != 8 {
			t.Fatalf("expected 8 feeds, got %+v", rep.Feeding)
		}
		if rep.Diaper == nil || rep.Diaper.WetDiaperStatus != "normal" {
			t.Fatalf("expected normal wet status, got %+v", rep.Diaper)
		}
		if rep.Sleep != nil {
			t.Fatalf("expected null sleep section, got %v", rep.Sleep)
		}
		if len(rep.Alerts) != 1 || rep.Alerts[0].Title != "Healthy Patterns" {
			t.Fatalf("expected only Healthy Patterns alert, got %+v", rep.Alerts)
		}
	}

	// 5) days fuera de rango / no numérico
	for _, q := range []string{"0", "91", "abc"} {
		st, _ := doReq(t, ts.URL, "GET", "/children/"+childID+"/insights?days="+q, ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for days=%s, got %d", q, st)
		}
	}

	// 6) Próxima toma
	{
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/insights/next-feed?days=1", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 next-feed, got %d body=%s", st, string(body))
		}
		var next struct {
			AvgIntervalMinutes int `json:"avg_interval_minutes"`
		}
		mustJSON(t, body, &next)
		if next.AvgIntervalMinutes != 170 {
			t.Fatalf("expected 170 minute interval, got %d", next.AvgIntervalMinutes)
		}
	}

	// 7) Lado sugerido: sin pecho => 204; con pecho izquierdo => derecho
	{
		st, _ := doReq(t, ts.URL, "GET", "/children/"+childID+"/insights/next-side", ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 without breastfeeding, got %d", st)
		}
		createEvent(t, ts.URL, ownerID, "/children/"+childID+"/feeds", map[string]any{
			"timestamp":        now.Add(-20 * time.Minute).Format(time.RFC3339),
			"type":             "breastfeeding-left",
			"duration_minutes": 15,
		})
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/insights/next-side", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 next-side, got %d body=%s", st, string(body))
		}
		var side struct {
			SuggestedSide string `json:"suggested_side"`
		}
		mustJSON(t, body, &side)
		if side.SuggestedSide != "right" {
			t.Fatalf("expected right, got %q", side.SuggestedSide)
		}
	}

	// 8) Medicamento: primera dosis OK, segunda inmediata bloqueada
	{
		st, body := doReq(t, ts.URL, "POST", "/children/"+childID+"/medicines", ownerID, map[string]any{"name": "Ibuprofen"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 first dose, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/children/"+childID+"/medicines", ownerID, map[string]any{"name": "Ibuprofen"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 second dose, got %d body=%s", st, string(body))
		}
		var blocked struct {
			Warnings []struct {
				Type     string `json:"type"`
				Severity string `json:"severity"`
			} `json:"warnings"`
		}
		mustJSON(t, body, &blocked)
		if len(blocked.Warnings) == 0 || blocked.Warnings[0].Severity != "high" {
			t.Fatalf("expected high warning, got %+v", blocked.Warnings)
		}

		st, body = doReq(t, ts.URL, "GET", "/children/"+childID+"/medicines/safety?name=Ibuprofen", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 safety, got %d", st)
		}
		var safety struct {
			Blocking bool `json:"blocking"`
		}
		mustJSON(t, body, &safety)
		if !safety.Blocking {
			t.Fatalf("expected blocking safety result")
		}

		st, body = doReq(t, ts.URL, "GET", "/children/"+childID+"/medicines", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list medicines, got %d", st)
		}
		var doses []map[string]any
		mustJSON(t, body, &doses)
		if len(doses) != 1 {
			t.Fatalf("expected exactly one stored dose, got %d", len(doses))
		}
	}

	// 9) Borrar toma
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/children/"+childID+"/feeds/"+firstFeedID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/children/"+childID+"/feeds/"+firstFeedID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", st)
		}
	}
}

func TestHTTP_SleepLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := "parent-1"
	childID := createChild(t, ts.URL, ownerID, map[string]any{"name": "Bo"})
	start := time.Now().UTC().Add(-2 * time.Hour)

	sleepID := createEvent(t, ts.URL, ownerID, "/children/"+childID+"/sleeps", map[string]any{
		"start_time": start.Format(time.RFC3339),
		"type":       "nap",
	})

	st, body := doReq(t, ts.URL, "POST", "/children/"+childID+"/sleeps/"+sleepID+"/end", ownerID, map[string]any{
		"end_time": start.Add(90 * time.Minute).Format(time.RFC3339),
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 end sleep, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/children/"+childID+"/insights?days=1", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 insights, got %d", st)
	}
	var rep struct {
		Sleep *struct {
			AvgSessionMinutes int `json:"avg_session_minutes"`
		} `json:"sleep"`
	}
	mustJSON(t, body, &rep)
	if rep.Sleep == nil || rep.Sleep.AvgSessionMinutes != 90 {
		t.Fatalf("expected 90 minute session, got %+v", rep.Sleep)
	}
}

func TestHTTP_InsightsCacheInvalidatedOnWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		InsightsCache: rediscache.NewKVStore(client),
		InsightsTTL:   time.Minute,
	}))
	defer ts.Close()

	ownerID := "parent-1"
	childID := createChild(t, ts.URL, ownerID, map[string]any{"name": "Cy"})

	total := func() int {
		st, body := doReq(t, ts.URL, "GET", "/children/"+childID+"/insights?days=1", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 insights, got %d", st)
		}
		var rep struct {
			Feeding *struct {
				TotalFeeds int `json:"total_feeds"`
			} `json:"feeding"`
		}
		mustJSON(t, body, &rep)
		if rep.Feeding == nil {
			return 0
		}
		return rep.Feeding.TotalFeeds
	}

	if got := total(); got != 0 {
		t.Fatalf("expected empty report, got %d feeds", got)
	}
	createEvent(t, ts.URL, ownerID, "/children/"+childID+"/feeds", map[string]any{
		"timestamp": time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
		"type":      "pumped",
		"amount":    3,
		"unit":      "oz",
	})
	if got := total(); got != 1 {
		t.Fatalf("expected cached report to be invalidated, got %d feeds", got)
	}
}

func TestHTTP_MedicineProfilesAndHealth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/medicines/profiles", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 profiles, got %d", st)
	}
	var profiles []struct {
		Name string `json:"name"`
	}
	mustJSON(t, body, &profiles)
	if len(profiles) == 0 {
		t.Fatal("expected non-empty medicine catalog")
	}
}

func TestHTTP_BearerTokensStaticThenIdentityService(t *testing.T) {
	idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Token string `json:"token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in.Token {
		case "idp-tok":
			_, _ = w.Write([]byte(`{"user_id":"parent-9"}`))
		case "down":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer idp.Close()

	rv, err := remote.NewVerifier(remote.Config{BaseURL: idp.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("remote verifier: %v", err)
	}
	verifier := auth.Chain(static.NewVerifier(map[string]string{"static-tok": "parent-1"}), rv)

	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: verifier}))
	defer ts.Close()

	post := func(header, value string) int {
		t.Helper()
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/children", bytes.NewReader([]byte(`{"name":"Ada"}`)))
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(header, value)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		defer res.Body.Close()
		return res.StatusCode
	}

	cases := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{"static token", "Authorization", "Bearer static-tok", http.StatusCreated},
		{"identity service token", "Authorization", "Bearer idp-tok", http.StatusCreated},
		{"rejected token", "Authorization", "Bearer bogus", http.StatusUnauthorized},
		{"identity service down", "Authorization", "Bearer down", http.StatusServiceUnavailable},
		{"debug header ignored", "X-Debug-User-ID", "parent-1", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := post(tc.header, tc.value); got != tc.want {
				t.Fatalf("status = %d, want %d", got, tc.want)
			}
		})
	}
}

func createChild(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()
	return createEvent(t, baseURL, userID, "/children", payload)
}

func createEvent(t *testing.T, baseURL, userID, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}
	var out struct {
		ID string `json:"id"`
	}
	mustJSON(t, body, &out)
	if out.ID == "" {
		t.Fatalf("expected id in response: %s", string(body))
	}
	return out.ID
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
