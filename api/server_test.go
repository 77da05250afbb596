package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/seenimoa/ndastro/internal/astro"
	"github.com/seenimoa/ndastro/internal/config"
	"github.com/seenimoa/ndastro/internal/ephem"
	"github.com/seenimoa/ndastro/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Test Helpers
// ════════════════════════════════════════════════════════════════════

func testServer(t *testing.T) *Server {
	t.Helper()

	kernel, err := ephem.Load("")
	if err != nil {
		t.Fatalf("loading ephemeris: %v", err)
	}

	cfg := &config.Config{
		Chart: config.ChartConfig{
			Name:      "ND Astro",
			Place:     "Salem",
			Latitude:  12.59,
			Longitude: 77.36,
			Ayanamsa:  "lahiri",
			Locale:    "en",
		},
		Compute: config.ComputeConfig{MaxConcurrent: 2},
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewServer(cfg, astro.New(kernel), logger)
}

func get(t *testing.T, srv *Server, path string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

// ════════════════════════════════════════════════════════════════════
// Health
// ════════════════════════════════════════════════════════════════════

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := get(t, srv, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, rec.Code)
		}
		resp := decodeResponse(t, rec)
		if !resp.Success {
			t.Errorf("%s: success = false", path)
		}
	}
}

// ════════════════════════════════════════════════════════════════════
// Planets
// ════════════════════════════════════════════════════════════════════

func TestHandlePlanets(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/planets?lat=12.59&lon=77.36&dateandtime=2024-06-21T05:30:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Fatalf("success = false: %s", resp.Error)
	}

	raw, _ := json.Marshal(resp.Data)
	var positions []models.PlanetPosition
	if err := json.Unmarshal(raw, &positions); err != nil {
		t.Fatalf("data is not a position list: %v", err)
	}
	if len(positions) != 9 {
		t.Errorf("got %d positions, want 9", len(positions))
	}
}

func TestHandlePlanetsDefaults(t *testing.T) {
	srv := testServer(t)

	// No parameters at all: configured defaults and the current instant.
	rec := get(t, srv, "/api/v1/astro/planets")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandlePlanetsBadInput(t *testing.T) {
	srv := testServer(t)

	cases := []struct {
		name string
		path string
	}{
		{"malformed latitude", "/api/v1/astro/planets?lat=north"},
		{"malformed instant", "/api/v1/astro/planets?dateandtime=yesterday"},
		{"latitude out of range", "/api/v1/astro/planets?lat=95"},
		{"longitude out of range", "/api/v1/astro/planets?lon=200"},
		{"unknown ayanamsa", "/api/v1/astro/planets?ayanamsa=fagan-bradley"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, srv, tc.path)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			resp := decodeResponse(t, rec)
			if resp.Success || resp.Error == "" {
				t.Errorf("error envelope missing: %+v", resp)
			}
		})
	}
}

// ════════════════════════════════════════════════════════════════════
// Ascendant & lunar nodes
// ════════════════════════════════════════════════════════════════════

func TestHandleAscendant(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/ascendant?dateandtime=2024-06-21T05:30:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)

	raw, _ := json.Marshal(resp.Data)
	var asc models.PlanetPosition
	if err := json.Unmarshal(raw, &asc); err != nil {
		t.Fatalf("data is not a position: %v", err)
	}
	if !asc.IsAscendant || asc.House != 1 {
		t.Errorf("ascendant payload wrong: %+v", asc)
	}
}

func TestHandleLunarNodes(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/lunar-nodes?dateandtime=2024-06-21T05:30:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)

	raw, _ := json.Marshal(resp.Data)
	var nodes map[string]models.PlanetPosition
	if err := json.Unmarshal(raw, &nodes); err != nil {
		t.Fatalf("data is not a node map: %v", err)
	}
	if _, ok := nodes["rahu"]; !ok {
		t.Error("rahu missing from payload")
	}
	if _, ok := nodes["kethu"]; !ok {
		t.Error("kethu missing from payload")
	}
	if !nodes["rahu"].Retrograde || !nodes["kethu"].Retrograde {
		t.Error("nodes must report retrograde")
	}
}

// ════════════════════════════════════════════════════════════════════
// Kattams & sunrise
// ════════════════════════════════════════════════════════════════════

func TestHandleKattams(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/kattams?dateandtime=2024-06-21T05:30:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)

	raw, _ := json.Marshal(resp.Data)
	var kattams []models.Kattam
	if err := json.Unmarshal(raw, &kattams); err != nil {
		t.Fatalf("data is not a kattam list: %v", err)
	}
	if len(kattams) != 12 {
		t.Errorf("got %d kattams, want 12", len(kattams))
	}
}

func TestHandleSunriseSunset(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/sunrise-sunset?dateandtime=2024-06-21T00:00:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)

	raw, _ := json.Marshal(resp.Data)
	var times astro.SunTimes
	if err := json.Unmarshal(raw, &times); err != nil {
		t.Fatalf("data is not sun times: %v", err)
	}
	if times.Sunrise == nil || times.Sunset == nil {
		t.Errorf("expected both events at the default tropical site: %+v", times)
	}
}

// ════════════════════════════════════════════════════════════════════
// Chart
// ════════════════════════════════════════════════════════════════════

func TestHandleChart(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/chart?dateandtime=2024-06-21T05:30:00Z&name=Test")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if cl := rec.Header().Get("Content-Language"); cl != "en" {
		t.Errorf("Content-Language = %q, want en", cl)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<svg ") || !strings.HasSuffix(body, "</svg>") {
		t.Error("body is not a complete SVG document")
	}
	if !strings.Contains(body, "Test") {
		t.Error("requested name missing from chart")
	}
}

func TestHandleChartLocale(t *testing.T) {
	srv := testServer(t)

	// Explicit locale parameter wins.
	rec := get(t, srv, "/api/v1/astro/chart?dateandtime=2024-06-21T05:30:00Z&locale=ta")
	if cl := rec.Header().Get("Content-Language"); cl != "ta" {
		t.Errorf("Content-Language = %q, want ta", cl)
	}
	if !strings.Contains(rec.Body.String(), "தேதி") {
		t.Error("tamil date label missing from localized chart")
	}

	// Accept-Language is honoured when no locale parameter is given.
	rec = get(t, srv, "/api/v1/astro/chart?dateandtime=2024-06-21T05:30:00Z",
		"Accept-Language", "ta;q=0.9, en;q=0.5")
	if cl := rec.Header().Get("Content-Language"); cl != "ta" {
		t.Errorf("Accept-Language ignored: Content-Language = %q", cl)
	}
}

func TestHandleChartBadInput(t *testing.T) {
	srv := testServer(t)

	rec := get(t, srv, "/api/v1/astro/chart?lat=95")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// ════════════════════════════════════════════════════════════════════
// WebSocket hub
// ════════════════════════════════════════════════════════════════════

func TestWSHubBroadcastDropsWhenFull(t *testing.T) {
	hub := NewWSHub()
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.Broadcast(WSMessage{Type: "transits"})
	}
	if got := len(hub.broadcast); got != cap(hub.broadcast) {
		t.Errorf("broadcast backlog = %d, want %d", got, cap(hub.broadcast))
	}
}

func TestWSHubClientCount(t *testing.T) {
	hub := NewWSHub()
	if hub.ClientCount() != 0 {
		t.Errorf("fresh hub has %d clients", hub.ClientCount())
	}
}
