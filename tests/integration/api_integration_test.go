// README: Integration smoke tests against a running wayfarer-api instance.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL(t *testing.T) string {
	t.Helper()
	base := strings.TrimRight(envOrDefault("WAYFARER_API_BASE_URL", "http://localhost:8080"), "/")
	resp, err := http.Get(base + "/health")
	if err != nil {
		t.Skipf("wayfarer-api not reachable at %s: %v", base, err)
	}
	resp.Body.Close()
	return base
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// TestValidateScantLocationPassesGate verifies the fail-open short circuit:
// a single non-empty field must validate without blocking, regardless of
// what the generation service would say.
func TestValidateScantLocationPassesGate(t *testing.T) {
	base := baseURL(t)
	client := &http.Client{Timeout: 30 * time.Second}

	body, _ := json.Marshal(map[string]string{"country": "Japan"})
	resp, err := client.Post(base+"/api/locations/validate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("validate request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Valid {
		t.Error("scant location input must pass the gate")
	}
}

// TestSavedItinerariesRoundTrip lists the saved collection and, when it has
// entries, fetches one day route for the first itinerary.
func TestSavedItinerariesRoundTrip(t *testing.T) {
	base := baseURL(t)
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(base + "/api/itineraries")
	if err != nil {
		t.Fatalf("list request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list []struct {
		ID   string `json:"id"`
		Days []struct {
			Day int `json:"day"`
		} `json:"days"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) == 0 || len(list[0].Days) == 0 {
		t.Skip("no saved itineraries to exercise the route endpoint")
	}

	routeResp, err := client.Get(base + "/api/itineraries/" + list[0].ID + "/days/1/route")
	if err != nil {
		t.Fatalf("route request: %v", err)
	}
	defer routeResp.Body.Close()
	if routeResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", routeResp.StatusCode)
	}
	var route struct {
		MapURL string `json:"map_url"`
	}
	if err := json.NewDecoder(routeResp.Body).Decode(&route); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(route.MapURL, "https://www.google.com/maps/embed/v1/") {
		t.Errorf("map_url = %q", route.MapURL)
	}
}
