package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/govasco/go-trip-backend/internal/domain"
	"github.com/govasco/go-trip-backend/internal/idempotency"
	"github.com/govasco/go-trip-backend/internal/quota"
	"github.com/govasco/go-trip-backend/internal/services"
	"github.com/govasco/go-trip-backend/internal/store"
)

// fakeGenerator returns a canned itinerary or error and counts calls.
type fakeGenerator struct {
	it    *domain.Itinerary
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, req *domain.TripRequest) (*domain.Itinerary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.it, nil
}

func sampleItinerary() *domain.Itinerary {
	return &domain.Itinerary{
		Destination: "Lisbonne, Portugal",
		Days: []domain.Day{{
			Day:   1,
			Theme: "Alfama",
			Activities: []domain.Activity{{
				Time: "09:00", Title: "Château Saint-Georges",
				Description: "Vue sur la ville", Location: "Alfama", CostEstimate: "10-15€",
			}},
		}},
		BudgetSummary: domain.BudgetSummary{
			Accommodation: "120-180€", Food: "60-90€", Activities: "30-50€",
			Transport: "15-25€", Total: "225-345€",
		},
		Tips: []string{"Prenez le tram 28 tôt le matin"},
	}
}

type genEnv struct {
	router *gin.Engine
	gen    *fakeGenerator
}

// newGenEnv wires the POST/GET routes with a real quota limiter and
// idempotency cache over in-memory stores.
func newGenEnv(t *testing.T, gen *fakeGenerator, hasKey bool, cooldown time.Duration) *genEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lim := quota.New(store.NewMemoryRateLimitStore(), 3, 10, 24*time.Hour, cooldown)
	cache := idempotency.NewCache(store.NewMemoryIdempotencyStore(), 24*time.Hour)
	h := NewGenerateHandlers(gen, lim, cache, "claude-sonnet-4-20250514", 4096, hasKey)

	r := gin.New()
	r.POST("/api/v1/generate-itinerary", h.Generate)
	r.GET("/api/v1/generate-itinerary", h.Status)
	return &genEnv{router: r, gen: gen}
}

func (e *genEnv) post(body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-itinerary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	e.router.ServeHTTP(w, req)
	return w
}

func requestBody(destination string, days int) string {
	return fmt.Sprintf(`{"destination":%q,"days":%d,"budget":"balanced","interests":["culture"],"pace":"relaxed"}`, destination, days)
}

func TestGenerate_SuccessAndCacheReplay(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, true, 0)
	headers := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	// First call: fresh generation.
	w := env.post(requestBody("Lisbonne", 3), headers)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Cached || resp.Itinerary == nil || resp.Itinerary.Destination != "Lisbonne, Portugal" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "2" {
		t.Fatalf("X-RateLimit-Remaining=%q want 2", got)
	}
	if reset := w.Header().Get("X-RateLimit-Reset"); reset == "" {
		t.Fatalf("X-RateLimit-Reset missing")
	} else if _, err := time.Parse(time.RFC3339, reset); err != nil {
		t.Fatalf("X-RateLimit-Reset not RFC3339: %q", reset)
	}

	// Same payload with different key order: served from cache, one model call.
	reordered := `{"days":3,"pace":"relaxed","interests":["culture"],"budget":"balanced","destination":"Lisbonne"}`
	w2 := env.post(reordered, headers)
	if w2.Code != http.StatusOK {
		t.Fatalf("replay status=%d", w2.Code)
	}
	var resp2 GenerateResponse
	if err := json.Unmarshal(w2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("decode replay: %v", err)
	}
	if !resp2.Cached {
		t.Fatalf("replay should be served from cache: %+v", resp2)
	}
	if env.gen.calls != 1 {
		t.Fatalf("model calls=%d want 1", env.gen.calls)
	}
}

func TestGenerate_ValidationError(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, true, 0)

	w := env.post(requestBody("Lisbonne", 31), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != CodeValidationError || resp.Error != "Données invalides" {
		t.Fatalf("unexpected error: %+v", resp)
	}
	if !strings.Contains(resp.Details, "Maximum 30 jours") {
		t.Fatalf("details=%q", resp.Details)
	}
	if env.gen.calls != 0 {
		t.Fatalf("invalid request must not reach the model")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, true, 0)

	w := env.post(`{"destination":`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), CodeValidationError) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestGenerate_QuotaExhaustion(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, true, 0)
	headers := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	// Three distinct requests exhaust the guest budget.
	for i := 1; i <= 3; i++ {
		if w := env.post(requestBody("Lisbonne", i), headers); w.Code != http.StatusOK {
			t.Fatalf("request %d: status=%d", i, w.Code)
		}
	}

	w := env.post(requestBody("Lisbonne", 4), headers)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("4th request status=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != CodeRateLimitExceeded || !strings.Contains(resp.Error, "Limite atteinte") {
		t.Fatalf("unexpected error: %+v", resp)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("X-RateLimit-Remaining=%q want 0", got)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("Retry-After missing on quota denial")
	}

	// A cached replay still succeeds after exhaustion.
	wCached := env.post(requestBody("Lisbonne", 3), headers)
	if wCached.Code != http.StatusOK || !strings.Contains(wCached.Body.String(), `"cached":true`) {
		t.Fatalf("cache replay after exhaustion: %d %s", wCached.Code, wCached.Body.String())
	}

	// Another identity is unaffected.
	other := map[string]string{"X-Forwarded-For": "198.51.100.2"}
	if w := env.post(requestBody("Porto", 2), other); w.Code != http.StatusOK {
		t.Fatalf("other identity status=%d", w.Code)
	}
}

func TestGenerate_Cooldown(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, true, 30*time.Second)
	headers := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	if w := env.post(requestBody("Lisbonne", 3), headers); w.Code != http.StatusOK {
		t.Fatalf("first request status=%d", w.Code)
	}

	w := env.post(requestBody("Porto", 2), headers)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("cooldown status=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Error, "Veuillez patienter") {
		t.Fatalf("error=%q", resp.Error)
	}
	// The denial must not burn budget; the model was called once.
	if env.gen.calls != 1 {
		t.Fatalf("model calls=%d want 1", env.gen.calls)
	}
}

func TestGenerate_AuthenticatedTierUsesUserIdentity(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, true, 0)
	headers := map[string]string{"X-User-ID": "alice", "X-Forwarded-For": "203.0.113.7"}

	// Authenticated ceiling is 10: the 4th request still passes.
	for i := 1; i <= 4; i++ {
		if w := env.post(requestBody("Lisbonne", i), headers); w.Code != http.StatusOK {
			t.Fatalf("request %d: status=%d body=%s", i, w.Code, w.Body.String())
		}
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{it: sampleItinerary()}, false, 0)

	w := env.post(requestBody("Lisbonne", 3), nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), CodeAPIKeyMissing) {
		t.Fatalf("body=%s", w.Body.String())
	}
	if env.gen.calls != 0 {
		t.Fatalf("model must not be called without a key")
	}
}

func TestGenerate_GenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: &services.GenerationError{Detail: "no JSON object in model output", Attempts: 2}}
	env := newGenEnv(t, gen, true, 0)

	w := env.post(requestBody("Lisbonne", 3), nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != CodeGenerationFailed || resp.Details != "no JSON object in model output" {
		t.Fatalf("unexpected error: %+v", resp)
	}
}

func TestGenerate_ServiceMissingKeyError(t *testing.T) {
	gen := &fakeGenerator{err: services.ErrMissingAPIKey}
	env := newGenEnv(t, gen, true, 0)

	w := env.post(requestBody("Lisbonne", 3), nil)
	if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), CodeAPIKeyMissing) {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestStatus(t *testing.T) {
	env := newGenEnv(t, &fakeGenerator{}, true, 0)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/generate-itinerary", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var st GenerateStatus
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Status != "ok" || st.Model != "claude-sonnet-4-20250514" || st.MaxTokens != 4096 {
		t.Fatalf("unexpected status: %+v", st)
	}

	envNoKey := newGenEnv(t, &fakeGenerator{}, false, 0)
	w2 := httptest.NewRecorder()
	envNoKey.router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/v1/generate-itinerary", nil))
	if !strings.Contains(w2.Body.String(), "missing_api_key") {
		t.Fatalf("body=%s", w2.Body.String())
	}
}
