package formats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type handlerResponse struct {
	Data []Entry `json:"data"`
}

func TestHandler_EmptyQueryListsAllFormats(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/formats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := strings.TrimSpace(res.Header.Get("Content-Type")); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	var values []string
	for _, entry := range payload.Data {
		values = append(values, entry.Value)
	}
	if strings.Join(values, ",") != "a4,a5,v1,v2,v3,i4" {
		t.Fatalf("unexpected formats: %v", values)
	}
}

func TestHandler_EmptySearchNone(t *testing.T) {
	h := Handler(WithEmptySearchMode(EmptySearchNone))

	req := httptest.NewRequest(http.MethodGet, "/api/formats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestHandler_SearchAndLimitClamped(t *testing.T) {
	h := Handler(WithMaxLimit(2))

	req := httptest.NewRequest(http.MethodGet, "/api/formats?q=poster&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(payload.Data), payload.Data)
	}
	if payload.Data[0].Value != "a4" || payload.Data[1].Value != "a5" {
		t.Fatalf("unexpected results: %#v", payload.Data)
	}
}

func TestHandler_ValuePrefixRanksFirst(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/formats?q=v", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) < 3 {
		t.Fatalf("expected v formats, got %#v", payload.Data)
	}
	for i, want := range []string{"v1", "v2", "v3"} {
		if payload.Data[i].Value != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, payload.Data[i].Value)
		}
	}
}

func TestHandler_CustomEntries(t *testing.T) {
	h := Handler(WithEntries([]Entry{{Value: "i4", Label: "Shelf sheet"}}))

	req := httptest.NewRequest(http.MethodHead, "/api/formats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("HEAD should answer 200 without body, got %d/%d", rec.Code, rec.Body.Len())
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := Handler(
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/formats?q=a4", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/formats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
