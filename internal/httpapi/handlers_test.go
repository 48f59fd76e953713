package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/username/goviet/pkg/ime"
)

func testRouter(t *testing.T) (*ime.Engine, http.Handler) {
	t.Helper()
	e := ime.New()
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return e, NewRouter(e, log)
}

func TestHandleHealth(t *testing.T) {
	_, router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("X-Request-Id header not set")
	}
}

func TestHandleGetBuffer(t *testing.T) {
	e, router := testRouter(t)
	for _, k := range "vieetj" {
		e.ProcessKey(k, false, false, false)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/buffer", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["buffer"] != "việt" {
		t.Fatalf("buffer = %q, want %q", body["buffer"], "việt")
	}
}

func TestHandleSetConfig(t *testing.T) {
	e, router := testRouter(t)

	body := `{"method":"vni","modern":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/config", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// VNI's digit tone shape should now be active: "a6" -> "â".
	e.ProcessKey('a', false, false, false)
	e.ProcessKey('6', false, false, false)
	if got := e.GetBuffer(); got != "â" {
		t.Fatalf("buffer after a6 = %q, want %q (method switch did not apply)", got, "â")
	}
}

func TestHandleSetConfigRejectsUnknownMethod(t *testing.T) {
	_, router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/config", strings.NewReader(`{"method":"bogus"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestShortcutCRUD(t *testing.T) {
	e, router := testRouter(t)

	// "omg" touches no Telex transform key (no doubled vowel, no w/mark
	// key), so it composes unchanged and stays eligible for the
	// OnWordBoundary match, which requires composed == raw.
	add := httptest.NewRequest(http.MethodPost, "/v1/shortcuts/", strings.NewReader(`{"trigger":"omg","replacement":"oh my god"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, want 201", rec.Code)
	}

	for _, k := range "omg" {
		e.ProcessKey(k, false, false, false)
	}
	res := e.ProcessKey(' ', false, false, false)
	if got := string(res.Chars); got != "oh my god " {
		t.Fatalf("shortcut expansion chars = %q, want %q", got, "oh my god ")
	}

	del := httptest.NewRequest(http.MethodDelete, "/v1/shortcuts/omg", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, del)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", rec.Code)
	}
}

func TestHandleClearWordAndAll(t *testing.T) {
	e, router := testRouter(t)
	e.ProcessKey('a', false, false, false)

	req := httptest.NewRequest(http.MethodPost, "/v1/clear-word", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear-word status = %d, want 200", rec.Code)
	}
	if got := e.GetBuffer(); got != "" {
		t.Fatalf("buffer after clear-word = %q, want empty", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/clear-all", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear-all status = %d, want 200", rec.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	_, router := testRouter(t)

	var last *httptest.ResponseRecorder
	limited := false
	for i := 0; i < defaultMutationRPS*3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/clear-word", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		last = rec
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("expected rate limiting to kick in within %d requests, last status %d", defaultMutationRPS*3, last.Code)
	}
}
