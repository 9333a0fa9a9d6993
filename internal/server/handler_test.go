package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"

	"quizconv/internal/quiz"
)

const sampleQuiz = "Q1. What is 2+2?\nA. 3\nB. 4\nCorrect Answer: B\n"

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

// TestHealthz verifies the liveness endpoint.
func TestHealthz(t *testing.T) {
	resp := do(t, NewHandler(Config{}), http.MethodGet, "/healthz", "")
	if resp.Code != http.StatusOK || resp.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

// TestConvertJSON verifies the default JSON conversion.
func TestConvertJSON(t *testing.T) {
	resp := do(t, NewHandler(Config{}), http.MethodPost, "/api/v1/convert", sampleQuiz)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if resp.Header().Get("X-Question-Count") != "1" {
		t.Fatalf("expected question count header")
	}
	var records []quiz.Record
	if err := json.Unmarshal(resp.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].AnswerIndex != 1 || records[0].Options[1] != "4" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

// TestConvertYAMLAndBadFormat verifies format selection.
func TestConvertYAMLAndBadFormat(t *testing.T) {
	handler := NewHandler(Config{})
	resp := do(t, handler, http.MethodPost, "/api/v1/convert?format=yaml", sampleQuiz)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "answerIndex: 1") {
		t.Fatalf("unexpected yaml response %d: %s", resp.Code, resp.Body.String())
	}
	resp = do(t, handler, http.MethodPost, "/api/v1/convert?format=xml", sampleQuiz)
	if resp.Code != http.StatusBadRequest || !strings.Contains(resp.Body.String(), "unsupported_format") {
		t.Fatalf("unexpected bad format response %d: %s", resp.Code, resp.Body.String())
	}
}

// TestConvertRejectsInvalidEncoding verifies non UTF-8 bodies return 422.
func TestConvertRejectsInvalidEncoding(t *testing.T) {
	resp := do(t, NewHandler(Config{}), http.MethodPost, "/api/v1/convert", "Q1. Caf\xe9")
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != `{"error":"invalid_encoding"}` {
		t.Fatalf("unexpected body %s", got)
	}
}

// TestConvertBodyLimit verifies oversized bodies return 413.
func TestConvertBodyLimit(t *testing.T) {
	handler := NewHandler(Config{MaxBodyBytes: 16})
	resp := do(t, handler, http.MethodPost, "/api/v1/convert", sampleQuiz)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

// TestConvertEmptyBody verifies an empty quiz yields an empty array.
func TestConvertEmptyBody(t *testing.T) {
	resp := do(t, NewHandler(Config{}), http.MethodPost, "/api/v1/convert", "")
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("unexpected response %d %q", resp.Code, resp.Body.String())
	}
}

// TestCORSPreflight verifies allowed origins receive CORS headers.
func TestCORSPreflight(t *testing.T) {
	handler := NewHandler(Config{AllowedOrigins: []string{"http://localhost:5173"}})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/convert", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow origin %q", got)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header on preflight response")
	}
}

// TestAccessLog verifies requests are logged to the configured writer.
func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	do(t, NewHandler(Config{LogOutput: &logs}), http.MethodGet, "/healthz", "")
	if !strings.Contains(logs.String(), "/healthz") {
		t.Fatalf("expected access log line, got %q", logs.String())
	}
}

// TestAccessLogColor verifies NoColor alone decides whether log lines carry ANSI codes.
func TestAccessLogColor(t *testing.T) {
	origTTY := middleware.IsTTY
	middleware.IsTTY = true
	t.Cleanup(func() { middleware.IsTTY = origTTY })

	var colored, plain bytes.Buffer
	do(t, NewHandler(Config{LogOutput: &colored}), http.MethodGet, "/healthz", "")
	do(t, NewHandler(Config{LogOutput: &plain, NoColor: true}), http.MethodGet, "/healthz", "")
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("expected ANSI codes in colored log, got %q", colored.String())
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("expected plain log, got %q", plain.String())
	}
}
