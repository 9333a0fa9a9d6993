package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"quizconv/internal/quiz"
)

// HTTPResponse captures a status code and body for assertions.
type HTTPResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// HTTPHealth sends GET /healthz and returns the body.
func HTTPHealth(t testing.TB, baseURL string) string {
	t.Helper()
	resp := DoRequest(t, http.MethodGet, baseURL+"/healthz", "", nil)
	if resp.Status != http.StatusOK {
		t.Fatalf("unexpected health status %d: %s", resp.Status, resp.Body)
	}
	return string(resp.Body)
}

// HTTPConvert posts quiz text to /api/v1/convert and decodes the JSON records.
func HTTPConvert(t testing.TB, baseURL, text string) []quiz.Record {
	t.Helper()
	resp := DoRequest(t, http.MethodPost, baseURL+"/api/v1/convert", "text/plain; charset=utf-8", []byte(text))
	if resp.Status != http.StatusOK {
		t.Fatalf("unexpected convert status %d: %s", resp.Status, resp.Body)
	}
	var records []quiz.Record
	if err := json.Unmarshal(resp.Body, &records); err != nil {
		t.Fatalf("decode convert response: %v", err)
	}
	return records
}

// DoRequest executes an HTTP request and returns the full response body.
func DoRequest(t testing.TB, method, url, contentType string, payload []byte) HTTPResponse {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return HTTPResponse{Status: resp.StatusCode, Header: resp.Header, Body: data}
}
