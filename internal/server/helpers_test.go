package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequireMethod(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/terms", nil)
	if RequireMethod(rr, req, http.MethodGet, http.MethodPost) {
		t.Fatal("expected PATCH to be rejected")
	}
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rr.Code)
	}
	if got := rr.Header().Get("Allow"); got != "GET, POST" {
		t.Errorf("expected Allow header 'GET, POST', got %q", got)
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/terms/generate", strings.NewReader("{bad"))
	var v struct{}
	if DecodeJSON(rr, req, &v) {
		t.Fatal("expected decode failure")
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestDecodeOptionalJSON(t *testing.T) {
	var v struct {
		Question string `json:"question"`
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/terms/1/explain", nil)
	if !DecodeOptionalJSON(rr, req, &v) {
		t.Fatal("missing body should be accepted")
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/terms/1/explain", strings.NewReader(`{"question":"왜요?"}`))
	if !DecodeOptionalJSON(rr, req, &v) || v.Question != "왜요?" {
		t.Fatalf("expected question to decode, got %+v", v)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/terms/1/explain", strings.NewReader(`[`))
	if DecodeOptionalJSON(rr, req, &v) {
		t.Fatal("expected malformed body to be rejected")
	}
}

func TestWriteErrorWithCode(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteErrorWithCode(rr, http.StatusBadGateway, "boom", "connection_failed")
	if rr.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"code":"connection_failed"`) {
		t.Errorf("expected code in body, got %s", rr.Body.String())
	}
}
