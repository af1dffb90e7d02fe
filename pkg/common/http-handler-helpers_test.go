package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
)

func TestJsonHandlerWritesJson(t *testing.T) {
	var session string
	handler := JsonHandler(nil, func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		session = sessionId
		return enc.Encode(map[string]int{"count": 3})
	})
	req := httptest.NewRequest(http.MethodGet, "/api/products/discover", nil)
	req.Header.Set("Origin", "https://grochain.example")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		t.Errorf("Expected json content type, got %s", rec.Header().Get("Content-Type"))
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://grochain.example" {
		t.Errorf("Expected origin to be allowed")
	}
	if strings.TrimSpace(rec.Body.String()) != `{"count":3}` {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
	if _, err := uuid.Parse(session); err != nil {
		t.Errorf("Expected uuid session, got %q", session)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookie || cookies[0].Value != session {
		t.Errorf("Expected session cookie, got %v", cookies)
	}
}

func TestJsonHandlerKeepsSession(t *testing.T) {
	existing := uuid.NewString()
	var session string
	handler := JsonHandler(nil, func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		session = sessionId
		return nil
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: existing})
	rec := httptest.NewRecorder()
	handler(rec, req)
	if session != existing {
		t.Errorf("Expected session %s, got %s", existing, session)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Errorf("Expected no new cookie")
	}
}

func TestJsonHandlerErrorStatus(t *testing.T) {
	handler := JsonHandler(nil, func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		return NotFound(errors.New("unknown collection"))
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestJsonHandlerOptions(t *testing.T) {
	called := false
	handler := JsonHandler(nil, func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		called = true
		return nil
	})
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://grochain.example")
	rec := httptest.NewRecorder()
	handler(rec, req)
	if called || rec.Code != http.StatusAccepted {
		t.Errorf("Expected preflight answer without calling handler, got %d", rec.Code)
	}
}
