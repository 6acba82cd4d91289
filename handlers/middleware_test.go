package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"elecquote/testhelpers"
)

func TestLoggerFrom_FromContext(t *testing.T) {
	expected := zap.NewExample()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), LoggerKey, expected))

	if got := LoggerFrom(req, zap.NewNop()); got != expected {
		t.Error("expected the context logger")
	}
}

func TestLoggerFrom_NotInContext(t *testing.T) {
	fallback := zap.NewNop()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := LoggerFrom(req, fallback); got != fallback {
		t.Error("expected the fallback logger")
	}
}

func TestRequestLogger_TagsRequest(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	observed, logs := observer.New(zap.DebugLevel)
	mw := RequestLogger(zap.New(observed))

	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := mw(e); err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("expected request id header req-42, got %q", got)
	}

	LoggerFrom(e.Request, zap.NewNop()).Info("inside handler")
	entries := logs.FilterMessage("inside handler").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 handler log entry, got %d", len(entries))
	}
	if id := entries[0].ContextMap()["request_id"]; id != "req-42" {
		t.Errorf("expected request_id req-42, got %v", id)
	}
	if logs.FilterMessage("request handled").Len() != 1 {
		t.Error("expected the request to be logged")
	}
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mw := RequestLogger(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := mw(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("expected a uuid request id, got %q", id)
	}
}

func TestDepsLogger_Fallback(t *testing.T) {
	d := &Deps{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := newTestRequestEvent(nil, req, httptest.NewRecorder())

	if d.logger(e) == nil {
		t.Fatal("expected a logger")
	}
	if d.now().IsZero() {
		t.Error("expected the wall clock")
	}
}
