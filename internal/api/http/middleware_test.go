package http

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/d3ads3c/cafepanel-sub000/internal/observability"
	apperrors "github.com/d3ads3c/cafepanel-sub000/pkg/util"
)

func newEnvelopeApp(t *testing.T, production bool) (*fiber.App, *observability.Metrics) {
	t.Helper()
	app := fiber.New()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0, production)
	return app, metrics
}

func envelopeRequest(t *testing.T, app *fiber.App, path string) (*nethttp.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("response body %q: %v", body, err)
	}
	return resp, parsed
}

func TestErrorEnvelopeShape(t *testing.T) {
	app, _ := newEnvelopeApp(t, false)
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("order needs at least one line", map[string]any{"field": "lines"})
	})

	resp, body := envelopeRequest(t, app, "/fail")
	if resp.StatusCode != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["success"] != false || body["code"] != "VALIDATION_FAILED" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	details, ok := body["details"].(map[string]any)
	if !ok || details["field"] != "lines" {
		t.Fatalf("details missing: %v", body)
	}
}

func TestErrorEnvelopeHidesInternalInProduction(t *testing.T) {
	boom := errors.New("pq: connection refused")

	app, _ := newEnvelopeApp(t, true)
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewInternalError(boom)
	})
	resp, body := envelopeRequest(t, app, "/fail")
	if resp.StatusCode != nethttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if _, leaked := body["error"]; leaked {
		t.Fatalf("internal error text leaked in production: %v", body)
	}

	devApp, _ := newEnvelopeApp(t, false)
	devApp.Get("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewInternalError(boom)
	})
	_, devBody := envelopeRequest(t, devApp, "/fail")
	if devBody["error"] != boom.Error() {
		t.Fatalf("error detail absent outside production: %v", devBody)
	}
}

func TestRequestLoggerSeesMappedStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	RegisterMiddlewares(app, zap.New(core), nil, 0, true)
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("bad input", nil)
	})

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/fail", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != nethttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("request log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(nethttp.StatusBadRequest) {
		t.Fatalf("logged status = %v, want 400", got)
	}
}

func TestPanicRecovery(t *testing.T) {
	app, metrics := newEnvelopeApp(t, true)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("handler exploded")
	})

	resp, body := envelopeRequest(t, app, "/panic")
	if resp.StatusCode != nethttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Fatalf("unexpected envelope: %v", body)
	}

	snapshot := metrics.Snapshot()
	if snapshot.Errors == 0 {
		t.Fatal("panic not recorded in error metrics")
	}
}
