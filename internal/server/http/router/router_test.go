package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zendocod/zendo/internal/config"
	"github.com/zendocod/zendo/internal/server/http/handlers"
	"github.com/zendocod/zendo/internal/server/http/middleware"
	testhelpers "github.com/zendocod/zendo/internal/test"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{AdminKey: "secret"}
	return Setup(testhelpers.NewStoreFacadeStub(), cfg, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine()

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]any{
		"name": "Awa", "phone": "+2250700000001", "city": "Abidjan",
		"productSlug": "zendo-gel", "quantity": 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for checkout, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for products, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/analytics/track-visit", bytes.NewReader([]byte(`{"path":"/"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202 for track-visit, got %d", resp.Code)
	}
}

func TestSetupAdminRoutesRequireKey(t *testing.T) {
	engine := newEngine()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodGet, "/api/admin/orders/o1"},
		{http.MethodPut, "/api/admin/orders/o1"},
		{http.MethodPatch, "/api/admin/orders/o1/status"},
		{http.MethodDelete, "/api/admin/orders/o1"},
		{http.MethodDelete, "/api/admin/orders/bulk"},
		{http.MethodPatch, "/api/admin/orders/bulk/status"},
		{http.MethodPost, "/api/admin/products"},
		{http.MethodPut, "/api/admin/products/zendo-gel"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/relance"},
		{http.MethodPost, "/api/admin/relance"},
	}
	for _, route := range routes {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(route.method, route.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without key, got %d", route.method, route.path, resp.Code)
		}
	}
}

func TestSetupAdminRoutesWithKey(t *testing.T) {
	engine := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set(middleware.AdminKeyHeader, "secret")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for listing, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set(middleware.AdminKeyHeader, "secret")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for stats, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]any{"productName": "Zendo Gel"})
	req = httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AdminKeyHeader, "secret")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for product creation, got %d", resp.Code)
	}
}

var _ handlers.StoreFacade = (*testhelpers.StoreFacadeStub)(nil)
