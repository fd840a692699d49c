package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newPageApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	RegisterPageRoutes(app)
	return app
}

func TestLandingPageServed(t *testing.T) {
	app := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, `name="url"`) {
		t.Fatalf("landing page should carry the address form")
	}
	if !strings.Contains(page, "linkveil-history") {
		t.Fatalf("landing page should manage client-local history")
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/-/health", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload.Name != "linkveil" {
		t.Fatalf("unexpected service name %q", payload.Name)
	}
	if !strings.Contains(payload.Version, "linkveil") {
		t.Fatalf("version should identify the service, got %q", payload.Version)
	}
}
