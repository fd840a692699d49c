package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkveil/linkveil/internal/config"
)

func TestNewUpstreamClientUsesConfiguredTimeout(t *testing.T) {
	cfg := &config.Config{UpstreamTimeout: config.Duration(5 * time.Second)}
	client := NewUpstreamClient(cfg)
	if client.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", client.Timeout)
	}
}

func TestNewUpstreamClientDefaultsWithoutConfig(t *testing.T) {
	client := NewUpstreamClient(nil)
	if client.Timeout != 30*time.Second {
		t.Fatalf("expected default 30s timeout, got %v", client.Timeout)
	}
	if client.CheckRedirect == nil {
		t.Fatalf("expected a redirect cap to be installed")
	}
}

func TestNewUpstreamClientStopsRedirectLoops(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	}))
	defer upstream.Close()

	client := NewUpstreamClient(&config.Config{MaxRedirects: 3})
	resp, err := client.Get(upstream.URL + "/loop")
	if err == nil {
		resp.Body.Close()
		t.Fatalf("expected redirect loop to fail")
	}
}
