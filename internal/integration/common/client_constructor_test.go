package common

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/futig/rfp-backend/internal/config"
	"go.uber.org/zap"
)

func newTLS12Server(t *testing.T, gotAgent *string) *httptest.Server {
	t.Helper()
	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	server.TLS = &tls.Config{MaxVersion: tls.VersionTLS12}
	server.StartTLS()
	t.Cleanup(server.Close)
	return server
}

func testClientConfig(url, minTLS string) config.HTTPClientConfig {
	return config.HTTPClientConfig{
		RequestTimeout:      5 * time.Second,
		TLSHandshakeTimeout: 2 * time.Second,
		IdleConns:           4,
		IdleConnsPerHost:    2,
		MinTLSVersion:       minTLS,
		InsecureSkipVerify:  true,
		Url:                 url,
	}
}

func TestNewBaseConnector_TLSAndUserAgent(t *testing.T) {
	var agent string
	server := newTLS12Server(t, &agent)

	conn := NewBaseConnector("extractor", testClientConfig(server.URL, "1.2"), zap.NewNop())
	if err := conn.DoRequest(context.Background(), http.MethodGet, "/", nil, nil); err != nil {
		t.Fatalf("Expected TLS 1.2 request to succeed, got %v", err)
	}
	if agent != "rfp-backend/extractor" {
		t.Errorf("Expected user agent rfp-backend/extractor, got %q", agent)
	}
}

func TestNewBaseConnector_MinTLSVersionEnforced(t *testing.T) {
	var agent string
	server := newTLS12Server(t, &agent)

	conn := NewBaseConnector("extractor", testClientConfig(server.URL, "1.3"), zap.NewNop())
	if err := conn.DoRequest(context.Background(), http.MethodGet, "/", nil, nil); err == nil {
		t.Error("Expected handshake failure against a TLS 1.2 only server")
	}
}
