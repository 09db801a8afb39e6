package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestConnector(url string, opts ...HttpOpts) *Connector {
	return NewConnector(&ConnectorConfig{BaseURL: url, Logger: zap.NewNop()}, opts...)
}

func TestDoRequest_JSONRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/echo" {
			t.Errorf("Expected path /echo, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Expected JSON content type, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Expected bearer token, got %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Errorf("Expected request id header, got %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer srv.Close()

	conn := newTestConnector(srv.URL, WithAuthToken("secret"), WithRequestLogging())

	var resp struct {
		Name string `json:"name"`
	}
	err := conn.DoRequest(context.Background(), http.MethodPost, "/echo", map[string]string{"name": "rfp"}, &resp,
		WithHeader("X-Request-ID", "req-1"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Name != "rfp" {
		t.Errorf("Expected echoed name rfp, got %q", resp.Name)
	}
}

func TestDoRequest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestConnector(srv.URL).DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", httpErr.StatusCode)
	}
	if !IsRetryable(err) {
		t.Error("Expected 502 to be retryable")
	}
}

func TestDoRequest_OverrideURL(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestConnector("http://127.0.0.1:1").DoRequest(context.Background(), http.MethodPost, "/ignored", nil, nil, WithURL(srv.URL))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !hit {
		t.Error("Expected override URL to receive the request")
	}
}

func TestDoMultipartRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("Expected file part, got %v", err)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name":%q,"size":%d}`, header.Filename, len(data))
	}))
	defer srv.Close()

	var resp struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	err := newTestConnector(srv.URL).DoMultipartRequest(context.Background(), http.MethodPost, "/", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", "rfp.pdf")
		if err != nil {
			return err
		}
		_, err = part.Write([]byte("%PDF-"))
		return err
	}, &resp)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Name != "rfp.pdf" || resp.Size != 5 {
		t.Errorf("Expected rfp.pdf of 5 bytes, got %+v", resp)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network", &NetworkError{Err: errors.New("connection refused")}, true},
		{"too many requests", &HTTPError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &HTTPError{StatusCode: http.StatusInternalServerError}, true},
		{"bad request", &HTTPError{StatusCode: http.StatusBadRequest}, false},
		{"canceled", &NetworkError{Err: context.Canceled}, false},
		{"plain", errors.New("decode response"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	err := newTestConnector(srv.URL, WithRequestTimeout(20*time.Millisecond)).DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Errorf("Expected NetworkError on timeout, got %v", err)
	}
}
