package fetch

import (
	"net/http"
	"net/http/httptest"
	"time"

	"testing"
)

func TestGetReturnsBody(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	body, err := c.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "<html>ok</html>" {
		t.Errorf("unexpected body: %q", body)
	}

	// Second fetch of the same URL is served from the per-run cache.
	if _, err := c.Get(srv.URL); err != nil {
		t.Fatalf("cached get failed: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected 1 server hit, got %d", hits)
	}
}

func TestGetNonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	if _, err := c.Get(srv.URL); err == nil {
		t.Fatal("expected error for status 502")
	}
}

func TestGetConnectionErrorIsError(t *testing.T) {
	c := NewClient(1 * time.Second)
	if _, err := c.Get("http://127.0.0.1:1/nothing"); err == nil {
		t.Fatal("expected connection error")
	}
}
