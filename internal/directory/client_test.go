package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barsleague/rosterize/internal/model"
)

func testClient(baseURL string) *Client {
	return NewClient(model.DirectoryConfig{
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
		UserAgent:  "rosterize-test",
		RatePerSec: 1000,
		Burst:      1000,
	})
}

func TestClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/members" {
			t.Errorf("path = %q", r.URL.Path)
		}
		switch r.URL.Query().Get("email") {
		case "jane@bars.org":
			_, _ = w.Write([]byte(`{"id": "ACC-1"}`))
		case "ghost@bars.org":
			w.WriteHeader(http.StatusNotFound)
		case "empty@bars.org":
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()

	id, err := c.Lookup(ctx, "jane@bars.org")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if id != "ACC-1" {
		t.Errorf("id = %q", id)
	}

	if _, err := c.Lookup(ctx, "ghost@bars.org"); !errors.Is(err, ErrNotFound) {
		t.Errorf("404 error = %v, want ErrNotFound", err)
	}

	// A 200 with no id is still "not found".
	if _, err := c.Lookup(ctx, "empty@bars.org"); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty body error = %v, want ErrNotFound", err)
	}

	var statusErr *StatusError
	_, err = c.Lookup(ctx, "boom@bars.org")
	if !errors.As(err, &statusErr) || statusErr.Code != 500 {
		t.Errorf("500 error = %v, want StatusError{500}", err)
	}
}
