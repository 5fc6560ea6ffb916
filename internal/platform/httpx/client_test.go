package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	apperrors "mindbloom/internal/platform/errors"
)

func TestGetJSONEncodesQueryAndDecodesBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "u 1" {
			t.Errorf("query must be encoded, got %q", got)
		}
		_, _ = w.Write([]byte(`{"value":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Value string `json:"value"`
	}
	query := url.Values{}
	query.Set("user_id", "u 1")
	if err := New(time.Second).GetJSON(context.Background(), srv.URL, query, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != "ok" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestDoClassifiesStatusAndDecodeFailures(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		handler http.HandlerFunc
		want    error
	}{
		"404 is transport": {
			func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) },
			apperrors.ErrTransport,
		},
		"500 is transport": {
			func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			apperrors.ErrTransport,
		},
		"truncated body is decode": {
			func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`{"value":`)) },
			apperrors.ErrDecode,
		},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			var out map[string]any
			err := New(time.Second).GetJSON(context.Background(), srv.URL, nil, &out)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPostJSONSendsContentType(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out struct{}
	if err := New(time.Second).PostJSON(context.Background(), srv.URL, map[string]string{"k": "v"}, &out); err != nil {
		t.Fatalf("2xx with body must succeed, got %v", err)
	}
}

func TestTimeoutIsTransport(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	err := New(50*time.Millisecond).GetJSON(context.Background(), srv.URL, nil, nil)
	if !errors.Is(err, apperrors.ErrTransport) {
		t.Fatalf("expected ErrTransport on timeout, got %v", err)
	}
}

func TestNilOutSkipsDecoding(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`definitely not json`))
	}))
	defer srv.Close()

	if err := New(time.Second).GetJSON(context.Background(), srv.URL, nil, nil); err != nil {
		t.Fatalf("nil out must skip decoding, got %v", err)
	}
}
