package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStaticIsDeterministic(t *testing.T) {
	p := NewStatic([]string{"one", "two", "three"})

	first := p.Tip(context.Background(), "alice")
	for i := 0; i < 5; i++ {
		if got := p.Tip(context.Background(), "alice"); got != first {
			t.Fatalf("Tip not deterministic: %q vs %q", got, first)
		}
	}
}

func TestStaticEmptyListUsesBuiltins(t *testing.T) {
	p := NewStatic(nil)
	if got := p.Tip(context.Background(), "alice"); got == "" {
		t.Fatal("Tip returned empty string")
	}
}

func TestHTTPProviderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "alice" {
			t.Errorf("name query = %q, want %q", got, "alice")
		}
		w.Write([]byte(`{"text":"remote wisdom"}`))
	}))
	t.Cleanup(srv.Close)

	p := NewHTTP(srv.URL, time.Second, nil, zerolog.Nop())
	if got := p.Tip(context.Background(), "alice"); got != "remote wisdom" {
		t.Fatalf("Tip = %q, want %q", got, "remote wisdom")
	}
}

func TestHTTPProviderMasksFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "empty text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"text":""}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			t.Cleanup(srv.Close)

			p := NewHTTP(srv.URL, time.Second, []string{"fallback wisdom"}, zerolog.Nop())
			if got := p.Tip(context.Background(), "alice"); got != "fallback wisdom" {
				t.Fatalf("Tip = %q, want fallback", got)
			}
		})
	}
}

func TestHTTPProviderUnreachableEndpoint(t *testing.T) {
	p := NewHTTP("http://127.0.0.1:1", 100*time.Millisecond, []string{"fallback wisdom"}, zerolog.Nop())
	if got := p.Tip(context.Background(), "alice"); got != "fallback wisdom" {
		t.Fatalf("Tip = %q, want fallback", got)
	}
}
