package httpgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/drk-digital/erstattungsportal/internal/ports/out/gateway"
)

func TestCall_BusinessSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type=%q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "a@b.de" {
			t.Errorf("body=%v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer srv.Close()

	g := New(srv.URL)
	r := g.Call(context.Background(), gateway.ActionLogin, gateway.LoginRequest{Email: "a@b.de", Password: "pw"}, time.Second)
	if !r.Succeeded || r.StatusCode != 200 || !r.BusinessSuccess() {
		t.Fatalf("result=%+v", r)
	}
}

func TestCall_NonJSONBodyYieldsEmptyEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	r := New(srv.URL).Call(context.Background(), "login", nil, time.Second)
	if !r.Succeeded {
		t.Fatalf("transport success expected, got %+v", r)
	}
	if r.Data != (gateway.Envelope{}) {
		t.Fatalf("envelope=%+v, want zero", r.Data)
	}
	if r.BusinessSuccess() {
		t.Fatal("business success must require status=success")
	}
}

func TestCall_Non2xxIsFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "Anmeldedaten ungültig."})
	}))
	defer srv.Close()

	r := New(srv.URL).Call(context.Background(), "login", nil, time.Second)
	if r.Succeeded || r.StatusCode != 401 {
		t.Fatalf("result=%+v", r)
	}
	if r.Data.Message != "Anmeldedaten ungültig." {
		t.Fatalf("message=%q", r.Data.Message)
	}
}

func TestCall_TimeoutReportsFailureWithoutPanic(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	r := New(srv.URL).Call(context.Background(), "submit", nil, 50*time.Millisecond)
	if r.Succeeded || r.StatusCode != 0 {
		t.Fatalf("result=%+v, want failed zero-status result", r)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call did not honor its deadline (took %v)", elapsed)
	}
}

func TestCallAuthenticated_AttachesBearer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization=%q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer srv.Close()

	r := New(srv.URL).CallAuthenticated(context.Background(), "get-user", "tok-123", nil, time.Second)
	if !r.BusinessSuccess() {
		t.Fatalf("result=%+v", r)
	}
}

func TestCallAuthenticated_EmptyTokenNeverHitsNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	r := New(srv.URL).CallAuthenticated(context.Background(), "get-user", "", nil, time.Second)
	if r.Succeeded {
		t.Fatalf("result=%+v, want failure", r)
	}
	if hits.Load() != 0 {
		t.Fatalf("server was called %d times", hits.Load())
	}
}

func TestWarmUp_SuppressesFailures(t *testing.T) {
	t.Parallel()

	// Nothing listens on this address; WarmUp must neither block nor panic.
	g := New("http://127.0.0.1:1")
	g.WarmUp(50 * time.Millisecond)
	time.Sleep(100 * time.Millisecond)
}
