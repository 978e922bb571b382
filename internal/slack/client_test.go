package slack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCallSuccess(t *testing.T) {
	var gotAuth, gotChannel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parsing form: %v", err)
		}
		gotChannel = r.PostFormValue("channel")
		w.Write([]byte(`{"ok":true,"ts":"123.456"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	payload, err := client.Call(context.Background(), "chat.postMessage", "xoxb-token", map[string]string{"channel": "C123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer xoxb-token" {
		t.Fatalf("unexpected Authorization header %q", gotAuth)
	}
	if gotChannel != "C123" {
		t.Fatalf("channel argument not forwarded, got %q", gotChannel)
	}
	if payload["ts"] != "123.456" {
		t.Fatalf("payload not decoded, got %v", payload)
	}
}

func TestCallProtocolFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Call(context.Background(), "chat.postMessage", "xoxb-token", nil)
	var api *APIError
	if !errors.As(err, &api) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if api.Code != "channel_not_found" {
		t.Fatalf("unexpected code %q", api.Code)
	}
}

func TestCallTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL)
	_, err := client.Call(context.Background(), "team.info", "xoxb-token", nil)
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestCallBadHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Call(context.Background(), "team.info", "xoxb-token", nil)
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for HTTP 502, got %v", err)
	}
}

func TestCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := client.Call(context.Background(), "team.info", "xoxb-token", nil)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestCallRetriesTransportFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetries(2))
	payload, err := client.Call(context.Background(), "team.info", "xoxb-token", nil)
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if payload["ok"] != true {
		t.Fatalf("unexpected payload %v", payload)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestCallNeverRetriesProtocolFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"ok":false,"error":"ratelimited"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetries(3))
	_, err := client.Call(context.Background(), "team.info", "xoxb-token", nil)
	var api *APIError
	if !errors.As(err, &api) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("protocol failure must not be retried, got %d attempts", calls)
	}
}

func TestCallCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(srv.URL)
	go func() {
		<-started
		cancel()
	}()
	_, err := client.Call(ctx, "team.info", "xoxb-token", nil)
	if err == nil {
		t.Fatalf("expected error after cancellation")
	}
}
