package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "sehat/internal/platform/errors"
	"sehat/internal/platform/rest"
)

func TestPostJSONRoundTrip(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL+"/", time.Second)
	var out map[string]string
	if err := client.PostJSON(context.Background(), "/x", map[string]string{"msg": "hi"}, &out); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
	if out["echo"] != "hi" {
		t.Fatalf("echo = %q", out["echo"])
	}
}

func TestPostJSONWrapsNon2xx(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "service degraded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, time.Second)
	err := client.PostJSON(context.Background(), "/x", nil, nil)
	if !errors.Is(err, apperrors.ErrRemoteService) {
		t.Fatalf("err = %v, want ErrRemoteService", err)
	}
}

func TestPostJSONWrapsMalformedBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := rest.NewClient(srv.URL, time.Second)
	var out map[string]string
	err := client.PostJSON(context.Background(), "/x", nil, &out)
	if !errors.Is(err, apperrors.ErrRemoteService) {
		t.Fatalf("err = %v, want ErrRemoteService", err)
	}
}

func TestPostJSONWrapsConnectFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := rest.NewClient(srv.URL, time.Second)
	err := client.PostJSON(context.Background(), "/x", nil, nil)
	if !errors.Is(err, apperrors.ErrRemoteService) {
		t.Fatalf("err = %v, want ErrRemoteService", err)
	}
}
