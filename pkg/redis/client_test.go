package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	client, err := NewClient(NewRedisConfig().WithHost(server.Host()).WithPort(server.Server().Addr().Port).WithKeyPrefix("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

type payload struct {
	Name  string `json:"name"`
	Count *int   `json:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(t)

	if err := client.SetJSON(ctx, "key", payload{Name: "Chennai"}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !server.Exists("test:key") {
		t.Fatalf("expected prefixed key, got %v", server.Keys())
	}

	var got payload
	found, err := client.GetJSON(ctx, "key", &got)
	if err != nil || !found || got.Name != "Chennai" || got.Count != nil {
		t.Fatalf("unexpected result %+v found=%v err=%v", got, found, err)
	}

	if err := client.Delete(ctx, "key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found, err = client.GetJSON(ctx, "key", &got)
	if err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}
}

func TestGetJSONRejectsInvalidPayload(t *testing.T) {
	client, server := newTestClient(t)
	_ = server.Set("test:broken", "{")

	found, err := client.GetJSON(context.Background(), "broken", &payload{})
	if !found || err == nil {
		t.Fatalf("expected decode error, found=%v err=%v", found, err)
	}
}

func TestHealthCheck(t *testing.T) {
	client, server := newTestClient(t)

	if check := client.HealthCheck(context.Background()); check.Status != StatusUp {
		t.Fatalf("expected UP, got %+v", check)
	}
	server.Close()
	if check := client.HealthCheck(context.Background()); check.Status != StatusDown || check.Details["error"] == "" {
		t.Fatalf("expected DOWN with error, got %+v", check)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := NewRedisConfig().WithHost("").Validate(); err == nil {
		t.Fatal("expected empty host to be rejected")
	}
	if err := NewRedisConfig().WithPort(0).Validate(); err == nil {
		t.Fatal("expected invalid port to be rejected")
	}
	if addr := NewRedisConfig().WithHost("cache").WithPort(6380).Addr(); addr != "cache:6380" {
		t.Fatalf("unexpected addr %q", addr)
	}
}
