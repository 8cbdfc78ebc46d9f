package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	if err := m.Set(ctx, "short", []byte("a"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Set(ctx, "forever", []byte("b"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if v, ok, _ := m.Get(ctx, "short"); !ok || string(v) != "a" {
		t.Fatalf("Get(short) = %q, %v", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "short"); ok {
		t.Fatalf("entry still present after its ttl")
	}
	if v, ok, _ := m.Get(ctx, "forever"); !ok || string(v) != "b" {
		t.Fatalf("Get(forever) = %q, %v", v, ok)
	}
}

func TestMemoryCacheCopiesValue(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	value := []byte("abc")
	m.Set(ctx, "k", value, 0)
	value[0] = 'z'

	if v, _, _ := m.Get(ctx, "k"); string(v) != "abc" {
		t.Fatalf("stored value changed with the caller's slice: %q", v)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Set(ctx, "a", []byte("1"), 0)
	m.Set(ctx, "b", []byte("2"), 0)

	if err := m.Delete(ctx, "a", "b", "missing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "a"); ok {
		t.Fatalf("a still present")
	}
	if _, ok, _ := m.Get(ctx, "b"); ok {
		t.Fatalf("b still present")
	}
}

func TestNoopCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	n := NewNoop()
	n.Set(ctx, "k", []byte("v"), time.Hour)
	if _, ok, err := n.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("Get = %v, %v; want miss", ok, err)
	}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(NewMemory())

	if err := s.Save(ctx, "access", "tok-1", "42", time.Hour); err != nil {
		t.Fatalf("Save: %v", err)
	}
	owner, err := s.Owner(ctx, "access", "tok-1")
	if err != nil || owner != "42" {
		t.Fatalf("Owner = %q, %v; want 42", owner, err)
	}
	if owner, _ := s.Owner(ctx, "refresh", "tok-1"); owner != "" {
		t.Fatalf("token kinds share a namespace: owner = %q", owner)
	}

	if err := s.Revoke(ctx, "access", "tok-1", ""); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if owner, _ := s.Owner(ctx, "access", "tok-1"); owner != "" {
		t.Fatalf("revoked token still has owner %q", owner)
	}
	if err := s.Revoke(ctx, "access"); err != nil {
		t.Fatalf("Revoke with no ids: %v", err)
	}
}
