package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetThenGet(t *testing.T) {
	c, err := NewMemoryCache()
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "key1", "value1", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := c.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "value1" {
		t.Errorf("Get = (%q, %v), want (%q, true)", v, ok, "value1")
	}
}

func TestMemoryCache_GetMiss(t *testing.T) {
	c, err := NewMemoryCache()
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	_, ok, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get on an unset key reported a hit")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c, err := NewMemoryCache()
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	ctx := context.Background()
	c.Set(ctx, "key1", "value1", 0)
	if err := c.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, ok, _ := c.Get(ctx, "key1")
	if ok {
		t.Error("Get after Delete still reports a hit")
	}
}

func TestMemoryCache_SetWithTTL(t *testing.T) {
	c, err := NewMemoryCache()
	if err != nil {
		t.Fatalf("NewMemoryCache: %v", err)
	}
	ctx := context.Background()
	if err := c.Set(ctx, "ttl-key", "value", time.Minute); err != nil {
		t.Fatalf("Set with TTL: %v", err)
	}
	v, ok, _ := c.Get(ctx, "ttl-key")
	if !ok || v != "value" {
		t.Errorf("Get = (%q, %v), want (%q, true)", v, ok, "value")
	}
}
