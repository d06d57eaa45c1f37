package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newCardCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *CardCache) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return s, NewCardCache(rdb, ttl)
}

func TestCardCache_SetGet(t *testing.T) {
	_, c := newCardCache(t, time.Minute)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "LN-1"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "LN-1", `<div class="left"></div>`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, "LN-1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != `<div class="left"></div>` {
		t.Fatalf("Get = %q", got)
	}
}

func TestCardCache_Expires(t *testing.T) {
	s, c := newCardCache(t, 30*time.Second)
	ctx := context.Background()

	if err := c.Set(ctx, "LN-2", "x"); err != nil {
		t.Fatal(err)
	}
	if ttl := s.TTL(cardKey("LN-2")); ttl != 30*time.Second {
		t.Fatalf("ttl = %v, want 30s", ttl)
	}
	s.FastForward(31 * time.Second)
	if _, ok, err := c.Get(ctx, "LN-2"); err != nil || ok {
		t.Fatalf("after ttl: ok=%v err=%v", ok, err)
	}
}

func TestCardCache_Invalidate(t *testing.T) {
	_, c := newCardCache(t, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, "LN-3", "x")
	if err := c.Invalidate(ctx, "LN-3"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "LN-3"); ok {
		t.Fatal("entry survived Invalidate")
	}
}

func TestCardCache_CorruptEntryIsMiss(t *testing.T) {
	s, c := newCardCache(t, time.Minute)
	_ = s.Set(cardKey("LN-4"), "{not json")
	if _, ok, err := c.Get(context.Background(), "LN-4"); err != nil || ok {
		t.Fatalf("corrupt entry: ok=%v err=%v", ok, err)
	}
}

func TestCardCache_StoreDown(t *testing.T) {
	s, c := newCardCache(t, time.Minute)
	s.Close()
	if _, _, err := c.Get(context.Background(), "LN-5"); err == nil {
		t.Fatal("expected error with redis down")
	}
}
