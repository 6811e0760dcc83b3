package cache

import (
	"testing"
	"time"
)

type entry struct {
	Total int
}

func TestResultCache(t *testing.T) {
	c, err := NewResultCache[*entry](100, time.Minute)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}
	defer c.Close()

	c.Put("123456789m234p55s|win:4p", &entry{Total: 5200})
	c.Flush()
	v, ok := c.Lookup("123456789m234p55s|win:4p")
	if !ok || v.Total != 5200 {
		t.Fatalf("expected 5200, got %v %v", v, ok)
	}

	c.Evict("123456789m234p55s|win:4p")
	if _, ok := c.Lookup("123456789m234p55s|win:4p"); ok {
		t.Fatalf("evicted key must miss")
	}
	if v, ok := c.Lookup("unknown"); ok || v != nil {
		t.Fatalf("unknown key must miss with a zero value")
	}
}

func TestResultCacheTTL(t *testing.T) {
	c, err := NewResultCache[string](100, 0)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}
	defer c.Close()

	c.PutWithTTL("short", "x", 10*time.Millisecond)
	c.Put("forever", "y")
	c.Flush()
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Lookup("short"); ok {
		t.Fatalf("expired key must miss")
	}
	if v, ok := c.Lookup("forever"); !ok || v != "y" {
		t.Fatalf("key without ttl must stay, got %q %v", v, ok)
	}
}

func TestNewResultCacheInvalidSize(t *testing.T) {
	if _, err := NewResultCache[int](0, 0); err == nil {
		t.Fatalf("zero size must fail")
	}
}
