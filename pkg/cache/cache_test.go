package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("Get = ok=%v err=%v, want miss", ok, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	key := Hash([]byte("doc"))
	if err := c.Set(ctx, key, []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(data) != "payload" {
		t.Fatalf("Get = %q ok=%v, want payload hit", data, ok)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatal("entry survived Delete")
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("deleting absent key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	key := Hash([]byte("expiring"))
	if err := c.Set(ctx, key, []byte("old"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("expired entry: ok=%v err=%v, want miss", ok, err)
	}
}

func TestFileCacheStatAndClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	for _, s := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, Hash([]byte(s)), []byte(s), 0); err != nil {
			t.Fatalf("Set %q: %v", s, err)
		}
	}

	stats, err := c.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if stats.Entries != 3 || stats.Bytes == 0 {
		t.Fatalf("Stat = %+v, want 3 entries with bytes", stats)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	stats, err = c.Stat()
	if err != nil {
		t.Fatalf("Stat after Clear: %v", err)
	}
	if stats.Entries != 0 {
		t.Fatalf("Stat after Clear = %+v, want empty", stats)
	}
}

func TestHashStable(t *testing.T) {
	a := Hash([]byte("wiremap"))
	b := Hash([]byte("wiremap"))
	if a != b {
		t.Fatalf("Hash not deterministic: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("Hash length = %d, want 64 hex chars", len(a))
	}
	if a == Hash([]byte("wiremap2")) {
		t.Fatal("distinct inputs hashed equal")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	docHash := Hash([]byte("doc"))

	layoutOpts := LayoutKeyOpts{NodeWidth: 160, NodeHeight: 40, ColumnGap: 220, RowGap: 16, Padding: 24}
	l1 := k.LayoutKey(docHash, layoutOpts)
	l2 := k.LayoutKey(docHash, layoutOpts)
	if l1 != l2 {
		t.Fatal("LayoutKey not deterministic")
	}

	layoutOpts.RowGap = 20
	if k.LayoutKey(docHash, layoutOpts) == l1 {
		t.Fatal("LayoutKey ignored option change")
	}

	artOpts := ArtifactKeyOpts{Format: "svg", Style: "simple", Curve: "bezier"}
	a1 := k.ArtifactKey(docHash, artOpts)
	if a1 == l1 {
		t.Fatal("layout and artifact keys collide")
	}
	artOpts.Style = "blueprint"
	if k.ArtifactKey(docHash, artOpts) == a1 {
		t.Fatal("ArtifactKey ignored style change")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	docHash := Hash([]byte("doc"))
	opts := LayoutKeyOpts{NodeWidth: 160}

	a := NewScopedKeyer("project-a", inner)
	b := NewScopedKeyer("project-b", inner)

	if a.LayoutKey(docHash, opts) == b.LayoutKey(docHash, opts) {
		t.Fatal("different scopes produced the same key")
	}
	if a.LayoutKey(docHash, opts) != a.LayoutKey(docHash, opts) {
		t.Fatal("scoped key not deterministic")
	}
	if a.LayoutKey(docHash, opts) == inner.LayoutKey(docHash, opts) {
		t.Fatal("scoped key equals unscoped key")
	}
}

func TestRetryableError(t *testing.T) {
	base := errors.New("boom")
	if IsRetryable(base) {
		t.Fatal("plain error reported retryable")
	}
	wrapped := Retryable(base)
	if !IsRetryable(wrapped) {
		t.Fatal("wrapped error not retryable")
	}
	if !errors.Is(wrapped, base) {
		t.Fatal("Retryable broke error chain")
	}
	if Retryable(nil) != nil {
		t.Fatal("Retryable(nil) != nil")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	attempts := 0
	err := RetryWithBackoff(ctx, func() error {
		attempts++
		if attempts < 3 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RetryWithBackoff: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}

	attempts = 0
	permanent := errors.New("permanent")
	err = RetryWithBackoff(ctx, func() error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) || attempts != 1 {
		t.Fatalf("permanent error retried: attempts=%d err=%v", attempts, err)
	}

	attempts = 0
	err = RetryWithBackoff(ctx, func() error {
		attempts++
		return Retryable(errors.New("always"))
	})
	if err == nil || attempts != 3 {
		t.Fatalf("exhausted retries: attempts=%d err=%v", attempts, err)
	}
}
