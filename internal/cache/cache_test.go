package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCompletionKey(t *testing.T) {
	a := CompletionKey("openai", "gpt-4o-mini", "system\x00prompt")
	b := CompletionKey("openai", "gpt-4o-mini", "system\x00prompt")
	if a != b {
		t.Error("identical requests should share a key")
	}
	if !strings.HasPrefix(a, "praxis:llm:v1:") {
		t.Errorf("key should carry the version prefix: %s", a)
	}

	if a == CompletionKey("ollama", "gpt-4o-mini", "system\x00prompt") {
		t.Error("provider should be part of the key")
	}
	if a == CompletionKey("openai", "gpt-4o", "system\x00prompt") {
		t.Error("model should be part of the key")
	}
	if a == CompletionKey("openai", "gpt-4o-mini", "other prompt") {
		t.Error("prompt should be part of the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache should miss")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, found := c.Get("k")
	if !found || string(data) != "v" {
		t.Errorf("expected hit with v, got %q found=%v", data, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key should miss")
	}

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("cleared cache should miss")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestDiskCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "llm-cache")
	c := NewDiskCache(dir, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache should miss")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, found := c.Get("k")
	if !found || string(data) != "v" {
		t.Errorf("expected hit with v, got %q found=%v", data, found)
	}

	// One file per key on disk
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), ".cache") {
		t.Errorf("unexpected cache files: %v", entries)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key should miss")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(filepath.Join(t.TempDir(), "llm-cache"), time.Minute)
	if err := c.Set("k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestDiskCache_DefaultTTL(t *testing.T) {
	c := NewDiskCache(filepath.Join(t.TempDir(), "llm-cache"), time.Minute)
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("zero ttl should fall back to the cache default")
	}
}

func TestDiskCache_CorruptEntry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "llm-cache")
	c := NewDiskCache(dir, time.Minute)

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "k.cache"), []byte("not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, found := c.Get("k"); found {
		t.Error("corrupt entry should miss")
	}
}

func TestDiskCache_Clear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "llm-cache")
	c := NewDiskCache(dir, time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("cleared cache should miss")
	}
}
