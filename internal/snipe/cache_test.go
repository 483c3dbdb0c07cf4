package snipe

import (
	"fmt"
	"testing"
	"time"
)

func TestLastReturnsMostRecent(t *testing.T) {
	cache := NewCache()

	cache.Push("c1", Message{AuthorID: "u1", Content: "first", DeletedAt: time.Now()})
	cache.Push("c1", Message{AuthorID: "u2", Content: "second", DeletedAt: time.Now()})

	msg, ok := cache.Last("c1")
	if !ok {
		t.Fatal("expected a sniped message")
	}
	if msg.Content != "second" {
		t.Errorf("expected most recent message, got %q", msg.Content)
	}
}

func TestLastEmptyChannel(t *testing.T) {
	cache := NewCache()

	if _, ok := cache.Last("nope"); ok {
		t.Error("expected no message for unknown channel")
	}
}

func TestPushEvictsOldEntries(t *testing.T) {
	cache := NewCache()

	for i := 0; i < perChannelLimit+5; i++ {
		cache.Push("c1", Message{Content: fmt.Sprintf("msg-%d", i), DeletedAt: time.Now()})
	}

	cache.mu.Lock()
	size := len(cache.channels["c1"])
	cache.mu.Unlock()

	if size != perChannelLimit {
		t.Errorf("expected %d entries after eviction, got %d", perChannelLimit, size)
	}
}

func TestLastExpiresStaleEntries(t *testing.T) {
	cache := NewCache()

	cache.Push("c1", Message{Content: "old", DeletedAt: time.Now().Add(-maxAge - time.Minute)})

	if _, ok := cache.Last("c1"); ok {
		t.Error("expected stale entry to be dropped")
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	cache := NewCache()

	cache.Push("c1", Message{Content: "in c1", DeletedAt: time.Now()})

	if _, ok := cache.Last("c2"); ok {
		t.Error("expected no message in c2")
	}
	if msg, ok := cache.Last("c1"); !ok || msg.Content != "in c1" {
		t.Errorf("expected c1 message, got ok=%t msg=%q", ok, msg.Content)
	}
}
