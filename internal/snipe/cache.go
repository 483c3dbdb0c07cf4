// Package snipe keeps a short-lived, bounded record of deleted and edited
// messages so moderators can review them with /utils snipe.
package snipe

import (
	"sync"
	"time"
)

// how many entries to keep per channel
const perChannelLimit = 10

// entries older than this are not returned
const maxAge = 10 * time.Minute

// Message is a captured deleted or edited message
type Message struct {
	AuthorID   string
	AuthorTag  string
	Content    string
	OldContent string // set for edits
	Edited     bool
	DeletedAt  time.Time
}

// Cache stores sniped messages per channel
type Cache struct {
	mu       sync.Mutex
	channels map[string][]Message
}

// NewCache creates an empty snipe cache
func NewCache() *Cache {
	return &Cache{
		channels: make(map[string][]Message),
	}
}

// Push records a message for a channel, evicting the oldest entry when
// the per-channel limit is reached.
func (c *Cache) Push(channelID string, msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := append(c.channels[channelID], msg)
	if len(msgs) > perChannelLimit {
		msgs = msgs[len(msgs)-perChannelLimit:]
	}
	c.channels[channelID] = msgs
}

// Last returns the most recent entry for a channel, if it is still fresh
func (c *Cache) Last(channelID string) (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := c.channels[channelID]
	if len(msgs) == 0 {
		return Message{}, false
	}

	last := msgs[len(msgs)-1]
	if time.Since(last.DeletedAt) > maxAge {
		delete(c.channels, channelID)
		return Message{}, false
	}
	return last, true
}
