// Package dialogue sequences narrative overlays. Entries queue up as game
// events fire and are consumed one at a time by a user-triggered advance;
// game logic never waits on the queue.
package dialogue

import (
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
)

// Entry is one narrative line, resolved through the gotext catalog
type Entry struct {
	Key  string
	Text string
}

// Controller owns the pending queue and the seen-marker set for one session.
// It is explicitly constructed and passed by reference; there is no package
// level shared instance.
type Controller struct {
	queue []Entry
	seen  mapset.Set[string]
}

// NewController creates an empty dialogue controller
func NewController() *Controller {
	return &Controller{seen: mapset.New[string]()}
}

// Enqueue appends the narrative entry for the given catalog key.
// Keys already seen this session are skipped so repeated events (re-entering
// a cell, redundant objective checks) do not replay their lines.
func (c *Controller) Enqueue(key string) {
	if c.seen.Has(key) {
		return
	}
	c.seen.Put(key)
	c.queue = append(c.queue, Entry{Key: key, Text: gotext.Get(key)})
}

// Advance pops the next pending entry. The second return is false when the
// queue is empty; callers branch on it rather than catching a sentinel.
func (c *Controller) Advance() (Entry, bool) {
	if len(c.queue) == 0 {
		return Entry{}, false
	}
	e := c.queue[0]
	c.queue = c.queue[1:]
	return e, true
}

// Pending returns the number of queued entries
func (c *Controller) Pending() int {
	return len(c.queue)
}

// SeenKeys returns the catalog keys shown so far, for persistence
func (c *Controller) SeenKeys() []string {
	keys := make([]string, 0, c.seen.Size())
	c.seen.Each(func(k string) {
		keys = append(keys, k)
	})
	return keys
}

// MarkSeen restores seen markers from a loaded save so old lines stay quiet
func (c *Controller) MarkSeen(keys []string) {
	for _, k := range keys {
		c.seen.Put(k)
	}
}
