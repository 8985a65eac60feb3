// Package usage tracks daily API request counts against provider quotas,
// persisted as JSON so counts survive across runs.
package usage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Counter tracks per-API daily request counts
type Counter interface {
	// Get returns the number of requests made today
	Get(name string) int
	// Increment records one request and returns the new count
	Increment(name string) int
	// Remaining returns how many requests are left today, or -1 when the
	// API has no configured limit
	Remaining(name string) int
}

type entry struct {
	Count int    `json:"count"`
	Date  string `json:"date"`
}

// FileCounter is a Counter persisted to a JSON file. Counts reset when
// the stored date rolls over to a new day.
type FileCounter struct {
	mu     sync.Mutex
	path   string
	limits map[string]int
	counts map[string]entry
	now    func() time.Time
}

// NewFileCounter loads or creates a counter file at path. A missing or
// unreadable file starts fresh.
func NewFileCounter(path string, limits map[string]int) *FileCounter {
	c := &FileCounter{
		path:   path,
		limits: limits,
		counts: make(map[string]entry),
		now:    time.Now,
	}
	c.load()
	return c
}

// Get returns the number of requests recorded for name today
func (c *FileCounter) Get(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today(name).Count
}

// Increment records one request for name and persists the new count
func (c *FileCounter) Increment(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.today(name)
	e.Count++
	c.counts[name] = e
	c.save()
	return e.Count
}

// Remaining returns the requests left under the configured daily limit,
// floored at zero. APIs without a limit report -1.
func (c *FileCounter) Remaining(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	limit, ok := c.limits[name]
	if !ok {
		return -1
	}
	left := limit - c.today(name).Count
	if left < 0 {
		left = 0
	}
	return left
}

// Limit returns the configured daily limit for name and whether one exists
func (c *FileCounter) Limit(name string) (int, bool) {
	limit, ok := c.limits[name]
	return limit, ok
}

// today returns the entry for name, reset if its date is stale.
// Callers must hold c.mu.
func (c *FileCounter) today(name string) entry {
	date := c.now().Format("2006-01-02")
	e, ok := c.counts[name]
	if !ok || e.Date != date {
		return entry{Date: date}
	}
	return e
}

func (c *FileCounter) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	var counts map[string]entry
	if err := json.Unmarshal(data, &counts); err != nil {
		return
	}
	c.counts = counts
}

// save persists the counts. Failures are ignored: a lost write only
// means an undercounted quota until the next successful save.
func (c *FileCounter) save() {
	data, err := json.MarshalIndent(c.counts, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(c.path), 0o755)
	_ = os.WriteFile(c.path, data, 0o644)
}
