package usage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestCounter(t *testing.T, limits map[string]int) *FileCounter {
	t.Helper()
	return NewFileCounter(filepath.Join(t.TempDir(), "api_usage.json"), limits)
}

func TestCounterIncrementAndGet(t *testing.T) {
	c := newTestCounter(t, map[string]int{"newsapi": 100})

	if got := c.Get("newsapi"); got != 0 {
		t.Errorf("fresh counter Get = %d, want 0", got)
	}

	if got := c.Increment("newsapi"); got != 1 {
		t.Errorf("first Increment = %d, want 1", got)
	}
	if got := c.Increment("newsapi"); got != 2 {
		t.Errorf("second Increment = %d, want 2", got)
	}
	if got := c.Get("newsapi"); got != 2 {
		t.Errorf("Get after two increments = %d, want 2", got)
	}

	// Independent APIs do not share counts
	if got := c.Get("gnews"); got != 0 {
		t.Errorf("Get for untouched API = %d, want 0", got)
	}
}

func TestCounterRemaining(t *testing.T) {
	c := newTestCounter(t, map[string]int{"newsapi": 2})

	if got := c.Remaining("newsapi"); got != 2 {
		t.Errorf("Remaining = %d, want 2", got)
	}

	c.Increment("newsapi")
	c.Increment("newsapi")
	if got := c.Remaining("newsapi"); got != 0 {
		t.Errorf("Remaining after hitting limit = %d, want 0", got)
	}

	// Over-counting never goes negative
	c.Increment("newsapi")
	if got := c.Remaining("newsapi"); got != 0 {
		t.Errorf("Remaining past limit = %d, want 0", got)
	}

	if got := c.Remaining("unlimited-api"); got != -1 {
		t.Errorf("Remaining for unconfigured API = %d, want -1", got)
	}
}

func TestCounterPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_usage.json")
	limits := map[string]int{"newsapi": 100}

	c1 := NewFileCounter(path, limits)
	c1.Increment("newsapi")
	c1.Increment("newsapi")
	c1.Increment("gnews")

	c2 := NewFileCounter(path, limits)
	if got := c2.Get("newsapi"); got != 2 {
		t.Errorf("reloaded newsapi count = %d, want 2", got)
	}
	if got := c2.Get("gnews"); got != 1 {
		t.Errorf("reloaded gnews count = %d, want 1", got)
	}
}

func TestCounterDailyReset(t *testing.T) {
	c := newTestCounter(t, map[string]int{"newsapi": 100})

	yesterday := time.Now().AddDate(0, 0, -1)
	c.now = func() time.Time { return yesterday }
	c.Increment("newsapi")
	c.Increment("newsapi")

	c.now = time.Now
	if got := c.Get("newsapi"); got != 0 {
		t.Errorf("count after day rollover = %d, want 0", got)
	}
	if got := c.Increment("newsapi"); got != 1 {
		t.Errorf("first Increment of new day = %d, want 1", got)
	}
}

func TestCounterCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_usage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewFileCounter(path, map[string]int{"newsapi": 100})
	if got := c.Get("newsapi"); got != 0 {
		t.Errorf("Get on corrupt file = %d, want 0", got)
	}
}
