package gallery

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

// AutoRefresher calls a refresh function on a fixed interval so files added
// or removed outside the app show up without user action.
type AutoRefresher struct {
	mu      sync.Mutex
	cron    *cron.Cron
	refresh func()
	entryID cron.EntryID
	active  bool
}

// NewAutoRefresher creates a stopped refresher with no schedule
func NewAutoRefresher(refresh func()) *AutoRefresher {
	return &AutoRefresher{
		cron:    cron.New(),
		refresh: refresh,
	}
}

// IntervalSpec returns the cron spec for a refresh every n seconds
func IntervalSpec(seconds int) string {
	return fmt.Sprintf("@every %ds", seconds)
}

// SetInterval replaces the schedule; 0 or less disables refreshing
func (a *AutoRefresher) SetInterval(seconds int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active {
		a.cron.Remove(a.entryID)
		a.active = false
	}
	if seconds <= 0 {
		return nil
	}

	id, err := a.cron.AddFunc(IntervalSpec(seconds), a.refresh)
	if err != nil {
		return fmt.Errorf("schedule gallery refresh: %w", err)
	}
	a.entryID = id
	a.active = true
	return nil
}

// Enabled reports whether a schedule is set
func (a *AutoRefresher) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Start runs the scheduler in its own goroutine
func (a *AutoRefresher) Start() {
	a.cron.Start()
}

// Stop halts the scheduler and waits for a running refresh to return
func (a *AutoRefresher) Stop() {
	<-a.cron.Stop().Done()
}
