package ui

import (
	"fmt"
	"sync"
	"time"
)

const maxLogs = 200

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Status string
	Logs   []string

	FeedActive   bool
	FeedApplied  int
	FeedRejected int

	LastUpdated time.Time
}

// AppState tracks the mutable state shared between the Gio event loop and
// the background feed reader.
type AppState struct {
	mu sync.RWMutex

	status string
	logs   []string

	feedActive   bool
	feedApplied  int
	feedRejected int

	lastUpdated time.Time
}

// NewState returns an idle state.
func NewState() *AppState {
	return &AppState{status: "Ready", lastUpdated: time.Now()}
}

// Snapshot returns a copy safe to read without the lock.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StateSnapshot{
		Status:       s.status,
		Logs:         append([]string(nil), s.logs...),
		FeedActive:   s.feedActive,
		FeedApplied:  s.feedApplied,
		FeedRejected: s.feedRejected,
		LastUpdated:  s.lastUpdated,
	}
}

// SetStatus replaces the status line.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

// AppendLog adds a timestamped line, keeping the most recent maxLogs.
func (s *AppState) AppendLog(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := fmt.Sprintf("[%s] %s", time.Now().Format(time.Stamp), line)
	s.logs = append(s.logs, entry)
	if len(s.logs) > maxLogs {
		s.logs = s.logs[len(s.logs)-maxLogs:]
	}
	s.lastUpdated = time.Now()
}

// SetFeedActive marks the remote feed as running or stopped.
func (s *AppState) SetFeedActive(active bool) {
	s.mu.Lock()
	s.feedActive = active
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

// CountFeed records the fate of one remote update.
func (s *AppState) CountFeed(applied bool) {
	s.mu.Lock()
	if applied {
		s.feedApplied++
	} else {
		s.feedRejected++
	}
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}
