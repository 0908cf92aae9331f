package health

import (
	"sync"
	"time"
)

// Snapshot is the latest view of the store connection.
type Snapshot struct {
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checkedAt"`
	Error     string    `json:"error,omitempty"`
}

// statusManager hands out the snapshot without blocking on the checker.
type statusManager struct {
	mu   sync.RWMutex
	snap Snapshot
}

var globalStatus = &statusManager{snap: Snapshot{Healthy: true}}

func (sm *statusManager) update(healthy bool, err error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.snap = Snapshot{Healthy: healthy, CheckedAt: time.Now()}
	if err != nil {
		sm.snap.Error = err.Error()
	}
}

// Current returns the latest snapshot.
func Current() Snapshot {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.snap
}
