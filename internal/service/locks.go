package service

import "sync"

// sessionLocks hands out one mutex per session id, entries live while someone holds or waits on them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[string]*sessionLock),
	}
}

// lock blocks until the session is free and returns the matching unlock.
func (that *sessionLocks) lock(sessionID string) func() {
	that.mu.Lock()
	entry, ok := that.locks[sessionID]
	if !ok {
		entry = &sessionLock{}
		that.locks[sessionID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, sessionID)
		}
		that.mu.Unlock()
	}
}
