package actions

import (
	"errors"
	"strconv"
	"sync"
)

// ErrBusy is returned by Guard.Do when the same key is already running.
var ErrBusy = errors.New("action already in progress")

// Guard rejects a second concurrent run of the same key.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard returns an empty Guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Do runs fn unless key is already in flight, in which case it returns ErrBusy
// without calling fn.
func (g *Guard) Do(key string, fn func() error) error {
	g.mu.Lock()
	if _, busy := g.inflight[key]; busy {
		g.mu.Unlock()
		return ErrBusy
	}
	g.inflight[key] = struct{}{}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inflight, key)
		g.mu.Unlock()
	}()
	return fn()
}

// Key identifies one action on one row for one session.
func Key(sessionID, resource string, a Action) string {
	return sessionID + "|" + resource + "|" + a.Kind.String() + "|" + strconv.Itoa(a.ID)
}
