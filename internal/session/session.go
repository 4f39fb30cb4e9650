// Package session holds the process-wide view of the signed-in principal,
// mirrored from the identity layer. The mirror is a single-writer broadcast:
// only the auth callbacks publish into it, every other component holds a
// read-only handle and either polls Snapshot or subscribes for changes.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Principal is the authenticated identity mirrored from the identity layer.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// State is the observable session state. IsLoading starts true and flips to
// false on the first publish, mirroring the provider's initial callback.
type State struct {
	Principal *Principal `json:"principal"`
	IsLoading bool       `json:"is_loading"`
}

type Mirror struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]chan State
	nextID int
	closed bool
}

func NewMirror() *Mirror {
	return &Mirror{
		state: State{IsLoading: true},
		subs:  make(map[int]chan State),
	}
}

// Snapshot returns the current session state.
func (m *Mirror) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Subscribe registers a read-only observer. The returned cancel func must be
// called when the owning scope shuts down; after cancel the channel is closed
// and no further states are delivered.
func (m *Mirror) Subscribe() (<-chan State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	ch := make(chan State, 1)
	if m.closed {
		close(ch)
		return ch, func() {}
	}
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish records a session change. nil clears the principal (signed out).
// This is the mirror's only write path; consumers never mutate state directly.
func (m *Mirror) Publish(p *Principal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	m.state = State{Principal: p, IsLoading: false}

	for _, ch := range m.subs {
		// Keep only the latest state per subscriber; a slow consumer sees
		// the newest value, not a backlog.
		select {
		case ch <- m.state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- m.state
		}
	}
}

// Close tears down all subscriptions. Publish and Subscribe become no-ops.
func (m *Mirror) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
}
