package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSnapshotStartsLoading(t *testing.T) {
	m := NewMirror()

	state := m.Snapshot()
	if !state.IsLoading {
		t.Error("new mirror should report IsLoading = true")
	}
	if state.Principal != nil {
		t.Errorf("new mirror should have no principal, got %+v", state.Principal)
	}
}

func TestPublishUpdatesSnapshot(t *testing.T) {
	m := NewMirror()
	principal := &Principal{ID: uuid.New(), Email: "alice@example.com"}

	m.Publish(principal)

	state := m.Snapshot()
	if state.IsLoading {
		t.Error("IsLoading should flip to false after the first publish")
	}
	if state.Principal == nil || state.Principal.ID != principal.ID {
		t.Errorf("Snapshot().Principal = %+v; want %+v", state.Principal, principal)
	}

	m.Publish(nil)

	state = m.Snapshot()
	if state.Principal != nil {
		t.Errorf("publishing nil should clear the principal, got %+v", state.Principal)
	}
	if state.IsLoading {
		t.Error("IsLoading must stay false after sign-out")
	}
}

func TestSubscribeReceivesPublishedStates(t *testing.T) {
	m := NewMirror()
	states, cancel := m.Subscribe()
	defer cancel()

	principal := &Principal{ID: uuid.New(), Email: "bob@example.com"}
	m.Publish(principal)

	state := <-states
	if state.Principal == nil || state.Principal.Email != "bob@example.com" {
		t.Errorf("subscriber got %+v; want principal bob@example.com", state.Principal)
	}
}

func TestSlowSubscriberSeesLatestState(t *testing.T) {
	m := NewMirror()
	states, cancel := m.Subscribe()
	defer cancel()

	// Two publishes with nobody draining; only the newest must survive.
	m.Publish(&Principal{ID: uuid.New(), Email: "stale@example.com"})
	m.Publish(&Principal{ID: uuid.New(), Email: "fresh@example.com"})

	state := <-states
	if state.Principal == nil || state.Principal.Email != "fresh@example.com" {
		t.Errorf("slow subscriber got %+v; want the latest published state", state.Principal)
	}

	select {
	case extra, ok := <-states:
		if ok {
			t.Errorf("unexpected backlog state: %+v", extra)
		}
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	m := NewMirror()
	states, cancel := m.Subscribe()

	cancel()

	if _, ok := <-states; ok {
		t.Error("channel should be closed after cancel")
	}

	// Cancel twice must not panic.
	cancel()

	m.Publish(&Principal{ID: uuid.New(), Email: "late@example.com"})
}

func TestCloseTearsDownSubscribers(t *testing.T) {
	m := NewMirror()
	states, cancel := m.Subscribe()
	defer cancel()

	m.Close()

	if _, ok := <-states; ok {
		t.Error("channel should be closed after Close")
	}

	// Post-close operations are no-ops.
	m.Publish(&Principal{ID: uuid.New(), Email: "ghost@example.com"})
	if state := m.Snapshot(); state.Principal != nil {
		t.Errorf("publish after Close must not change state, got %+v", state.Principal)
	}

	late, lateCancel := m.Subscribe()
	defer lateCancel()
	if _, ok := <-late; ok {
		t.Error("subscribing after Close should yield a closed channel")
	}
}

func TestConcurrentPublishAndSnapshot(t *testing.T) {
	m := NewMirror()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Publish(&Principal{ID: uuid.New(), Email: "worker@example.com"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.Snapshot()
			}
		}()
	}
	wg.Wait()

	if state := m.Snapshot(); state.IsLoading {
		t.Error("IsLoading should be false after publishes")
	}
}
