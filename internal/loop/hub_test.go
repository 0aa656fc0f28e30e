package loop

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestHubSnapshotOrder(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	a := h.Register("alice")
	b := h.Register("bob")
	c := h.Register("carol")

	h.Publish(a.ID, Report{Score: 3, Health: 20})
	h.Publish(b.ID, Report{Score: 9})
	h.Publish(c.ID, Report{Score: 3})

	got := h.Snapshot()
	if len(got) != 3 {
		t.Fatalf("snapshot has %d reports", len(got))
	}
	if got[0].Username != "bob" {
		t.Fatalf("first = %s, want bob", got[0].Username)
	}
	if got[1].Score != 3 || got[2].Score != 3 || got[1].ID > got[2].ID {
		t.Fatalf("ties not ordered by id: %+v", got[1:])
	}
	for _, r := range got {
		if r.ID == "" || r.Username == "" {
			t.Fatalf("report missing identity: %+v", r)
		}
	}
}

func TestHubIgnoresUnknownSessions(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	h.Publish(uuid.New(), Report{Score: 1})
	h.Unregister(uuid.New())
	if n := len(h.Snapshot()); n != 0 {
		t.Fatalf("snapshot has %d reports", n)
	}
}

func TestHubUnregisterDropsReport(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	a := h.Register("alice")
	h.Publish(a.ID, Report{Score: 1})
	h.Unregister(a.ID)

	if h.Count() != 0 || len(h.Snapshot()) != 0 {
		t.Fatal("session still tracked after unregister")
	}
}

func TestHubShutdownWaitsForSessions(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	a := h.Register("alice")

	go func() {
		ev := <-a.Events
		if ev.Type == EventServerShutdown {
			h.Unregister(a.ID)
		}
	}()

	if !h.Shutdown(2 * time.Second) {
		t.Fatal("shutdown timed out")
	}
}

func TestHubShutdownTimesOut(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	h.Register("stuck")
	if h.Shutdown(100 * time.Millisecond) {
		t.Fatal("shutdown reported success with a session left")
	}
}
