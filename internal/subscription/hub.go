// Package subscription delivers live transaction snapshots to subscribers.
// Every delivery is the complete authoritative result set for the
// organization, never a diff; consumers replace their state wholesale.
package subscription

import (
	"sync"

	"github.com/sirupsen/logrus"

	"dues_tracker/internal/models"
)

// Subscription is a disposable handle on a live transaction feed. Receive
// snapshots from C; call Cancel exactly once when done. After Cancel the
// channel is closed and no further snapshots arrive.
type Subscription struct {
	C <-chan []models.Transaction

	ch     chan []models.Transaction
	cancel func()
	once   sync.Once
}

// Cancel detaches the subscription and closes C. Safe to call exactly once;
// the sync.Once guard makes a second call a no-op rather than a panic.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// Hub fans transaction snapshots out to per-organization subscribers.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers a feed for orgID. The initial snapshot is delivered
// immediately so a new subscriber starts from the current full set.
func (h *Hub) Subscribe(orgID string, initial []models.Transaction) *Subscription {
	ch := make(chan []models.Transaction, 1)
	sub := &Subscription{C: ch, ch: ch}
	sub.cancel = func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.clients[orgID]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.clients, orgID)
			}
		}
		close(ch)
	}

	h.mu.Lock()
	if _, ok := h.clients[orgID]; !ok {
		h.clients[orgID] = make(map[*Subscription]struct{})
	}
	h.clients[orgID][sub] = struct{}{}
	h.mu.Unlock()

	ch <- initial
	logrus.WithField("org_id", orgID).Debug("Transaction feed subscriber registered")
	return sub
}

// Publish sends the current full snapshot to every subscriber of orgID.
// A subscriber that has not drained its channel gets the stale snapshot
// replaced with the new one; the writer never blocks.
func (h *Hub) Publish(orgID string, snapshot []models.Transaction) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.clients[orgID] {
		select {
		case sub.ch <- snapshot:
		default:
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snapshot:
			default:
			}
		}
	}
}
