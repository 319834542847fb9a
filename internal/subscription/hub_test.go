package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dues_tracker/internal/models"
)

func snapshot(ids ...string) []models.Transaction {
	txns := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		txns = append(txns, models.Transaction{ID: id})
	}
	return txns
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("org-1", snapshot("t1", "t2"))
	defer sub.Cancel()

	got := <-sub.C
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
}

func TestPublishReachesAllOrgSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe("org-1", nil)
	b := hub.Subscribe("org-1", nil)
	other := hub.Subscribe("org-2", nil)
	defer a.Cancel()
	defer b.Cancel()
	defer other.Cancel()

	// Drain the initial deliveries first.
	<-a.C
	<-b.C
	<-other.C

	hub.Publish("org-1", snapshot("t1"))

	assert.Len(t, <-a.C, 1)
	assert.Len(t, <-b.C, 1)

	select {
	case got := <-other.C:
		t.Fatalf("unrelated org received snapshot: %v", got)
	default:
	}
}

func TestPublishLatestWins(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("org-1", nil)
	defer sub.Cancel()

	// Subscriber never drained the initial snapshot; repeated publishes must
	// not block and the next receive sees only the newest set.
	hub.Publish("org-1", snapshot("t1"))
	hub.Publish("org-1", snapshot("t1", "t2"))
	hub.Publish("org-1", snapshot("t1", "t2", "t3"))

	got := <-sub.C
	assert.Len(t, got, 3)
}

func TestCancelClosesChannelAndDetaches(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("org-1", nil)
	<-sub.C

	sub.Cancel()
	sub.Cancel() // second cancel is a no-op

	_, ok := <-sub.C
	assert.False(t, ok)

	// Publishing after cancel must not panic on the closed channel.
	hub.Publish("org-1", snapshot("t1"))
}
