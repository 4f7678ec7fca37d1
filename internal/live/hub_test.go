package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishFansOut(t *testing.T) {
	hub := NewHub()
	idA, chA := hub.Subscribe()
	idB, chB := hub.Subscribe()
	defer hub.Unsubscribe(idA)
	defer hub.Unsubscribe(idB)

	hub.Publish([]byte(`[{"name":"tee"}]`))

	assert.Equal(t, `[{"name":"tee"}]`, string(<-chA))
	assert.Equal(t, `[{"name":"tee"}]`, string(<-chB))
}

func TestHubReplaysLastSnapshot(t *testing.T) {
	hub := NewHub()
	hub.Publish([]byte("first"))
	hub.Publish([]byte("second"))

	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	// A late subscriber immediately gets the latest snapshot.
	assert.Equal(t, "second", string(<-ch))
}

func TestHubUnsubscribeIdempotent(t *testing.T) {
	hub := NewHub()
	id, ch := hub.Subscribe()

	hub.Unsubscribe(id)
	hub.Unsubscribe(id) // second call is a no-op

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())

	// Publishing after everyone left must not panic.
	hub.Publish([]byte("quiet"))
}

func TestHubDropsStuckSubscribers(t *testing.T) {
	hub := NewHub()
	_, ch := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	// Fill the buffer without draining, then one more.
	for i := 0; i <= subscriberBuffer; i++ {
		hub.Publish([]byte("snap"))
	}

	assert.Equal(t, 0, hub.Subscribers())

	// Drain what was buffered; the channel ends closed.
	count := 0
	for range ch {
		count++
	}
	assert.Equal(t, subscriberBuffer, count)
}
