package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_FanOut(t *testing.T) {
	b := NewBroadcaster()

	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(EventOrdersUpdated)

	assert.Equal(t, EventOrdersUpdated, <-ch1)
	assert.Equal(t, EventOrdersUpdated, <-ch2)
}

func TestBroadcaster_CancelStopsDelivery(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe()
	cancel()

	// Channel is closed; publishing afterwards must not panic.
	b.Publish(EventProjectsUpdated)

	_, open := <-ch
	assert.False(t, open)
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe()
	defer cancel()

	// Overflow the buffer; extra events are dropped, Publish never blocks.
	for i := 0; i < 100; i++ {
		b.Publish(EventOrdersUpdated)
	}

	require.Equal(t, EventOrdersUpdated, <-ch)
}
