package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDelivery(t *testing.T) {
	bus := NewEventBus()
	bus.Publish("bingo_claimed", map[string]interface{}{"position": 1})

	event := <-bus.Events()
	assert.Equal(t, "bingo_claimed", event.Event)
}

func TestEventBusPublishNeverBlocks(t *testing.T) {
	bus := NewEventBus()
	for i := 0; i < 250; i++ {
		bus.Publish("board_issued", i)
	}

	// The buffer holds 100; the rest were dropped, not blocked on.
	require.Len(t, bus.Events(), 100)
}
