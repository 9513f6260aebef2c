package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribedHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventBookingCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := Event{ID: "evt-1", Type: EventBookingCreated, UserID: "user-1", Timestamp: time.Now()}
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, seen, 1)
	assert.Equal(t, "evt-1", seen[0].ID)
	assert.Equal(t, "user-1", seen[0].UserID)
}

func TestPublishIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventBookingCancelled, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionExpired}))
	assert.False(t, called)
}

func TestPublishContinuesPastHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	second := false
	d.Subscribe(EventSessionExpired, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventSessionExpired, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventSessionExpired}))
	assert.True(t, second)
}
