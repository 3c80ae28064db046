package hooks

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublish_NamedSubscriber_ReceivesMatchingEvents(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe(EventBuildStarted, func(e Event) error {
		got = append(got, e.Name())
		return nil
	})

	require.NoError(t, b.Publish(BuildStarted{BuildID: "b1", Time: time.Now()}))
	require.NoError(t, b.Publish(BuildFinished{BuildID: "b1"}))

	require.Equal(t, []string{EventBuildStarted}, got)
}

func TestPublish_SubscribeAll_ReceivesEverything(t *testing.T) {
	b := NewBus()
	var got []string
	b.SubscribeAll(func(e Event) error {
		got = append(got, e.Name())
		return nil
	})

	require.NoError(t, b.Publish(DocumentInitialized{Path: "a.md"}))
	require.NoError(t, b.Publish(DocumentWritten{Path: "a.md"}))

	require.Equal(t, []string{EventDocumentInitialized, EventDocumentWritten}, got)
}

func TestPublish_HandlerError_FirstErrorReturned_DeliveryContinues(t *testing.T) {
	b := NewBus()
	first := errors.New("first")
	delivered := 0
	b.SubscribeAll(func(Event) error { delivered++; return first })
	b.SubscribeAll(func(Event) error { delivered++; return errors.New("second") })

	err := b.Publish(BuildStarted{})
	require.ErrorIs(t, err, first)
	require.Equal(t, 2, delivered)
}

func TestPublish_NoSubscribers_NoError(t *testing.T) {
	b := NewBus()
	require.NoError(t, b.Publish(BuildFinished{}))
}

func TestSubscribe_NilHandler_Ignored(t *testing.T) {
	b := NewBus()
	b.Subscribe(EventBuildStarted, nil)
	b.SubscribeAll(nil)
	require.NoError(t, b.Publish(BuildStarted{}))
}
