/*
Package watch streams spend events and raises threshold alerts.

PURPOSE:
  A thin, synchronous consumer loop over a spend-event stream. Every event
  at or above the configured threshold is posted to a notification channel.
  The stream and notifier are single-method-style interfaces so cloud
  billing feeds and chat clients plug in without this package knowing
  either.

LIFECYCLE:
  StreamAlerts runs until the stream returns io.EOF (clean stop), the
  context is cancelled, or an error surfaces from the stream or notifier.
*/
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// SpendEvent is one observed spend data point for a service.
type SpendEvent struct {
	Service string
	Cost    float64
}

// EventStream delivers spend events one at a time.
type EventStream interface {
	// Next blocks for the next event. io.EOF means the stream is done.
	Next(ctx context.Context) (SpendEvent, error)
}

// Notifier posts an alert message to a channel.
type Notifier interface {
	Post(channel, message string) error
}

// Watcher raises an alert for every event at or above Threshold.
type Watcher struct {
	Channel   string
	Threshold float64
}

// StreamAlerts consumes the stream until EOF or cancellation.
func (w Watcher) StreamAlerts(ctx context.Context, stream EventStream, notifier Notifier) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		event, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if event.Cost >= w.Threshold {
			msg := fmt.Sprintf("[finance] %s spend at $%.2f", event.Service, event.Cost)
			if err := notifier.Post(w.Channel, msg); err != nil {
				return err
			}
		}
	}
}
