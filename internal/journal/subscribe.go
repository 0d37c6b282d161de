package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Subscription delivers journal entries as they are appended. Caller must
// call Close when done.
type Subscription struct {
	entries <-chan *Entry
	errors  <-chan error
	cancel  func()
	once    sync.Once
}

// Entries returns the channel of new entries. It is closed when the
// subscription is closed or its context is cancelled.
func (s *Subscription) Entries() <-chan *Entry {
	return s.entries
}

// Errors returns malformed-message errors. The subscription keeps running
// after an error; the message is skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Implements io.Closer. Safe to call more
// than once.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// Subscribe listens for entries appended to this instance's journal. The
// subscription is confirmed before Subscribe returns, so entries appended
// afterwards are not missed.
func (c *Client) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := c.rdb.Subscribe(ctx, EventsChannel(c.instanceName))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to journal: %w", err)
	}

	entries := make(chan *Entry, 10)
	errs := make(chan error, 10)
	subCtx, cancel := context.WithCancel(ctx)

	go func() {
		defer close(entries)
		defer close(errs)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var e Entry
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					select {
					case errs <- fmt.Errorf("failed to unmarshal journal entry: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case entries <- &e:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{entries: entries, errors: errs, cancel: cancel}, nil
}
