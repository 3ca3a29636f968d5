package store

import "context"

// Event is emitted on every successful mutation so views can refresh
// without polling.
type Event struct {
	Store string
}

// Watch streams change events until ctx is cancelled. The channel is
// buffered and events are dropped when the consumer lags; a dropped event
// is harmless because the consumer re-reads the whole store on refresh.
func (s *Store[T]) Watch(ctx context.Context) <-chan Event {
	events := make(chan Event, 16)

	s.watchMu.Lock()
	s.watchers = append(s.watchers, events)
	s.watchMu.Unlock()

	go func() {
		<-ctx.Done()
		s.watchMu.Lock()
		for i, w := range s.watchers {
			if w == events {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
		s.watchMu.Unlock()
		close(events)
	}()

	return events
}

func (s *Store[T]) notify() {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for _, w := range s.watchers {
		select {
		case w <- Event{Store: s.name}:
		default:
			// Drop events if the consumer is not ready; the next refresh
			// picks up the change and the mutating caller never blocks.
		}
	}
}
