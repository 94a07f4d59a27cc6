package signal

// Signal is a synchronous fan-out notification channel. Handlers run on
// the emitting goroutine in subscription order; Emit returns once every
// handler has run. All access is expected to happen on the UI thread.
type Signal[T any] struct {
	subs []*subscription[T]
}

type subscription[T any] struct {
	fn      func(T)
	removed bool
}

func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Subscribe registers fn and returns a function that can be used to
// unsubscribe it. Subscribing during an Emit does not deliver the
// in-flight value to fn.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	sub := &subscription[T]{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		sub.removed = true
		for i, c := range s.subs {
			if c == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// Emit delivers v to every current subscriber. A handler may unsubscribe
// itself or others mid-dispatch; handlers removed during delivery are
// skipped.
func (s *Signal[T]) Emit(v T) {
	snapshot := make([]*subscription[T], len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		sub.fn(v)
	}
}

// Len returns the number of current subscribers.
func (s *Signal[T]) Len() int {
	return len(s.subs)
}
