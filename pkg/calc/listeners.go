package calc

import "sync"

// Listener observes successful evaluations. It receives the raw input and
// the computed sum.
type Listener func(input string, sum int)

// Subscription is the opaque handle returned by AddListener. Removal is by
// handle identity, so the same function may be registered more than once and
// each registration removed independently.
type Subscription struct {
	fn Listener
}

// registry is an ordered listener list. Registration order is notification
// order. It has its own lock so listeners can add or remove subscriptions
// from inside a notification callback.
type registry struct {
	mu   sync.Mutex
	subs []*Subscription
}

func (r *registry) add(fn Listener) *Subscription {
	sub := &Subscription{fn: fn}

	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	return sub
}

// remove drops sub from the registry. Removing a handle that is not present
// is a no-op.
func (r *registry) remove(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s == sub {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// notify invokes every listener registered at the time of the call, in
// registration order. It iterates a snapshot, so mutations made by a
// listener take effect only from the next round.
func (r *registry) notify(input string, sum int) {
	r.mu.Lock()
	snapshot := make([]*Subscription, len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()

	for _, s := range snapshot {
		s.fn(input, sum)
	}
}
