package emitter

import "sync/atomic"

// statsCounters hold the emitter's monotonic counters.
type statsCounters struct {
	emitted     atomic.Uint64
	invoked     atomic.Uint64
	onceRemoved atomic.Uint64
}

// Stats is a point-in-time view of emitter activity.
type Stats struct {
	// EventsEmitted counts Emit calls that had at least one listener.
	EventsEmitted uint64

	// ListenersInvoked counts completed listener invocations.
	ListenersInvoked uint64

	// OnceRemoved counts auto-removals of once-listeners.
	OnceRemoved uint64

	// ActiveSubscriptions is the current number of stored listeners.
	ActiveSubscriptions int
}

// Stats returns current emitter statistics.
func (e *Emitter) Stats() Stats {
	e.mu.Lock()
	active := 0
	for _, buckets := range e.store {
		for _, subs := range buckets {
			active += len(subs)
		}
	}
	e.mu.Unlock()

	return Stats{
		EventsEmitted:       e.stats.emitted.Load(),
		ListenersInvoked:    e.stats.invoked.Load(),
		OnceRemoved:         e.stats.onceRemoved.Load(),
		ActiveSubscriptions: active,
	}
}

// SubscriptionInfo is a debugging view of one stored listener.
type SubscriptionInfo struct {
	ID     string
	Key    string
	Weight string
	Once   bool
}

// Subscriptions returns the stored listeners for key in delivery order:
// weight descending, registration order within a weight.
func (e *Emitter) Subscriptions(key string) []SubscriptionInfo {
	snapshot := e.snapshot(key)
	if len(snapshot) == 0 {
		return nil
	}

	infos := make([]SubscriptionInfo, 0, len(snapshot))
	for _, sub := range snapshot {
		infos = append(infos, SubscriptionInfo{
			ID:     sub.id,
			Key:    sub.key,
			Weight: sub.weight.String(),
			Once:   sub.once,
		})
	}
	return infos
}
