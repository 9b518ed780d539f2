package emitter

import (
	"reflect"
	"regexp"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rlange/pulse/weight"
)

// subscription is one stored listener. The Listener value is kept exactly as
// it was passed to On or Once; fn and ptr are derived once at registration.
type subscription struct {
	id     string
	key    string
	weight weight.Weight
	value  Listener
	fn     Func
	ptr    uintptr
	once   bool
}

// Emitter is a weighted publish/subscribe dispatcher. Listeners subscribe
// under an event key with an optional weight encoded in the registration
// name; Emit delivers in descending weight order, preserving registration
// order within a weight.
//
// All methods are safe for concurrent use. The store lock is never held
// across a listener invocation, so listeners may freely call back into the
// emitter; mutations made during a dispatch affect later Emit calls, never
// the delivery sequence already computed for the current one.
type Emitter struct {
	mu sync.Mutex

	// store maps event key -> weight -> listeners in registration order.
	store map[string]map[weight.Weight][]*subscription

	config config

	stats statsCounters
}

// New creates an empty emitter.
func New(opts ...Option) *Emitter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Emitter{
		store:  make(map[string]map[weight.Weight][]*subscription),
		config: cfg,
	}
}

// On subscribes l under the given registration name. The name's weight
// suffix, if any, selects the delivery bucket; the listener is appended to
// the end of that bucket. On fails with *InvalidArgumentError, without
// touching the store, when the listener is not invocable or the name fails
// the grammar.
func (e *Emitter) On(name string, l Listener) error {
	return e.subscribe(name, l, false)
}

// Once is On with auto-removal: the listener is unsubscribed immediately
// after its first invocation.
func (e *Emitter) Once(name string, l Listener) error {
	return e.subscribe(name, l, true)
}

func (e *Emitter) subscribe(name string, l Listener, once bool) error {
	if !validListener(l) {
		return &InvalidArgumentError{Arg: "listener", Name: name, Err: ErrInvalidListener}
	}

	parsed, err := weight.ParseName(name)
	if err != nil {
		return &InvalidArgumentError{Arg: "event name", Name: name, Err: ErrInvalidName, Detail: err.Error()}
	}

	fn := l.invocable()
	sub := &subscription{
		id:     uuid.NewString(),
		key:    parsed.Key,
		weight: parsed.Weight,
		value:  l,
		fn:     fn,
		ptr:    reflect.ValueOf(fn).Pointer(),
		once:   once,
	}

	e.mu.Lock()
	buckets := e.store[parsed.Key]
	if buckets == nil {
		buckets = make(map[weight.Weight][]*subscription)
		e.store[parsed.Key] = buckets
	}
	buckets[parsed.Weight] = append(buckets[parsed.Weight], sub)
	e.mu.Unlock()

	e.debug("subscribed",
		"id", sub.id, "key", sub.key, "weight", sub.weight.String(), "once", once)
	return nil
}

// Off removes, from every weight bucket under key, the first stored listener
// whose function matches l. Other occurrences in the same bucket and
// listeners under other keys are untouched. Unknown keys and non-invocable
// listeners are silent no-ops. Returns the number of slots removed.
func (e *Emitter) Off(key string, l Listener) int {
	if !validListener(l) {
		return 0
	}
	ptr := reflect.ValueOf(l.invocable()).Pointer()

	e.mu.Lock()
	defer e.mu.Unlock()

	buckets := e.store[key]
	removed := 0
	for w, subs := range buckets {
		for i, sub := range subs {
			if sub.ptr == ptr {
				e.deleteSlot(key, w, i)
				removed++
				break
			}
		}
	}
	if removed > 0 {
		e.debug("unsubscribed", "key", key, "removed", removed)
	}
	return removed
}

// OffAll removes every listener registered under the given key, at every
// weight. The key must satisfy the registration-name grammar; the bucket
// removed is the one stored under the literal string. Unknown keys are a
// no-op.
func (e *Emitter) OffAll(key string) error {
	if _, err := weight.ParseName(key); err != nil {
		return &InvalidArgumentError{Arg: "event name", Name: key, Err: ErrInvalidName, Detail: err.Error()}
	}

	e.mu.Lock()
	delete(e.store, key)
	e.mu.Unlock()

	e.debug("cleared key", "key", key)
	return nil
}

// OffAllMatch removes every key whose string matches re, with all its
// listeners. A nil pattern is a silent no-op. Returns the number of keys
// removed.
func (e *Emitter) OffAllMatch(re *regexp.Regexp) int {
	if re == nil {
		return 0
	}

	e.mu.Lock()
	removed := 0
	for key := range e.store {
		if re.MatchString(key) {
			delete(e.store, key)
			removed++
		}
	}
	e.mu.Unlock()

	if removed > 0 {
		e.debug("cleared keys by pattern", "pattern", re.String(), "removed", removed)
	}
	return removed
}

// Emit dispatches to every listener registered under key, forwarding args.
//
// The delivery sequence is computed once, before the first invocation:
// weights sorted descending, each bucket's listeners in registration order.
// A listener that subscribes or unsubscribes during its invocation changes
// later Emit calls only. Once-listeners are removed right after their
// invocation, before the next listener in the sequence runs. An unknown key
// dispatches to nobody. Returns the number of listeners invoked.
func (e *Emitter) Emit(key string, args ...any) int {
	snapshot := e.snapshot(key)
	if len(snapshot) == 0 {
		return 0
	}

	e.stats.emitted.Add(1)
	e.debug("emit", "key", key, "listeners", len(snapshot))

	for _, sub := range snapshot {
		e.invoke(key, sub, args)
		if sub.once {
			if e.removeByID(sub.key, sub.id) {
				e.stats.onceRemoved.Add(1)
			}
		}
	}
	return len(snapshot)
}

// snapshot flattens the key's buckets into delivery order under the lock.
func (e *Emitter) snapshot(key string) []*subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	buckets := e.store[key]
	if len(buckets) == 0 {
		return nil
	}

	weights := make([]weight.Weight, 0, len(buckets))
	for w := range buckets {
		weights = append(weights, w)
	}
	weight.SortDesc(weights)

	var flat []*subscription
	for _, w := range weights {
		flat = append(flat, buckets[w]...)
	}
	return flat
}

func (e *Emitter) invoke(key string, sub *subscription, args []any) {
	if h := e.config.panicHandler; h != nil {
		defer func() {
			if r := recover(); r != nil {
				h(key, r)
			}
		}()
	}
	sub.fn(args...)
	e.stats.invoked.Add(1)
}

// removeByID removes the exact subscription, leaving any other registration
// of the same function in place.
func (e *Emitter) removeByID(key, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for w, subs := range e.store[key] {
		for i, sub := range subs {
			if sub.id == id {
				e.deleteSlot(key, w, i)
				return true
			}
		}
	}
	return false
}

// deleteSlot removes one bucket slot preserving order, pruning the bucket
// and the key entry when they empty out. Callers hold the lock.
func (e *Emitter) deleteSlot(key string, w weight.Weight, i int) {
	buckets := e.store[key]
	subs := buckets[w]
	buckets[w] = append(subs[:i], subs[i+1:]...)
	if len(buckets[w]) == 0 {
		delete(buckets, w)
	}
	if len(buckets) == 0 {
		delete(e.store, key)
	}
}

// ListenerCount returns the number of listeners registered under key across
// all weights.
func (e *Emitter) ListenerCount(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, subs := range e.store[key] {
		n += len(subs)
	}
	return n
}

// Keys returns every event key with at least one listener, sorted.
func (e *Emitter) Keys() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.store) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.store))
	for key := range e.store {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes every listener for every key.
func (e *Emitter) Clear() {
	e.mu.Lock()
	e.store = make(map[string]map[weight.Weight][]*subscription)
	e.mu.Unlock()
}

func (e *Emitter) debug(msg string, args ...any) {
	if e.config.logger != nil {
		e.config.logger.Debug(msg, args...)
	}
}
