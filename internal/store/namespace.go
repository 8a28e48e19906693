package store

import (
	"container/list"
	"strings"
	"sync"

	"github.com/arnav-k/autocompleted/internal/normalize"
)

// Namespace owns one isolated keyspace: a mutable set of entries kept
// in insertion order, a dirty counter tracking mutations not yet
// flushed to disk, and a mutex serializing every read and write of its
// entries. The insertion-order container is a doubly-linked list
// threaded through a map, the same linked-hash-map shape the teacher's
// namespace-scoped LRU cache used for its recency queue — here the
// list's tail is "most recently inserted" and its head is the next
// eviction candidate, rather than "most recently accessed".
type Namespace struct {
	name string

	mu      sync.Mutex
	items   map[normalize.CKey]*list.Element
	order   *list.List
	dirty   int64
}

// newNamespace creates an empty, in-memory namespace. Loading any
// on-disk snapshot is the caller's responsibility (the registry does
// this atomically with namespace creation).
func newNamespace(name string) *Namespace {
	return &Namespace{
		name:  name,
		items: make(map[normalize.CKey]*list.Element),
		order: list.New(),
	}
}

// Name returns the namespace's immutable name.
func (n *Namespace) Name() string {
	return n.name
}

// Dirty reports the current dirty counter without taking the lock for
// longer than necessary; callers that need a consistent read alongside
// other namespace state should prefer Snapshot.
func (n *Namespace) Dirty() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dirty
}

// Len reports the number of entries currently held.
func (n *Namespace) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.order.Len()
}

// put inserts or updates the entry for ckey. An existing entry is
// detached and reused (preserving its allocation) so it moves to the
// tail of insertion order; count is always incremented by one,
// including on first creation, so a single put yields count=1. If
// markDirty is true the namespace's dirty counter is bumped (real
// client puts); snapshot-load replay passes markDirty=false and a
// caller-supplied count instead of incrementing it, since the loaded
// record already carries the value that was current when it was
// written. The returned Entry is a value copy taken while n.mu is
// still held, so callers reading it after put returns never race with
// a later mutation of the live entry.
func (n *Namespace) put(ckey normalize.CKey, data *string, when int64, maxElems int, markDirty bool, loadedCount *int64) Entry {
	n.mu.Lock()
	defer n.mu.Unlock()

	var e *Entry
	if el, ok := n.items[ckey]; ok {
		n.order.Remove(el)
		e = el.Value.(*Entry)
	} else {
		e = &Entry{CKey: ckey}
	}

	e.Data = data
	e.When = when
	if loadedCount != nil {
		e.Count = *loadedCount
	} else {
		e.Count++
	}

	n.items[ckey] = n.order.PushBack(e)

	if n.order.Len() > maxElems {
		n.evictHeadLocked()
	}

	if markDirty {
		n.dirty++
	}

	return *e
}

// evictHeadLocked removes the oldest-inserted entry. Caller must hold n.mu.
func (n *Namespace) evictHeadLocked() {
	head := n.order.Front()
	if head == nil {
		return
	}
	e := head.Value.(*Entry)
	n.order.Remove(head)
	delete(n.items, e.CKey)
}

// delete removes the entry with the exact composite key ckey, if
// present. Returns true when an entry was removed.
func (n *Namespace) delete(ckey normalize.CKey) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	el, ok := n.items[ckey]
	if !ok {
		return false
	}
	n.order.Remove(el)
	delete(n.items, ckey)
	n.dirty++
	return true
}

// nuke removes every entry whose NKey has nprefix as a byte prefix,
// additionally requiring ID == *id when id is non-nil. Returns the
// number of entries removed.
func (n *Namespace) nuke(nprefix string, id *string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	var toRemove []*list.Element
	for el := n.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*Entry)
		if !strings.HasPrefix(e.CKey.NKey, nprefix) {
			continue
		}
		if id != nil && e.CKey.ID != *id {
			continue
		}
		toRemove = append(toRemove, el)
	}

	for _, el := range toRemove {
		e := el.Value.(*Entry)
		n.order.Remove(el)
		delete(n.items, e.CKey)
	}
	if len(toRemove) > 0 {
		n.dirty++
	}
	return len(toRemove)
}

// decrement locates the entry with an empty-ID composite key matching
// nkey exactly, adds -value to its count, and deletes it if the
// resulting count is <= 0. Returns (found, deleted).
func (n *Namespace) decrement(nkey string, value int64) (found bool, deleted bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ckey := normalize.CKey{NKey: nkey}
	el, ok := n.items[ckey]
	if !ok {
		return false, false
	}
	e := el.Value.(*Entry)
	e.Count -= value
	n.dirty++
	if e.Count <= 0 {
		n.order.Remove(el)
		delete(n.items, ckey)
		return true, true
	}
	return true, false
}

// search returns a value copy of every entry (in insertion order)
// whose NKey starts with nprefix, additionally requiring ID == *id
// when id is non-nil. Ordering and truncation are the search engine's
// job, not the namespace's — this is the "materialize a candidate
// set" step. Copies are taken while n.mu is held so a concurrent put
// to the same namespace can never mutate a field after it's been
// handed back to a caller that no longer holds the lock.
func (n *Namespace) search(nprefix string, id *string) []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []Entry
	for el := n.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*Entry)
		if !strings.HasPrefix(e.CKey.NKey, nprefix) {
			continue
		}
		if id != nil && e.CKey.ID != *id {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// Snapshot runs fn with the namespace lock held, passing it an
// insertion-ordered slice of pointers to every live entry. If fn returns nil the dirty
// counter is reset to zero; on error the namespace remains dirty so
// the next scheduled sweep retries. The entire write — including any
// atomic rename fn performs — happens while the lock is held, matching
// the concurrency model's "snapshot latency blocks only this
// namespace" guarantee.
func (n *Namespace) Snapshot(fn func(entries []*Entry) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	entries := make([]*Entry, 0, n.order.Len())
	for el := n.order.Front(); el != nil; el = el.Next() {
		entries = append(entries, el.Value.(*Entry))
	}

	if err := fn(entries); err != nil {
		return err
	}
	n.dirty = 0
	return nil
}
