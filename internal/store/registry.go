package store

import (
	"sync"

	"github.com/arnav-k/autocompleted/internal/normalize"
)

func ckeyOf(rec LoadedRecord) normalize.CKey {
	return normalize.CKey{NKey: rec.NKey, ID: rec.ID}
}

// LoadedRecord is one pre-normalized record read back from an
// on-disk snapshot, ready to be replayed into a freshly created
// namespace without re-normalizing or marking it dirty.
type LoadedRecord struct {
	NKey  string
	ID    string
	Data  *string
	When  int64
	Count int64
}

// Loader reloads a namespace's prior snapshot, if one exists. A nil
// Loader (no persistence directory configured) means namespaces always
// start empty. Implemented by internal/snapshot so internal/store
// never imports the filesystem-facing package.
type Loader interface {
	LoadNamespace(name string) ([]LoadedRecord, error)
}

// Registry is the process-wide name -> *Namespace mapping. Writes to
// the mapping are serialized by mu; once a *Namespace is obtained, all
// further locking is the namespace's own mutex — the registry lock is
// never held across a namespace operation, and two namespace locks are
// never held simultaneously (see snapshotTargets below).
type Registry struct {
	mu         sync.Mutex
	namespaces map[string]*Namespace
	loader     Loader
	maxElems   int
}

func newRegistry(maxElems int, loader Loader) *Registry {
	return &Registry{
		namespaces: make(map[string]*Namespace),
		loader:     loader,
		maxElems:   maxElems,
	}
}

// lookup returns the existing namespace for name, or (nil, false) if
// it has never been created. Used by operations that must not create
// a namespace as a side effect (delete, nuke, decrement).
func (r *Registry) lookup(name string) (*Namespace, bool) {
	r.mu.Lock()
	ns, ok := r.namespaces[name]
	r.mu.Unlock()
	return ns, ok
}

// getOrCreate returns the namespace for name, creating it — and
// replaying any on-disk snapshot into it — if absent. Creation and the
// snapshot replay happen atomically with respect to other callers of
// getOrCreate for the same name: the registry lock is held across the
// whole thing, which is safe because a brand-new namespace's own lock
// is never contended yet.
func (r *Registry) getOrCreate(name string) *Namespace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ns, ok := r.namespaces[name]; ok {
		return ns
	}

	ns := newNamespace(name)
	if r.loader != nil {
		if records, err := r.loader.LoadNamespace(name); err == nil {
			for _, rec := range records {
				ckey := ckeyOf(rec)
				count := rec.Count
				ns.put(ckey, rec.Data, rec.When, r.maxElems, false, &count)
			}
		}
		// A read failure during load skips the file but leaves the
		// namespace empty and usable (spec.md §7).
	}

	r.namespaces[name] = ns
	return ns
}

// snapshotTargets returns every currently-registered namespace whose
// dirty counter is positive, taken as a point-in-time slice under the
// registry lock and released before any namespace lock is acquired.
func (r *Registry) snapshotTargets() []*Namespace {
	r.mu.Lock()
	all := make([]*Namespace, 0, len(r.namespaces))
	for _, ns := range r.namespaces {
		all = append(all, ns)
	}
	r.mu.Unlock()

	dirty := make([]*Namespace, 0, len(all))
	for _, ns := range all {
		if ns.Dirty() > 0 {
			dirty = append(dirty, ns)
		}
	}
	return dirty
}

// allNamespaces returns every currently-registered namespace,
// regardless of dirty state — used for the final shutdown sweep.
func (r *Registry) allNamespaces() []*Namespace {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*Namespace, 0, len(r.namespaces))
	for _, ns := range r.namespaces {
		all = append(all, ns)
	}
	return all
}
