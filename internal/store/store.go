// Package store implements the namespaced entry store: the
// concurrent in-memory maps, key normalization plumbing, bounded
// eviction, composite-key identity and per-namespace mutual exclusion
// that spec.md calls "the core". It knows nothing about HTTP, CLI
// flags, or the on-disk snapshot format — those are external
// collaborators wired in by internal/api, internal/config and
// internal/snapshot respectively.
package store

import (
	"time"

	"github.com/arnav-k/autocompleted/internal/normalize"
	"github.com/arnav-k/autocompleted/internal/search"
)

// Store composes the registry, its configuration, and the operations
// spec.md §4.2 defines: put, delete, nuke, decrement and search. The
// process has exactly one Store instance, but the type is testable in
// isolation — nothing here reaches for a package-level global.
type Store struct {
	registry    *Registry
	maxElems    int
	searchLimit int
}

// Config bundles the knobs a Store needs beyond its persistence
// loader. MaxElems is the per-namespace eviction ceiling (spec.md
// default 1000); DefaultSearchLimit is the result-count cap used when
// a search request doesn't specify one (spec.md default 100).
type Config struct {
	MaxElems           int
	DefaultSearchLimit int
}

// New constructs a Store. loader may be nil when no persistence
// directory is configured, in which case every namespace starts empty
// and stays in-memory only.
func New(cfg Config, loader Loader) *Store {
	if cfg.MaxElems <= 0 {
		cfg.MaxElems = 1000
	}
	if cfg.DefaultSearchLimit <= 0 {
		cfg.DefaultSearchLimit = 100
	}
	return &Store{
		registry:    newRegistry(cfg.MaxElems, loader),
		maxElems:    cfg.MaxElems,
		searchLimit: cfg.DefaultSearchLimit,
	}
}

// PutInput carries the arguments to Put. ID, Data, TS and Locale are
// all optional; a nil TS means "use the current wall clock".
type PutInput struct {
	Namespace string
	Key       string
	ID        string
	Data      *string
	TS        *int64
	Locale    string
}

// Put creates or updates the entry identified by (namespace, key, id).
// Re-putting an existing composite key preserves its allocation,
// replaces Data and When, and always increments Count by one —
// including on first creation, so a single put yields Count=1.
func (s *Store) Put(in PutInput) (Result, error) {
	if in.Namespace == "" || in.Key == "" {
		return Result{}, ErrMissingRequiredArg
	}

	ckey, err := normalize.MakeCKey(in.Key, in.ID, in.Locale)
	if err != nil {
		return Result{}, ErrBadInput
	}

	when := time.Now().Unix()
	if in.TS != nil {
		when = *in.TS
	}

	ns := s.registry.getOrCreate(in.Namespace)
	e := ns.put(ckey, in.Data, when, s.maxElems, true, nil)
	return e.toResult(), nil
}

// Delete removes the entry with the exact composite key
// (namespace, key, id). Absent namespace or entry are both silent
// no-ops (idempotence for clients), never an error.
func (s *Store) Delete(namespace, key, id, locale string) error {
	if namespace == "" || key == "" {
		return ErrMissingRequiredArg
	}
	ckey, err := normalize.MakeCKey(key, id, locale)
	if err != nil {
		return ErrBadInput
	}
	ns, ok := s.registry.lookup(namespace)
	if !ok {
		return nil
	}
	ns.delete(ckey)
	return nil
}

// Nuke removes every entry in namespace whose normalized key has
// rawKey's normalized form as a prefix (the empty prefix when rawKey
// is absent matches every entry), additionally requiring ID == id
// exactly when id is non-empty. A missing namespace is a silent
// no-op.
func (s *Store) Nuke(namespace, rawKey, id, locale string) error {
	if namespace == "" {
		return ErrMissingRequiredArg
	}
	nprefix := ""
	if rawKey != "" {
		n, err := normalize.Normalize(rawKey, locale)
		if err != nil {
			return ErrBadInput
		}
		nprefix = n
	}
	ns, ok := s.registry.lookup(namespace)
	if !ok {
		return nil
	}
	var idPtr *string
	if id != "" {
		idPtr = &id
	}
	ns.nuke(nprefix, idPtr)
	return nil
}

// Decrement subtracts value from the count of the entry matching
// key's exact normalized form (with an empty ID) in namespace,
// deleting the entry if the result is <= 0. Reports
// ErrNamespaceNotFound / ErrKeyNotFound when either is absent.
func (s *Store) Decrement(namespace, key string, value int64, locale string) error {
	if namespace == "" || key == "" {
		return ErrMissingRequiredArg
	}
	nkey, err := normalize.Normalize(key, locale)
	if err != nil {
		return ErrBadInput
	}
	ns, ok := s.registry.lookup(namespace)
	if !ok {
		return ErrNamespaceNotFound
	}
	found, _ := ns.decrement(nkey, value)
	if !found {
		return ErrKeyNotFound
	}
	return nil
}

// SearchInput carries the arguments to Search. Key, ID and Locale are
// optional; an absent Key matches every entry. Limit <= 0 means "use
// the store's configured default". TSFloor > 0 excludes entries whose
// When is <= TSFloor (the "newer than" cursor).
type SearchInput struct {
	Namespace string
	Key       string
	ID        string
	Locale    string
	Limit     int
	TSFloor   int64
}

// Search resolves namespace (creating it, and replaying any on-disk
// snapshot, if absent) and returns up to Limit entries whose
// normalized key starts with the normalized Key, newest first with
// ties broken by higher Count, excluding entries at or before TSFloor.
// A namespace with nothing loaded yields an empty result, not an
// error. Search never changes entries or dirty counters.
func (s *Store) Search(in SearchInput) ([]Result, error) {
	if in.Namespace == "" {
		return nil, ErrMissingRequiredArg
	}

	nprefix := ""
	if in.Key != "" {
		n, err := normalize.Normalize(in.Key, in.Locale)
		if err != nil {
			return nil, ErrBadInput
		}
		nprefix = n
	}

	limit := in.Limit
	if limit <= 0 {
		limit = s.searchLimit
	}

	ns := s.registry.getOrCreate(in.Namespace)

	var idPtr *string
	if in.ID != "" {
		idPtr = &in.ID
	}
	entries := ns.search(nprefix, idPtr)

	candidates := make([]search.Candidate, len(entries))
	for i, e := range entries {
		candidates[i] = search.Candidate{
			NKey:  e.CKey.NKey,
			ID:    e.CKey.ID,
			When:  e.When,
			Count: e.Count,
			Data:  e.Data,
		}
	}

	ranked := search.Rank(candidates, limit, in.TSFloor)
	results := make([]Result, len(ranked))
	for i, c := range ranked {
		results[i] = Result{Key: c.NKey, ID: c.ID, When: c.When, Count: c.Count, Data: c.Data}
	}
	return results, nil
}

// DirtyNamespaces returns every namespace whose dirty counter is
// currently positive, as a point-in-time slice collected under the
// registry lock. Used by the snapshot scheduler.
func (s *Store) DirtyNamespaces() []*Namespace {
	return s.registry.snapshotTargets()
}

// AllNamespaces returns every registered namespace regardless of
// dirty state, for the final shutdown snapshot pass.
func (s *Store) AllNamespaces() []*Namespace {
	return s.registry.allNamespaces()
}

// NamespaceCount reports how many namespaces have been created.
func (s *Store) NamespaceCount() int {
	return len(s.registry.allNamespaces())
}
