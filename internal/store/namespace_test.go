package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-k/autocompleted/internal/normalize"
)

func ckey(nkey, id string) normalize.CKey {
	return normalize.CKey{NKey: nkey, ID: id}
}

func TestNamespacePutMarksDirtyAndLoadReplayDoesNot(t *testing.T) {
	ns := newNamespace("ns")
	ns.put(ckey("a", ""), nil, 1, 1000, true, nil)
	assert.Equal(t, int64(1), ns.Dirty())

	count := int64(7)
	ns.put(ckey("b", ""), nil, 2, 1000, false, &count)
	assert.Equal(t, int64(1), ns.Dirty(), "replay puts must not bump the dirty counter")
	assert.Equal(t, 2, ns.Len())
}

func TestNamespaceSnapshotResetsDirtyOnlyOnSuccess(t *testing.T) {
	ns := newNamespace("ns")
	ns.put(ckey("a", ""), nil, 1, 1000, true, nil)

	err := ns.Snapshot(func(entries []*Entry) error {
		require.Len(t, entries, 1)
		return assertErr
	})
	assert.ErrorIs(t, err, assertErr)
	assert.Equal(t, int64(1), ns.Dirty(), "a failed snapshot must leave the namespace dirty")

	err = ns.Snapshot(func(entries []*Entry) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(0), ns.Dirty())
}

func TestNamespaceEvictsOldestInsertionFirst(t *testing.T) {
	ns := newNamespace("ns")
	ns.put(ckey("a", ""), nil, 1, 2, true, nil)
	ns.put(ckey("b", ""), nil, 2, 2, true, nil)
	ns.put(ckey("c", ""), nil, 3, 2, true, nil)

	assert.Equal(t, 2, ns.Len())
	_, aStillPresent := ns.items[ckey("a", "")]
	assert.False(t, aStillPresent)
}

func TestNamespaceRepeatedPutMovesEntryToTailNotEvicted(t *testing.T) {
	ns := newNamespace("ns")
	ns.put(ckey("a", ""), nil, 1, 2, true, nil)
	ns.put(ckey("b", ""), nil, 2, 2, true, nil)
	// Re-putting "a" should move it to the tail, so the next insert
	// evicts "b" (now the oldest), not "a".
	ns.put(ckey("a", ""), nil, 3, 2, true, nil)
	ns.put(ckey("c", ""), nil, 4, 2, true, nil)

	_, aPresent := ns.items[ckey("a", "")]
	_, bPresent := ns.items[ckey("b", "")]
	assert.True(t, aPresent)
	assert.False(t, bPresent)
}

func TestNamespaceNukeRemovesPrefixMatches(t *testing.T) {
	ns := newNamespace("ns")
	ns.put(ckey("app", ""), nil, 1, 1000, true, nil)
	ns.put(ckey("apple", ""), nil, 2, 1000, true, nil)
	ns.put(ckey("banana", ""), nil, 3, 1000, true, nil)

	removed := ns.nuke("app", nil)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, ns.Len())
}

func TestNamespaceDecrementDeletesAtOrBelowZero(t *testing.T) {
	ns := newNamespace("ns")
	ns.put(ckey("counter", ""), nil, 1, 1000, true, nil)
	ns.put(ckey("counter", ""), nil, 1, 1000, true, nil)

	found, deleted := ns.decrement("counter", 1)
	assert.True(t, found)
	assert.False(t, deleted)

	found, deleted = ns.decrement("counter", 5)
	assert.True(t, found)
	assert.True(t, deleted)

	found, _ = ns.decrement("counter", 1)
	assert.False(t, found)
}

var assertErr = assertError("boom")

type assertError string

func (e assertError) Error() string { return string(e) }
