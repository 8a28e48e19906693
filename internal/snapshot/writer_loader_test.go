package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav-k/autocompleted/internal/store"
)

func TestWriterThenLoaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	paths := NewPaths(dir)
	require.NoError(t, paths.PrecreateDirs())

	st := store.New(store.Config{MaxElems: 1000}, nil)
	data := "payload"
	_, err := st.Put(store.PutInput{Namespace: "ns", Key: "hello", ID: "1", Data: &data})
	require.NoError(t, err)
	_, err = st.Put(store.PutInput{Namespace: "ns", Key: "world"})
	require.NoError(t, err)

	writer := NewWriter(paths)
	for _, ns := range st.AllNamespaces() {
		require.NoError(t, writer.WriteNamespace(ns))
	}

	loader := NewFileLoader(paths)
	records, err := loader.LoadNamespace("ns")
	require.NoError(t, err)
	require.Len(t, records, 2)

	byKey := map[string]store.LoadedRecord{}
	for _, r := range records {
		byKey[r.NKey] = r
	}
	require.Contains(t, byKey, "hello")
	assert.Equal(t, "1", byKey["hello"].ID)
	require.NotNil(t, byKey["hello"].Data)
	assert.Equal(t, "payload", *byKey["hello"].Data)
	require.Contains(t, byKey, "world")
}

func TestLoaderOnMissingFileReturnsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	paths := NewPaths(dir)
	require.NoError(t, paths.PrecreateDirs())

	loader := NewFileLoader(paths)
	records, err := loader.LoadNamespace("never-written")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriterNoOpWhenPathsDisabled(t *testing.T) {
	writer := NewWriter(NewPaths(""))
	st := store.New(store.Config{MaxElems: 1000}, nil)
	_, err := st.Put(store.PutInput{Namespace: "ns", Key: "hello"})
	require.NoError(t, err)

	for _, ns := range st.AllNamespaces() {
		assert.NoError(t, writer.WriteNamespace(ns))
	}
}

func TestRegistryReplaysSnapshotOnNamespaceCreation(t *testing.T) {
	dir := t.TempDir()
	paths := NewPaths(dir)
	require.NoError(t, paths.PrecreateDirs())

	seed := store.New(store.Config{MaxElems: 1000}, nil)
	_, err := seed.Put(store.PutInput{Namespace: "ns", Key: "persisted"})
	require.NoError(t, err)
	writer := NewWriter(paths)
	for _, ns := range seed.AllNamespaces() {
		require.NoError(t, writer.WriteNamespace(ns))
	}

	reloaded := store.New(store.Config{MaxElems: 1000}, NewFileLoader(paths))
	results, err := reloaded.Search(store.SearchInput{Namespace: "ns", Key: ""})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "persisted", results[0].Key)
}
