package snapshot

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRecordRoundTrip(t *testing.T) {
	data := "payload"
	rec := record{NKey: "hello", ID: "1", Data: &data, When: 1234, Count: 7}

	var buf bytes.Buffer
	require.NoError(t, encodeRecord(&buf, rec))

	got, err := decodeRecord(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.NKey, got.NKey)
	assert.Equal(t, rec.ID, got.ID)
	require.NotNil(t, got.Data)
	assert.Equal(t, *rec.Data, *got.Data)
	assert.Equal(t, rec.When, got.When)
	assert.Equal(t, rec.Count, got.Count)
}

func TestEncodeDecodeRecordWithoutData(t *testing.T) {
	rec := record{NKey: "hello", ID: "", When: 1, Count: 1}

	var buf bytes.Buffer
	require.NoError(t, encodeRecord(&buf, rec))

	got, err := decodeRecord(&buf)
	require.NoError(t, err)
	assert.Nil(t, got.Data)
}

func TestDecodeRecordReturnsEOFAtCleanBoundary(t *testing.T) {
	var buf bytes.Buffer
	_, err := decodeRecord(&buf)
	assert.Equal(t, io.EOF, err)
}

func TestDecodeRecordReportsTruncationAsError(t *testing.T) {
	var full bytes.Buffer
	require.NoError(t, encodeRecord(&full, record{NKey: "hello", ID: "id", When: 1, Count: 1}))

	truncated := bytes.NewReader(full.Bytes()[:full.Len()-2])
	_, err := decodeRecord(truncated)
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}

func TestDecodeMultipleRecordsSequentially(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeRecord(&buf, record{NKey: "a", ID: "", When: 1, Count: 1}))
	require.NoError(t, encodeRecord(&buf, record{NKey: "b", ID: "", When: 2, Count: 2}))

	first, err := decodeRecord(&buf)
	require.NoError(t, err)
	assert.Equal(t, "a", first.NKey)

	second, err := decodeRecord(&buf)
	require.NoError(t, err)
	assert.Equal(t, "b", second.NKey)

	_, err = decodeRecord(&buf)
	assert.Equal(t, io.EOF, err)
}
