package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLowercasesASCII(t *testing.T) {
	got, err := Normalize("Hello World", "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestNormalizeIsLocaleAware(t *testing.T) {
	// Turkish dotted/dotless-i tailoring: "I".lower() under tr differs
	// from the root locale.
	root, err := Normalize("I", "")
	require.NoError(t, err)
	turkish, err := Normalize("I", "tr")
	require.NoError(t, err)
	assert.NotEqual(t, root, turkish)
}

func TestNormalizeAcceptsUnderscoreLocale(t *testing.T) {
	got, err := Normalize("HELLO", "en_US")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestNormalizeRejectsInvalidUTF8(t *testing.T) {
	_, err := Normalize(string([]byte{0xff, 0xfe}), "")
	assert.Error(t, err)
}

func TestNormalizeRejectsUnknownLocale(t *testing.T) {
	_, err := Normalize("abc", "not-a-real-locale-tag-!!")
	assert.Error(t, err)
}

func TestMakeCKeyPairsNormalizedKeyWithID(t *testing.T) {
	ck, err := MakeCKey("Foo", "42", "")
	require.NoError(t, err)
	assert.Equal(t, "foo", ck.NKey)
	assert.Equal(t, "42", ck.ID)
}

func TestCKeyBytesLayout(t *testing.T) {
	ck := CKey{NKey: "foo", ID: "bar"}
	assert.Equal(t, []byte("foo\x00bar\x00"), ck.Bytes())
}

func TestCKeyEquality(t *testing.T) {
	a, err := MakeCKey("Foo", "1", "")
	require.NoError(t, err)
	b, err := MakeCKey("foo", "1", "")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := MakeCKey("foo", "2", "")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
