package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC16IsDeterministicAndNameSensitive(t *testing.T) {
	assert.Equal(t, crc16("namespace-a"), crc16("namespace-a"))
	assert.NotEqual(t, crc16("namespace-a"), crc16("namespace-b"))
}

func TestFanoutBytesWithinSingleByteRange(t *testing.T) {
	hi, lo := fanoutBytes("some-namespace")
	assert.LessOrEqual(t, int(hi), 0xFF)
	assert.LessOrEqual(t, int(lo), 0xFF)
}

func TestPathsDisabledWhenRootEmpty(t *testing.T) {
	p := NewPaths("")
	assert.False(t, p.Enabled())
}

func TestPathsEnabledWithRoot(t *testing.T) {
	p := NewPaths("/tmp/whatever")
	assert.True(t, p.Enabled())
}

func TestTempPathIsNamespacePathPlusSuffix(t *testing.T) {
	p := NewPaths("/tmp/whatever")
	assert.Equal(t, p.NamespacePath("ns")+".tmp", p.TempPath("ns"))
}

func TestHexByteFormatting(t *testing.T) {
	assert.Equal(t, "00", hexByte(0x00))
	assert.Equal(t, "ff", hexByte(0xFF))
	assert.Equal(t, "0a", hexByte(0x0A))
}
