package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves namespace names to their on-disk snapshot location
// under a configured root directory, using the two-level 256x256
// CRC-16 fan-out scheme from spec.md §4.4.
type Paths struct {
	root string
}

// NewPaths returns a Paths rooted at root. An empty root means
// persistence is disabled entirely — callers should check Enabled()
// before using any other method.
func NewPaths(root string) Paths {
	return Paths{root: root}
}

// Enabled reports whether a persistence root directory is configured.
func (p Paths) Enabled() bool {
	return p.root != ""
}

// NamespacePath returns the final (post-rename) snapshot path for
// namespace name.
func (p Paths) NamespacePath(name string) string {
	hi, lo := fanoutBytes(name)
	return filepath.Join(p.root, hexByte(hi), hexByte(lo), name)
}

// TempPath returns the path a writer stages a namespace's new
// snapshot at before the atomic rename into NamespacePath.
func (p Paths) TempPath(name string) string {
	return p.NamespacePath(name) + ".tmp"
}

// PrecreateDirs creates every one of the 256x256 fan-out
// subdirectories under root, mode 0770. Existing directories are not
// an error. Called once at startup so writers never need to create
// parent directories on the hot path.
func (p Paths) PrecreateDirs() error {
	if !p.Enabled() {
		return nil
	}
	for hi := 0; hi < 256; hi++ {
		for lo := 0; lo < 256; lo++ {
			dir := filepath.Join(p.root, hexByte(byte(hi)), hexByte(byte(lo)))
			if err := os.MkdirAll(dir, 0770); err != nil {
				return fmt.Errorf("snapshot: pre-creating %s: %w", dir, err)
			}
		}
	}
	return nil
}

func hexByte(b byte) string {
	const hexDigits = "0123456789abcdef"
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}
