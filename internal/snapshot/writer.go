package snapshot

import (
	"os"

	"github.com/arnav-k/autocompleted/internal/store"
)

// Writer performs the atomic per-namespace binary dump from spec.md
// §4.4: write every record to a .tmp file, then rename it over the
// real path. The whole write — tmp-file creation, every record, the
// close, and the rename — runs inside Namespace.Snapshot, i.e. with
// the namespace lock held for the duration, so a reader never
// observes a half-written file and unrelated namespaces are never
// blocked by this one's I/O.
type Writer struct {
	paths Paths
}

// NewWriter returns a Writer rooted at paths. If paths is not Enabled,
// WriteNamespace is a no-op (in-memory-only mode).
func NewWriter(paths Paths) *Writer {
	return &Writer{paths: paths}
}

// WriteNamespace snapshots ns to disk. On any write error the .tmp
// file is left behind for diagnostics but never renamed over the
// previous good snapshot, and the namespace's dirty counter is left
// untouched so the next scheduled sweep retries.
func (w *Writer) WriteNamespace(ns *store.Namespace) error {
	if !w.paths.Enabled() {
		return nil
	}

	tmpPath := w.paths.TempPath(ns.Name())
	finalPath := w.paths.NamespacePath(ns.Name())

	return ns.Snapshot(func(entries []*store.Entry) error {
		f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0660)
		if err != nil {
			return err
		}

		for _, e := range entries {
			rec := record{
				NKey:  e.CKey.NKey,
				ID:    e.CKey.ID,
				Data:  e.Data,
				When:  uint32(e.When),
				Count: uint32(e.Count),
			}
			if err := encodeRecord(f, rec); err != nil {
				_ = f.Close()
				return err
			}
		}

		if err := f.Close(); err != nil {
			return err
		}
		return os.Rename(tmpPath, finalPath)
	})
}
