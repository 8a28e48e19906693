package snapshot

import (
	"io"
	"os"

	"github.com/arnav-k/autocompleted/internal/store"
)

// FileLoader implements store.Loader by reading a namespace's
// snapshot file, if any, back into LoadedRecords. Stored keys are
// already normalized, so nothing here re-normalizes them.
type FileLoader struct {
	paths Paths
}

// NewFileLoader returns a FileLoader rooted at paths.
func NewFileLoader(paths Paths) *FileLoader {
	return &FileLoader{paths: paths}
}

// LoadNamespace reads name's snapshot file end to end. A missing file
// is normal and returns (nil, nil) — the namespace simply starts
// empty. A corrupt record partway through the file causes the whole
// file to be skipped (returns a non-nil error so the caller replays
// nothing), leaving the namespace empty but usable rather than
// failing namespace creation.
func (l *FileLoader) LoadNamespace(name string) ([]store.LoadedRecord, error) {
	if !l.paths.Enabled() {
		return nil, nil
	}

	f, err := os.Open(l.paths.NamespacePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []store.LoadedRecord
	for {
		rec, err := decodeRecord(f)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		out = append(out, store.LoadedRecord{
			NKey:  rec.NKey,
			ID:    rec.ID,
			Data:  rec.Data,
			When:  int64(rec.When),
			Count: int64(rec.Count),
		})
	}
	return out, nil
}
