package finbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrSnapshotNotFound reports that the backing store holds no snapshot yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists whole snapshots. Implementations must make Save
// atomic: a crash mid-write may lose the new snapshot but never corrupt the
// previous one.
type SnapshotStore interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// FileStore persists the snapshot as one JSON file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store writing to the given file path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads and validates the snapshot file. A missing file is reported as
// ErrSnapshotNotFound.
func (fs *FileStore) Load() (*Snapshot, error) {
	f, err := os.Open(fs.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", fs.Path, ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", fs.Path, err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// Save writes the snapshot with write-replace semantics: the document is
// written to a temporary file in the same directory, synced, and renamed
// over the previous one. Readers see either the old file or the new file,
// never a torn write.
func (fs *FileStore) Save(s *Snapshot) error {
	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create snapshot directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeSnapshot(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("could not sync snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.Path); err != nil {
		return fmt.Errorf("could not replace snapshot file %q: %w", fs.Path, err)
	}
	return nil
}

// Load initializes the ledger from the store, once, at startup. It fails
// soft: when the store is empty or holds corrupt data, the fixed sample
// dataset is installed instead and no error is reported.
func (l *Ledger) Load(store SnapshotStore) {
	s, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			log.Warn().Err(err).Msg("could not load snapshot, falling back to sample data")
		}
		s = SampleSnapshot()
	}
	l.Replace(s)
}

// Persist serializes the current snapshot to the store. The snapshot is
// copied under the read lock, then written outside of it, so concurrent
// mutations never block on I/O and never tear the write. Concurrent
// Persist calls serialize through the flush mutex, and the copy is taken
// after acquiring it so flush order matches snapshot order. Failures are
// logged and returned, but callers on a background schedule may ignore
// them and retry on the next trigger.
func (l *Ledger) Persist(store SnapshotStore) error {
	l.flushMu.Lock()
	defer l.flushMu.Unlock()

	s := l.Snapshot()
	if err := store.Save(s); err != nil {
		log.Error().Err(err).Msg("could not persist snapshot")
		return err
	}
	return nil
}
