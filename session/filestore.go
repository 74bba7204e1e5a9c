package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// FileStore persists the session record as a single JSON file on the local
// device. It is the default store: no network I/O, one well-known path,
// writes replace the file atomically via rename.
//
// FileStore instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type FileStore struct {
	path   string
	logger zerolog.Logger

	// OnPurge, when set, is invoked after a malformed record has been
	// cleared during Read. The Controller hooks it for metrics and audit.
	OnPurge func()

	mu sync.Mutex
}

// NewFileStore returns a FileStore rooted at path. The parent directory is
// created on first Write.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With().Str("component", "filestore").Logger(),
	}
}

// Read implements [Store]. Malformed content is purged and reported as
// absent; read never fails.
func (s *FileStore) Read(ctx context.Context) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("session file unreadable")
		}
		return Identity{}, false
	}

	ident, err := decodeRecord(data)
	if err != nil {
		s.logger.Warn().Str("path", s.path).Msg("purging malformed session record")
		s.clearLocked()
		if s.OnPurge != nil {
			s.OnPurge()
		}
		return Identity{}, false
	}

	return ident, true
}

// Write implements [Store].
func (s *FileStore) Write(ctx context.Context, ident Identity) error {
	data, err := encodeRecord(ident)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear implements [Store]. Clearing an absent file is a no-op.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	return nil
}

func (s *FileStore) clearLocked() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("session file remove failed")
	}
}
