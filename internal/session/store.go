// Package session persists per-account browser authentication state so a
// restarted node can skip interactive login.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sabir1919/Hednet-node/internal/errors"
)

const (
	storeDirMode  = 0o700
	stateFileMode = 0o600
)

// Store is a file-backed session state store. Each account's state blob
// lives in its own file under the store root, keyed by a sanitized form of
// the account identity. Saves are atomic: a crash mid-write never leaves a
// partial blob visible to a later Load.
type Store struct {
	root string
	mu   sync.RWMutex
}

// NewStore creates a store rooted at the given directory. The directory is
// created on first save.
func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Key derives the storage key for an account identity. Deterministic:
// the same identity always maps to the same key. Every byte outside
// [a-zA-Z0-9._-] is replaced so any identity is filesystem-safe.
func Key(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Path returns the state file path for an account identity.
func (s *Store) Path(id string) string {
	return filepath.Join(s.root, "storage_state_"+Key(id)+".json")
}

// Load returns the persisted state blob for an account, or (nil, false)
// when no prior state exists. Never fails loudly: unreadable state is
// treated the same as absent state.
func (s *Store) Load(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path(id))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Has reports whether persisted state exists for an account.
func (s *Store) Has(id string) bool {
	_, ok := s.Load(id)
	return ok
}

// Save overwrites the state blob for an account. The blob is written to a
// temp file and renamed into place so readers only ever observe a complete
// blob.
func (s *Store) Save(id string, state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			"Cannot create session state directory: "+s.root,
			"Check directory permissions")
	}

	tmp, err := os.CreateTemp(s.root, "state-*.tmp")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			"Cannot create session state file", "")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(state); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrState,
			"Cannot write session state for "+id, "")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrState,
			"Cannot flush session state for "+id, "")
	}
	if err := os.Chmod(tmpName, stateFileMode); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrState,
			"Cannot set session state permissions", "")
	}

	if err := os.Rename(tmpName, s.Path(id)); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrState,
			"Cannot persist session state for "+id, "")
	}
	return nil
}
