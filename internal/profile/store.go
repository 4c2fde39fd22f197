package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// ErrNotFound is returned when no record exists for the requested profile id
var ErrNotFound = errors.New("profile not found")

// Profile ids map directly to record filenames, so they must not carry path
// syntax. Lookup stays case-sensitive against the stored identifier.
var profileIDRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Store loads profile records from a directory of JSON files and caches
// successful loads for the process lifetime. Records are treated as static;
// there is no invalidation.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*models.Profile
}

// NewStore creates a store over the given records directory
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: make(map[string]*models.Profile),
	}
}

// Load returns the profile record for the given id. Misses return ErrNotFound
// and leave no cache entry behind. Concurrent first loads of the same id may
// both read the file; last write wins, which is harmless because the decode
// is deterministic.
func (s *Store) Load(id string) (*models.Profile, error) {
	s.mu.RLock()
	cached, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	if !profileIDRe.MatchString(id) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("read profile %s: %w", id, err)
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}

	s.mu.Lock()
	s.cache[id] = &p
	s.mu.Unlock()

	logging.GetGlobalLogger().Debug("Profile loaded into cache", map[string]interface{}{
		"profile_id": id,
		"jobs":       len(p.Jobs),
	})

	return &p, nil
}

// Available reports whether the records directory exists. Used by readiness checks.
func (s *Store) Available() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}
