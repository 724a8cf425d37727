package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/2beens/underthebar/pkg"

	log "github.com/sirupsen/logrus"
)

// keys of the session file; the file is shared with the hevy collaborator,
// so any other keys found in it are kept as they are
const (
	KeyStravaTokenCode     = "strava-token-code"
	KeyStravaTokenRefresh  = "strava-token-refresh"
	KeyUserID              = "user-id"
	KeyHevyAuthToken       = "auth-token"
	KeyStravaActivityTypes = "strava-activity-type-filters"
)

// Store is the flat key-value session state kept in a single JSON file.
// Writes replace the whole file. Only safe with a single running instance.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// load returns the raw session data; an absent file yields an empty map.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data := make(map[string]json.RawMessage)
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(content) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("unmarshal session file: %w", err)
	}
	return data, nil
}

func (s *Store) save(data map[string]json.RawMessage) error {
	content, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := pkg.EnsureDir(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// GetString returns the string value under key, or "" if absent.
func (s *Store) GetString(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}
	raw, ok := data[key]
	if !ok {
		return "", nil
	}
	var val string
	if err := json.Unmarshal(raw, &val); err != nil {
		return "", fmt.Errorf("session key %s is not a string: %w", key, err)
	}
	return val, nil
}

// SetString stores the value under key and persists the session file.
func (s *Store) SetString(key, value string) error {
	return s.set(key, value)
}

// Delete removes the key from the session file.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.save(data)
}

func (s *Store) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal session value for %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data[key] = raw

	log.Tracef("session: persisting key [%s]", key)
	return s.save(data)
}

func (s *Store) UserID() (string, error) {
	return s.GetString(KeyUserID)
}

func (s *Store) StravaRefreshToken() (string, error) {
	return s.GetString(KeyStravaTokenRefresh)
}

func (s *Store) StravaTokenCode() (string, error) {
	return s.GetString(KeyStravaTokenCode)
}

// ActivityTypeFilters returns the enabled activity types.
// The bool result is false when no filter was ever saved.
func (s *Store) ActivityTypeFilters() ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, false, err
	}
	raw, ok := data[KeyStravaActivityTypes]
	if !ok {
		return nil, false, nil
	}
	filters := []string{}
	if err := json.Unmarshal(raw, &filters); err != nil {
		return nil, false, fmt.Errorf("unmarshal activity type filters: %w", err)
	}
	return filters, true, nil
}

func (s *Store) SetActivityTypeFilters(types []string) error {
	if types == nil {
		types = []string{}
	}
	return s.set(KeyStravaActivityTypes, types)
}
