package store

import (
	"sync"

	"github.com/nuclearlighters/netconfigd/internal/models"
)

// StaticIPStore holds static IP profiles keyed by id. Unlike WifiStore there
// is no cross-record invariant: any number of profiles may be enabled at
// once, including several for the same interface.
type StaticIPStore struct {
	mu       sync.Mutex
	profiles map[string]models.StaticIPProfile
}

// NewStaticIPStore creates an empty store.
func NewStaticIPStore() *StaticIPStore {
	return &StaticIPStore{
		profiles: make(map[string]models.StaticIPProfile),
	}
}

// Save inserts or overwrites the profile under its id.
func (s *StaticIPStore) Save(profile models.StaticIPProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
}

// FindAll returns a snapshot of all profiles in unspecified order.
func (s *StaticIPStore) FindAll() []models.StaticIPProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.StaticIPProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out
}

// FindByID returns the profile with the given id, or false if absent.
func (s *StaticIPStore) FindByID(id string) (models.StaticIPProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	return p, ok
}

// FindByInterface returns the first profile bound to the named interface, or
// false if none matches.
func (s *StaticIPStore) FindByInterface(name string) (models.StaticIPProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.InterfaceName == name {
			return p, true
		}
	}
	return models.StaticIPProfile{}, false
}

// Enable flips IsEnabled on for one profile. Returns ErrNotFound if id does
// not exist.
func (s *StaticIPStore) Enable(id string) error {
	return s.setEnabled(id, true)
}

// Disable flips IsEnabled off for one profile. Returns ErrNotFound if id
// does not exist.
func (s *StaticIPStore) Disable(id string) error {
	return s.setEnabled(id, false)
}

func (s *StaticIPStore) setEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return ErrNotFound
	}
	p.IsEnabled = enabled
	s.profiles[id] = p
	return nil
}

// Delete removes the profile if present. Deleting an unknown id is a no-op.
func (s *StaticIPStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
}
