package store

import (
	"sync"

	"github.com/nuclearlighters/netconfigd/internal/models"
)

// WifiStore holds WiFi profiles keyed by id. All methods are safe for
// concurrent use; the internal map is never handed out.
//
// Invariant: at most one stored profile has IsActive set.
type WifiStore struct {
	mu       sync.Mutex
	profiles map[string]models.WifiProfile
}

// NewWifiStore creates an empty store.
func NewWifiStore() *WifiStore {
	return &WifiStore{
		profiles: make(map[string]models.WifiProfile),
	}
}

// Save inserts or overwrites the profile under its id.
func (s *WifiStore) Save(profile models.WifiProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
}

// FindAll returns a snapshot of all profiles in unspecified order.
func (s *WifiStore) FindAll() []models.WifiProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.WifiProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out
}

// FindByID returns the profile with the given id, or false if absent.
func (s *WifiStore) FindByID(id string) (models.WifiProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	return p, ok
}

// FindActive returns the active profile, or false if none is active.
func (s *WifiStore) FindActive() (models.WifiProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.IsActive {
			return p, true
		}
	}
	return models.WifiProfile{}, false
}

// SetActive deactivates every profile, then activates the one matching id.
// Returns ErrNotFound if id does not exist; in that case every profile has
// been deactivated. Both phases run under one lock acquisition, so no
// interleaving can observe two active profiles.
func (s *WifiStore) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, p := range s.profiles {
		if p.IsActive {
			p.IsActive = false
			s.profiles[key] = p
		}
	}

	p, ok := s.profiles[id]
	if !ok {
		return ErrNotFound
	}
	p.IsActive = true
	s.profiles[id] = p
	return nil
}

// Delete removes the profile if present. Deleting an unknown id is a no-op.
func (s *WifiStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
}
