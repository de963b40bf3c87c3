package sensor

import (
	"sort"
	"sync"
	"time"

	"github.com/oddlab/anomaly-radar/internal/config"
)

// ContactStore is a thread-safe store of tracked proximity contacts.
// It also counts proximity events: each first appearance of a contact,
// including reappearance after eviction, is one event.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[string]*Contact
	events   int
}

// NewContactStore creates an empty store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[string]*Contact),
	}
}

// Upsert adds or refreshes a contact. Existing contacts get EMA-smoothed
// RSSI and keep their bearing so blips don't jitter. Returns true when
// the contact is new.
func (s *ContactStore) Upsert(id, name string, rssi float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if existing, ok := s.contacts[id]; ok {
		existing.RSSI = existing.RSSI*(1-config.SmoothingAlpha) + rssi*config.SmoothingAlpha
		existing.Distance = RSSIToDistance(existing.RSSI, config.MeasuredPower, config.PathLossExp)
		existing.LastSeen = now
		if name != "" {
			existing.Name = name
		}
		return false
	}

	s.contacts[id] = &Contact{
		ID:       id,
		Name:     name,
		RSSI:     rssi,
		LastSeen: now,
		Bearing:  IDToBearing(id),
		Distance: RSSIToDistance(rssi, config.MeasuredPower, config.PathLossExp),
	}
	s.events++
	return true
}

// Evict removes contacts not seen within the timeout. Returns how many
// were removed.
func (s *ContactStore) Evict(timeout time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-timeout)
	count := 0
	for id, c := range s.contacts {
		if c.LastSeen.Before(cutoff) {
			delete(s.contacts, id)
			count++
		}
	}
	return count
}

// Clear drops every tracked contact. The event count survives; it is a
// session tally, not a population size.
func (s *ContactStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = make(map[string]*Contact)
}

// Snapshot returns a copy of all contacts, strongest RSSI first.
func (s *ContactStore) Snapshot() []*Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		cp := *c
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RSSI > result[j].RSSI
	})
	return result
}

// Count returns the number of tracked contacts.
func (s *ContactStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// Events returns the total proximity events observed this session.
func (s *ContactStore) Events() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}
