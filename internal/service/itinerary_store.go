package service

import (
	"strings"
	"sync"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

// ItineraryStore keeps the ordered itinerary of one browsing session.
// Display order is insertion order.
type ItineraryStore struct {
	mu    sync.RWMutex
	items []domain.ItineraryItem
	now   func() time.Time
}

func NewItineraryStore() *ItineraryStore {
	return &ItineraryStore{now: time.Now}
}

// Add appends a frozen copy of item. It does not reject duplicates; callers
// that need one item per name use AddIfAbsent.
func (s *ItineraryStore) Add(item domain.EnrichedSuggestion, category domain.Category) domain.ItineraryItem {
	frozen := s.freeze(item, category)

	s.mu.Lock()
	s.items = append(s.items, frozen)
	s.mu.Unlock()
	return cloneItem(frozen)
}

// AddIfAbsent appends item unless an item with the same name is present. The
// lookup and the append happen under one lock.
func (s *ItineraryStore) AddIfAbsent(item domain.EnrichedSuggestion, category domain.Category) (domain.ItineraryItem, bool) {
	frozen := s.freeze(item, category)
	key := itemKey(frozen.Name)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if itemKey(existing.Name) == key {
			return cloneItem(existing), false
		}
	}
	s.items = append(s.items, frozen)
	return cloneItem(frozen), true
}

func (s *ItineraryStore) freeze(item domain.EnrichedSuggestion, category domain.Category) domain.ItineraryItem {
	frozen := domain.ItineraryItem{
		EnrichedSuggestion: cloneEnriched(item),
		Category:           category,
		AddedAt:            s.now().UTC(),
	}
	frozen.Suggestion.Category = category
	return frozen
}

// Remove drops every item with the given name. Unknown names are a no-op.
// It reports how many items were removed.
func (s *ItineraryStore) Remove(name string) int {
	key := itemKey(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if itemKey(item.Name) == key {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = domain.ItineraryItem{}
	}
	s.items = kept
	return removed
}

func (s *ItineraryStore) Contains(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Get returns the first item with the given name.
func (s *ItineraryStore) Get(name string) (domain.ItineraryItem, bool) {
	key := itemKey(name)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if itemKey(item.Name) == key {
			return cloneItem(item), true
		}
	}
	return domain.ItineraryItem{}, false
}

// List returns a snapshot in insertion order. Mutating it does not affect the store.
func (s *ItineraryStore) List() []domain.ItineraryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ItineraryItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, cloneItem(item))
	}
	return out
}

func (s *ItineraryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func itemKey(name string) string {
	return strings.TrimSpace(name)
}

func cloneItem(item domain.ItineraryItem) domain.ItineraryItem {
	item.EnrichedSuggestion = cloneEnriched(item.EnrichedSuggestion)
	return item
}

func cloneEnriched(in domain.EnrichedSuggestion) domain.EnrichedSuggestion {
	out := in
	out.DistanceKm = cloneFloat(in.DistanceKm)
	out.Website = cloneString(in.Website)
	out.ImageQuery = cloneString(in.ImageQuery)
	out.PlaceID = cloneString(in.PlaceID)
	out.PhotoReference = cloneString(in.PhotoReference)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
