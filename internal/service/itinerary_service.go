package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

var (
	ErrItineraryDuplicate    = errors.New("place already in itinerary")
	ErrItineraryItemNotFound = errors.New("place is not in itinerary")
	ErrItineraryValidation   = errors.New("itinerary item validation failed")
)

type ItineraryEntry struct {
	Item    domain.ItineraryItem   `json:"item"`
	Actions []domain.BookingAction `json:"actions"`
}

type ItineraryService struct {
	sessions *SessionService
	resolver *BookingResolver
}

func NewItineraryService(sessions *SessionService, resolver *BookingResolver) *ItineraryService {
	return &ItineraryService{sessions: sessions, resolver: resolver}
}

// Add puts a suggestion on the session's itinerary. At most one item per name
// is kept: a second add of the same name is refused here, before the store.
func (s *ItineraryService) Add(ctx context.Context, sessionID uuid.UUID, item domain.EnrichedSuggestion, category domain.Category) (*domain.ItineraryItem, error) {
	store, err := s.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrItineraryValidation)
	}
	if category == "" {
		category = item.Category
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if item.DistanceKm != nil && *item.DistanceKm < 0 {
		return nil, fmt.Errorf("%w: distance_km must not be negative", ErrItineraryValidation)
	}

	added, ok := store.AddIfAbsent(item, category)
	if !ok {
		return nil, ErrItineraryDuplicate
	}
	return &added, nil
}

func (s *ItineraryService) Remove(ctx context.Context, sessionID uuid.UUID, name string) (int, error) {
	store, err := s.sessions.Itinerary(sessionID)
	if err != nil {
		return 0, err
	}
	return store.Remove(name), nil
}

// List returns the itinerary in insertion order with the booking actions of
// every item. When searchCountry is nil the country of the session's latest
// search is used.
func (s *ItineraryService) List(ctx context.Context, sessionID uuid.UUID, searchCountry *string) ([]ItineraryEntry, error) {
	store, err := s.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, err
	}
	country := s.searchCountry(sessionID, searchCountry)

	items := store.List()
	entries := make([]ItineraryEntry, 0, len(items))
	for _, item := range items {
		actions, err := s.resolver.Resolve(item, country)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ItineraryEntry{Item: item, Actions: actions})
	}
	return entries, nil
}

func (s *ItineraryService) Actions(ctx context.Context, sessionID uuid.UUID, name string, searchCountry *string) (*ItineraryEntry, error) {
	store, err := s.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, err
	}
	item, ok := store.Get(name)
	if !ok {
		return nil, ErrItineraryItemNotFound
	}
	actions, err := s.resolver.Resolve(item, s.searchCountry(sessionID, searchCountry))
	if err != nil {
		return nil, err
	}
	return &ItineraryEntry{Item: item, Actions: actions}, nil
}

func (s *ItineraryService) searchCountry(sessionID uuid.UUID, override *string) *string {
	if c := normalizeCountry(override); c != nil {
		return c
	}
	if last := s.sessions.LastSearch(sessionID); last != nil {
		return last.SearchCountry
	}
	return nil
}
