package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

var (
	ErrLocationRequired       = errors.New("location is required")
	ErrSuggestionsUnavailable = errors.New("could not get suggestions")
	ErrLocationUnavailable    = errors.New("location lookup unavailable")
)

const DefaultSuggestionCacheTTL = 6 * time.Hour

type PlannerConfig struct {
	CacheTTL time.Duration
}

type SearchQuery struct {
	Location  string
	Category  domain.Category
	Reference *domain.Coordinate
}

type SearchResult struct {
	Context     domain.SearchContext
	Suggestions []domain.EnrichedSuggestion
}

type PlannerService struct {
	provider   ports.SuggestionProvider
	cache      ports.SuggestionCache
	geolocator ports.Geolocator
	cfg        PlannerConfig
}

func NewPlannerService(provider ports.SuggestionProvider, cache ports.SuggestionCache, geolocator ports.Geolocator, cfg PlannerConfig) *PlannerService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultSuggestionCacheTTL
	}
	return &PlannerService{
		provider:   provider,
		cache:      cache,
		geolocator: geolocator,
		cfg:        cfg,
	}
}

// Search fetches suggestions for a location and enriches them with the
// distance from the reference coordinate, when one is known.
func (s *PlannerService) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	location := strings.TrimSpace(q.Location)
	if location == "" {
		return nil, ErrLocationRequired
	}
	category := q.Category
	if category == "" {
		category = domain.CategoryTouristAttractions
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, q.Category)
	}
	if q.Reference != nil {
		if err := q.Reference.Validate(); err != nil {
			return nil, err
		}
	}

	list, err := s.suggestions(ctx, location, category)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.Suggestion, 0, len(list.Suggestions))
	for _, sg := range list.Suggestions {
		if strings.TrimSpace(sg.Name) == "" {
			continue
		}
		sg.Category = category
		suggestions = append(suggestions, sg)
	}

	var ref *domain.Coordinate
	if q.Reference != nil {
		c := *q.Reference
		ref = &c
	}

	return &SearchResult{
		Context: domain.SearchContext{
			QueryLocation:       location,
			Category:            category,
			SearchCountry:       normalizeCountry(list.SearchCountry),
			ReferenceCoordinate: ref,
		},
		Suggestions: Enrich(suggestions, ref),
	}, nil
}

func (s *PlannerService) suggestions(ctx context.Context, location string, category domain.Category) (*domain.SuggestionList, error) {
	key := suggestionCacheKey(location, category)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("planner: suggestion cache read %s: %v", key, err)
		} else if ok && cached != nil {
			return cached, nil
		}
	}

	if s.provider == nil {
		return nil, ErrSuggestionsUnavailable
	}
	list, err := s.provider.Suggest(ctx, location, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionsUnavailable, err)
	}
	if list == nil {
		return nil, ErrSuggestionsUnavailable
	}

	if s.cache != nil && len(list.Suggestions) > 0 {
		if err := s.cache.Set(ctx, key, list, s.cfg.CacheTTL); err != nil {
			log.Printf("planner: suggestion cache write %s: %v", key, err)
		}
	}
	return list, nil
}

// Locate resolves the caller's approximate position from its IP address.
func (s *PlannerService) Locate(ctx context.Context, ip string) (*domain.IPLocation, error) {
	if s.geolocator == nil {
		return nil, ErrLocationUnavailable
	}
	loc, err := s.geolocator.Locate(ctx, ip)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	if loc == nil || strings.TrimSpace(loc.City) == "" {
		return nil, ErrLocationUnavailable
	}
	if loc.Coordinate != nil && loc.Coordinate.Validate() != nil {
		loc.Coordinate = nil
	}
	return loc, nil
}

func suggestionCacheKey(location string, category domain.Category) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(location)), " ")
	return fmt.Sprintf("suggestions:v1:%s:%s", category, normalized)
}

func normalizeCountry(country *string) *string {
	if country == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*country)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
