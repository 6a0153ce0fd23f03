package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryRestaurants        Category = "restaurants"
	CategoryTouristAttractions Category = "tourist_attractions"
	CategoryHiddenGems         Category = "hidden_gems"
	CategoryShopping           Category = "shopping"
	CategoryMovies             Category = "movies"
	CategoryHotels             Category = "hotels"
	CategoryTravel             Category = "travel"
)

var Categories = []Category{
	CategoryRestaurants,
	CategoryTouristAttractions,
	CategoryHiddenGems,
	CategoryShopping,
	CategoryMovies,
	CategoryHotels,
	CategoryTravel,
}

// ParseCategory accepts the canonical value as well as the spaced label
// ("tourist attractions") and is case-insensitive.
func ParseCategory(raw string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for _, c := range Categories {
		if string(c) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the human readable form used in prompts and exports.
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

type Suggestion struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Address        string     `json:"address"`
	Country        string     `json:"country"`
	Coordinate     Coordinate `json:"coordinate"`
	Category       Category   `json:"category"`
	Website        *string    `json:"website,omitempty"`
	ImageQuery     *string    `json:"image_query,omitempty"`
	PlaceID        *string    `json:"place_id,omitempty"`
	PhotoReference *string    `json:"photo_reference,omitempty"`
}

type EnrichedSuggestion struct {
	Suggestion
	DistanceKm *float64 `json:"distance_km"`
	Cell       string   `json:"geohash,omitempty"`
}

// SuggestionList is what the upstream suggestion capability returns for one query.
type SuggestionList struct {
	Suggestions   []Suggestion `json:"suggestions"`
	SearchCountry *string      `json:"search_country,omitempty"`
}

type SearchContext struct {
	QueryLocation       string      `json:"query_location"`
	Category            Category    `json:"category"`
	SearchCountry       *string     `json:"search_country"`
	ReferenceCoordinate *Coordinate `json:"reference_coordinate"`
}
