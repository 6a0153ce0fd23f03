package domain

import "time"

// ItineraryItem is a suggestion frozen at the moment it was added. Category and
// DistanceKm are captured then and do not follow later searches.
type ItineraryItem struct {
	EnrichedSuggestion
	Category Category  `json:"category"`
	AddedAt  time.Time `json:"added_at"`
}
