package service

import (
	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/geo"
)

// Enrich attaches the distance from ref to every suggestion. Order is
// preserved. With no reference coordinate every distance is nil; a suggestion
// whose own coordinate is out of range also gets a nil distance.
func Enrich(suggestions []domain.Suggestion, ref *domain.Coordinate) []domain.EnrichedSuggestion {
	out := make([]domain.EnrichedSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		enriched := domain.EnrichedSuggestion{Suggestion: s}
		if s.Coordinate.Validate() == nil {
			enriched.Cell = geo.Cell(s.Coordinate, geo.CellPrecision)
			if ref != nil {
				d := geo.DistanceKm(*ref, s.Coordinate)
				enriched.DistanceKm = &d
			}
		}
		out = append(out, enriched)
	}
	return out
}
