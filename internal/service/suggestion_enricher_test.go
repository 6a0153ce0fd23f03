package service

import (
	"math"
	"testing"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/geo"
)

var (
	eiffelTower = domain.Coordinate{Latitude: 48.8584, Longitude: 2.2945}
	louvre      = domain.Coordinate{Latitude: 48.8606, Longitude: 2.3376}
	colosseum   = domain.Coordinate{Latitude: 41.8902, Longitude: 12.4922}
)

func TestEnrich_EmptyInput(t *testing.T) {
	out := Enrich(nil, &eiffelTower)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestEnrich_NoReferenceLeavesDistanceNil(t *testing.T) {
	out := Enrich([]domain.Suggestion{
		{Name: "Louvre", Coordinate: louvre},
		{Name: "Colosseum", Coordinate: colosseum},
	}, nil)

	if len(out) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(out))
	}
	for _, s := range out {
		if s.DistanceKm != nil {
			t.Fatalf("expected nil distance for %s, got %v", s.Name, *s.DistanceKm)
		}
		if s.Cell == "" {
			t.Fatalf("expected geohash for %s", s.Name)
		}
	}
}

func TestEnrich_PreservesOrderAndFields(t *testing.T) {
	site := "https://www.louvre.fr"
	in := []domain.Suggestion{
		{Name: "Colosseum", Country: "Italy", Coordinate: colosseum},
		{Name: "Louvre", Country: "France", Coordinate: louvre, Website: &site},
	}
	out := Enrich(in, &eiffelTower)

	if out[0].Name != "Colosseum" || out[1].Name != "Louvre" {
		t.Fatalf("order not preserved: %s, %s", out[0].Name, out[1].Name)
	}
	if out[1].Website == nil || *out[1].Website != site || out[1].Country != "France" {
		t.Fatalf("expected fields to be carried over, got %#v", out[1].Suggestion)
	}
	for i, s := range out {
		want := geo.DistanceKm(eiffelTower, in[i].Coordinate)
		if s.DistanceKm == nil || math.Abs(*s.DistanceKm-want) > 1e-9 {
			t.Fatalf("%s: expected distance %v, got %v", s.Name, want, s.DistanceKm)
		}
	}
	if *out[1].DistanceKm > 5 {
		t.Fatalf("expected Louvre within 5km of the Eiffel Tower, got %v", *out[1].DistanceKm)
	}
}

func TestEnrich_InvalidSuggestionCoordinate(t *testing.T) {
	out := Enrich([]domain.Suggestion{
		{Name: "Nowhere", Coordinate: domain.Coordinate{Latitude: 123, Longitude: 0}},
	}, &eiffelTower)

	if out[0].DistanceKm != nil {
		t.Fatalf("expected nil distance for invalid coordinate, got %v", *out[0].DistanceKm)
	}
	if out[0].Cell != "" {
		t.Fatalf("expected no geohash for invalid coordinate, got %q", out[0].Cell)
	}
}
