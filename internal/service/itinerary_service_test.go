package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

func newTestItinerary(t *testing.T) (*ItineraryService, *SessionService, uuid.UUID) {
	t.Helper()
	sessions := newTestSessions(nil)
	_, session, err := sessions.Start(context.Background())
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	return NewItineraryService(sessions, NewBookingResolver(BookingTargets{})), sessions, session.ID
}

func TestItineraryService_AddRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _, sid := newTestItinerary(t)

	if _, err := svc.Add(ctx, sid, enriched("Colosseum", km(2)), domain.CategoryTouristAttractions); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	_, err := svc.Add(ctx, sid, enriched(" Colosseum", km(2)), domain.CategoryTouristAttractions)
	if !errors.Is(err, ErrItineraryDuplicate) {
		t.Fatalf("expected ErrItineraryDuplicate, got %v", err)
	}

	entries, err := svc.List(ctx, sid, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single item, got %d", len(entries))
	}
}

func TestItineraryService_AddValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, sid := newTestItinerary(t)

	if _, err := svc.Add(ctx, sid, enriched(" ", nil), domain.CategoryShopping); !errors.Is(err, ErrItineraryValidation) {
		t.Fatalf("expected ErrItineraryValidation for blank name, got %v", err)
	}
	if _, err := svc.Add(ctx, sid, enriched("Roscioli", nil), "nightlife"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := svc.Add(ctx, sid, enriched("Roscioli", km(-1)), domain.CategoryRestaurants); !errors.Is(err, ErrItineraryValidation) {
		t.Fatalf("expected ErrItineraryValidation for negative distance, got %v", err)
	}
	if _, err := svc.Add(ctx, uuid.New(), enriched("Roscioli", nil), domain.CategoryRestaurants); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid for unknown session, got %v", err)
	}
}

func TestItineraryService_AddFallsBackToSuggestionCategory(t *testing.T) {
	svc, _, sid := newTestItinerary(t)
	s := enriched("Cinema Farnese", nil)
	s.Category = domain.CategoryMovies

	item, err := svc.Add(context.Background(), sid, s, "")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.Category != domain.CategoryMovies {
		t.Fatalf("expected movies, got %s", item.Category)
	}
}

func TestItineraryService_ListUsesLastSearchCountry(t *testing.T) {
	ctx := context.Background()
	svc, sessions, sid := newTestItinerary(t)

	if _, err := svc.Add(ctx, sid, enriched("Roma Termini", km(20)), domain.CategoryTravel); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	entries, err := svc.List(ctx, sid, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if actionKinds(entries[0].Actions)[domain.BookingActionBookFlight] != 1 {
		t.Fatalf("expected flight without a known search country, got %v", actionKinds(entries[0].Actions))
	}

	if err := sessions.RememberSearch(sid, domain.SearchContext{SearchCountry: strPtr("Italy")}); err != nil {
		t.Fatalf("RememberSearch returned error: %v", err)
	}
	entries, err = svc.List(ctx, sid, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	kinds := actionKinds(entries[0].Actions)
	if kinds[domain.BookingActionBookTrain] != 1 || kinds[domain.BookingActionBookBus] != 1 {
		t.Fatalf("expected train and bus once the search country is known, got %v", kinds)
	}

	entries, err = svc.List(ctx, sid, strPtr("Spain"))
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if actionKinds(entries[0].Actions)[domain.BookingActionBookFlight] != 1 {
		t.Fatalf("expected explicit country to win, got %v", actionKinds(entries[0].Actions))
	}
}

func TestItineraryService_RemoveAndActions(t *testing.T) {
	ctx := context.Background()
	svc, _, sid := newTestItinerary(t)

	if _, err := svc.Add(ctx, sid, enriched("Roscioli", km(1)), domain.CategoryRestaurants); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	entry, err := svc.Actions(ctx, sid, "Roscioli", nil)
	if err != nil {
		t.Fatalf("Actions returned error: %v", err)
	}
	if actionKinds(entry.Actions)[domain.BookingActionOrderFood] != 1 {
		t.Fatalf("expected order_food, got %v", actionKinds(entry.Actions))
	}

	removed, err := svc.Remove(ctx, sid, "Roscioli")
	if err != nil || removed != 1 {
		t.Fatalf("expected one removal, got %d err=%v", removed, err)
	}
	if _, err := svc.Actions(ctx, sid, "Roscioli", nil); !errors.Is(err, ErrItineraryItemNotFound) {
		t.Fatalf("expected ErrItineraryItemNotFound, got %v", err)
	}
}

func TestItineraryService_ExportPDF(t *testing.T) {
	ctx := context.Background()
	svc, _, sid := newTestItinerary(t)

	s := enriched("Café de Flore", km(3.4))
	s.Address = "172 Bd Saint-Germain, Paris"
	s.Description = "Historic café on the Left Bank."
	if _, err := svc.Add(ctx, sid, s, domain.CategoryRestaurants); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportPDF(ctx, sid, nil, &buf); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected a PDF document, got %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestItineraryService_ConcurrentAddsKeepOneItemPerName(t *testing.T) {
	ctx := context.Background()

	for round := 0; round < 50; round++ {
		svc, _, sid := newTestItinerary(t)

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Add(ctx, sid, enriched("Colosseum", km(2)), domain.CategoryTouristAttractions)
				if err == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				} else if !errors.Is(err, ErrItineraryDuplicate) {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		entries, err := svc.List(ctx, sid, nil)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if accepted != 1 || len(entries) != 1 {
			t.Fatalf("round %d: expected exactly one Colosseum, accepted=%d stored=%d", round, accepted, len(entries))
		}
	}
}
