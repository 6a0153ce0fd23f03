package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type stubHotelRepo struct {
	hotels map[string]domain.Hotel
}

func (r *stubHotelRepo) List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (r *stubHotelRepo) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	h, ok := r.hotels[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &h, nil
}

func newTestHotels() *HotelService {
	return NewHotelService(&stubHotelRepo{hotels: map[string]domain.Hotel{
		"1": {ID: "1", Name: "The Grand Palace Hotel", PricePerNight: 350},
	}})
}

func day(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestHotelService_QuoteWithDates(t *testing.T) {
	svc := newTestHotels()

	quote, err := svc.Quote(context.Background(), "1", StayQuoteInput{From: day("2026-07-01"), To: day("2026-07-04"), Guests: 2})
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if quote.Nights != 3 {
		t.Fatalf("expected 3 nights, got %d", quote.Nights)
	}
	if quote.Subtotal != 1050 || quote.Taxes != 105 || quote.ServiceFee != 25 {
		t.Fatalf("unexpected breakdown %+v", quote)
	}
	if quote.Total != 1180 {
		t.Fatalf("expected total 1180, got %v", quote.Total)
	}
}

func TestHotelService_QuoteDefaults(t *testing.T) {
	quote, err := newTestHotels().Quote(context.Background(), "1", StayQuoteInput{})
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if quote.Nights != 1 || quote.Guests != 1 {
		t.Fatalf("expected one night for one guest, got %d nights %d guests", quote.Nights, quote.Guests)
	}
	if quote.Total != 410 {
		t.Fatalf("expected total 410, got %v", quote.Total)
	}
}

func TestHotelService_QuoteErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestHotels()

	cases := []struct {
		name string
		id   string
		in   StayQuoteInput
		want error
	}{
		{name: "unknown hotel", id: "99", want: ErrHotelNotFound},
		{name: "negative guests", id: "1", in: StayQuoteInput{Guests: -1}, want: ErrInvalidGuests},
		{name: "reversed dates", id: "1", in: StayQuoteInput{From: day("2026-07-04"), To: day("2026-07-01")}, want: ErrInvalidStayDates},
		{name: "same day", id: "1", in: StayQuoteInput{From: day("2026-07-04"), To: day("2026-07-04")}, want: ErrInvalidStayDates},
		{name: "only check-in", id: "1", in: StayQuoteInput{From: day("2026-07-04")}, want: ErrInvalidStayDates},
	}
	for _, tc := range cases {
		if _, err := svc.Quote(ctx, tc.id, tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}
