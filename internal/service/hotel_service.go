package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

var (
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrInvalidStayDates = errors.New("invalid stay dates")
	ErrInvalidGuests    = errors.New("guests must be at least 1")
)

const (
	StayServiceFee = 25.0
	StayTaxRate    = 0.10
)

type StayQuoteInput struct {
	From   *time.Time
	To     *time.Time
	Guests int
}

type HotelService struct {
	hotels ports.HotelRepository
	now    func() time.Time
}

func NewHotelService(hotels ports.HotelRepository) *HotelService {
	return &HotelService{hotels: hotels, now: time.Now}
}

func (s *HotelService) List(ctx context.Context, location string) ([]domain.Hotel, error) {
	return s.hotels.List(ctx, domain.HotelFilter{Location: strings.TrimSpace(location)})
}

func (s *HotelService) Get(ctx context.Context, id string) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	return hotel, nil
}

// Quote prices a stay: nightly rate times nights, a flat service fee and
// taxes on the nightly subtotal. Without dates a single night is assumed.
func (s *HotelService) Quote(ctx context.Context, hotelID string, in StayQuoteInput) (*domain.StayQuote, error) {
	hotel, err := s.Get(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	guests := in.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 1 {
		return nil, ErrInvalidGuests
	}

	nights := 1
	switch {
	case in.From != nil && in.To != nil:
		if !in.To.After(*in.From) {
			return nil, ErrInvalidStayDates
		}
		nights = int(math.Round(in.To.Sub(*in.From).Hours() / 24))
		if nights < 1 {
			nights = 1
		}
	case in.From != nil || in.To != nil:
		return nil, ErrInvalidStayDates
	}

	subtotal := hotel.PricePerNight * float64(nights)
	taxes := roundCents(subtotal * StayTaxRate)
	return &domain.StayQuote{
		ID:            uuid.New(),
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		From:          in.From,
		To:            in.To,
		Guests:        guests,
		Nights:        nights,
		PricePerNight: hotel.PricePerNight,
		Subtotal:      roundCents(subtotal),
		ServiceFee:    StayServiceFee,
		Taxes:         taxes,
		Total:         roundCents(subtotal + StayServiceFee + taxes),
		CreatedAt:     s.now().UTC(),
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
