package service

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

var ErrInvalidCategory = errors.New("invalid category")

// ShortRangeKm is the upper bound (inclusive) for which same-country travel
// offers train and bus instead of a flight.
const ShortRangeKm = 100.0

// BookingTargets holds the external pages booking actions redirect to.
type BookingTargets struct {
	TaxiURL   string
	FoodURL   string
	MovieURL  string
	FlightURL string
	TrainURL  string
	BusURL    string
}

func DefaultBookingTargets() BookingTargets {
	return BookingTargets{
		TaxiURL:   "https://m.uber.com/ul/",
		FoodURL:   "https://www.ubereats.com/search",
		MovieURL:  "https://www.fandango.com/search",
		FlightURL: "https://www.google.com/travel/flights",
		TrainURL:  "https://www.thetrainline.com/search",
		BusURL:    "https://www.busbud.com/en/search",
	}
}

type BookingResolver struct {
	targets BookingTargets
}

func NewBookingResolver(targets BookingTargets) *BookingResolver {
	defaults := DefaultBookingTargets()
	targets.TaxiURL = firstNonEmpty(targets.TaxiURL, defaults.TaxiURL)
	targets.FoodURL = firstNonEmpty(targets.FoodURL, defaults.FoodURL)
	targets.MovieURL = firstNonEmpty(targets.MovieURL, defaults.MovieURL)
	targets.FlightURL = firstNonEmpty(targets.FlightURL, defaults.FlightURL)
	targets.TrainURL = firstNonEmpty(targets.TrainURL, defaults.TrainURL)
	targets.BusURL = firstNonEmpty(targets.BusURL, defaults.BusURL)
	return &BookingResolver{targets: targets}
}

// Resolve returns the booking actions available for item. A taxi is always
// offered; the rest follows the item's category:
//
//	movies               -> book_movie
//	restaurants, hotels  -> order_food
//	travel, short range  -> book_train, book_bus
//	travel, otherwise    -> book_flight
//
// Short range means the item is in the search country and 0 <= distance <= 100km.
// An unknown distance or search country is never short range.
func (r *BookingResolver) Resolve(item domain.ItineraryItem, searchCountry *string) ([]domain.BookingAction, error) {
	actions := []domain.BookingAction{r.taxi(item)}

	switch item.Category {
	case domain.CategoryMovies:
		actions = append(actions, r.searchAction(domain.BookingActionBookMovie, r.targets.MovieURL, "q", item.Name,
			fmt.Sprintf("Book movie tickets at %s?", item.Name)))
	case domain.CategoryRestaurants, domain.CategoryHotels:
		actions = append(actions, r.searchAction(domain.BookingActionOrderFood, r.targets.FoodURL, "q", item.Name,
			fmt.Sprintf("Order food from %s?", item.Name)))
	case domain.CategoryTravel:
		if isShortRange(item, searchCountry) {
			actions = append(actions,
				r.searchAction(domain.BookingActionBookTrain, r.targets.TrainURL, "destination", destinationLabel(item),
					fmt.Sprintf("Book a train to %s?", item.Name)),
				r.searchAction(domain.BookingActionBookBus, r.targets.BusURL, "destination", destinationLabel(item),
					fmt.Sprintf("Book a bus to %s?", item.Name)),
			)
		} else {
			actions = append(actions, r.searchAction(domain.BookingActionBookFlight, r.targets.FlightURL, "q",
				"Flights to "+destinationLabel(item), fmt.Sprintf("Book a flight to %s?", item.Name)))
		}
	case domain.CategoryTouristAttractions, domain.CategoryHiddenGems, domain.CategoryShopping:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, item.Category)
	}
	return actions, nil
}

func isShortRange(item domain.ItineraryItem, searchCountry *string) bool {
	if item.DistanceKm == nil || searchCountry == nil {
		return false
	}
	if !sameCountry(item.Country, *searchCountry) {
		return false
	}
	d := *item.DistanceKm
	return d >= 0 && d <= ShortRangeKm
}

func sameCountry(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

func (r *BookingResolver) taxi(item domain.ItineraryItem) domain.BookingAction {
	q := url.Values{}
	q.Set("action", "setPickup")
	q.Set("pickup", "my_location")
	q.Set("dropoff[nickname]", item.Name)
	if item.Address != "" {
		q.Set("dropoff[formatted_address]", item.Address)
	}
	if item.Coordinate.Validate() == nil {
		q.Set("dropoff[latitude]", strconv.FormatFloat(item.Coordinate.Latitude, 'f', -1, 64))
		q.Set("dropoff[longitude]", strconv.FormatFloat(item.Coordinate.Longitude, 'f', -1, 64))
	}
	return domain.BookingAction{
		Kind:               domain.BookingActionTaxi,
		TargetURL:          withQuery(r.targets.TaxiURL, q),
		ConfirmationPrompt: fmt.Sprintf("Book a taxi to %s?", item.Name),
	}
}

func (r *BookingResolver) searchAction(kind domain.BookingActionKind, base, param, term, prompt string) domain.BookingAction {
	q := url.Values{}
	q.Set(param, term)
	return domain.BookingAction{
		Kind:               kind,
		TargetURL:          withQuery(base, q),
		ConfirmationPrompt: prompt,
	}
}

func destinationLabel(item domain.ItineraryItem) string {
	if item.Address != "" {
		return item.Name + ", " + item.Address
	}
	return item.Name
}

func withQuery(base string, q url.Values) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?" + q.Encode()
	}
	existing := u.Query()
	for k, vs := range q {
		for _, v := range vs {
			existing.Add(k, v)
		}
	}
	u.RawQuery = existing.Encode()
	return u.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
