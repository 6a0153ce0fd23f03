package memory

import (
	"context"
	"database/sql"
	"strings"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

// HotelRepository serves the built-in hotel catalogue. It is used when no
// database is configured.
type HotelRepository struct {
	hotels []domain.Hotel
}

var _ ports.HotelRepository = (*HotelRepository)(nil)

func NewHotelRepo() *HotelRepository {
	return &HotelRepository{hotels: seedHotels()}
}

func NewHotelRepoWith(hotels []domain.Hotel) *HotelRepository {
	return &HotelRepository{hotels: hotels}
}

// List matches the filter location as a case-insensitive substring of the
// hotel location. Catalogue order is kept.
func (r *HotelRepository) List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	needle := strings.ToLower(strings.TrimSpace(filter.Location))
	out := make([]domain.Hotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		if needle != "" && !strings.Contains(strings.ToLower(h.Location), needle) {
			continue
		}
		out = append(out, copyHotel(h))
	}
	return out, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	for _, h := range r.hotels {
		if h.ID == id {
			c := copyHotel(h)
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func copyHotel(h domain.Hotel) domain.Hotel {
	h.Amenities = append([]domain.Amenity(nil), h.Amenities...)
	h.Images = append([]string(nil), h.Images...)
	h.Reviews = append([]domain.HotelReview(nil), h.Reviews...)
	return h
}

func hotelImages(ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, "https://picsum.photos/seed/"+id+"/800/600")
	}
	return out
}

func seedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:            "1",
			Name:          "The Metropolitan",
			Location:      "New York, USA",
			Description:   "A stylish hotel in the heart of Manhattan, offering breathtaking city views and unparalleled luxury. Perfect for business and leisure travelers looking for a chic urban retreat.",
			PricePerNight: 350,
			Rating:        4.8,
			Amenities:     []domain.Amenity{domain.AmenityWifi, domain.AmenityGym, domain.AmenityRestaurant, domain.AmenitySpa, domain.AmenityAirConditioning},
			Images:        hotelImages("hotel-1-1", "hotel-1-2", "hotel-1-3"),
			Reviews: []domain.HotelReview{
				{ID: "r1", Author: "Jane Doe", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704d", Rating: 5, Comment: "Absolutely stunning hotel with the most comfortable beds!"},
				{ID: "r2", Author: "John Smith", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704e", Rating: 4, Comment: "Great location and service. The rooftop bar is a must-visit."},
			},
		},
		{
			ID:            "2",
			Name:          "Sunset Beach Resort",
			Location:      "Maui, Hawaii",
			Description:   "Escape to paradise at our beachfront resort. Enjoy private cabanas, infinity pools, and world-class dining while soaking up the Hawaiian sun.",
			PricePerNight: 550,
			Rating:        4.9,
			Amenities:     []domain.Amenity{domain.AmenityWifi, domain.AmenityPool, domain.AmenityRestaurant, domain.AmenitySpa, domain.AmenityAirConditioning, domain.AmenityParking},
			Images:        hotelImages("hotel-2-1", "hotel-2-2"),
			Reviews: []domain.HotelReview{
				{ID: "r3", Author: "Emily White", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704f", Rating: 5, Comment: "A slice of heaven on earth. Worth every penny."},
			},
		},
		{
			ID:            "3",
			Name:          "Whispering Pines Lodge",
			Location:      "Aspen, Colorado",
			Description:   "A cozy mountain lodge perfect for nature lovers. Explore hiking trails, enjoy the warmth of a log fire, and breathe in the fresh mountain air.",
			PricePerNight: 280,
			Rating:        4.6,
			Amenities:     []domain.Amenity{domain.AmenityWifi, domain.AmenityParking, domain.AmenityPetFriendly, domain.AmenityRestaurant},
			Images:        hotelImages("hotel-3-1", "hotel-3-2"),
			Reviews: []domain.HotelReview{
				{ID: "r4", Author: "Michael Brown", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704a", Rating: 5, Comment: "The perfect rustic getaway. So peaceful and beautiful."},
			},
		},
		{
			ID:            "4",
			Name:          "Oasis Desert Retreat",
			Location:      "Dubai, UAE",
			Description:   "Experience luxury in the heart of the desert. Our retreat offers private villas with pools, camel treks, and stargazing tours for a truly unique adventure.",
			PricePerNight: 700,
			Rating:        4.9,
			Amenities:     []domain.Amenity{domain.AmenityWifi, domain.AmenityPool, domain.AmenitySpa, domain.AmenityRestaurant, domain.AmenityAirConditioning},
			Images:        hotelImages("hotel-4-1"),
			Reviews:       []domain.HotelReview{},
		},
		{
			ID:            "5",
			Name:          "Le Charme Parisien",
			Location:      "Paris, France",
			Description:   "A boutique hotel in the artistic district of Montmartre. Experience the charm of Paris with romantic rooms, a quaint courtyard, and authentic French breakfasts.",
			PricePerNight: 320,
			Rating:        4.7,
			Amenities:     []domain.Amenity{domain.AmenityWifi, domain.AmenityRestaurant, domain.AmenityAirConditioning, domain.AmenityPetFriendly},
			Images:        hotelImages("hotel-5-1"),
			Reviews: []domain.HotelReview{
				{ID: "r5", Author: "Sophia Dubois", AvatarURL: "https://i.pravatar.cc/150?u=a042581f4e29026704b", Rating: 5, Comment: "Incredibly romantic and perfectly located. The staff was wonderful."},
			},
		},
		{
			ID:            "6",
			Name:          "Alpine Vista Chalet",
			Location:      "Zermatt, Switzerland",
			Description:   "A ski-in/ski-out chalet with stunning views of the Matterhorn. Perfect for winter sports enthusiasts seeking comfort and convenience.",
			PricePerNight: 450,
			Rating:        4.8,
			Amenities:     []domain.Amenity{domain.AmenityWifi, domain.AmenitySpa, domain.AmenityRestaurant, domain.AmenityParking},
			Images:        hotelImages("hotel-6-1"),
			Reviews:       []domain.HotelReview{},
		},
	}
}
