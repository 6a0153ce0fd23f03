package domain

import (
	"time"

	"github.com/google/uuid"
)

type Amenity string

const (
	AmenityWifi            Amenity = "wifi"
	AmenityPool            Amenity = "pool"
	AmenityParking         Amenity = "parking"
	AmenityRestaurant      Amenity = "restaurant"
	AmenityGym             Amenity = "gym"
	AmenitySpa             Amenity = "spa"
	AmenityPetFriendly     Amenity = "pet-friendly"
	AmenityAirConditioning Amenity = "air-conditioning"
)

var amenityLabels = map[Amenity]string{
	AmenityWifi:            "Free WiFi",
	AmenityPool:            "Swimming Pool",
	AmenityParking:         "Free Parking",
	AmenityRestaurant:      "Restaurant",
	AmenityGym:             "Fitness Center",
	AmenitySpa:             "Spa",
	AmenityPetFriendly:     "Pet Friendly",
	AmenityAirConditioning: "Air Conditioning",
}

func (a Amenity) Label() string {
	if label, ok := amenityLabels[a]; ok {
		return label
	}
	return string(a)
}

type HotelReview struct {
	ID        string `db:"id" json:"id"`
	Author    string `db:"author" json:"author"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
	Rating    int    `db:"rating" json:"rating"`
	Comment   string `db:"comment" json:"comment"`
}

type Hotel struct {
	ID            string        `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	Location      string        `db:"location" json:"location"`
	Description   string        `db:"description" json:"description"`
	PricePerNight float64       `db:"price_per_night" json:"price_per_night"`
	Rating        float64       `db:"rating" json:"rating"`
	Amenities     []Amenity     `db:"-" json:"amenities"`
	Images        []string      `db:"-" json:"images"`
	Reviews       []HotelReview `db:"-" json:"reviews"`
}

type HotelFilter struct {
	Location string
}

// StayQuote prices a stay without reserving anything.
type StayQuote struct {
	ID            uuid.UUID  `json:"id"`
	HotelID       string     `json:"hotel_id"`
	HotelName     string     `json:"hotel_name"`
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
	Guests        int        `json:"guests"`
	Nights        int        `json:"nights"`
	PricePerNight float64    `json:"price_per_night"`
	Subtotal      float64    `json:"subtotal"`
	ServiceFee    float64    `json:"service_fee"`
	Taxes         float64    `json:"taxes"`
	Total         float64    `json:"total"`
	CreatedAt     time.Time  `json:"created_at"`
}
