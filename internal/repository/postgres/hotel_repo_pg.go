package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

type HotelRepository struct {
	db *sqlx.DB
}

var _ ports.HotelRepository = (*HotelRepository)(nil)

func NewHotelRepo(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelRow struct {
	domain.Hotel
	Amenities pq.StringArray `db:"amenities"`
	Images    pq.StringArray `db:"images"`
}

const hotelColumns = `
	h.id,
	h.name,
	h.location,
	h.description,
	h.price_per_night,
	h.rating,
	h.amenities,
	h.images
`

func (r *HotelRepository) List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error) {
	var builder strings.Builder
	builder.WriteString("SELECT" + hotelColumns + "FROM hotels h")

	params := make([]any, 0, 1)
	if location := strings.TrimSpace(filter.Location); location != "" {
		params = append(params, "%"+location+"%")
		builder.WriteString(fmt.Sprintf("\nWHERE h.location ILIKE $%d", len(params)))
	}
	builder.WriteString("\nORDER BY h.sort_order, h.id")

	var rows []hotelRow
	if err := r.db.SelectContext(ctx, &rows, builder.String(), params...); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Hotel{}, nil
	}

	hotels := make([]domain.Hotel, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, row.toDomain())
		ids = append(ids, row.ID)
	}

	reviews, err := r.reviewsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range hotels {
		hotels[i].Reviews = nonNilReviews(reviews[hotels[i].ID])
	}
	return hotels, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	query := "SELECT" + hotelColumns + "FROM hotels h WHERE h.id = $1"

	var row hotelRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	hotel := row.toDomain()

	reviews, err := r.reviewsFor(ctx, []string{hotel.ID})
	if err != nil {
		return nil, err
	}
	hotel.Reviews = nonNilReviews(reviews[hotel.ID])
	return &hotel, nil
}

func (r *HotelRepository) reviewsFor(ctx context.Context, hotelIDs []string) (map[string][]domain.HotelReview, error) {
	const query = `
		SELECT hotel_id, id, author, avatar_url, rating, comment
		FROM hotel_reviews
		WHERE hotel_id = ANY($1)
		ORDER BY hotel_id, created_at, id
	`
	var rows []struct {
		HotelID string `db:"hotel_id"`
		domain.HotelReview
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.StringArray(hotelIDs)); err != nil {
		return nil, err
	}

	out := make(map[string][]domain.HotelReview, len(hotelIDs))
	for _, row := range rows {
		out[row.HotelID] = append(out[row.HotelID], row.HotelReview)
	}
	return out, nil
}

func (row hotelRow) toDomain() domain.Hotel {
	hotel := row.Hotel
	hotel.Amenities = make([]domain.Amenity, 0, len(row.Amenities))
	for _, a := range row.Amenities {
		hotel.Amenities = append(hotel.Amenities, domain.Amenity(a))
	}
	hotel.Images = append([]string{}, row.Images...)
	return hotel
}

func nonNilReviews(reviews []domain.HotelReview) []domain.HotelReview {
	if reviews == nil {
		return []domain.HotelReview{}
	}
	return reviews
}
