package repository

import (
	"context"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type airportRepo struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &airportRepo{db: db}
}

// Search matches the query case-insensitively as a substring of the
// IATA code, ICAO code, city, name, or country, ranked so exact and
// prefix IATA matches come first, then city and name prefixes, then
// everything else. Ties break on shorter IATA code, then shorter city.
func (r *airportRepo) Search(ctx context.Context, query string, limit int) ([]*model.Airport, error) {
	sql := `
		SELECT id, iata, icao, name, city, country, country_code, lat, lon,
			CASE
				WHEN lower(iata) = lower($1) THEN 0
				WHEN lower(iata) LIKE lower($1) || '%' THEN 1
				WHEN lower(city) LIKE lower($1) || '%' THEN 2
				WHEN lower(name) LIKE lower($1) || '%' THEN 3
				ELSE 4
			END AS rank
		FROM airports
		WHERE lower(iata) LIKE '%' || lower($1) || '%'
			OR lower(icao) LIKE '%' || lower($1) || '%'
			OR lower(city) LIKE '%' || lower($1) || '%'
			OR lower(name) LIKE '%' || lower($1) || '%'
			OR lower(country) LIKE '%' || lower($1) || '%'
		ORDER BY rank ASC, length(iata) ASC, length(city) ASC
		LIMIT $2`

	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var airports []*model.Airport
	for rows.Next() {
		var a model.Airport
		var rank int
		err := rows.Scan(&a.ID, &a.IATA, &a.ICAO, &a.Name, &a.City, &a.Country, &a.CountryCode, &a.Lat, &a.Lon, &rank)
		if err != nil {
			return nil, err
		}
		airports = append(airports, &a)
	}
	return airports, rows.Err()
}

func (r *airportRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM airports`).Scan(&count)
	return count, err
}
