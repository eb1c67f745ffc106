package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// listIndexCap bounds the listing index to its 200 newest rows.
const listIndexCap = 200

const listingColumns = `id, user_id, role, from_country, from_city, to_country, to_city,
	travel_date, arrival_date, weight_kg, item_type, description,
	reward_amount, currency, status, is_active, extra, created_at, updated_at`

type listingRepo struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) ListingRepository {
	return &listingRepo{db: db}
}

func scanListing(row pgx.Row) (*model.Listing, error) {
	var l model.Listing
	err := row.Scan(
		&l.ID, &l.UserID, &l.Role, &l.FromCountry, &l.FromCity, &l.ToCountry, &l.ToCity,
		&l.TravelDate, &l.ArrivalDate, &l.WeightKg, &l.ItemType, &l.Description,
		&l.RewardAmount, &l.Currency, &l.Status, &l.IsActive, &l.Extra, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) Create(ctx context.Context, listing *model.Listing) (*model.Listing, error) {
	query := `
		INSERT INTO listings (user_id, role, from_country, from_city, to_country, to_city,
			travel_date, arrival_date, weight_kg, item_type, description,
			reward_amount, currency, extra)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + listingColumns

	return scanListing(r.db.QueryRow(ctx, query,
		listing.UserID,
		listing.Role,
		listing.FromCountry,
		listing.FromCity,
		listing.ToCountry,
		listing.ToCity,
		listing.TravelDate,
		listing.ArrivalDate,
		listing.WeightKg,
		listing.ItemType,
		listing.Description,
		listing.RewardAmount,
		listing.Currency,
		listing.Extra,
	))
}

// List returns active listings newest first, capped at 200 rows.
// The free-text filter matches the supplied value case-sensitively
// against the concatenated searchable columns.
func (r *listingRepo) List(ctx context.Context, filter model.ListingFilter) ([]*model.Listing, error) {
	var (
		conds = []string{"is_active = 1"}
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Role != "" {
		conds = append(conds, "role = "+arg(filter.Role))
	}
	if filter.Query != "" {
		conds = append(conds,
			"concat_ws(' ', from_country, from_city, to_country, to_city, item_type, description) LIKE "+
				arg("%"+filter.Query+"%"))
	}
	if filter.FromCountry != "" {
		conds = append(conds, "from_country = "+arg(filter.FromCountry))
	}
	if filter.ToCountry != "" {
		conds = append(conds, "to_country = "+arg(filter.ToCountry))
	}

	query := fmt.Sprintf(`
		SELECT %s FROM listings
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT %d`, listingColumns, strings.Join(conds, " AND "), listIndexCap)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*model.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *listingRepo) GetActive(ctx context.Context, id int64) (*model.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 AND is_active = 1`
	return scanListing(r.db.QueryRow(ctx, query, id))
}

// Update writes the merged row back. Field-level merge semantics live
// in the service layer; this persists whatever it is handed.
func (r *listingRepo) Update(ctx context.Context, listing *model.Listing) (*model.Listing, error) {
	query := `
		UPDATE listings
		SET from_country = $1, from_city = $2, to_country = $3, to_city = $4,
			travel_date = $5, arrival_date = $6, weight_kg = $7, item_type = $8,
			description = $9, reward_amount = $10, currency = $11, extra = $12,
			updated_at = now()
		WHERE id = $13 AND is_active = 1
		RETURNING ` + listingColumns

	return scanListing(r.db.QueryRow(ctx, query,
		listing.FromCountry,
		listing.FromCity,
		listing.ToCountry,
		listing.ToCity,
		listing.TravelDate,
		listing.ArrivalDate,
		listing.WeightKg,
		listing.ItemType,
		listing.Description,
		listing.RewardAmount,
		listing.Currency,
		listing.Extra,
		listing.ID,
	))
}

func (r *listingRepo) SetStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE listings SET status = $1, updated_at = now() WHERE id = $2 AND is_active = 1`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete hides the listing from all read paths but keeps the row
// and its requests, messages, and reviews.
func (r *listingRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE listings SET is_active = 0, updated_at = now() WHERE id = $1 AND is_active = 1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
