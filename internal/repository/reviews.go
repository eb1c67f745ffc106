package repository

import (
	"context"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (listing_id, reviewer_id, reviewed_user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		review.ListingID,
		review.ReviewerID,
		review.ReviewedUserID,
		review.Rating,
		review.Comment,
	)
	return err
}

// Aggregate computes the average rating and review count over all
// reviews referencing the listing. No rows yields a zero summary.
func (r *reviewRepo) Aggregate(ctx context.Context, listingID int64) (model.RatingSummary, error) {
	query := `
		SELECT coalesce(avg(rating), 0), count(*)
		FROM reviews
		WHERE listing_id = $1`

	var summary model.RatingSummary
	err := r.db.QueryRow(ctx, query, listingID).Scan(&summary.Average, &summary.Count)
	return summary, err
}
