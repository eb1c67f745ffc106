package repository

import (
	"context"
	"fmt"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestColumns = `id, listing_id, requester_id, status, created_at`

type matchRequestRepo struct {
	db *pgxpool.Pool
}

func NewMatchRequestRepository(db *pgxpool.Pool) MatchRequestRepository {
	return &matchRequestRepo{db: db}
}

func scanRequest(row pgx.Row) (*model.MatchRequest, error) {
	var m model.MatchRequest
	err := row.Scan(&m.ID, &m.ListingID, &m.RequesterID, &m.Status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRequestRepo) Create(ctx context.Context, listingID int64, requesterID string) (*model.MatchRequest, error) {
	query := `
		INSERT INTO match_requests (listing_id, requester_id)
		VALUES ($1, $2)
		RETURNING ` + requestColumns

	return scanRequest(r.db.QueryRow(ctx, query, listingID, requesterID))
}

func (r *matchRequestRepo) Get(ctx context.Context, id int64) (*model.MatchRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM match_requests WHERE id = $1`
	return scanRequest(r.db.QueryRow(ctx, query, id))
}

// FindByListingAndRequester returns the most recent request from this
// requester on the listing, or pgx.ErrNoRows.
func (r *matchRequestRepo) FindByListingAndRequester(ctx context.Context, listingID int64, requesterID string) (*model.MatchRequest, error) {
	query := `
		SELECT ` + requestColumns + ` FROM match_requests
		WHERE listing_id = $1 AND requester_id = $2
		ORDER BY id DESC
		LIMIT 1`

	return scanRequest(r.db.QueryRow(ctx, query, listingID, requesterID))
}

// Revive resets a cancelled request back to pending, preserving its
// id.
func (r *matchRequestRepo) Revive(ctx context.Context, id int64) (*model.MatchRequest, error) {
	query := `
		UPDATE match_requests SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING ` + requestColumns

	return scanRequest(r.db.QueryRow(ctx, query, model.RequestPending, id, model.RequestCancelled))
}

func (r *matchRequestRepo) ListByListing(ctx context.Context, listingID int64) ([]*model.MatchRequest, error) {
	query := `
		SELECT ` + requestColumns + ` FROM match_requests
		WHERE listing_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*model.MatchRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *matchRequestRepo) CountByListing(ctx context.Context, listingID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM match_requests WHERE listing_id = $1`, listingID).Scan(&count)
	return count, err
}

// Accept marks the request accepted and advances the parent listing to
// matched in a single transaction, so both writes become visible
// together.
func (r *matchRequestRepo) Accept(ctx context.Context, requestID, listingID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE match_requests SET status = $1 WHERE id = $2`,
		model.RequestAccepted, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	tag, err = tx.Exec(ctx,
		`UPDATE listings SET status = $1, updated_at = now() WHERE id = $2 AND is_active = 1`,
		model.ListingMatched, listingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("accepting request %d: %w", requestID, pgx.ErrNoRows)
	}

	return tx.Commit(ctx)
}

func (r *matchRequestRepo) SetStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE match_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
